// Package services holds domain services for the mineral transport system:
// business logic that spans several aggregates and has no natural home in
// any single one of them.
//
// The package includes:
//   - VehicleDispatcher: A domain service for selecting the best vehicle for a haul
//
// A domain service stays free of infrastructure concerns so it can be
// exercised directly by the application layer and by tests.
package services
