// Package warehouse implements the stock-accounting aggregate of the domain.
//
// A Warehouse accumulates the cargo of finalized transport operations into an
// inventory keyed by mineral type. Ingestion is gated: operations that are
// still open are rejected, and an operation can only be counted once.
//
// The aggregate serializes access internally, so a single Warehouse can be
// shared by concurrent check-ins without lost updates.
package warehouse
