// Package transport provides the transport operation aggregate for mineral
// haulage. It implements the Operation aggregate root that binds an operator,
// a vehicle and a mineral load to a haul over a given distance.
//
// The package includes:
//   - Operation: The aggregate root managing the haul lifecycle
//   - Status: The Open -> Finalized state machine value object
//   - Report: The accountability snapshot of a haul
//
// Key business rules:
//   - Operations reference constructed participants and a non-negative distance
//   - Identifiers come from a process-wide sequence starting at 1 and are
//     unique regardless of which goroutine opens the operation
//   - Weight validation compares the load against the vehicle capacity and
//     reports overloads as capacity errors without mutating anything
//   - Finalization is idempotent; only finalized operations count as
//     accountable stock for warehouse ingestion
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package transport
