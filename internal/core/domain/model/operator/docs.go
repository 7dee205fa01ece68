// Package operator provides the haulage personnel entities for the mineral
// transport operation. It implements the closed set of personnel roles behind
// a common Operator interface.
//
// The package includes:
//   - Operator: The common contract implemented by every personnel variant
//   - TruckOperator: Drives the trucks (bonus 100 per registered operation)
//   - TransportSupervisor: Oversees the fleet (bonus 200 per registered operation)
//   - WarehouseController: Checks hauls into the warehouse (bonus 80 per registered operation)
//
// Key business rules:
//   - Operators must have a non-empty name, national id and license
//   - The vehicle roster keeps association order and is idempotent by
//     fleet identifier
//   - Registering an operation is a side effect: it journals the operation
//     id and emits a role-specific log line, never touching the operation
//   - Bonus amounts are per-role policy constants
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package operator
