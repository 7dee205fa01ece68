// Package vehicle provides the truck fleet entities for mineral haulage.
// It implements the closed set of truck variants behind a common Vehicle
// interface, with shared identity, capacity and availability management.
//
// The package includes:
//   - Vehicle: The common contract implemented by every truck variant
//   - TippingTruck: A tipper whose yield depends on chassis resistance
//   - ArticulatedDumper: A dumper whose yield grows with its axle count
//   - LightTruck: A light truck with a reduced, fill-sensitive yield
//   - State: The operational availability value object
//
// Key business rules:
//   - Vehicles must have a non-empty immutable fleet identifier
//   - Capacity is measured in metric tons and must never be negative
//   - Freshly registered vehicles start in the Available state
//   - Yield projections clamp the load fraction at 1.0 so overloading
//     cannot inflate a result, and they always stay finite
//   - Yields are rounded to three decimals, the checkpoint scale precision
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package vehicle
