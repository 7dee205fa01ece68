// Package mineral provides the mineral load entity used by transport
// operations. A Load captures what is being hauled: the mineral type, the
// humidity measured at weigh-in, and the weight in metric tons.
//
// Loads are created through the NewLoad constructor, which enforces that the
// mineral type is present and the weight is positive. The weight can later be
// corrected through a validated setter; type and humidity stay fixed.
package mineral
