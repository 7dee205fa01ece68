package operator

import (
	"fmt"

	"orehaul/internal/pkg/errs"
)

// Role identifies the personnel variant. The crew is a closed set: every
// operator holds exactly one of the three roles below.
type Role string

const (
	// RoleTruckOperator drives the trucks and records the hauls they run.
	RoleTruckOperator Role = "truck_operator"
	// RoleTransportSupervisor oversees operations across the fleet.
	RoleTransportSupervisor Role = "transport_supervisor"
	// RoleWarehouseController checks finished operations into the warehouse.
	RoleWarehouseController Role = "warehouse_controller"
)

// ParseRole converts a string representation to a Role value.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleTruckOperator, RoleTransportSupervisor, RoleWarehouseController:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known operator role", s))
	}
}
