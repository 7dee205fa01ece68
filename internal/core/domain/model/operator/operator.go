package operator

import (
	"errors"

	"orehaul/internal/core/domain/model/vehicle"
	"orehaul/internal/pkg/errs"
	"orehaul/internal/pkg/guard"

	"go.uber.org/zap"
)

// Domain errors for operator operations.
var (
	// ErrNameIsRequired is returned when attempting to create an operator without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrNationalIDIsRequired is returned when attempting to create an operator without a national id.
	ErrNationalIDIsRequired = errs.NewValueIsRequiredError("national id")
	// ErrLicenseIsRequired is returned when attempting to create an operator without a license.
	ErrLicenseIsRequired = errs.NewValueIsRequiredError("license")
	// ErrOperatorIsNotConstructed is returned when using an improperly initialized operator.
	ErrOperatorIsNotConstructed = errors.New("operator must be created via its New* constructor")
)

// Operation is the minimal view of a transport operation that an operator
// records. It is declared here so operators do not depend on the transport
// aggregate; any type exposing the operation id satisfies it.
type Operation interface {
	ID() uint64
}

// Operator is the common contract of all haulage personnel variants.
//
// Every variant shares identity, licensing, a vehicle roster and an
// operation journal; they differ in their role, the bonus they earn per
// registered operation, and the wording of their registration log line.
type Operator interface {
	// Name returns the operator's display name.
	Name() string
	// NationalID returns the operator's national identity number.
	NationalID() string
	// License returns the operator's license code.
	License() string
	// Role returns the personnel role discriminator.
	Role() Role
	// Vehicles returns the associated vehicle roster in association order.
	Vehicles() []vehicle.Vehicle
	// AssociateVehicle adds a vehicle to the roster. Re-associating an
	// already rostered vehicle is a no-op.
	AssociateVehicle(v vehicle.Vehicle) error
	// RegisterOperation journals the operation and emits a role-specific
	// log line. It never mutates the operation itself.
	RegisterOperation(op Operation)
	// RegisteredOperationIDs returns the journal of registered operation ids.
	RegisteredOperationIDs() []uint64
	// CalculateBonus returns the bonus this operator earns per registered
	// operation, determined by role policy.
	CalculateBonus() float64
	// IsEqual compares operators by their national id.
	IsEqual(other Operator) bool
	// Validate ensures the operator was created through a constructor.
	Validate() error
}

// crewMember carries the attributes and behavior shared by every personnel
// variant. It is embedded by the concrete operator types and never used on
// its own.
type crewMember struct {
	// name is the operator's display name
	name string
	// nationalID is the operator's national identity number
	nationalID string
	// license is the operator's license code
	license string
	// vehicles is the associated roster in association order
	vehicles []vehicle.Vehicle
	// operationIDs journals every operation this operator registered
	operationIDs []uint64
	// logger emits the registration side effect
	logger *zap.Logger
	// guard ensures the operator was created via a constructor
	guard guard.ConstructorGuard
}

// Name returns the operator's display name.
func (c *crewMember) Name() string {
	return c.name
}

// NationalID returns the operator's national identity number.
func (c *crewMember) NationalID() string {
	return c.nationalID
}

// License returns the operator's license code.
func (c *crewMember) License() string {
	return c.license
}

// Vehicles returns the associated vehicle roster in association order.
// The returned slice is a copy to prevent external modification.
func (c *crewMember) Vehicles() []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, len(c.vehicles))
	copy(out, c.vehicles)
	return out
}

// AssociateVehicle adds a vehicle to the operator's roster.
//
// The roster keeps association order and is idempotent by fleet identifier:
// associating a vehicle that is already rostered leaves the roster unchanged
// and reports no error.
func (c *crewMember) AssociateVehicle(v vehicle.Vehicle) error {
	if v == nil {
		return errs.NewValueIsRequiredError("vehicle")
	}
	if err := v.Validate(); err != nil {
		return err
	}

	for _, rostered := range c.vehicles {
		if rostered.IsEqual(v) {
			return nil
		}
	}

	c.vehicles = append(c.vehicles, v)
	return nil
}

// RegisteredOperationIDs returns the journal of registered operation ids in
// registration order. The returned slice is a copy.
func (c *crewMember) RegisteredOperationIDs() []uint64 {
	out := make([]uint64, len(c.operationIDs))
	copy(out, c.operationIDs)
	return out
}

// IsEqual compares operators by their national id.
func (c *crewMember) IsEqual(other Operator) bool {
	return other != nil && c.nationalID == other.NationalID()
}

// recordOperation appends the operation id to the journal.
// Variants call this from their role-specific RegisterOperation.
func (c *crewMember) recordOperation(operationID uint64) {
	c.operationIDs = append(c.operationIDs, operationID)
}

// setName validates and sets the operator's name.
// This is a private method used only during construction.
func (c *crewMember) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setNationalID validates and sets the operator's national identity number.
// This is a private method used only during construction.
func (c *crewMember) setNationalID(nationalID string) error {
	if nationalID == "" {
		return ErrNationalIDIsRequired
	}
	c.nationalID = nationalID
	return nil
}

// setLicense validates and sets the operator's license code.
// This is a private method used only during construction.
func (c *crewMember) setLicense(license string) error {
	if license == "" {
		return ErrLicenseIsRequired
	}
	c.license = license
	return nil
}

// namedLogger scopes the given logger to a personnel role. A nil logger
// falls back to a no-op logger so domain behavior never depends on wiring.
func namedLogger(logger *zap.Logger, role string) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger.Named(role)
}
