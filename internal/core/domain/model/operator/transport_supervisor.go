package operator

import (
	"errors"

	"orehaul/internal/pkg/guard"

	"go.uber.org/zap"
)

// transportSupervisorBonus is the per-operation bonus the supervisor role earns.
const transportSupervisorBonus = 200.0

// TransportSupervisor oversees operations across the fleet and countersigns
// the hauls it supervises.
type TransportSupervisor struct {
	crewMember
}

// NewTransportSupervisor creates a transport supervisor with the given identity.
// See NewTruckOperator for parameter semantics.
func NewTransportSupervisor(name, nationalID, license string, logger *zap.Logger) (*TransportSupervisor, error) {
	ts := &TransportSupervisor{}
	ts.logger = namedLogger(logger, "transport_supervisor")
	ts.guard = guard.NewConstructorGuard()

	if err := errors.Join(
		ts.setName(name),
		ts.setNationalID(nationalID),
		ts.setLicense(license),
	); err != nil {
		return nil, err
	}

	return ts, nil
}

// Role returns RoleTransportSupervisor.
func (ts *TransportSupervisor) Role() Role {
	return RoleTransportSupervisor
}

// RegisterOperation journals the haul and logs the supervision record.
// The operation itself is never mutated.
func (ts *TransportSupervisor) RegisterOperation(op Operation) {
	if op == nil {
		return
	}
	ts.recordOperation(op.ID())
	ts.logger.Info("transport supervisor countersigned the haul",
		zap.Uint64("operation_id", op.ID()),
		zap.String("operator", ts.name),
		zap.String("national_id", ts.nationalID),
	)
}

// CalculateBonus returns the per-operation bonus for the supervisor role.
func (ts *TransportSupervisor) CalculateBonus() float64 {
	return transportSupervisorBonus
}

// Validate ensures the operator was created through NewTransportSupervisor.
func (ts *TransportSupervisor) Validate() error {
	if ts == nil {
		return ErrOperatorIsNotConstructed
	}
	return ts.guard.Validate(ErrOperatorIsNotConstructed)
}
