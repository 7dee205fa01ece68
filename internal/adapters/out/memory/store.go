// Package memory provides in-memory implementations of the repository ports.
//
// The adapters keep aggregates in mutex-guarded maps with insertion order
// preserved, so listings are deterministic. They are the storage backend of
// the single-process deployment; swapping in a database only requires new
// implementations of the same ports.
package memory

import "orehaul/internal/core/ports"

// Store aggregates the in-memory repositories behind one façade.
// The composition root builds one Store and hands its repositories to the
// command and query handlers.
type Store struct {
	vehicleRepository   *VehicleRepository
	operatorRepository  *OperatorRepository
	operationRepository *OperationRepository
}

// NewStore creates a Store with empty repositories.
func NewStore() *Store {
	return &Store{
		vehicleRepository:   NewVehicleRepository(),
		operatorRepository:  NewOperatorRepository(),
		operationRepository: NewOperationRepository(),
	}
}

// VehicleRepository returns the fleet repository.
func (s *Store) VehicleRepository() ports.VehicleRepository {
	return s.vehicleRepository
}

// OperatorRepository returns the crew repository.
func (s *Store) OperatorRepository() ports.OperatorRepository {
	return s.operatorRepository
}

// OperationRepository returns the transport operation repository.
func (s *Store) OperationRepository() ports.OperationRepository {
	return s.operationRepository
}
