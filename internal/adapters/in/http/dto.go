package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call Context.Validate on bound DTOs.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator installed on the echo instance.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// RegisterVehicleRequest is the body of POST /api/v1/vehicles. The variant
// fields matter only for the matching kind: chassis_resistance_pct for
// tipping trucks, axle_count for articulated dumpers, suspension for light
// trucks.
type RegisterVehicleRequest struct {
	Kind                 string  `json:"kind" validate:"required"`
	VehicleID            string  `json:"vehicle_id" validate:"required"`
	CapacityTons         float64 `json:"capacity_tons" validate:"gte=0"`
	ChassisResistancePct float64 `json:"chassis_resistance_pct,omitempty"`
	AxleCount            int     `json:"axle_count,omitempty"`
	Suspension           string  `json:"suspension,omitempty"`
}

// RegisterOperatorRequest is the body of POST /api/v1/operators.
type RegisterOperatorRequest struct {
	Role       string `json:"role" validate:"required"`
	Name       string `json:"name" validate:"required"`
	NationalID string `json:"national_id" validate:"required"`
	License    string `json:"license" validate:"required"`
}

// AssignVehicleRequest is the body of POST /api/v1/operators/:operator_id/vehicles.
type AssignVehicleRequest struct {
	VehicleID string `json:"vehicle_id" validate:"required"`
}

// OpenOperationRequest is the body of POST /api/v1/operations. An empty
// vehicle_id asks the dispatcher to pick from the operator's roster.
type OpenOperationRequest struct {
	OperatorID  string  `json:"operator_id" validate:"required"`
	VehicleID   string  `json:"vehicle_id,omitempty"`
	MineralType string  `json:"mineral_type" validate:"required"`
	HumidityPct float64 `json:"humidity_pct"`
	WeightTons  float64 `json:"weight_tons" validate:"gt=0"`
	DistanceKm  float64 `json:"distance_km" validate:"gte=0"`
}

// OperationOpenedResponse is the body returned when an operation is opened.
type OperationOpenedResponse struct {
	OperationID uint64 `json:"operation_id"`
}

// VehicleResponse is one fleet entry in GET /api/v1/vehicles.
type VehicleResponse struct {
	VehicleID    string  `json:"vehicle_id"`
	Kind         string  `json:"kind"`
	CapacityTons float64 `json:"capacity_tons"`
	State        string  `json:"state"`
}

// OpenOperationResponse is one entry in GET /api/v1/operations.
type OpenOperationResponse struct {
	OperationID uint64  `json:"operation_id"`
	OperatorID  string  `json:"operator_id"`
	VehicleID   string  `json:"vehicle_id"`
	MineralType string  `json:"mineral_type"`
	WeightTons  float64 `json:"weight_tons"`
	DistanceKm  float64 `json:"distance_km"`
}

// MineralStockResponse is one stock line in the warehouse inventory.
type MineralStockResponse struct {
	MineralType string  `json:"mineral_type"`
	Tons        float64 `json:"tons"`
}

// InventoryResponse is the body of GET /api/v1/warehouse/inventory.
type InventoryResponse struct {
	Stocks    []MineralStockResponse `json:"stocks"`
	TotalTons float64                `json:"total_tons"`
}

// ErrorResponse is the uniform error body for every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
