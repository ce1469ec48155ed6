package dto

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nandi-devi/tms-app/internal/domain/vehicle"
	"github.com/nandi-devi/tms-app/internal/types"
)

type CreateVehicleRequest struct {
	RegistrationNumber string          `json:"registration_number" binding:"required"`
	VehicleType        string          `json:"vehicle_type"`
	CapacityTonnes     decimal.Decimal `json:"capacity_tonnes"`
}

func (r *CreateVehicleRequest) ToVehicle(ctx context.Context) *vehicle.Vehicle {
	return &vehicle.Vehicle{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_VEHICLE),
		RegistrationNumber: r.RegistrationNumber,
		VehicleType:        r.VehicleType,
		CapacityTonnes:     r.CapacityTonnes,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}
}

type UpdateVehicleRequest struct {
	RegistrationNumber *string          `json:"registration_number"`
	VehicleType        *string          `json:"vehicle_type"`
	CapacityTonnes     *decimal.Decimal `json:"capacity_tonnes"`
}

type VehicleResponse struct {
	*vehicle.Vehicle
}

// ListVehiclesResponse represents a paginated list of vehicles
type ListVehiclesResponse = types.ListResponse[*VehicleResponse]
