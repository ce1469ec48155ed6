package service

import (
	"context"
	"time"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	"github.com/nandi-devi/tms-app/internal/domain/vehicle"
	"github.com/nandi-devi/tms-app/internal/types"
)

type VehicleService interface {
	CreateVehicle(ctx context.Context, req *dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	GetVehicle(ctx context.Context, id string) (*dto.VehicleResponse, error)
	UpdateVehicle(ctx context.Context, id string, req *dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, id string) error
	ListVehicles(ctx context.Context, filter *types.VehicleFilter) (*dto.ListVehiclesResponse, error)
}

type vehicleService struct {
	ServiceParams
}

func NewVehicleService(params ServiceParams) VehicleService {
	return &vehicleService{
		ServiceParams: params,
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req *dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	v := req.ToVehicle(ctx)
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if err := s.VehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return &dto.VehicleResponse{Vehicle: v}, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id string) (*dto.VehicleResponse, error) {
	v, err := s.VehicleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.VehicleResponse{Vehicle: v}, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id string, req *dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	v, err := s.VehicleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyVehicleUpdate(v, req)
	if err := v.Validate(); err != nil {
		return nil, err
	}

	v.UpdatedAt = time.Now().UTC()
	v.UpdatedBy = types.GetUserID(ctx)
	if err := s.VehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	return &dto.VehicleResponse{Vehicle: v}, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id string) error {
	return s.VehicleRepo.Delete(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context, filter *types.VehicleFilter) (*dto.ListVehiclesResponse, error) {
	if filter == nil {
		filter = &types.VehicleFilter{QueryFilter: &types.QueryFilter{}}
	}

	vehicles, err := s.VehicleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.VehicleRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		items = append(items, &dto.VehicleResponse{Vehicle: v})
	}

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func applyVehicleUpdate(v *vehicle.Vehicle, req *dto.UpdateVehicleRequest) {
	if req.RegistrationNumber != nil {
		v.RegistrationNumber = *req.RegistrationNumber
	}
	if req.VehicleType != nil {
		v.VehicleType = *req.VehicleType
	}
	if req.CapacityTonnes != nil {
		v.CapacityTonnes = *req.CapacityTonnes
	}
}
