package service

import (
	"context"
	"time"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	"github.com/nandi-devi/tms-app/internal/domain/customer"
	"github.com/nandi-devi/tms-app/internal/types"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error)
	UpdateCustomer(ctx context.Context, id string, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context, filter *types.CustomerFilter) (*dto.ListCustomersResponse, error)
}

type customerService struct {
	ServiceParams
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{
		ServiceParams: params,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	c := req.ToCustomer(ctx)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.CustomerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{Customer: c}, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{Customer: c}, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyCustomerUpdate(c, req)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.UpdatedAt = time.Now().UTC()
	c.UpdatedBy = types.GetUserID(ctx)
	if err := s.CustomerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{Customer: c}, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.CustomerRepo.Delete(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context, filter *types.CustomerFilter) (*dto.ListCustomersResponse, error) {
	if filter == nil {
		filter = &types.CustomerFilter{QueryFilter: &types.QueryFilter{}}
	}

	customers, err := s.CustomerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.CustomerRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, &dto.CustomerResponse{Customer: c})
	}

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func applyCustomerUpdate(c *customer.Customer, req *dto.UpdateCustomerRequest) {
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.City != nil {
		c.City = *req.City
	}
	if req.State != nil {
		c.State = *req.State
	}
	if req.GSTIN != nil {
		c.GSTIN = *req.GSTIN
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
}
