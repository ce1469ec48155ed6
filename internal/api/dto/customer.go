package dto

import (
	"context"

	"github.com/nandi-devi/tms-app/internal/domain/customer"
	"github.com/nandi-devi/tms-app/internal/types"
)

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	GSTIN   string `json:"gstin"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
}

func (r *CreateCustomerRequest) ToCustomer(ctx context.Context) *customer.Customer {
	return &customer.Customer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:      r.Name,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		GSTIN:     r.GSTIN,
		Phone:     r.Phone,
		Email:     r.Email,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	GSTIN   *string `json:"gstin"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

type CustomerResponse struct {
	*customer.Customer
}

// ListCustomersResponse represents a paginated list of customers
type ListCustomersResponse = types.ListResponse[*CustomerResponse]
