package vehicle

import (
	"github.com/shopspring/decimal"

	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// Vehicle represents a truck owned or operated by the business
type Vehicle struct {
	// Unique identifier for the vehicle
	ID string `db:"id" json:"id"`
	// RTO registration number, e.g. MH12AB1234
	RegistrationNumber string `db:"registration_number" json:"registration_number"`
	// Vehicle body type, e.g. open, container, trailer
	VehicleType string `db:"vehicle_type" json:"vehicle_type,omitempty"`
	// Rated capacity in tonnes
	CapacityTonnes decimal.Decimal `db:"capacity_tonnes" json:"capacity_tonnes"`

	types.BaseModel
}

// Validate validates the vehicle
func (v *Vehicle) Validate() error {
	if v.RegistrationNumber == "" {
		return ierr.NewError("registration number is required").
			WithHint("Vehicle registration number cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if v.CapacityTonnes.IsNegative() {
		return ierr.NewError("invalid capacity").
			WithHint("Vehicle capacity cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
