package customer

import (
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// Customer represents a consignor or consignee party
type Customer struct {
	// Unique identifier for the customer
	ID string `db:"id" json:"id"`
	// Trade name of the party
	Name string `db:"name" json:"name"`
	// Postal address used on printed documents
	Address string `db:"address" json:"address"`
	City    string `db:"city" json:"city"`
	State   string `db:"state" json:"state"`
	// GST identification number (optional for unregistered parties)
	GSTIN string `db:"gstin" json:"gstin,omitempty"`
	Phone string `db:"phone" json:"phone,omitempty"`
	Email string `db:"email" json:"email,omitempty"`

	types.BaseModel
}

// Validate validates the customer
func (c *Customer) Validate() error {
	if c.Name == "" {
		return ierr.NewError("customer name is required").
			WithHint("Customer name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	return nil
}
