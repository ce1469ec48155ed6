package types

// InvoiceFilter represents the filter for listing invoices
type InvoiceFilter struct {
	*QueryFilter

	CustomerID *string        `form:"customer_id"`
	Status     *PaymentStatus `form:"status"`
}

// TruckHiringNoteFilter represents the filter for listing truck hiring notes
type TruckHiringNoteFilter struct {
	*QueryFilter

	Status *PaymentStatus `form:"status"`
}

// CustomerFilter represents the filter for listing customers
type CustomerFilter struct {
	*QueryFilter

	Name *string `form:"name"`
}

// VehicleFilter represents the filter for listing vehicles
type VehicleFilter struct {
	*QueryFilter

	RegistrationNumber *string `form:"registration_number"`
}
