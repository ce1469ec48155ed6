package service

import (
	"github.com/nandi-devi/tms-app/internal/config"
	"github.com/nandi-devi/tms-app/internal/domain/customer"
	"github.com/nandi-devi/tms-app/internal/domain/invoice"
	"github.com/nandi-devi/tms-app/internal/domain/lorryreceipt"
	"github.com/nandi-devi/tms-app/internal/domain/numbering"
	"github.com/nandi-devi/tms-app/internal/domain/payment"
	"github.com/nandi-devi/tms-app/internal/domain/truckhiringnote"
	"github.com/nandi-devi/tms-app/internal/domain/vehicle"
	"github.com/nandi-devi/tms-app/internal/logger"
	"github.com/nandi-devi/tms-app/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	// Repositories
	CustomerRepo        customer.Repository
	VehicleRepo         vehicle.Repository
	LorryReceiptRepo    lorryreceipt.Repository
	InvoiceRepo         invoice.Repository
	TruckHiringNoteRepo truckhiringnote.Repository
	PaymentRepo         payment.Repository
	NumberingRepo       numbering.Repository
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	customerRepo customer.Repository,
	vehicleRepo vehicle.Repository,
	lorryReceiptRepo lorryreceipt.Repository,
	invoiceRepo invoice.Repository,
	truckHiringNoteRepo truckhiringnote.Repository,
	paymentRepo payment.Repository,
	numberingRepo numbering.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:              logger,
		Config:              config,
		DB:                  db,
		CustomerRepo:        customerRepo,
		VehicleRepo:         vehicleRepo,
		LorryReceiptRepo:    lorryReceiptRepo,
		InvoiceRepo:         invoiceRepo,
		TruckHiringNoteRepo: truckHiringNoteRepo,
		PaymentRepo:         paymentRepo,
		NumberingRepo:       numberingRepo,
	}
}
