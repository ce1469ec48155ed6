package repository

import (
	"github.com/nandi-devi/tms-app/internal/cache"
	"github.com/nandi-devi/tms-app/internal/domain/customer"
	"github.com/nandi-devi/tms-app/internal/domain/invoice"
	"github.com/nandi-devi/tms-app/internal/domain/lorryreceipt"
	"github.com/nandi-devi/tms-app/internal/domain/numbering"
	"github.com/nandi-devi/tms-app/internal/domain/payment"
	"github.com/nandi-devi/tms-app/internal/domain/truckhiringnote"
	"github.com/nandi-devi/tms-app/internal/domain/vehicle"
	"github.com/nandi-devi/tms-app/internal/logger"
	"github.com/nandi-devi/tms-app/internal/postgres"
	postgresRepo "github.com/nandi-devi/tms-app/internal/repository/postgres"
)

func NewCustomerRepository(client postgres.IClient, logger *logger.Logger, cache cache.Cache) customer.Repository {
	return postgresRepo.NewCustomerRepository(client, logger, cache)
}

func NewVehicleRepository(client postgres.IClient, logger *logger.Logger, cache cache.Cache) vehicle.Repository {
	return postgresRepo.NewVehicleRepository(client, logger, cache)
}

func NewLorryReceiptRepository(client postgres.IClient, logger *logger.Logger) lorryreceipt.Repository {
	return postgresRepo.NewLorryReceiptRepository(client, logger)
}

func NewInvoiceRepository(client postgres.IClient, logger *logger.Logger) invoice.Repository {
	return postgresRepo.NewInvoiceRepository(client, logger)
}

func NewTruckHiringNoteRepository(client postgres.IClient, logger *logger.Logger) truckhiringnote.Repository {
	return postgresRepo.NewTruckHiringNoteRepository(client, logger)
}

func NewPaymentRepository(client postgres.IClient, logger *logger.Logger) payment.Repository {
	return postgresRepo.NewPaymentRepository(client, logger)
}

func NewNumberingRepository(client postgres.IClient, logger *logger.Logger) numbering.Repository {
	return postgresRepo.NewNumberingRepository(client, logger)
}
