package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/nandi-devi/tms-app/internal/api"
	v1 "github.com/nandi-devi/tms-app/internal/api/v1"
	"github.com/nandi-devi/tms-app/internal/cache"
	"github.com/nandi-devi/tms-app/internal/config"
	"github.com/nandi-devi/tms-app/internal/logger"
	"github.com/nandi-devi/tms-app/internal/postgres"
	"github.com/nandi-devi/tms-app/internal/repository"
	"github.com/nandi-devi/tms-app/internal/sentry"
	"github.com/nandi-devi/tms-app/internal/service"
	"github.com/nandi-devi/tms-app/internal/types"
)

// @title TMS API
// @version 1.0
// @description Transport back-office API: lorry receipts, invoices, truck hiring notes, payments and document numbering
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Cache
			cache.NewInMemoryCache,

			// Postgres
			postgres.NewDB,
			postgres.NewClient,

			// Repositories
			repository.NewCustomerRepository,
			repository.NewVehicleRepository,
			repository.NewLorryReceiptRepository,
			repository.NewInvoiceRepository,
			repository.NewTruckHiringNoteRepository,
			repository.NewPaymentRepository,
			repository.NewNumberingRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			// Core services
			service.NewNumberingService,
			service.NewReconciliationService,
			service.NewLifecycleService,

			// Business services
			service.NewCustomerService,
			service.NewVehicleService,
			service.NewLorryReceiptService,
			service.NewInvoiceService,
			service.NewTruckHiringNoteService,
			service.NewPaymentService,
			service.NewBackupService,
		),
	)

	// API layer
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	customerService service.CustomerService,
	vehicleService service.VehicleService,
	lorryReceiptService service.LorryReceiptService,
	invoiceService service.InvoiceService,
	truckHiringNoteService service.TruckHiringNoteService,
	paymentService service.PaymentService,
	numberingService service.NumberingService,
	backupService service.BackupService,
) api.Handlers {
	return api.Handlers{
		Health:          v1.NewHealthHandler(logger),
		Customer:        v1.NewCustomerHandler(customerService, logger),
		Vehicle:         v1.NewVehicleHandler(vehicleService, logger),
		LorryReceipt:    v1.NewLorryReceiptHandler(lorryReceiptService, logger),
		Invoice:         v1.NewInvoiceHandler(invoiceService, logger),
		TruckHiringNote: v1.NewTruckHiringNoteHandler(truckHiringNoteService, logger),
		Payment:         v1.NewPaymentHandler(paymentService, logger),
		Numbering:       v1.NewNumberingHandler(numberingService, logger),
		Backup:          v1.NewBackupHandler(backupService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("starting API server on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
