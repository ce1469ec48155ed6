package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/nandi-devi/tms-app/internal/api/v1"
	"github.com/nandi-devi/tms-app/internal/rest/middleware"
)

type Handlers struct {
	Health          *v1.HealthHandler
	Customer        *v1.CustomerHandler
	Vehicle         *v1.VehicleHandler
	LorryReceipt    *v1.LorryReceiptHandler
	Invoice         *v1.InvoiceHandler
	TruckHiringNote *v1.TruckHiringNoteHandler
	Payment         *v1.PaymentHandler
	Numbering       *v1.NumberingHandler
	Backup          *v1.BackupHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	customers := router.Group("/customers")
	{
		customers.POST("", handlers.Customer.CreateCustomer)
		customers.GET("", handlers.Customer.ListCustomers)
		customers.GET("/:id", handlers.Customer.GetCustomer)
		customers.PUT("/:id", handlers.Customer.UpdateCustomer)
		customers.DELETE("/:id", handlers.Customer.DeleteCustomer)
	}

	vehicles := router.Group("/vehicles")
	{
		vehicles.POST("", handlers.Vehicle.CreateVehicle)
		vehicles.GET("", handlers.Vehicle.ListVehicles)
		vehicles.GET("/:id", handlers.Vehicle.GetVehicle)
		vehicles.PUT("/:id", handlers.Vehicle.UpdateVehicle)
		vehicles.DELETE("/:id", handlers.Vehicle.DeleteVehicle)
	}

	lorryReceipts := router.Group("/lorry-receipts")
	{
		lorryReceipts.POST("", handlers.LorryReceipt.CreateLorryReceipt)
		lorryReceipts.GET("", handlers.LorryReceipt.ListLorryReceipts)
		lorryReceipts.GET("/:id", handlers.LorryReceipt.GetLorryReceipt)
		lorryReceipts.PUT("/:id", handlers.LorryReceipt.UpdateLorryReceipt)
		lorryReceipts.PUT("/:id/status", handlers.LorryReceipt.UpdateLorryReceiptStatus)
		lorryReceipts.DELETE("/:id", handlers.LorryReceipt.DeleteLorryReceipt)
	}

	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.PUT("/:id", handlers.Invoice.UpdateInvoice)
		invoices.DELETE("/:id", handlers.Invoice.DeleteInvoice)
	}

	truckHiringNotes := router.Group("/truck-hiring-notes")
	{
		truckHiringNotes.POST("", handlers.TruckHiringNote.CreateTruckHiringNote)
		truckHiringNotes.GET("", handlers.TruckHiringNote.ListTruckHiringNotes)
		truckHiringNotes.GET("/:id", handlers.TruckHiringNote.GetTruckHiringNote)
		truckHiringNotes.PUT("/:id", handlers.TruckHiringNote.UpdateTruckHiringNote)
		truckHiringNotes.DELETE("/:id", handlers.TruckHiringNote.DeleteTruckHiringNote)
	}

	payments := router.Group("/payments")
	{
		payments.POST("", handlers.Payment.CreatePayment)
		payments.GET("", handlers.Payment.ListPayments)
		payments.GET("/:id", handlers.Payment.GetPayment)
		payments.PUT("/:id", handlers.Payment.UpdatePayment)
		payments.DELETE("/:id", handlers.Payment.DeletePayment)
	}

	settings := router.Group("/settings/numbering")
	{
		settings.PUT("", handlers.Numbering.UpsertRange)
		settings.GET("", handlers.Numbering.ListRanges)
		settings.GET("/counters", handlers.Numbering.ListCounters)
		settings.GET("/:document_type", handlers.Numbering.GetRange)
	}

	backup := router.Group("/backup")
	{
		backup.GET("/export", handlers.Backup.Export)
		backup.POST("/restore", handlers.Backup.Restore)
		backup.POST("/reset", handlers.Backup.Reset)
	}
}
