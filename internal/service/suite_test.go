package service

import (
	"github.com/nandi-devi/tms-app/internal/testutil"
)

// newServiceParams builds ServiceParams backed by the suite's in-memory stores
func newServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:              s.GetLogger(),
		Config:              s.GetConfig(),
		DB:                  s.GetDB(),
		CustomerRepo:        stores.CustomerRepo,
		VehicleRepo:         stores.VehicleRepo,
		LorryReceiptRepo:    stores.LorryReceiptRepo,
		InvoiceRepo:         stores.InvoiceRepo,
		TruckHiringNoteRepo: stores.TruckHiringNoteRepo,
		PaymentRepo:         stores.PaymentRepo,
		NumberingRepo:       stores.NumberingRepo,
	}
}
