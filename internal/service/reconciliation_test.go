package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nandi-devi/tms-app/internal/domain/invoice"
	"github.com/nandi-devi/tms-app/internal/domain/payment"
	"github.com/nandi-devi/tms-app/internal/domain/truckhiringnote"
	"github.com/nandi-devi/tms-app/internal/testutil"
	"github.com/nandi-devi/tms-app/internal/types"
)

type ReconciliationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ReconciliationService
}

func TestReconciliationService(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceSuite))
}

func (s *ReconciliationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewReconciliationService(newServiceParams(&s.BaseServiceTestSuite))
}

func (s *ReconciliationServiceSuite) createInvoice(grandTotal int64) *invoice.Invoice {
	inv := &invoice.Invoice{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		Number:          1,
		Date:            s.GetNow(),
		CustomerID:      "cust_1",
		LorryReceiptIDs: []string{"lr_1"},
		GrandTotal:      decimal.NewFromInt(grandTotal),
		Status:          types.PaymentStatusUnpaid,
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), inv))
	return inv
}

func (s *ReconciliationServiceSuite) createTHN(freight int64) *truckhiringnote.TruckHiringNote {
	thn := &truckhiringnote.TruckHiringNote{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TRUCK_HIRING_NOTE),
		Number:        1,
		Date:          s.GetNow(),
		TruckOwner:    "Sharma Transport",
		TruckNumber:   "MH12AB1234",
		FreightAmount: decimal.NewFromInt(freight),
		PaidAmount:    decimal.Zero,
		BalanceAmount: decimal.NewFromInt(freight),
		Status:        types.PaymentStatusUnpaid,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().TruckHiringNoteRepo.Create(s.GetContext(), thn))
	return thn
}

func (s *ReconciliationServiceSuite) addPayment(targetType types.PaymentTargetType, targetID string, amount int64) *payment.Payment {
	p := &payment.Payment{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		TargetType: targetType,
		TargetID:   targetID,
		Amount:     decimal.NewFromInt(amount),
		Date:       time.Now().UTC(),
		Mode:       types.PaymentModeCash,
		BaseModel:  types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PaymentRepo.Create(s.GetContext(), p))
	return p
}

func (s *ReconciliationServiceSuite) TestInvoiceStatusFollowsPayments() {
	inv := s.createInvoice(1000)

	p1 := s.addPayment(types.PaymentTargetTypeInvoice, inv.ID, 400)
	s.NoError(s.service.ReconcileInvoice(s.GetContext(), inv.ID))
	got, _ := s.GetStores().InvoiceRepo.Get(s.GetContext(), inv.ID)
	s.Equal(types.PaymentStatusPartiallyPaid, got.Status)

	p2 := s.addPayment(types.PaymentTargetTypeInvoice, inv.ID, 600)
	s.NoError(s.service.ReconcileInvoice(s.GetContext(), inv.ID))
	got, _ = s.GetStores().InvoiceRepo.Get(s.GetContext(), inv.ID)
	s.Equal(types.PaymentStatusPaid, got.Status)

	// Removing a payment moves the status back
	s.NoError(s.GetStores().PaymentRepo.Delete(s.GetContext(), p2.ID))
	s.NoError(s.service.ReconcileInvoice(s.GetContext(), inv.ID))
	got, _ = s.GetStores().InvoiceRepo.Get(s.GetContext(), inv.ID)
	s.Equal(types.PaymentStatusPartiallyPaid, got.Status)

	s.NoError(s.GetStores().PaymentRepo.Delete(s.GetContext(), p1.ID))
	s.NoError(s.service.ReconcileInvoice(s.GetContext(), inv.ID))
	got, _ = s.GetStores().InvoiceRepo.Get(s.GetContext(), inv.ID)
	s.Equal(types.PaymentStatusUnpaid, got.Status)
}

func (s *ReconciliationServiceSuite) TestReconcileIsIdempotent() {
	inv := s.createInvoice(1000)
	s.addPayment(types.PaymentTargetTypeInvoice, inv.ID, 1000)

	for i := 0; i < 3; i++ {
		s.NoError(s.service.ReconcileInvoice(s.GetContext(), inv.ID))
		got, _ := s.GetStores().InvoiceRepo.Get(s.GetContext(), inv.ID)
		s.Equal(types.PaymentStatusPaid, got.Status)
	}
}

func (s *ReconciliationServiceSuite) TestOverpaymentClassifiesAsPaid() {
	inv := s.createInvoice(1000)
	s.addPayment(types.PaymentTargetTypeInvoice, inv.ID, 1500)

	s.NoError(s.service.ReconcileInvoice(s.GetContext(), inv.ID))
	got, _ := s.GetStores().InvoiceRepo.Get(s.GetContext(), inv.ID)
	s.Equal(types.PaymentStatusPaid, got.Status)
}

func (s *ReconciliationServiceSuite) TestTruckHiringNoteBalanceArithmetic() {
	thn := s.createTHN(5000)

	s.addPayment(types.PaymentTargetTypeTruckHiringNote, thn.ID, 2000)
	s.NoError(s.service.ReconcileTruckHiringNote(s.GetContext(), thn.ID))
	got, _ := s.GetStores().TruckHiringNoteRepo.Get(s.GetContext(), thn.ID)
	s.True(got.PaidAmount.Equal(decimal.NewFromInt(2000)))
	s.True(got.BalanceAmount.Equal(decimal.NewFromInt(3000)))
	s.Equal(types.PaymentStatusPartiallyPaid, got.Status)

	// Overpayment drives the balance negative but the note stays PAID
	s.addPayment(types.PaymentTargetTypeTruckHiringNote, thn.ID, 3500)
	s.NoError(s.service.ReconcileTruckHiringNote(s.GetContext(), thn.ID))
	got, _ = s.GetStores().TruckHiringNoteRepo.Get(s.GetContext(), thn.ID)
	s.True(got.PaidAmount.Equal(decimal.NewFromInt(5500)))
	s.True(got.BalanceAmount.Equal(decimal.NewFromInt(-500)))
	s.Equal(types.PaymentStatusPaid, got.Status)
}

func (s *ReconciliationServiceSuite) TestMissingTargetIsANoOp() {
	s.NoError(s.service.ReconcileInvoice(s.GetContext(), "inv_missing"))
	s.NoError(s.service.ReconcileTruckHiringNote(s.GetContext(), "thn_missing"))
}

func (s *ReconciliationServiceSuite) TestReconcileTargetDispatch() {
	inv := s.createInvoice(100)
	s.addPayment(types.PaymentTargetTypeInvoice, inv.ID, 100)

	s.NoError(s.service.ReconcileTarget(s.GetContext(), types.PaymentTargetTypeInvoice, inv.ID))
	got, _ := s.GetStores().InvoiceRepo.Get(s.GetContext(), inv.ID)
	s.Equal(types.PaymentStatusPaid, got.Status)

	err := s.service.ReconcileTarget(s.GetContext(), "WALLET", "w_1")
	s.Error(err)
}
