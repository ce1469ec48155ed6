package service

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	"github.com/nandi-devi/tms-app/internal/domain/invoice"
	"github.com/nandi-devi/tms-app/internal/domain/truckhiringnote"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/testutil"
	"github.com/nandi-devi/tms-app/internal/types"
)

type PaymentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PaymentService

	invoice *invoice.Invoice
	thn     *truckhiringnote.TruckHiringNote
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newServiceParams(&s.BaseServiceTestSuite)
	s.service = NewPaymentService(params, NewReconciliationService(params))

	s.invoice = &invoice.Invoice{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		Number:          1,
		Date:            s.GetNow(),
		CustomerID:      "cust_1",
		LorryReceiptIDs: []string{"lr_1"},
		GrandTotal:      decimal.NewFromInt(1000),
		Status:          types.PaymentStatusUnpaid,
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), s.invoice))

	s.thn = &truckhiringnote.TruckHiringNote{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TRUCK_HIRING_NOTE),
		Number:        1,
		Date:          s.GetNow(),
		TruckOwner:    "Sharma Transport",
		TruckNumber:   "MH12AB1234",
		FreightAmount: decimal.NewFromInt(5000),
		PaidAmount:    decimal.Zero,
		BalanceAmount: decimal.NewFromInt(5000),
		Status:        types.PaymentStatusUnpaid,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().TruckHiringNoteRepo.Create(s.GetContext(), s.thn))
}

func (s *PaymentServiceSuite) createPayment(targetType types.PaymentTargetType, targetID string, amount int64) *dto.PaymentResponse {
	resp, err := s.service.CreatePayment(s.GetContext(), &dto.CreatePaymentRequest{
		TargetType: targetType,
		TargetID:   targetID,
		Amount:     decimal.NewFromInt(amount),
		Date:       s.GetNow(),
		Mode:       types.PaymentModeCash,
	})
	s.NoError(err)
	return resp
}

func (s *PaymentServiceSuite) TestCreatePaymentReconcilesInvoice() {
	s.createPayment(types.PaymentTargetTypeInvoice, s.invoice.ID, 400)

	got, _ := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.invoice.ID)
	s.Equal(types.PaymentStatusPartiallyPaid, got.Status)

	s.createPayment(types.PaymentTargetTypeInvoice, s.invoice.ID, 600)
	got, _ = s.GetStores().InvoiceRepo.Get(s.GetContext(), s.invoice.ID)
	s.Equal(types.PaymentStatusPaid, got.Status)
}

func (s *PaymentServiceSuite) TestCreatePaymentReconcilesTruckHiringNote() {
	s.createPayment(types.PaymentTargetTypeTruckHiringNote, s.thn.ID, 2000)

	got, _ := s.GetStores().TruckHiringNoteRepo.Get(s.GetContext(), s.thn.ID)
	s.Equal(types.PaymentStatusPartiallyPaid, got.Status)
	s.True(got.PaidAmount.Equal(decimal.NewFromInt(2000)))
	s.True(got.BalanceAmount.Equal(decimal.NewFromInt(3000)))
}

func (s *PaymentServiceSuite) TestCreatePaymentUnknownTarget() {
	_, err := s.service.CreatePayment(s.GetContext(), &dto.CreatePaymentRequest{
		TargetType: types.PaymentTargetTypeInvoice,
		TargetID:   "inv_ghost",
		Amount:     decimal.NewFromInt(100),
		Date:       s.GetNow(),
		Mode:       types.PaymentModeCash,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentServiceSuite) TestCreatePaymentInvalidTargetType() {
	_, err := s.service.CreatePayment(s.GetContext(), &dto.CreatePaymentRequest{
		TargetType: "WALLET",
		TargetID:   "w_1",
		Amount:     decimal.NewFromInt(100),
		Date:       s.GetNow(),
		Mode:       types.PaymentModeCash,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PaymentServiceSuite) TestCreatePaymentRejectsNonPositiveAmount() {
	_, err := s.service.CreatePayment(s.GetContext(), &dto.CreatePaymentRequest{
		TargetType: types.PaymentTargetTypeInvoice,
		TargetID:   s.invoice.ID,
		Amount:     decimal.Zero,
		Date:       s.GetNow(),
		Mode:       types.PaymentModeCash,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PaymentServiceSuite) TestReferenceNumberGeneratedWhenEmpty() {
	resp := s.createPayment(types.PaymentTargetTypeInvoice, s.invoice.ID, 100)
	s.NotEmpty(resp.ReferenceNumber)
	s.True(strings.HasPrefix(resp.ReferenceNumber, "RCPT_"))
}

func (s *PaymentServiceSuite) TestReferenceNumberKeptWhenProvided() {
	resp, err := s.service.CreatePayment(s.GetContext(), &dto.CreatePaymentRequest{
		TargetType:      types.PaymentTargetTypeInvoice,
		TargetID:        s.invoice.ID,
		Amount:          decimal.NewFromInt(100),
		Date:            s.GetNow(),
		Mode:            types.PaymentModeBankTransfer,
		ReferenceNumber: "UTR-2024-0042",
	})
	s.NoError(err)
	s.Equal("UTR-2024-0042", resp.ReferenceNumber)
}

func (s *PaymentServiceSuite) TestUpdatePaymentReReconciles() {
	p := s.createPayment(types.PaymentTargetTypeInvoice, s.invoice.ID, 1000)

	got, _ := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.invoice.ID)
	s.Equal(types.PaymentStatusPaid, got.Status)

	smaller := decimal.NewFromInt(300)
	_, err := s.service.UpdatePayment(s.GetContext(), p.ID, &dto.UpdatePaymentRequest{
		Amount: &smaller,
	})
	s.NoError(err)

	got, _ = s.GetStores().InvoiceRepo.Get(s.GetContext(), s.invoice.ID)
	s.Equal(types.PaymentStatusPartiallyPaid, got.Status)
}

func (s *PaymentServiceSuite) TestDeletePaymentReReconciles() {
	p := s.createPayment(types.PaymentTargetTypeInvoice, s.invoice.ID, 1000)

	s.NoError(s.service.DeletePayment(s.GetContext(), p.ID))

	got, _ := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.invoice.ID)
	s.Equal(types.PaymentStatusUnpaid, got.Status)

	_, err := s.service.GetPayment(s.GetContext(), p.ID)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentServiceSuite) TestListPaymentsByTarget() {
	s.createPayment(types.PaymentTargetTypeInvoice, s.invoice.ID, 100)
	s.createPayment(types.PaymentTargetTypeInvoice, s.invoice.ID, 200)
	s.createPayment(types.PaymentTargetTypeTruckHiringNote, s.thn.ID, 300)

	targetType := types.PaymentTargetTypeInvoice
	resp, err := s.service.ListPayments(s.GetContext(), &types.PaymentFilter{
		QueryFilter: &types.QueryFilter{},
		TargetType:  &targetType,
		TargetID:    &s.invoice.ID,
	})
	s.NoError(err)
	s.Equal(2, len(resp.Items))
	s.Equal(2, resp.Pagination.Total)
}
