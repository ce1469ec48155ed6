package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	"github.com/nandi-devi/tms-app/internal/domain/customer"
	"github.com/nandi-devi/tms-app/internal/domain/lorryreceipt"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/testutil"
	"github.com/nandi-devi/tms-app/internal/types"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service        InvoiceService
	paymentService PaymentService

	customer *customer.Customer
	lr1      *lorryreceipt.LorryReceipt
	lr2      *lorryreceipt.LorryReceipt
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newServiceParams(&s.BaseServiceTestSuite)

	numbering := NewNumberingService(params)
	lifecycle := NewLifecycleService(params)
	reconciliation := NewReconciliationService(params)
	s.service = NewInvoiceService(params, numbering, lifecycle, reconciliation)
	s.paymentService = NewPaymentService(params, reconciliation)

	s.customer = &customer.Customer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:      "Patel Industries",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), s.customer))

	s.lr1 = s.createLR(1)
	s.lr2 = s.createLR(2)
}

func (s *InvoiceServiceSuite) createLR(number int64) *lorryreceipt.LorryReceipt {
	lr := &lorryreceipt.LorryReceipt{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LORRY_RECEIPT),
		Number:        number,
		Date:          s.GetNow(),
		ConsignorID:   s.customer.ID,
		ConsigneeID:   s.customer.ID,
		VehicleID:     "veh_1",
		FreightCharge: decimal.NewFromInt(5000),
		FreightType:   types.FreightTypeToBeBilled,
		Status:        types.LorryReceiptStatusCreated,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().LorryReceiptRepo.Create(s.GetContext(), lr))
	return lr
}

func (s *InvoiceServiceSuite) createInvoice(lrIDs ...string) *dto.InvoiceResponse {
	resp, err := s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		Date:            s.GetNow(),
		CustomerID:      s.customer.ID,
		LorryReceiptIDs: lrIDs,
		TaxableAmount:   decimal.NewFromInt(10000),
		CGST:            decimal.NewFromInt(600),
		SGST:            decimal.NewFromInt(600),
		GrandTotal:      decimal.NewFromInt(11200),
	})
	s.NoError(err)
	return resp
}

func (s *InvoiceServiceSuite) TestCreateInvoiceAttachesLorryReceipts() {
	resp := s.createInvoice(s.lr1.ID, s.lr2.ID)

	s.Equal(int64(1), resp.Number)
	s.Equal(types.PaymentStatusUnpaid, resp.Status)
	s.Len(resp.LorryReceipts, 2)

	for _, id := range []string{s.lr1.ID, s.lr2.ID} {
		got, _ := s.GetStores().LorryReceiptRepo.Get(s.GetContext(), id)
		s.Equal(types.LorryReceiptStatusInvoiced, got.Status)
	}
}

func (s *InvoiceServiceSuite) TestCreateInvoiceRefusesAlreadyBilledLR() {
	s.createInvoice(s.lr1.ID)

	_, err := s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		Date:            s.GetNow(),
		CustomerID:      s.customer.ID,
		LorryReceiptIDs: []string{s.lr1.ID},
		GrandTotal:      decimal.NewFromInt(100),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestCreateInvoiceUnknownCustomer() {
	_, err := s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		Date:            s.GetNow(),
		CustomerID:      "cust_ghost",
		LorryReceiptIDs: []string{s.lr1.ID},
		GrandTotal:      decimal.NewFromInt(100),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestUpdateInvoiceSyncsLorryReceiptSet() {
	resp := s.createInvoice(s.lr1.ID)

	_, err := s.service.UpdateInvoice(s.GetContext(), resp.ID, &dto.UpdateInvoiceRequest{
		LorryReceiptIDs: []string{s.lr2.ID},
	})
	s.NoError(err)

	got, _ := s.GetStores().LorryReceiptRepo.Get(s.GetContext(), s.lr1.ID)
	s.Equal(types.LorryReceiptStatusCreated, got.Status)
	got, _ = s.GetStores().LorryReceiptRepo.Get(s.GetContext(), s.lr2.ID)
	s.Equal(types.LorryReceiptStatusInvoiced, got.Status)
}

func (s *InvoiceServiceSuite) TestUpdateInvoiceGrandTotalReconcilesStatus() {
	resp := s.createInvoice(s.lr1.ID)

	_, err := s.paymentService.CreatePayment(s.GetContext(), &dto.CreatePaymentRequest{
		TargetType: types.PaymentTargetTypeInvoice,
		TargetID:   resp.ID,
		Amount:     decimal.NewFromInt(11200),
		Date:       s.GetNow(),
		Mode:       types.PaymentModeBankTransfer,
	})
	s.NoError(err)

	got, _ := s.GetStores().InvoiceRepo.Get(s.GetContext(), resp.ID)
	s.Equal(types.PaymentStatusPaid, got.Status)

	// Raising the grand total reopens the invoice
	newTotal := decimal.NewFromInt(20000)
	updated, err := s.service.UpdateInvoice(s.GetContext(), resp.ID, &dto.UpdateInvoiceRequest{
		GrandTotal: &newTotal,
	})
	s.NoError(err)
	s.Equal(types.PaymentStatusPartiallyPaid, updated.Status)
}

func (s *InvoiceServiceSuite) TestDeleteInvoiceRefusedWithPayments() {
	resp := s.createInvoice(s.lr1.ID)

	_, err := s.paymentService.CreatePayment(s.GetContext(), &dto.CreatePaymentRequest{
		TargetType: types.PaymentTargetTypeInvoice,
		TargetID:   resp.ID,
		Amount:     decimal.NewFromInt(500),
		Date:       s.GetNow(),
		Mode:       types.PaymentModeCash,
	})
	s.NoError(err)

	err = s.service.DeleteInvoice(s.GetContext(), resp.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestDeleteInvoiceDetachesLorryReceipts() {
	resp := s.createInvoice(s.lr1.ID, s.lr2.ID)

	s.NoError(s.service.DeleteInvoice(s.GetContext(), resp.ID))

	_, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), resp.ID)
	s.True(ierr.IsNotFound(err))

	for _, id := range []string{s.lr1.ID, s.lr2.ID} {
		got, _ := s.GetStores().LorryReceiptRepo.Get(s.GetContext(), id)
		s.Equal(types.LorryReceiptStatusCreated, got.Status)
	}
}

func (s *InvoiceServiceSuite) TestInvoiceNumbersAreSequential() {
	first := s.createInvoice(s.lr1.ID)
	second := s.createInvoice(s.lr2.ID)

	s.Equal(int64(1), first.Number)
	s.Equal(int64(2), second.Number)
}
