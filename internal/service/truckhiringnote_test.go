package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/testutil"
	"github.com/nandi-devi/tms-app/internal/types"
)

type TruckHiringNoteServiceSuite struct {
	testutil.BaseServiceTestSuite
	service        TruckHiringNoteService
	paymentService PaymentService
}

func TestTruckHiringNoteService(t *testing.T) {
	suite.Run(t, new(TruckHiringNoteServiceSuite))
}

func (s *TruckHiringNoteServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newServiceParams(&s.BaseServiceTestSuite)

	reconciliation := NewReconciliationService(params)
	s.service = NewTruckHiringNoteService(params, NewNumberingService(params), reconciliation)
	s.paymentService = NewPaymentService(params, reconciliation)
}

func (s *TruckHiringNoteServiceSuite) createTHN(freight int64) *dto.TruckHiringNoteResponse {
	resp, err := s.service.CreateTruckHiringNote(s.GetContext(), &dto.CreateTruckHiringNoteRequest{
		Date:          s.GetNow(),
		TruckOwner:    "Sharma Transport",
		TruckNumber:   "MH14XY9876",
		Origin:        "Mumbai",
		Destination:   "Nagpur",
		FreightAmount: decimal.NewFromInt(freight),
	})
	s.NoError(err)
	return resp
}

func (s *TruckHiringNoteServiceSuite) addPayment(targetID string, amount int64) *dto.PaymentResponse {
	resp, err := s.paymentService.CreatePayment(s.GetContext(), &dto.CreatePaymentRequest{
		TargetType: types.PaymentTargetTypeTruckHiringNote,
		TargetID:   targetID,
		Amount:     decimal.NewFromInt(amount),
		Date:       s.GetNow(),
		Mode:       types.PaymentModeUPI,
	})
	s.NoError(err)
	return resp
}

func (s *TruckHiringNoteServiceSuite) TestCreateInitializesFinancials() {
	resp := s.createTHN(5000)

	s.Equal(int64(1), resp.Number)
	s.Equal(types.PaymentStatusUnpaid, resp.Status)
	s.True(resp.PaidAmount.IsZero())
	s.True(resp.BalanceAmount.Equal(decimal.NewFromInt(5000)))
}

func (s *TruckHiringNoteServiceSuite) TestCreateNumbersAreSequential() {
	first := s.createTHN(1000)
	second := s.createTHN(2000)

	s.Equal(int64(1), first.Number)
	s.Equal(int64(2), second.Number)
}

func (s *TruckHiringNoteServiceSuite) TestFreightUpdateReconcilesSettlement() {
	resp := s.createTHN(5000)
	s.addPayment(resp.ID, 5000)

	got, _ := s.GetStores().TruckHiringNoteRepo.Get(s.GetContext(), resp.ID)
	s.Equal(types.PaymentStatusPaid, got.Status)

	// Raising the freight reopens the note
	freight := decimal.NewFromInt(8000)
	updated, err := s.service.UpdateTruckHiringNote(s.GetContext(), resp.ID, &dto.UpdateTruckHiringNoteRequest{
		FreightAmount: &freight,
	})
	s.NoError(err)
	s.Equal(types.PaymentStatusPartiallyPaid, updated.Status)
	s.True(updated.BalanceAmount.Equal(decimal.NewFromInt(3000)))
}

func (s *TruckHiringNoteServiceSuite) TestNonFreightUpdateLeavesSettlementAlone() {
	resp := s.createTHN(5000)
	s.addPayment(resp.ID, 2000)

	owner := "Verma Logistics"
	updated, err := s.service.UpdateTruckHiringNote(s.GetContext(), resp.ID, &dto.UpdateTruckHiringNoteRequest{
		TruckOwner: &owner,
	})
	s.NoError(err)
	s.Equal("Verma Logistics", updated.TruckOwner)
	s.Equal(types.PaymentStatusPartiallyPaid, updated.Status)
	s.True(updated.PaidAmount.Equal(decimal.NewFromInt(2000)))
}

func (s *TruckHiringNoteServiceSuite) TestDeleteRefusedWithPayments() {
	resp := s.createTHN(5000)
	s.addPayment(resp.ID, 1000)

	err := s.service.DeleteTruckHiringNote(s.GetContext(), resp.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *TruckHiringNoteServiceSuite) TestDeleteWithoutPayments() {
	resp := s.createTHN(5000)

	s.NoError(s.service.DeleteTruckHiringNote(s.GetContext(), resp.ID))
	_, err := s.service.GetTruckHiringNote(s.GetContext(), resp.ID)
	s.True(ierr.IsNotFound(err))
}

func (s *TruckHiringNoteServiceSuite) TestAdvanceIsNotCountedAsPayment() {
	advance := decimal.NewFromInt(2000)
	resp, err := s.service.CreateTruckHiringNote(s.GetContext(), &dto.CreateTruckHiringNoteRequest{
		Date:          s.GetNow(),
		TruckOwner:    "Sharma Transport",
		TruckNumber:   "MH14XY9876",
		FreightAmount: decimal.NewFromInt(5000),
		AdvanceAmount: advance,
	})
	s.NoError(err)

	// Only recorded payments move the settlement status
	s.Equal(types.PaymentStatusUnpaid, resp.Status)
	s.True(resp.PaidAmount.IsZero())
	s.True(resp.BalanceAmount.Equal(decimal.NewFromInt(5000)))
}

func (s *TruckHiringNoteServiceSuite) TestListTruckHiringNotes() {
	s.createTHN(1000)
	s.createTHN(2000)

	resp, err := s.service.ListTruckHiringNotes(s.GetContext(), nil)
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(2, resp.Pagination.Total)
}
