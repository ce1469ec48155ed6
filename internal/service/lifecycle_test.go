package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nandi-devi/tms-app/internal/domain/lorryreceipt"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/testutil"
	"github.com/nandi-devi/tms-app/internal/types"
)

type LifecycleServiceSuite struct {
	testutil.BaseServiceTestSuite
	service LifecycleService
}

func TestLifecycleService(t *testing.T) {
	suite.Run(t, new(LifecycleServiceSuite))
}

func (s *LifecycleServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewLifecycleService(newServiceParams(&s.BaseServiceTestSuite))
}

func (s *LifecycleServiceSuite) createLR(number int64, status types.LorryReceiptStatus) *lorryreceipt.LorryReceipt {
	lr := &lorryreceipt.LorryReceipt{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LORRY_RECEIPT),
		Number:        number,
		Date:          s.GetNow(),
		ConsignorID:   "cust_1",
		ConsigneeID:   "cust_2",
		VehicleID:     "veh_1",
		FreightCharge: decimal.NewFromInt(1000),
		FreightType:   types.FreightTypeToBeBilled,
		Status:        status,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().LorryReceiptRepo.Create(s.GetContext(), lr))
	return lr
}

func (s *LifecycleServiceSuite) TestAttachMovesToInvoiced() {
	lr1 := s.createLR(1, types.LorryReceiptStatusCreated)
	lr2 := s.createLR(2, types.LorryReceiptStatusDelivered)

	s.NoError(s.service.AttachLorryReceipts(s.GetContext(), []string{lr1.ID, lr2.ID}))

	for _, id := range []string{lr1.ID, lr2.ID} {
		got, _ := s.GetStores().LorryReceiptRepo.Get(s.GetContext(), id)
		s.Equal(types.LorryReceiptStatusInvoiced, got.Status)
	}
}

func (s *LifecycleServiceSuite) TestAttachRefusesAlreadyInvoiced() {
	lr1 := s.createLR(1, types.LorryReceiptStatusCreated)
	lr2 := s.createLR(2, types.LorryReceiptStatusInvoiced)

	err := s.service.AttachLorryReceipts(s.GetContext(), []string{lr1.ID, lr2.ID})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	// Nothing was transitioned
	got, _ := s.GetStores().LorryReceiptRepo.Get(s.GetContext(), lr1.ID)
	s.Equal(types.LorryReceiptStatusCreated, got.Status)
}

func (s *LifecycleServiceSuite) TestAttachRefusesMissingLR() {
	lr := s.createLR(1, types.LorryReceiptStatusCreated)

	err := s.service.AttachLorryReceipts(s.GetContext(), []string{lr.ID, "lr_ghost"})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *LifecycleServiceSuite) TestDetachRevertsToCreated() {
	lr := s.createLR(1, types.LorryReceiptStatusInvoiced)

	s.NoError(s.service.DetachLorryReceipts(s.GetContext(), []string{lr.ID}))
	got, _ := s.GetStores().LorryReceiptRepo.Get(s.GetContext(), lr.ID)
	s.Equal(types.LorryReceiptStatusCreated, got.Status)
}

func (s *LifecycleServiceSuite) TestSyncTransitionsOnlyTheDifference() {
	kept := s.createLR(1, types.LorryReceiptStatusInvoiced)
	removed := s.createLR(2, types.LorryReceiptStatusInvoiced)
	added := s.createLR(3, types.LorryReceiptStatusCreated)

	before := []string{kept.ID, removed.ID}
	after := []string{kept.ID, added.ID}
	s.NoError(s.service.SyncLorryReceipts(s.GetContext(), before, after))

	got, _ := s.GetStores().LorryReceiptRepo.Get(s.GetContext(), kept.ID)
	s.Equal(types.LorryReceiptStatusInvoiced, got.Status)
	got, _ = s.GetStores().LorryReceiptRepo.Get(s.GetContext(), removed.ID)
	s.Equal(types.LorryReceiptStatusCreated, got.Status)
	got, _ = s.GetStores().LorryReceiptRepo.Get(s.GetContext(), added.ID)
	s.Equal(types.LorryReceiptStatusInvoiced, got.Status)
}

func (s *LifecycleServiceSuite) TestEmptySetsAreNoOps() {
	s.NoError(s.service.AttachLorryReceipts(s.GetContext(), nil))
	s.NoError(s.service.DetachLorryReceipts(s.GetContext(), nil))
	s.NoError(s.service.SyncLorryReceipts(s.GetContext(), nil, nil))
}
