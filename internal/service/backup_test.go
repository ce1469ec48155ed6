package service

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	"github.com/nandi-devi/tms-app/internal/domain/customer"
	"github.com/nandi-devi/tms-app/internal/domain/payment"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/testutil"
	"github.com/nandi-devi/tms-app/internal/types"
)

type BackupServiceSuite struct {
	testutil.BaseServiceTestSuite
	service          BackupService
	numberingService NumberingService
}

func TestBackupService(t *testing.T) {
	suite.Run(t, new(BackupServiceSuite))
}

func (s *BackupServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newServiceParams(&s.BaseServiceTestSuite)
	s.service = NewBackupService(params)
	s.numberingService = NewNumberingService(params)
}

func (s *BackupServiceSuite) seedData() {
	c := &customer.Customer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:      "Patel Industries",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), c))

	p := &payment.Payment{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		TargetType:      types.PaymentTargetTypeInvoice,
		TargetID:        "inv_1",
		Amount:          decimal.NewFromInt(500),
		Date:            s.GetNow(),
		Mode:            types.PaymentModeCash,
		ReferenceNumber: "RCPT_ABC",
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PaymentRepo.Create(s.GetContext(), p))

	// A configured range and a consumed legacy counter
	_, err := s.numberingService.UpsertRange(s.GetContext(), &dto.UpsertNumberingRangeRequest{
		DocumentType: types.DocumentTypeInvoice,
		StartNumber:  100,
		EndNumber:    200,
	})
	s.NoError(err)
	_, err = s.numberingService.AllocateNumber(s.GetContext(), types.DocumentTypeLorryReceipt)
	s.NoError(err)
}

func (s *BackupServiceSuite) TestExportRestoreRoundTrip() {
	s.seedData()

	data, err := s.service.Export(s.GetContext())
	s.NoError(err)
	s.Equal(dto.BackupVersion, data.Version)
	s.Len(data.Customers, 1)
	s.Len(data.Payments, 1)
	s.Len(data.NumberingRanges, 1)
	s.Len(data.SequenceCounters, 1)

	s.NoError(s.service.Reset(s.GetContext()))
	count, err := s.GetStores().CustomerRepo.Count(s.GetContext(), &types.CustomerFilter{QueryFilter: &types.QueryFilter{}})
	s.NoError(err)
	s.Equal(0, count)

	s.NoError(s.service.Restore(s.GetContext(), data))

	customers, err := s.GetStores().CustomerRepo.List(s.GetContext(), &types.CustomerFilter{QueryFilter: &types.QueryFilter{}})
	s.NoError(err)
	s.Len(customers, 1)
	s.Equal("Patel Industries", customers[0].Name)

	// Numbering state survives the round trip
	n, err := s.numberingService.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal(int64(100), n)
	n, err = s.numberingService.AllocateNumber(s.GetContext(), types.DocumentTypeLorryReceipt)
	s.NoError(err)
	s.Equal(int64(2), n)
}

func (s *BackupServiceSuite) TestRestoreReplacesExistingData() {
	s.seedData()
	data, err := s.service.Export(s.GetContext())
	s.NoError(err)

	extra := &customer.Customer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:      "Mehta Traders",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), extra))

	s.NoError(s.service.Restore(s.GetContext(), data))

	customers, err := s.GetStores().CustomerRepo.List(s.GetContext(), &types.CustomerFilter{QueryFilter: &types.QueryFilter{}})
	s.NoError(err)
	s.Len(customers, 1)
}

func (s *BackupServiceSuite) TestRestoreRejectsUnknownVersion() {
	err := s.service.Restore(s.GetContext(), &dto.BackupData{Version: dto.BackupVersion + 1})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	err = s.service.Restore(s.GetContext(), nil)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *BackupServiceSuite) TestExportSpansMultiplePages() {
	total := types.MaxQueryLimit + 7
	for i := 0; i < total; i++ {
		c := &customer.Customer{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
			Name:      fmt.Sprintf("Customer %05d", i),
			BaseModel: types.GetDefaultBaseModel(s.GetContext()),
		}
		s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), c))
	}

	data, err := s.service.Export(s.GetContext())
	s.NoError(err)
	s.Len(data.Customers, total)

	// Every row survives the round trip, not just the first page
	s.NoError(s.service.Restore(s.GetContext(), data))
	count, err := s.GetStores().CustomerRepo.Count(s.GetContext(), &types.CustomerFilter{QueryFilter: &types.QueryFilter{}})
	s.NoError(err)
	s.Equal(total, count)
}

func (s *BackupServiceSuite) TestResetEmptiesEverything() {
	s.seedData()

	s.NoError(s.service.Reset(s.GetContext()))

	data, err := s.service.Export(s.GetContext())
	s.NoError(err)
	s.Empty(data.Customers)
	s.Empty(data.Payments)
	s.Empty(data.NumberingRanges)
	s.Empty(data.SequenceCounters)
}
