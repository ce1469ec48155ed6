package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	"github.com/nandi-devi/tms-app/internal/domain/customer"
	"github.com/nandi-devi/tms-app/internal/domain/vehicle"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/testutil"
	"github.com/nandi-devi/tms-app/internal/types"
)

type LorryReceiptServiceSuite struct {
	testutil.BaseServiceTestSuite
	service          LorryReceiptService
	numberingService NumberingService

	consignor *customer.Customer
	consignee *customer.Customer
	vehicle   *vehicle.Vehicle
}

func TestLorryReceiptService(t *testing.T) {
	suite.Run(t, new(LorryReceiptServiceSuite))
}

func (s *LorryReceiptServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newServiceParams(&s.BaseServiceTestSuite)
	s.numberingService = NewNumberingService(params)
	s.service = NewLorryReceiptService(params, s.numberingService)

	s.consignor = s.createCustomer("Patel Industries")
	s.consignee = s.createCustomer("Mehta Traders")

	s.vehicle = &vehicle.Vehicle{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_VEHICLE),
		RegistrationNumber: "MH12AB1234",
		BaseModel:          types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().VehicleRepo.Create(s.GetContext(), s.vehicle))
}

func (s *LorryReceiptServiceSuite) createCustomer(name string) *customer.Customer {
	c := &customer.Customer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:      name,
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), c))
	return c
}

func (s *LorryReceiptServiceSuite) createRequest() *dto.CreateLorryReceiptRequest {
	return &dto.CreateLorryReceiptRequest{
		Date:          s.GetNow(),
		ConsignorID:   s.consignor.ID,
		ConsigneeID:   s.consignee.ID,
		VehicleID:     s.vehicle.ID,
		Origin:        "Mumbai",
		Destination:   "Pune",
		Packages:      10,
		FreightCharge: decimal.NewFromInt(5000),
		HamaliCharge:  decimal.NewFromInt(200),
		OtherCharges:  decimal.NewFromInt(100),
		FreightType:   types.FreightTypeToBeBilled,
	}
}

func (s *LorryReceiptServiceSuite) TestCreateAllocatesSequentialNumbers() {
	first, err := s.service.CreateLorryReceipt(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.Equal(int64(1), first.Number)
	s.Equal(types.LorryReceiptStatusCreated, first.Status)
	s.True(first.TotalCharges.Equal(decimal.NewFromInt(5300)))

	second, err := s.service.CreateLorryReceipt(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.Equal(int64(2), second.Number)
}

func (s *LorryReceiptServiceSuite) TestCreateRejectsUnknownConsignor() {
	req := s.createRequest()
	req.ConsignorID = "cust_ghost"

	_, err := s.service.CreateLorryReceipt(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	// The rejected request must not have consumed a number
	resp, err := s.service.CreateLorryReceipt(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.Equal(int64(1), resp.Number)
}

func (s *LorryReceiptServiceSuite) TestCreateRejectsUnknownVehicle() {
	req := s.createRequest()
	req.VehicleID = "veh_ghost"

	_, err := s.service.CreateLorryReceipt(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *LorryReceiptServiceSuite) TestCreateWithManualNumber() {
	manual := int64(9001)
	req := s.createRequest()
	req.Number = &manual

	// No range configured: manual numbers pass through
	resp, err := s.service.CreateLorryReceipt(s.GetContext(), req)
	s.NoError(err)
	s.Equal(int64(9001), resp.Number)

	// A range that forbids manual entry blocks it
	_, err = s.numberingService.UpsertRange(s.GetContext(), &dto.UpsertNumberingRangeRequest{
		DocumentType: types.DocumentTypeLorryReceipt,
		StartNumber:  1,
		EndNumber:    100,
	})
	s.NoError(err)

	manual = 9002
	req = s.createRequest()
	req.Number = &manual
	_, err = s.service.CreateLorryReceipt(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *LorryReceiptServiceSuite) TestUpdateStatusManualRules() {
	resp, err := s.service.CreateLorryReceipt(s.GetContext(), s.createRequest())
	s.NoError(err)

	updated, err := s.service.UpdateLorryReceiptStatus(s.GetContext(), resp.ID, &dto.UpdateLorryReceiptStatusRequest{
		Status: types.LorryReceiptStatusInTransit,
	})
	s.NoError(err)
	s.Equal(types.LorryReceiptStatusInTransit, updated.Status)

	updated, err = s.service.UpdateLorryReceiptStatus(s.GetContext(), resp.ID, &dto.UpdateLorryReceiptStatusRequest{
		Status: types.LorryReceiptStatusDelivered,
	})
	s.NoError(err)
	s.Equal(types.LorryReceiptStatusDelivered, updated.Status)

	// Coordinator-owned statuses cannot be set by hand
	for _, status := range []types.LorryReceiptStatus{
		types.LorryReceiptStatusCreated,
		types.LorryReceiptStatusInvoiced,
	} {
		_, err = s.service.UpdateLorryReceiptStatus(s.GetContext(), resp.ID, &dto.UpdateLorryReceiptStatusRequest{
			Status: status,
		})
		s.Error(err)
		s.True(ierr.IsInvalidOperation(err))
	}
}

func (s *LorryReceiptServiceSuite) TestUpdateStatusRejectsUnknownStatus() {
	resp, err := s.service.CreateLorryReceipt(s.GetContext(), s.createRequest())
	s.NoError(err)

	_, err = s.service.UpdateLorryReceiptStatus(s.GetContext(), resp.ID, &dto.UpdateLorryReceiptStatusRequest{
		Status: "TELEPORTED",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *LorryReceiptServiceSuite) TestUpdateMergesOnlyProvidedFields() {
	resp, err := s.service.CreateLorryReceipt(s.GetContext(), s.createRequest())
	s.NoError(err)

	destination := "Nashik"
	freight := decimal.NewFromInt(6000)
	updated, err := s.service.UpdateLorryReceipt(s.GetContext(), resp.ID, &dto.UpdateLorryReceiptRequest{
		Destination:   &destination,
		FreightCharge: &freight,
	})
	s.NoError(err)
	s.Equal("Nashik", updated.Destination)
	s.True(updated.FreightCharge.Equal(decimal.NewFromInt(6000)))
	s.Equal("Mumbai", updated.Origin)
	s.Equal(int64(1), updated.Number)
}

func (s *LorryReceiptServiceSuite) TestDeleteRefusedWhenInvoiced() {
	resp, err := s.service.CreateLorryReceipt(s.GetContext(), s.createRequest())
	s.NoError(err)

	s.NoError(s.GetStores().LorryReceiptRepo.UpdateStatus(s.GetContext(), resp.ID, types.LorryReceiptStatusInvoiced))

	err = s.service.DeleteLorryReceipt(s.GetContext(), resp.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	// Detached LRs can be deleted
	s.NoError(s.GetStores().LorryReceiptRepo.UpdateStatus(s.GetContext(), resp.ID, types.LorryReceiptStatusCreated))
	s.NoError(s.service.DeleteLorryReceipt(s.GetContext(), resp.ID))

	_, err = s.service.GetLorryReceipt(s.GetContext(), resp.ID)
	s.True(ierr.IsNotFound(err))
}

func (s *LorryReceiptServiceSuite) TestListFiltersByStatus() {
	first, err := s.service.CreateLorryReceipt(s.GetContext(), s.createRequest())
	s.NoError(err)
	_, err = s.service.CreateLorryReceipt(s.GetContext(), s.createRequest())
	s.NoError(err)

	_, err = s.service.UpdateLorryReceiptStatus(s.GetContext(), first.ID, &dto.UpdateLorryReceiptStatusRequest{
		Status: types.LorryReceiptStatusInTransit,
	})
	s.NoError(err)

	status := types.LorryReceiptStatusInTransit
	resp, err := s.service.ListLorryReceipts(s.GetContext(), &types.LorryReceiptFilter{
		QueryFilter: &types.QueryFilter{},
		Status:      &status,
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(first.ID, resp.Items[0].ID)
}
