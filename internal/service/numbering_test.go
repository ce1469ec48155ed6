package service

import (
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/testutil"
	"github.com/nandi-devi/tms-app/internal/types"
)

type NumberingServiceSuite struct {
	testutil.BaseServiceTestSuite
	service NumberingService
}

func TestNumberingService(t *testing.T) {
	suite.Run(t, new(NumberingServiceSuite))
}

func (s *NumberingServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewNumberingService(newServiceParams(&s.BaseServiceTestSuite))
}

func (s *NumberingServiceSuite) upsertRange(dt types.DocumentType, start, end int64, manual, outside bool) {
	_, err := s.service.UpsertRange(s.GetContext(), &dto.UpsertNumberingRangeRequest{
		DocumentType:      dt,
		StartNumber:       start,
		EndNumber:         end,
		AllowManualEntry:  manual,
		AllowOutsideRange: outside,
	})
	s.NoError(err)
}

func (s *NumberingServiceSuite) TestAllocateWithoutRangeUsesLegacyCounter() {
	for want := int64(1); want <= 3; want++ {
		n, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeLorryReceipt)
		s.NoError(err)
		s.Equal(want, n)
	}

	// Counters are independent per document type
	n, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal(int64(1), n)
}

func (s *NumberingServiceSuite) TestAllocateFromRange() {
	s.upsertRange(types.DocumentTypeInvoice, 100, 102, false, false)

	for want := int64(100); want <= 102; want++ {
		n, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
		s.NoError(err)
		s.Equal(want, n)
	}
}

func (s *NumberingServiceSuite) TestRangeExhaustion() {
	s.upsertRange(types.DocumentTypeInvoice, 1, 2, false, false)

	n, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal(int64(1), n)

	n, err = s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal(int64(2), n)

	_, err = s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.Error(err)
	s.True(ierr.IsSequenceExhausted(err))

	// Exhaustion must not corrupt the range state
	_, err = s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.True(ierr.IsSequenceExhausted(err))
}

func (s *NumberingServiceSuite) TestExhaustedRangeFallsBackToCounterWhenAllowed() {
	s.upsertRange(types.DocumentTypeTruckHiringNote, 10, 10, false, true)

	n, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeTruckHiringNote)
	s.NoError(err)
	s.Equal(int64(10), n)

	// Range consumed; the legacy counter takes over
	n, err = s.service.AllocateNumber(s.GetContext(), types.DocumentTypeTruckHiringNote)
	s.NoError(err)
	s.Equal(int64(1), n)

	n, err = s.service.AllocateNumber(s.GetContext(), types.DocumentTypeTruckHiringNote)
	s.NoError(err)
	s.Equal(int64(2), n)
}

func (s *NumberingServiceSuite) TestConcurrentAllocationIsGapless() {
	const workers = 50
	s.upsertRange(types.DocumentTypeLorryReceipt, 1, workers, false, false)

	results := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeLorryReceipt)
			s.NoError(err)
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	seen := make([]int64, 0, workers)
	for n := range results {
		seen = append(seen, n)
	}

	// Exactly the numbers 1..workers, each issued once
	s.Len(lo.Uniq(seen), workers)
	s.Equal(int64(1), lo.Min(seen))
	s.Equal(int64(workers), lo.Max(seen))
}

func (s *NumberingServiceSuite) TestResolveNumberManualEntry() {
	manual := int64(777)

	// Without a range, manual numbers are always accepted
	n, err := s.service.ResolveNumber(s.GetContext(), types.DocumentTypeLorryReceipt, &manual)
	s.NoError(err)
	s.Equal(int64(777), n)

	// With a range that forbids manual entry
	s.upsertRange(types.DocumentTypeLorryReceipt, 1, 100, false, false)
	_, err = s.service.ResolveNumber(s.GetContext(), types.DocumentTypeLorryReceipt, &manual)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	// Enable manual entry
	s.upsertRange(types.DocumentTypeLorryReceipt, 1, 100, true, false)
	n, err = s.service.ResolveNumber(s.GetContext(), types.DocumentTypeLorryReceipt, &manual)
	s.NoError(err)
	s.Equal(int64(777), n)
}

func (s *NumberingServiceSuite) TestUpsertRangePreservesProgressWithinBounds() {
	s.upsertRange(types.DocumentTypeInvoice, 1, 100, false, false)

	for i := 0; i < 3; i++ {
		_, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
		s.NoError(err)
	}

	// Extend the window; allocation continues from where it left off
	s.upsertRange(types.DocumentTypeInvoice, 1, 500, false, false)
	n, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal(int64(4), n)

	// Moving the start while progress is still inside the new window
	// must not reissue numbers 1-4
	s.upsertRange(types.DocumentTypeInvoice, 2, 500, false, false)
	n, err = s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal(int64(5), n)

	// A start beyond the current progress restarts from the new start
	s.upsertRange(types.DocumentTypeInvoice, 50, 500, false, false)
	n, err = s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal(int64(50), n)
}

func (s *NumberingServiceSuite) TestUpsertRangeResetsExhaustedProgress() {
	s.upsertRange(types.DocumentTypeInvoice, 1, 2, false, false)

	for want := int64(1); want <= 2; want++ {
		n, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
		s.NoError(err)
		s.Equal(want, n)
	}
	_, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.True(ierr.IsSequenceExhausted(err))

	// Saving the exhausted range again without a counter fallback resets
	// progress to the start
	s.upsertRange(types.DocumentTypeInvoice, 1, 2, false, false)
	n, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal(int64(1), n)
}

func (s *NumberingServiceSuite) TestUpsertExhaustedRangeWithFallbackKeepsProgress() {
	s.upsertRange(types.DocumentTypeTruckHiringNote, 1, 1, false, false)

	n, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeTruckHiringNote)
	s.NoError(err)
	s.Equal(int64(1), n)

	// With the fallback enabled the overflow is absorbed by the legacy
	// counter instead of resetting the window
	s.upsertRange(types.DocumentTypeTruckHiringNote, 1, 1, false, true)
	n, err = s.service.AllocateNumber(s.GetContext(), types.DocumentTypeTruckHiringNote)
	s.NoError(err)
	s.Equal(int64(1), n)
	n, err = s.service.AllocateNumber(s.GetContext(), types.DocumentTypeTruckHiringNote)
	s.NoError(err)
	s.Equal(int64(2), n)
}

func (s *NumberingServiceSuite) TestUpsertRangeValidation() {
	_, err := s.service.UpsertRange(s.GetContext(), &dto.UpsertNumberingRangeRequest{
		DocumentType: types.DocumentTypeInvoice,
		StartNumber:  100,
		EndNumber:    1,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.UpsertRange(s.GetContext(), &dto.UpsertNumberingRangeRequest{
		DocumentType: "waybill",
		StartNumber:  1,
		EndNumber:    10,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *NumberingServiceSuite) TestListRangesAndCounters() {
	s.upsertRange(types.DocumentTypeInvoice, 1, 10, false, false)
	s.upsertRange(types.DocumentTypeLorryReceipt, 1, 10, false, false)

	_, err := s.service.AllocateNumber(s.GetContext(), types.DocumentTypeTruckHiringNote)
	s.NoError(err)

	ranges, err := s.service.ListRanges(s.GetContext())
	s.NoError(err)
	s.Len(ranges.Items, 2)

	counters, err := s.service.ListCounters(s.GetContext())
	s.NoError(err)
	s.Len(counters.Items, 1)
	s.Equal(types.DocumentTypeTruckHiringNote.SequenceName(), counters.Items[0].Name)
	s.Equal(int64(1), counters.Items[0].Value)
}
