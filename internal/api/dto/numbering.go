package dto

import (
	"github.com/nandi-devi/tms-app/internal/domain/numbering"
	"github.com/nandi-devi/tms-app/internal/types"
)

type UpsertNumberingRangeRequest struct {
	DocumentType      types.DocumentType `json:"document_type" binding:"required"`
	Prefix            string             `json:"prefix"`
	StartNumber       int64              `json:"start_number" binding:"required,gt=0"`
	EndNumber         int64              `json:"end_number" binding:"required,gt=0"`
	AllowManualEntry  bool               `json:"allow_manual_entry"`
	AllowOutsideRange bool               `json:"allow_outside_range"`
}

type NumberingRangeResponse struct {
	*numbering.NumberingRange

	// Exhausted reports whether the configured window is fully consumed
	Exhausted bool `json:"exhausted"`
	// NextFormatted previews the next number with the range prefix
	// applied; empty once the range is exhausted
	NextFormatted string `json:"next_formatted,omitempty"`
}

func NewNumberingRangeResponse(r *numbering.NumberingRange) *NumberingRangeResponse {
	resp := &NumberingRangeResponse{
		NumberingRange: r,
		Exhausted:      r.Exhausted(),
	}
	if !resp.Exhausted {
		resp.NextFormatted = r.FormatNumber(r.CurrentNumber)
	}
	return resp
}

// ListNumberingRangesResponse represents the configured ranges for all
// document types
type ListNumberingRangesResponse struct {
	Items []*NumberingRangeResponse `json:"items"`
}

type SequenceCounterResponse struct {
	*numbering.SequenceCounter
}

// ListSequenceCountersResponse represents all legacy sequence counters
type ListSequenceCountersResponse struct {
	Items []*SequenceCounterResponse `json:"items"`
}
