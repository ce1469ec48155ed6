package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/logger"
	"github.com/nandi-devi/tms-app/internal/service"
	"github.com/nandi-devi/tms-app/internal/types"
)

type NumberingHandler struct {
	service service.NumberingService
	log     *logger.Logger
}

func NewNumberingHandler(
	service service.NumberingService,
	log *logger.Logger,
) *NumberingHandler {
	return &NumberingHandler{
		service: service,
		log:     log,
	}
}

// @Summary Configure a numbering range
// @Description Create or replace the numbering range for a document type. Changing the start restarts allocation from the new start.
// @Tags Numbering
// @Accept json
// @Produce json
// @Param range body dto.UpsertNumberingRangeRequest true "Numbering range"
// @Success 200 {object} dto.NumberingRangeResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /settings/numbering [put]
func (h *NumberingHandler) UpsertRange(c *gin.Context) {
	var req dto.UpsertNumberingRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpsertRange(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get a numbering range
// @Description Get the numbering range configured for a document type
// @Tags Numbering
// @Accept json
// @Produce json
// @Param document_type path string true "Document type" Enums(lr, invoice, thn)
// @Success 200 {object} dto.NumberingRangeResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /settings/numbering/{document_type} [get]
func (h *NumberingHandler) GetRange(c *gin.Context) {
	resp, err := h.service.GetRange(c.Request.Context(), types.DocumentType(c.Param("document_type")))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List numbering ranges
// @Description List the numbering ranges configured for all document types
// @Tags Numbering
// @Accept json
// @Produce json
// @Success 200 {object} dto.ListNumberingRangesResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /settings/numbering [get]
func (h *NumberingHandler) ListRanges(c *gin.Context) {
	resp, err := h.service.ListRanges(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List sequence counters
// @Description List the legacy sequence counters used when no range is configured
// @Tags Numbering
// @Accept json
// @Produce json
// @Success 200 {object} dto.ListSequenceCountersResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /settings/numbering/counters [get]
func (h *NumberingHandler) ListCounters(c *gin.Context) {
	resp, err := h.service.ListCounters(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
