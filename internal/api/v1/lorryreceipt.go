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

type LorryReceiptHandler struct {
	service service.LorryReceiptService
	log     *logger.Logger
}

func NewLorryReceiptHandler(
	service service.LorryReceiptService,
	log *logger.Logger,
) *LorryReceiptHandler {
	return &LorryReceiptHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a lorry receipt
// @Description Create a lorry receipt. The LR number is issued by the sequence allocator unless supplied manually.
// @Tags LorryReceipts
// @Accept json
// @Produce json
// @Param lorry_receipt body dto.CreateLorryReceiptRequest true "Lorry receipt"
// @Success 201 {object} dto.LorryReceiptResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /lorry-receipts [post]
func (h *LorryReceiptHandler) CreateLorryReceipt(c *gin.Context) {
	var req dto.CreateLorryReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateLorryReceipt(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a lorry receipt
// @Description Get a lorry receipt
// @Tags LorryReceipts
// @Accept json
// @Produce json
// @Param id path string true "Lorry receipt ID"
// @Success 200 {object} dto.LorryReceiptResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /lorry-receipts/{id} [get]
func (h *LorryReceiptHandler) GetLorryReceipt(c *gin.Context) {
	resp, err := h.service.GetLorryReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List lorry receipts
// @Description List lorry receipts
// @Tags LorryReceipts
// @Accept json
// @Produce json
// @Param filter query types.LorryReceiptFilter false "Filter"
// @Success 200 {object} dto.ListLorryReceiptsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /lorry-receipts [get]
func (h *LorryReceiptHandler) ListLorryReceipts(c *gin.Context) {
	var filter types.LorryReceiptFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListLorryReceipts(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a lorry receipt
// @Description Update a lorry receipt's booking details. The document number and status are immutable here.
// @Tags LorryReceipts
// @Accept json
// @Produce json
// @Param id path string true "Lorry receipt ID"
// @Param lorry_receipt body dto.UpdateLorryReceiptRequest true "Lorry receipt"
// @Success 200 {object} dto.LorryReceiptResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /lorry-receipts/{id} [put]
func (h *LorryReceiptHandler) UpdateLorryReceipt(c *gin.Context) {
	var req dto.UpdateLorryReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateLorryReceipt(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a lorry receipt's status
// @Description Manually move a lorry receipt to IN_TRANSIT, DELIVERED or PAID. CREATED and INVOICED are managed by the invoice lifecycle.
// @Tags LorryReceipts
// @Accept json
// @Produce json
// @Param id path string true "Lorry receipt ID"
// @Param status body dto.UpdateLorryReceiptStatusRequest true "Status"
// @Success 200 {object} dto.LorryReceiptResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /lorry-receipts/{id}/status [put]
func (h *LorryReceiptHandler) UpdateLorryReceiptStatus(c *gin.Context) {
	var req dto.UpdateLorryReceiptStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateLorryReceiptStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a lorry receipt
// @Description Delete a lorry receipt. Invoiced LRs must be removed from their invoice first.
// @Tags LorryReceipts
// @Accept json
// @Produce json
// @Param id path string true "Lorry receipt ID"
// @Success 204
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /lorry-receipts/{id} [delete]
func (h *LorryReceiptHandler) DeleteLorryReceipt(c *gin.Context) {
	if err := h.service.DeleteLorryReceipt(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
