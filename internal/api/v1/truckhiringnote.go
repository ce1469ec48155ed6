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

type TruckHiringNoteHandler struct {
	service service.TruckHiringNoteService
	log     *logger.Logger
}

func NewTruckHiringNoteHandler(
	service service.TruckHiringNoteService,
	log *logger.Logger,
) *TruckHiringNoteHandler {
	return &TruckHiringNoteHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a truck hiring note
// @Description Create a truck hiring note. The THN number is issued by the sequence allocator unless supplied manually.
// @Tags TruckHiringNotes
// @Accept json
// @Produce json
// @Param thn body dto.CreateTruckHiringNoteRequest true "Truck hiring note"
// @Success 201 {object} dto.TruckHiringNoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /truck-hiring-notes [post]
func (h *TruckHiringNoteHandler) CreateTruckHiringNote(c *gin.Context) {
	var req dto.CreateTruckHiringNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateTruckHiringNote(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a truck hiring note
// @Description Get a truck hiring note
// @Tags TruckHiringNotes
// @Accept json
// @Produce json
// @Param id path string true "Truck hiring note ID"
// @Success 200 {object} dto.TruckHiringNoteResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /truck-hiring-notes/{id} [get]
func (h *TruckHiringNoteHandler) GetTruckHiringNote(c *gin.Context) {
	resp, err := h.service.GetTruckHiringNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List truck hiring notes
// @Description List truck hiring notes
// @Tags TruckHiringNotes
// @Accept json
// @Produce json
// @Param filter query types.TruckHiringNoteFilter false "Filter"
// @Success 200 {object} dto.ListTruckHiringNotesResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /truck-hiring-notes [get]
func (h *TruckHiringNoteHandler) ListTruckHiringNotes(c *gin.Context) {
	var filter types.TruckHiringNoteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListTruckHiringNotes(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a truck hiring note
// @Description Update a truck hiring note. Changing the freight amount re-derives the balance and settlement status.
// @Tags TruckHiringNotes
// @Accept json
// @Produce json
// @Param id path string true "Truck hiring note ID"
// @Param thn body dto.UpdateTruckHiringNoteRequest true "Truck hiring note"
// @Success 200 {object} dto.TruckHiringNoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /truck-hiring-notes/{id} [put]
func (h *TruckHiringNoteHandler) UpdateTruckHiringNote(c *gin.Context) {
	var req dto.UpdateTruckHiringNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateTruckHiringNote(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a truck hiring note
// @Description Delete a truck hiring note with no payments recorded against it
// @Tags TruckHiringNotes
// @Accept json
// @Produce json
// @Param id path string true "Truck hiring note ID"
// @Success 204
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /truck-hiring-notes/{id} [delete]
func (h *TruckHiringNoteHandler) DeleteTruckHiringNote(c *gin.Context) {
	if err := h.service.DeleteTruckHiringNote(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
