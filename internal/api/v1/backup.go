package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/logger"
	"github.com/nandi-devi/tms-app/internal/service"
)

var backupJSON = jsoniter.ConfigCompatibleWithStandardLibrary

type BackupHandler struct {
	service service.BackupService
	log     *logger.Logger
}

func NewBackupHandler(
	service service.BackupService,
	log *logger.Logger,
) *BackupHandler {
	return &BackupHandler{
		service: service,
		log:     log,
	}
}

// @Summary Export a backup
// @Description Export the full dataset as a portable JSON snapshot
// @Tags Backup
// @Accept json
// @Produce json
// @Success 200 {object} dto.BackupData
// @Failure 500 {object} ierr.ErrorResponse
// @Router /backup/export [get]
func (h *BackupHandler) Export(c *gin.Context) {
	data, err := h.service.Export(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	payload, err := backupJSON.Marshal(data)
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to serialize backup").
			Mark(ierr.ErrSystem))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tms-backup.json"`)
	c.Data(http.StatusOK, "application/json", payload)
}

// @Summary Restore a backup
// @Description Replace the full dataset with the uploaded snapshot. This is destructive and not a merge.
// @Tags Backup
// @Accept json
// @Produce json
// @Param backup body dto.BackupData true "Backup snapshot"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /backup/restore [post]
func (h *BackupHandler) Restore(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to read request body").
			Mark(ierr.ErrValidation))
		return
	}

	var data dto.BackupData
	if err := backupJSON.Unmarshal(body, &data); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid backup payload").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.Restore(c.Request.Context(), &data); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "restored"})
}

// @Summary Reset the dataset
// @Description Delete every document, payment and numbering state. Destructive.
// @Tags Backup
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} ierr.ErrorResponse
// @Router /backup/reset [post]
func (h *BackupHandler) Reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
