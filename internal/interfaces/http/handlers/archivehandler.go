package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warsztat/internal/application/request/usecases"
	"warsztat/internal/shared/logger"
	"warsztat/internal/shared/utils"
)

type ArchiveHandler struct {
	listUseCase   *usecases.ListArchiveUseCase
	deleteUseCase *usecases.DeleteArchivedUseCase
	logger        logger.Interface
}

func NewArchiveHandler(
	listUC *usecases.ListArchiveUseCase,
	deleteUC *usecases.DeleteArchivedUseCase,
	logger logger.Interface,
) *ArchiveHandler {
	return &ArchiveHandler{
		listUseCase:   listUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

// List godoc
// @Summary List archived service requests
// @Tags archive
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/archive [get]
func (h *ArchiveHandler) List(c *gin.Context) {
	archived, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"archive": archived,
		"total":   len(archived),
	})
}

// Delete godoc
// @Summary Delete an archived service request
// @Tags archive
// @Produce json
// @Param id path int true "Archived request ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/archive/{id} [delete]
func (h *ArchiveHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Zgłoszenie w archiwum nie istnieje.")
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Zgłoszenie usunięte z archiwum.", nil)
}
