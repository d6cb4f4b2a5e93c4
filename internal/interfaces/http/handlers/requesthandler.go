package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"warsztat/internal/application/request/usecases"
	"warsztat/internal/shared/constants"
	"warsztat/internal/shared/logger"
	"warsztat/internal/shared/utils"
)

type RequestHandler struct {
	createUseCase  *usecases.CreateRequestUseCase
	listUseCase    *usecases.ListRequestsUseCase
	deleteUseCase  *usecases.DeleteRequestUseCase
	archiveUseCase *usecases.ArchiveRequestUseCase
	logger         logger.Interface
}

func NewRequestHandler(
	createUC *usecases.CreateRequestUseCase,
	listUC *usecases.ListRequestsUseCase,
	deleteUC *usecases.DeleteRequestUseCase,
	archiveUC *usecases.ArchiveRequestUseCase,
	logger logger.Interface,
) *RequestHandler {
	return &RequestHandler{
		createUseCase:  createUC,
		listUseCase:    listUC,
		deleteUseCase:  deleteUC,
		archiveUseCase: archiveUC,
		logger:         logger,
	}
}

type CreateRequestRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"required,phone"`
	Slot      string `json:"slot" binding:"required,max=64"`
	Subject   string `json:"subject" binding:"required"`
}

// Create godoc
// @Summary Submit a service request
// @Tags requests
// @Accept json
// @Produce json
// @Param request body CreateRequestRequest true "Request details"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Uzupełnij wszystkie pola.")
		return
	}

	cmd := usecases.CreateRequestCommand{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Slot:      req.Slot,
		Subject:   req.Subject,
	}

	// The route requires a session, so the submitter's login is present in
	// context and gets linked to the stored request.
	if login, exists := c.Get(constants.ContextKeyLogin); exists {
		if loginStr, ok := login.(string); ok && loginStr != "" {
			cmd.OwnerLogin = &loginStr
		}
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Zgłoszenie przyjęte."
	if result.NotificationFailed {
		message = "Zgłoszenie przyjęte. Nie udało się wysłać powiadomienia e-mail."
	}

	utils.SuccessResponse(c, http.StatusCreated, message, gin.H{
		"id":         result.RequestID,
		"created_at": result.CreatedAt,
	})
}

// List godoc
// @Summary List active service requests
// @Tags requests
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	requests, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"requests": requests,
		"total":    len(requests),
	})
}

// Delete godoc
// @Summary Delete an active service request
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/requests/{id} [delete]
func (h *RequestHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Zgłoszenie nie istnieje.")
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Zgłoszenie usunięte.", nil)
}

// Archive godoc
// @Summary Move a service request to the archive
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/requests/{id}/archive [post]
func (h *RequestHandler) Archive(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Zgłoszenie nie istnieje.")
		return
	}

	result, err := h.archiveUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Przeniesiono do archiwum.", gin.H{
		"archived_id": result.ArchivedID,
	})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
