package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warsztat/internal/application/account/usecases"
	"warsztat/internal/infrastructure/auth"
	"warsztat/internal/shared/authorization"
	"warsztat/internal/shared/config"
	"warsztat/internal/shared/constants"
	"warsztat/internal/shared/logger"
	"warsztat/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase     *usecases.RegisterUseCase
	authenticateUseCase *usecases.AuthenticateUseCase
	tokenService        *auth.SessionTokenService
	cookieConfig        config.CookieConfig
	logger              logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterUseCase,
	authenticateUC *usecases.AuthenticateUseCase,
	tokenService *auth.SessionTokenService,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:     registerUC,
		authenticateUseCase: authenticateUC,
		tokenService:        tokenService,
		cookieConfig:        cookieConfig,
		logger:              logger,
	}
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,max=64"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account credentials"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Podaj login i hasło.")
		return
	}

	cmd := usecases.RegisterCommand{
		Login:    req.Login,
		Password: req.Password,
		Role:     req.Role,
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("registration failed", "login", req.Login, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Konto utworzone. Możesz się zalogować.", gin.H{
		"login": result.Login,
		"role":  result.Role,
	})
}

// Login godoc
// @Summary Log in and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Podaj login i hasło.")
		return
	}

	cmd := usecases.AuthenticateCommand{
		Login:    req.Login,
		Password: req.Password,
	}

	result, err := h.authenticateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role, err := authorization.ParseRole(result.Role)
	if err != nil {
		h.logger.Errorw("stored role failed validation", "login", result.Login, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Wystąpił błąd. Spróbuj ponownie.")
		return
	}

	token, err := h.tokenService.Generate(result.Login, role)
	if err != nil {
		h.logger.Errorw("failed to generate session token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Wystąpił błąd. Spróbuj ponownie.")
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, token, h.tokenService.MaxAgeSeconds())

	utils.SuccessResponse(c, http.StatusOK, "Zalogowano pomyślnie.", gin.H{
		"login": result.Login,
		"role":  result.Role,
	})
}

// Logout godoc
// @Summary Log out and clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Wylogowano.", nil)
}

// Session reports who is logged in, if anyone.
func (h *AuthHandler) Session(c *gin.Context) {
	login, exists := c.Get(constants.ContextKeyLogin)
	if !exists {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{
			"logged_in": false,
		})
		return
	}

	role, _ := c.Get(constants.ContextKeyRole)
	utils.SuccessResponse(c, http.StatusOK, "Jesteś zalogowany jako "+login.(string)+".", gin.H{
		"logged_in": true,
		"login":     login,
		"role":      role,
	})
}
