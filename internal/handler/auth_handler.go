package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pgms-be-svc/internal/middleware"
	"pgms-be-svc/internal/service"
	"pgms-be-svc/pkg/logger"
	"pgms-be-svc/pkg/utils"
)

// LoginRequest represents the login form fields
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=owner tenant"`
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in as owner or tenant
// @Description Authenticate with email, password and role; returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} utils.APIResponse{data=service.LoginResult} "Login successful"
// @Failure 400 {object} utils.APIResponse "Missing or malformed fields"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Please fill in all fields", err)
		return
	}

	result, err := h.authService.Login(req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "Invalid email or password")
			return
		}
		respondError(c, err, "Login failed")
		return
	}

	utils.SuccessResponse(c, "Login successful", result)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description Acknowledge logout; tokens are stateless and discarded client-side
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse "Logged out"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if session, ok := middleware.SessionFromContext(c); ok {
		h.logger.WithField("email", session.Email).Info("Session logged out")
	}
	utils.SuccessResponse(c, "Logged out successfully", nil)
}

// Session handles GET /api/v1/auth/session
// @Summary Get the current session
// @Description Returns the session object encoded in the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=auth.Session} "Active session"
// @Failure 401 {object} utils.APIResponse "No active session"
// @Router /api/v1/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "No active session")
		return
	}
	utils.SuccessResponse(c, "Session retrieved successfully", session)
}
