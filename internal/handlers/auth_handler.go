package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wasimadildev/begded-planner/internal/errors"
	"github.com/wasimadildev/begded-planner/internal/middleware"
	"github.com/wasimadildev/begded-planner/internal/models"
	"github.com/wasimadildev/begded-planner/internal/services"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService    services.AuthServicer
	sessionService services.SessionServicer
	auditService   services.AuditServicer
	tokens         *middleware.TokenManager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthServicer, sessionService services.SessionServicer, auditService services.AuditServicer, tokens *middleware.TokenManager) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		sessionService: sessionService,
		auditService:   auditService,
		tokens:         tokens,
	}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=128"`
}

// UserResponse represents the user data in the response
type UserResponse struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token    string       `json:"token"`
	User     UserResponse `json:"user"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a configured user, open their session and get a token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	session, err := h.sessionService.Open(c.Request.Context(), *user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.Username, "LOGIN", "session", user.Username, c.ClientIP(), nil)

	c.JSON(http.StatusOK, AuthResponse{
		Token:    token,
		User:     UserResponse{Username: user.Username, Role: user.Role},
		Warnings: session.Warnings,
	})
}

// Logout handles user logout
// @Summary     Logout user
// @Description Close the caller's session. Session-only data is discarded; savings goals are kept.
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Logged out"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.sessionService.Close(user.Username)
	h.auditService.Log(user.Username, "LOGOUT", "session", user.Username, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
