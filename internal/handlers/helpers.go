package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/wasimadildev/begded-planner/internal/errors"
	"github.com/wasimadildev/begded-planner/internal/middleware"
	"github.com/wasimadildev/begded-planner/internal/models"
	"github.com/wasimadildev/begded-planner/internal/services"
)

// getUser extracts the authenticated user from the Gin context.
// Returns ErrUnauthorized if not present.
func getUser(c *gin.Context) (models.User, error) {
	username := c.GetString(middleware.UsernameKey)
	if username == "" {
		return models.User{}, apperrors.ErrUnauthorized
	}
	role, _ := c.Get(middleware.RoleKey)
	r, _ := role.(models.Role)
	return models.User{Username: username, Role: r}, nil
}

// currentSession returns the caller's session, opening it on first use.
func currentSession(c *gin.Context, sessions services.SessionServicer) (*services.Session, error) {
	user, err := getUser(c)
	if err != nil {
		return nil, err
	}
	return sessions.Open(c.Request.Context(), user)
}

// splitWarning separates a failed durable write, which leaves the mutation
// applied and is reported as a warning, from errors that abort the request.
func splitWarning(err error) (warning string, fatal error) {
	if err == nil {
		return "", nil
	}
	if apperrors.HasCode(err, apperrors.ErrPersistenceWrite) {
		return err.Error(), nil
	}
	return "", err
}

// withWarning adds a "warning" field to body when warning is set.
func withWarning(body gin.H, warning string) gin.H {
	if warning != "" {
		body["warning"] = warning
	}
	return body
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.RespondWithError(c, err)
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
