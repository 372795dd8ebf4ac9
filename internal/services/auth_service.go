package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/wasimadildev/begded-planner/internal/config"
	apperrors "github.com/wasimadildev/begded-planner/internal/errors"
	"github.com/wasimadildev/begded-planner/internal/models"
)

// authService checks logins against a fixed, configured set of users.
type authService struct {
	users map[string]models.User
}

// NewAuthService hashes the configured passwords with the given bcrypt cost.
func NewAuthService(credentials []config.Credential, cost int) (AuthServicer, error) {
	users := make(map[string]models.User, len(credentials))
	for _, c := range credentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", c.Username, err)
		}
		users[c.Username] = models.User{
			Username:     c.Username,
			Role:         models.Role(c.Role),
			PasswordHash: string(hash),
		}
	}
	return &authService{users: users}, nil
}

// Authenticate returns the user when username and password match.
func (s *authService) Authenticate(username, password string) (*models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}
