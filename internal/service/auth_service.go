package service

import (
	"context"
	"crypto/subtle"
	"encoding/hex"

	"github.com/page-cms-api/internal/models"
	"github.com/page-cms-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/scrypt"
)

// scrypt parameters for stored credentials (32-byte key).
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

// authService is the concrete implementation of AuthService
type authService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newAuthService creates a new AuthService
func newAuthService(repos *repository.Repositories, log zerolog.Logger) *authService {
	return &authService{
		repos: repos,
		log:   log.With().Str("service", "auth").Logger(),
	}
}

// Login verifies a username/password pair against the stored scrypt
// hash. A wrong username and a wrong password are indistinguishable to
// the caller: both yield a nil identity.
func (s *authService) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	user, err := s.repos.User.GetByEmail(ctx, username)
	if err != nil {
		return nil, &models.DependencyError{Op: "user lookup", Err: err}
	}
	if user == nil {
		return nil, nil
	}

	derived, err := scrypt.Key([]byte(password), []byte(user.Salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, &models.DependencyError{Op: "password verification", Err: err}
	}
	stored, err := hex.DecodeString(user.Hash)
	if err != nil {
		return nil, &models.DependencyError{Op: "password verification", Err: err}
	}
	if subtle.ConstantTimeCompare(derived, stored) != 1 {
		s.log.Debug().Str("username", username).Msg("Password mismatch")
		return nil, nil
	}

	return user.Identity(), nil
}

// GetIdentity resolves a session-stored user id to a fresh identity.
func (s *authService) GetIdentity(ctx context.Context, userID int) (*models.Identity, error) {
	user, err := s.repos.User.GetByID(ctx, userID)
	if err != nil {
		return nil, &models.DependencyError{Op: "user lookup", Err: err}
	}
	if user == nil {
		return nil, nil
	}
	return user.Identity(), nil
}
