package service

import (
	"context"

	"github.com/page-cms-api/internal/authz"
	"github.com/page-cms-api/internal/models"
	"github.com/page-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// userService is the concrete implementation of UserService
type userService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newUserService creates a new UserService
func newUserService(repos *repository.Repositories, log zerolog.Logger) *userService {
	return &userService{
		repos: repos,
		log:   log.With().Str("service", "user").Logger(),
	}
}

// ListNames returns all display names. Admin only: the list is used to
// reassign page authorship.
func (s *userService) ListNames(ctx context.Context, caller *models.Identity) ([]string, error) {
	decision, err := authz.Authorize(authz.Request{
		Action: authz.ListUserNames,
		Caller: caller,
	}, nil)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, &models.AuthorizationError{Reason: decision.Reason}
	}

	names, err := s.repos.User.ListNames(ctx)
	if err != nil {
		return nil, &models.DependencyError{Op: "user list", Err: err}
	}
	return names, nil
}
