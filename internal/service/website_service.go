package service

import (
	"context"

	"github.com/page-cms-api/internal/authz"
	"github.com/page-cms-api/internal/models"
	"github.com/page-cms-api/internal/repository"
	"github.com/page-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

// websiteService is the concrete implementation of WebsiteService
type websiteService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newWebsiteService creates a new WebsiteService
func newWebsiteService(repos *repository.Repositories, log zerolog.Logger) *websiteService {
	return &websiteService{
		repos: repos,
		log:   log.With().Str("service", "website").Logger(),
	}
}

// GetName returns the website configuration. Public: the site header
// is rendered for anonymous visitors too.
func (s *websiteService) GetName(ctx context.Context) (*models.WebsiteConfig, error) {
	cfg, err := s.repos.Website.Get(ctx)
	if err != nil {
		return nil, &models.DependencyError{Op: "website lookup", Err: err}
	}
	return cfg, nil
}

// UpdateName renames the website. Admin only.
func (s *websiteService) UpdateName(ctx context.Context, caller *models.Identity, name string) (*models.WebsiteConfig, error) {
	if reasons := validation.ValidateWebsiteName(name); len(reasons) > 0 {
		return nil, &models.ValidationError{Reasons: reasons}
	}

	decision, err := authz.Authorize(authz.Request{
		Action: authz.UpdateWebsiteName,
		Caller: caller,
	}, nil)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, &models.AuthorizationError{Reason: decision.Reason}
	}

	if err := s.repos.Website.SetName(ctx, name); err != nil {
		return nil, &models.DependencyError{Op: "website update", Err: err}
	}

	s.log.Info().Str("name", name).Msg("Website renamed")
	return s.GetName(ctx)
}
