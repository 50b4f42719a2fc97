package service

import (
	"context"

	"github.com/page-cms-api/internal/models"
	"github.com/page-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// AuthService verifies credentials and resolves session identities
type AuthService interface {
	// Login returns the verified identity, or nil when the username or
	// password is wrong.
	Login(ctx context.Context, username, password string) (*models.Identity, error)
	// GetIdentity resolves a stored session user id back to an
	// identity; nil when the user no longer exists.
	GetIdentity(ctx context.Context, userID int) (*models.Identity, error)
}

// PageService defines the page operations exposed to handlers
type PageService interface {
	ListPages(ctx context.Context, caller *models.Identity) ([]*models.Page, error)
	GetPage(ctx context.Context, id int, caller *models.Identity) (*models.Page, error)
	CreatePage(ctx context.Context, caller *models.Identity, candidate *models.Page) (*models.Page, error)
	UpdatePage(ctx context.Context, id int, caller *models.Identity, candidate *models.Page) (*models.Page, error)
	DeletePage(ctx context.Context, id int, caller *models.Identity) error
}

// UserService defines user listing operations
type UserService interface {
	ListNames(ctx context.Context, caller *models.Identity) ([]string, error)
}

// WebsiteService defines website config operations
type WebsiteService interface {
	GetName(ctx context.Context) (*models.WebsiteConfig, error)
	UpdateName(ctx context.Context, caller *models.Identity, name string) (*models.WebsiteConfig, error)
}

// Services holds all service interfaces
type Services struct {
	Auth    AuthService
	Page    PageService
	User    UserService
	Website WebsiteService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Auth:    newAuthService(repos, log),
		Page:    newPageService(repos, log),
		User:    newUserService(repos, log),
		Website: newWebsiteService(repos, log),
	}
}
