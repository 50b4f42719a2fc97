package repository

import (
	"context"

	"github.com/page-cms-api/internal/database"
	"github.com/page-cms-api/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	ListNames(ctx context.Context) ([]string, error)
}

// PageRepository defines the interface for page data operations
type PageRepository interface {
	List(ctx context.Context) ([]*models.Page, error)
	GetByID(ctx context.Context, id int) (*models.Page, error)
	Insert(ctx context.Context, page *models.Page) (int, error)
	Update(ctx context.Context, id int, page *models.Page) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// WebsiteRepository defines the interface for website config operations
type WebsiteRepository interface {
	Get(ctx context.Context) (*models.WebsiteConfig, error)
	SetName(ctx context.Context, name string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Page    PageRepository
	Website WebsiteRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepo(db),
		Page:    NewPageRepo(db),
		Website: NewWebsiteRepo(db),
	}
}
