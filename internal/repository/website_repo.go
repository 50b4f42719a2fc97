package repository

import (
	"context"

	"github.com/page-cms-api/internal/database"
	"github.com/page-cms-api/internal/models"
)

// websiteRepo is the concrete implementation of WebsiteRepository
type websiteRepo struct {
	db *database.DB
}

// NewWebsiteRepo creates a new website config repository
func NewWebsiteRepo(db *database.DB) WebsiteRepository {
	return &websiteRepo{db: db}
}

// Get retrieves the singleton website configuration. The row is seeded
// by the migrations, so a missing row is a real error.
func (r *websiteRepo) Get(ctx context.Context) (*models.WebsiteConfig, error) {
	var cfg models.WebsiteConfig
	err := r.db.QueryRowContext(ctx, "SELECT name FROM website").Scan(&cfg.Name)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetName replaces the website name on the singleton row.
func (r *websiteRepo) SetName(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE website SET name = $1", name)
	return err
}
