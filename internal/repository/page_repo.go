package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/page-cms-api/internal/database"
	"github.com/page-cms-api/internal/models"
)

// pageRepo is the concrete implementation of PageRepository
type pageRepo struct {
	db *database.DB
}

// NewPageRepo creates a new page repository
func NewPageRepo(db *database.DB) PageRepository {
	return &pageRepo{db: db}
}

// scanPage decodes one row into a Page. The block sequence is stored
// as a JSON string column; decoding preserves block order.
func scanPage(scan func(dest ...interface{}) error) (*models.Page, error) {
	var (
		page            models.Page
		publicationDate sql.NullString
		blocksJSON      string
	)
	err := scan(&page.ID, &page.Title, &page.Author, &page.CreationDate, &publicationDate, &blocksJSON)
	if err != nil {
		return nil, err
	}
	page.PublicationDate = publicationDate.String

	if err := json.Unmarshal([]byte(blocksJSON), &page.Blocks); err != nil {
		return nil, fmt.Errorf("failed to decode blocks of page %d: %w", page.ID, err)
	}
	return &page, nil
}

// encodePage prepares the DB representation of a page's variable parts.
func encodePage(page *models.Page) (publicationDate sql.NullString, blocksJSON string, err error) {
	if page.PublicationDate != "" {
		publicationDate = sql.NullString{String: page.PublicationDate, Valid: true}
	}
	raw, err := json.Marshal(page.Blocks)
	if err != nil {
		return sql.NullString{}, "", fmt.Errorf("failed to encode blocks: %w", err)
	}
	return publicationDate, string(raw), nil
}

const pageColumns = `id, title, author, creation_date, publication_date, blocks`

// List retrieves all pages. Visibility filtering is the caller's
// concern so listing and lookup share one rule.
func (r *pageRepo) List(ctx context.Context) ([]*models.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*models.Page
	for rows.Next() {
		page, err := scanPage(rows.Scan)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// GetByID retrieves a page by ID. Returns nil without error when no
// such page exists.
func (r *pageRepo) GetByID(ctx context.Context, id int) (*models.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE id = $1`
	page, err := scanPage(r.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Insert stores a new page and returns the assigned id.
func (r *pageRepo) Insert(ctx context.Context, page *models.Page) (int, error) {
	publicationDate, blocksJSON, err := encodePage(page)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO pages (title, author, creation_date, publication_date, blocks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int
	err = r.db.QueryRowContext(ctx, query,
		page.Title, page.Author, page.CreationDate, publicationDate, blocksJSON,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces the mutable fields of a page. The creation date is
// never written; it is fixed at insert time. Returns false when the
// page no longer exists.
func (r *pageRepo) Update(ctx context.Context, id int, page *models.Page) (bool, error) {
	publicationDate, blocksJSON, err := encodePage(page)
	if err != nil {
		return false, err
	}

	query := `
		UPDATE pages
		SET title = $1, author = $2, publication_date = $3, blocks = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		page.Title, page.Author, publicationDate, blocksJSON, id,
	)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// Delete removes a page. Returns false when the page no longer exists.
func (r *pageRepo) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM pages WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
