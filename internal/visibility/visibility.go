// Package visibility decides which pages a caller may see.
// Authenticated callers see everything; anonymous callers only see
// pages whose publication date has passed. The same rule is applied to
// bulk listings and single-page lookups, so a hidden page is simply
// absent, never a permission error.
package visibility

import (
	"time"

	"github.com/page-cms-api/internal/models"
)

// Display statuses derived from the publication date.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
)

// Visible reports whether the page may be shown to the caller.
func Visible(p *models.Page, authenticated bool, today time.Time) bool {
	if authenticated {
		return true
	}
	if p.IsDraft() {
		return false
	}
	// Dates are zero-padded ISO strings, so lexicographic comparison
	// is date comparison.
	return p.PublicationDate <= today.Format(models.DateLayout)
}

// Filter returns the pages visible to the caller, preserving order.
func Filter(pages []*models.Page, authenticated bool, today time.Time) []*models.Page {
	if authenticated {
		return pages
	}
	visible := make([]*models.Page, 0, len(pages))
	for _, p := range pages {
		if Visible(p, authenticated, today) {
			visible = append(visible, p)
		}
	}
	return visible
}

// Status returns the display status of a page relative to today.
func Status(p *models.Page, today time.Time) string {
	if p.IsDraft() {
		return StatusDraft
	}
	if p.PublicationDate > today.Format(models.DateLayout) {
		return StatusScheduled
	}
	return StatusPublished
}
