package validation

import (
	"fmt"
	"time"

	"github.com/page-cms-api/internal/models"
)

// ValidatePage checks the structural invariants of a candidate page and
// returns every violated rule. All checks run; nothing short-circuits,
// so the caller can report all problems together. An empty result means
// the page is valid.
func ValidatePage(p *models.Page) []string {
	var reasons []string

	// Title
	if p.Title == "" {
		reasons = append(reasons, "title is required")
	} else if len(p.Title) > models.MaxTitleLen {
		reasons = append(reasons, fmt.Sprintf("title must be at most %d characters", models.MaxTitleLen))
	}

	// Author
	if p.Author == "" {
		reasons = append(reasons, "author is required")
	} else if len(p.Author) > models.MaxTitleLen {
		reasons = append(reasons, fmt.Sprintf("author must be at most %d characters", models.MaxTitleLen))
	}

	// Creation date
	creation, creationErr := time.Parse(models.DateLayout, p.CreationDate)
	if creationErr != nil {
		reasons = append(reasons, "creation date must be a valid date (YYYY-MM-DD)")
	}

	// Publication date: optional, absent means draft
	if p.PublicationDate != "" {
		publication, err := time.Parse(models.DateLayout, p.PublicationDate)
		if err != nil {
			reasons = append(reasons, "publication date must be a valid date (YYYY-MM-DD)")
		} else if creationErr == nil && publication.Before(creation) {
			reasons = append(reasons, "publication date cannot precede the creation date")
		}
	}

	// Blocks
	blocks := p.Blocks.Blocks
	if len(blocks) < 2 {
		reasons = append(reasons, "a page must contain at least two blocks")
	}

	hasHeader := false
	hasOther := false
	for _, b := range blocks {
		if !models.ValidBlockKinds[b.Kind] {
			reasons = append(reasons, fmt.Sprintf("unknown block type %q", b.Kind))
			continue
		}
		if b.Kind == models.BlockHeader {
			hasHeader = true
		} else {
			hasOther = true
		}
		if b.Kind == models.BlockImage && !models.ValidImages[b.Content] {
			reasons = append(reasons, fmt.Sprintf("unknown image %q", b.Content))
		}
	}
	if !hasHeader {
		reasons = append(reasons, "at least one header block is required")
	}
	if !hasOther {
		reasons = append(reasons, "at least one paragraph or image block is required")
	}

	return reasons
}

// CreationDateUnchanged reports whether an update keeps the stored,
// immutable creation date. The stored record is supplied by the caller;
// the check itself does no I/O.
func CreationDateUnchanged(stored, candidate *models.Page) bool {
	return stored.CreationDate == candidate.CreationDate
}

// ValidateWebsiteName checks the singleton website name.
func ValidateWebsiteName(name string) []string {
	var reasons []string
	if name == "" {
		reasons = append(reasons, "name is required")
	} else if len(name) > models.MaxTitleLen {
		reasons = append(reasons, fmt.Sprintf("name must be at most %d characters", models.MaxTitleLen))
	}
	return reasons
}
