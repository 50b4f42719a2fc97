package service

import (
	"context"
	"time"

	"github.com/page-cms-api/internal/authz"
	"github.com/page-cms-api/internal/models"
	"github.com/page-cms-api/internal/repository"
	"github.com/page-cms-api/internal/validation"
	"github.com/page-cms-api/internal/visibility"
	"github.com/rs/zerolog"
)

// pageService is the concrete implementation of PageService. It
// orchestrates the pure validator, authorization policy and visibility
// filter around the page repository.
type pageService struct {
	repos *repository.Repositories
	log   zerolog.Logger
	now   func() time.Time
}

// newPageService creates a new PageService
func newPageService(repos *repository.Repositories, log zerolog.Logger) *pageService {
	return &pageService{
		repos: repos,
		log:   log.With().Str("service", "page").Logger(),
		now:   time.Now,
	}
}

// userExists adapts the user repository to the policy's lookup shape.
func (s *pageService) userExists(ctx context.Context) authz.UserLookup {
	return func(name string) (bool, error) {
		user, err := s.repos.User.GetByName(ctx, name)
		if err != nil {
			return false, &models.DependencyError{Op: "author lookup", Err: err}
		}
		return user != nil, nil
	}
}

// ListPages returns the pages visible to the caller, in storage order.
func (s *pageService) ListPages(ctx context.Context, caller *models.Identity) ([]*models.Page, error) {
	pages, err := s.repos.Page.List(ctx)
	if err != nil {
		return nil, &models.DependencyError{Op: "page list", Err: err}
	}
	return visibility.Filter(pages, caller != nil, s.now()), nil
}

// GetPage returns one page if it exists and is visible to the caller.
// An existing but invisible page is reported as not found, so drafts
// and scheduled pages do not leak to anonymous callers.
func (s *pageService) GetPage(ctx context.Context, id int, caller *models.Identity) (*models.Page, error) {
	page, err := s.repos.Page.GetByID(ctx, id)
	if err != nil {
		return nil, &models.DependencyError{Op: "page lookup", Err: err}
	}
	if page == nil || !visibility.Visible(page, caller != nil, s.now()) {
		return nil, &models.NotFoundError{Entity: "page", ID: id}
	}
	return page, nil
}

// CreatePage validates and authorizes a candidate page, then persists
// it and returns the stored record with its assigned id.
func (s *pageService) CreatePage(ctx context.Context, caller *models.Identity, candidate *models.Page) (*models.Page, error) {
	if reasons := validation.ValidatePage(candidate); len(reasons) > 0 {
		return nil, &models.ValidationError{Reasons: reasons}
	}

	decision, err := authz.Authorize(authz.Request{
		Action:          authz.CreatePage,
		Caller:          caller,
		CandidateAuthor: candidate.Author,
	}, s.userExists(ctx))
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, &models.AuthorizationError{Reason: decision.Reason}
	}

	id, err := s.repos.Page.Insert(ctx, candidate)
	if err != nil {
		return nil, &models.DependencyError{Op: "page insert", Err: err}
	}

	s.log.Info().Int("page_id", id).Str("author", candidate.Author).Msg("Page created")
	return s.reread(ctx, id)
}

// UpdatePage replaces a stored page after checking, in order: the page
// exists, the immutable creation date is unchanged, the candidate is
// structurally valid, and the caller may update the stored page.
func (s *pageService) UpdatePage(ctx context.Context, id int, caller *models.Identity, candidate *models.Page) (*models.Page, error) {
	stored, err := s.repos.Page.GetByID(ctx, id)
	if err != nil {
		return nil, &models.DependencyError{Op: "page lookup", Err: err}
	}
	if stored == nil {
		return nil, &models.NotFoundError{Entity: "page", ID: id}
	}

	// The creation date is write-once. A mismatch is a conflict no
	// matter what else the submitted page looks like.
	if !validation.CreationDateUnchanged(stored, candidate) {
		return nil, &models.ConflictError{Reason: "creation date cannot be changed"}
	}

	if reasons := validation.ValidatePage(candidate); len(reasons) > 0 {
		return nil, &models.ValidationError{Reasons: reasons}
	}

	decision, err := authz.Authorize(authz.Request{
		Action:          authz.UpdatePage,
		Caller:          caller,
		TargetAuthor:    stored.Author,
		CandidateAuthor: candidate.Author,
	}, s.userExists(ctx))
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, &models.AuthorizationError{Reason: decision.Reason}
	}

	updated, err := s.repos.Page.Update(ctx, id, candidate)
	if err != nil {
		return nil, &models.DependencyError{Op: "page update", Err: err}
	}
	if !updated {
		// Deleted between our read and the write. Tolerated.
		return nil, &models.NotFoundError{Entity: "page", ID: id}
	}

	s.log.Info().Int("page_id", id).Str("author", candidate.Author).Msg("Page updated")
	return s.reread(ctx, id)
}

// DeletePage removes a stored page if the caller is its author or an
// admin.
func (s *pageService) DeletePage(ctx context.Context, id int, caller *models.Identity) error {
	stored, err := s.repos.Page.GetByID(ctx, id)
	if err != nil {
		return &models.DependencyError{Op: "page lookup", Err: err}
	}
	if stored == nil {
		return &models.NotFoundError{Entity: "page", ID: id}
	}

	decision, err := authz.Authorize(authz.Request{
		Action:       authz.DeletePage,
		Caller:       caller,
		TargetAuthor: stored.Author,
	}, nil)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return &models.AuthorizationError{Reason: decision.Reason}
	}

	deleted, err := s.repos.Page.Delete(ctx, id)
	if err != nil {
		return &models.DependencyError{Op: "page delete", Err: err}
	}
	if !deleted {
		return &models.NotFoundError{Entity: "page", ID: id}
	}

	s.log.Info().Int("page_id", id).Msg("Page deleted")
	return nil
}

// reread loads the freshly written page. A concurrent delete between
// the write and this read surfaces as not found.
func (s *pageService) reread(ctx context.Context, id int) (*models.Page, error) {
	page, err := s.repos.Page.GetByID(ctx, id)
	if err != nil {
		return nil, &models.DependencyError{Op: "page lookup", Err: err}
	}
	if page == nil {
		return nil, &models.NotFoundError{Entity: "page", ID: id}
	}
	return page, nil
}
