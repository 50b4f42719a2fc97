// Package authz decides whether a caller identity may perform a
// mutating operation. Decisions are pure functions of their inputs;
// the user lookup needed for author reassignment is injected by the
// caller so the policy itself does no I/O.
package authz

import (
	"github.com/page-cms-api/internal/models"
)

// Action enumerates the operations subject to authorization.
type Action string

const (
	CreatePage        Action = "create page"
	UpdatePage        Action = "update page"
	DeletePage        Action = "delete page"
	UpdateWebsiteName Action = "update website name"
	ListUserNames     Action = "list user names"
)

// Deny reasons. Handlers use these to pick the user-visible message
// and status code.
const (
	ReasonNotAuthenticated  = "not authenticated"
	ReasonNotAdminNorAuthor = "not admin nor author"
	ReasonNotAdmin          = "not admin"
	ReasonAuthorNotFound    = "author does not exist"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string // set when denied
}

// Allow is the positive decision.
var Allow = Decision{Allowed: true}

// Deny builds a negative decision carrying the given reason.
func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// UserLookup resolves a display name to whether a user with that name
// exists. An error means the lookup collaborator failed, not that the
// user is missing.
type UserLookup func(name string) (bool, error)

// Request carries the inputs of an authorization check.
//
// TargetAuthor is the author of the stored page being updated or
// deleted (never the submitted body). CandidateAuthor is the author
// field of the submitted page on create and update; an admin may use it
// to assign a page to another existing user.
type Request struct {
	Action          Action
	Caller          *models.Identity // nil = anonymous
	TargetAuthor    string
	CandidateAuthor string
}

// Authorize applies the policy to a request. The lookup is only
// consulted when an admin names another user as author; it may be nil
// for actions that never reassign authorship.
func Authorize(req Request, lookup UserLookup) (Decision, error) {
	if req.Caller == nil {
		return Deny(ReasonNotAuthenticated), nil
	}

	switch req.Action {
	case CreatePage:
		return authorOrAdmin(req.Caller, req.CandidateAuthor, req.CandidateAuthor, lookup)

	case UpdatePage:
		// The page's stored author may always update it, no matter
		// what author the submitted body names. Anyone else must be an
		// admin reassigning to an existing user.
		return authorOrAdmin(req.Caller, req.TargetAuthor, req.CandidateAuthor, lookup)

	case DeletePage:
		if req.Caller.IsAdmin || req.Caller.Name == req.TargetAuthor {
			return Allow, nil
		}
		return Deny(ReasonNotAdminNorAuthor), nil

	case UpdateWebsiteName, ListUserNames:
		if req.Caller.IsAdmin {
			return Allow, nil
		}
		return Deny(ReasonNotAdmin), nil
	}

	return Deny("unknown action"), nil
}

// authorOrAdmin allows the operation when the caller is the page
// author, or when an admin names an existing user as the new author.
func authorOrAdmin(caller *models.Identity, owner, candidate string, lookup UserLookup) (Decision, error) {
	if caller.Name == owner {
		return Allow, nil
	}
	if !caller.IsAdmin {
		return Deny(ReasonNotAdminNorAuthor), nil
	}
	if lookup == nil {
		return Deny(ReasonAuthorNotFound), nil
	}
	exists, err := lookup(candidate)
	if err != nil {
		return Decision{}, err
	}
	if !exists {
		return Deny(ReasonAuthorNotFound), nil
	}
	return Allow, nil
}
