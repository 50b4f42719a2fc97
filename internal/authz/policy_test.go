package authz_test

import (
	"errors"
	"testing"

	"github.com/page-cms-api/internal/authz"
	"github.com/page-cms-api/internal/models"
)

var (
	alice = &models.Identity{ID: 1, Username: "alice@example.com", Name: "Alice"}
	bob   = &models.Identity{ID: 2, Username: "bob@example.com", Name: "Bob"}
	admin = &models.Identity{ID: 3, Username: "admin@example.com", Name: "Admin", IsAdmin: true}
)

// lookupOf builds a UserLookup over a fixed set of display names.
func lookupOf(names ...string) authz.UserLookup {
	return func(name string) (bool, error) {
		for _, n := range names {
			if n == name {
				return true, nil
			}
		}
		return false, nil
	}
}

func TestAuthorize_Unauthenticated(t *testing.T) {
	for _, action := range []authz.Action{
		authz.CreatePage, authz.UpdatePage, authz.DeletePage,
		authz.UpdateWebsiteName, authz.ListUserNames,
	} {
		decision, err := authz.Authorize(authz.Request{Action: action}, nil)
		if err != nil {
			t.Fatalf("Authorize(%s) failed: %v", action, err)
		}
		if decision.Allowed {
			t.Errorf("Expected %s to be denied for anonymous caller", action)
		}
		if decision.Reason != authz.ReasonNotAuthenticated {
			t.Errorf("Expected reason %q, got %q", authz.ReasonNotAuthenticated, decision.Reason)
		}
	}
}

func TestAuthorize_Create(t *testing.T) {
	tests := []struct {
		name       string
		caller     *models.Identity
		author     string
		allowed    bool
		denyReason string
	}{
		{name: "author creates own page", caller: alice, author: "Alice", allowed: true},
		{name: "non-admin creates for someone else", caller: bob, author: "Alice", allowed: false, denyReason: authz.ReasonNotAdminNorAuthor},
		{name: "admin creates for existing user", caller: admin, author: "Alice", allowed: true},
		{name: "admin creates for missing user", caller: admin, author: "Nobody", allowed: false, denyReason: authz.ReasonAuthorNotFound},
		{name: "admin creates own page", caller: admin, author: "Admin", allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := authz.Authorize(authz.Request{
				Action:          authz.CreatePage,
				Caller:          tt.caller,
				CandidateAuthor: tt.author,
			}, lookupOf("Alice", "Bob", "Admin"))
			if err != nil {
				t.Fatalf("Authorize failed: %v", err)
			}
			if decision.Allowed != tt.allowed {
				t.Errorf("Expected allowed=%v, got %v (reason %q)", tt.allowed, decision.Allowed, decision.Reason)
			}
			if !tt.allowed && decision.Reason != tt.denyReason {
				t.Errorf("Expected reason %q, got %q", tt.denyReason, decision.Reason)
			}
		})
	}
}

func TestAuthorize_Update(t *testing.T) {
	tests := []struct {
		name       string
		caller     *models.Identity
		target     string
		candidate  string
		allowed    bool
		denyReason string
	}{
		{name: "author updates own page", caller: alice, target: "Alice", candidate: "Alice", allowed: true},
		// The stored author keeps control even when the submitted body
		// names someone else; the author field simply is not theirs to
		// change.
		{name: "author submits foreign author field", caller: alice, target: "Alice", candidate: "Bob", allowed: true},
		{name: "non-admin updates foreign page", caller: bob, target: "Alice", candidate: "Alice", allowed: false, denyReason: authz.ReasonNotAdminNorAuthor},
		{name: "non-admin reassigns to self", caller: bob, target: "Alice", candidate: "Bob", allowed: false, denyReason: authz.ReasonNotAdminNorAuthor},
		{name: "admin reassigns to existing user", caller: admin, target: "Alice", candidate: "Bob", allowed: true},
		{name: "admin reassigns to missing user", caller: admin, target: "Alice", candidate: "Nobody", allowed: false, denyReason: authz.ReasonAuthorNotFound},
		{name: "admin keeps author", caller: admin, target: "Alice", candidate: "Alice", allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := authz.Authorize(authz.Request{
				Action:          authz.UpdatePage,
				Caller:          tt.caller,
				TargetAuthor:    tt.target,
				CandidateAuthor: tt.candidate,
			}, lookupOf("Alice", "Bob", "Admin"))
			if err != nil {
				t.Fatalf("Authorize failed: %v", err)
			}
			if decision.Allowed != tt.allowed {
				t.Errorf("Expected allowed=%v, got %v (reason %q)", tt.allowed, decision.Allowed, decision.Reason)
			}
			if !tt.allowed && decision.Reason != tt.denyReason {
				t.Errorf("Expected reason %q, got %q", tt.denyReason, decision.Reason)
			}
		})
	}
}

func TestAuthorize_Delete(t *testing.T) {
	tests := []struct {
		name    string
		caller  *models.Identity
		target  string
		allowed bool
	}{
		{name: "author deletes own page", caller: alice, target: "Alice", allowed: true},
		{name: "non-admin deletes foreign page", caller: bob, target: "Alice", allowed: false},
		{name: "admin deletes any page", caller: admin, target: "Alice", allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := authz.Authorize(authz.Request{
				Action:       authz.DeletePage,
				Caller:       tt.caller,
				TargetAuthor: tt.target,
			}, nil)
			if err != nil {
				t.Fatalf("Authorize failed: %v", err)
			}
			if decision.Allowed != tt.allowed {
				t.Errorf("Expected allowed=%v, got %v (reason %q)", tt.allowed, decision.Allowed, decision.Reason)
			}
		})
	}
}

func TestAuthorize_AdminOnlyActions(t *testing.T) {
	for _, action := range []authz.Action{authz.UpdateWebsiteName, authz.ListUserNames} {
		decision, err := authz.Authorize(authz.Request{Action: action, Caller: admin}, nil)
		if err != nil {
			t.Fatalf("Authorize(%s) failed: %v", action, err)
		}
		if !decision.Allowed {
			t.Errorf("Expected %s to be allowed for admin", action)
		}

		decision, err = authz.Authorize(authz.Request{Action: action, Caller: alice}, nil)
		if err != nil {
			t.Fatalf("Authorize(%s) failed: %v", action, err)
		}
		if decision.Allowed {
			t.Errorf("Expected %s to be denied for non-admin", action)
		}
		if decision.Reason != authz.ReasonNotAdmin {
			t.Errorf("Expected reason %q, got %q", authz.ReasonNotAdmin, decision.Reason)
		}
	}
}

func TestAuthorize_LookupFailure(t *testing.T) {
	boom := errors.New("connection refused")
	failing := func(name string) (bool, error) { return false, boom }

	_, err := authz.Authorize(authz.Request{
		Action:          authz.CreatePage,
		Caller:          admin,
		CandidateAuthor: "Alice",
	}, failing)
	if !errors.Is(err, boom) {
		t.Errorf("Expected lookup error to propagate, got %v", err)
	}
}
