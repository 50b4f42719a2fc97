package mocks

import (
	"context"

	"github.com/page-cms-api/internal/models"
	"github.com/page-cms-api/internal/service"
)

// MockAuthService is a mock implementation of AuthService. Credentials
// are accepted when they appear in the Accounts map; identities are
// resolved from Identities.
type MockAuthService struct {
	Accounts   map[string]string // username -> password
	Identities map[int]*models.Identity
	LoginFunc  func(ctx context.Context, username, password string) (*models.Identity, error)
}

// Verify interface compliance
var _ service.AuthService = (*MockAuthService)(nil)

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{
		Accounts:   make(map[string]string),
		Identities: make(map[int]*models.Identity),
	}
}

// AddAccount registers a login and its identity.
func (m *MockAuthService) AddAccount(identity *models.Identity, password string) {
	m.Accounts[identity.Username] = password
	m.Identities[identity.ID] = identity
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	if stored, ok := m.Accounts[username]; !ok || stored != password {
		return nil, nil
	}
	for _, identity := range m.Identities {
		if identity.Username == username {
			return identity, nil
		}
	}
	return nil, nil
}

func (m *MockAuthService) GetIdentity(ctx context.Context, userID int) (*models.Identity, error) {
	return m.Identities[userID], nil
}

// MockPageService is a mock implementation of PageService
type MockPageService struct {
	ListFunc   func(ctx context.Context, caller *models.Identity) ([]*models.Page, error)
	GetFunc    func(ctx context.Context, id int, caller *models.Identity) (*models.Page, error)
	CreateFunc func(ctx context.Context, caller *models.Identity, candidate *models.Page) (*models.Page, error)
	UpdateFunc func(ctx context.Context, id int, caller *models.Identity, candidate *models.Page) (*models.Page, error)
	DeleteFunc func(ctx context.Context, id int, caller *models.Identity) error
}

// Verify interface compliance
var _ service.PageService = (*MockPageService)(nil)

func (m *MockPageService) ListPages(ctx context.Context, caller *models.Identity) ([]*models.Page, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, caller)
	}
	return nil, nil
}

func (m *MockPageService) GetPage(ctx context.Context, id int, caller *models.Identity) (*models.Page, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id, caller)
	}
	return nil, &models.NotFoundError{Entity: "page", ID: id}
}

func (m *MockPageService) CreatePage(ctx context.Context, caller *models.Identity, candidate *models.Page) (*models.Page, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, caller, candidate)
	}
	return candidate, nil
}

func (m *MockPageService) UpdatePage(ctx context.Context, id int, caller *models.Identity, candidate *models.Page) (*models.Page, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, caller, candidate)
	}
	return candidate, nil
}

func (m *MockPageService) DeletePage(ctx context.Context, id int, caller *models.Identity) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, caller)
	}
	return nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	Names         []string
	ListNamesFunc func(ctx context.Context, caller *models.Identity) ([]string, error)
}

// Verify interface compliance
var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) ListNames(ctx context.Context, caller *models.Identity) ([]string, error) {
	if m.ListNamesFunc != nil {
		return m.ListNamesFunc(ctx, caller)
	}
	if caller == nil || !caller.IsAdmin {
		return nil, &models.AuthorizationError{Reason: "not admin"}
	}
	return m.Names, nil
}

// MockWebsiteService is a mock implementation of WebsiteService
type MockWebsiteService struct {
	Config     models.WebsiteConfig
	UpdateFunc func(ctx context.Context, caller *models.Identity, name string) (*models.WebsiteConfig, error)
}

// Verify interface compliance
var _ service.WebsiteService = (*MockWebsiteService)(nil)

func (m *MockWebsiteService) GetName(ctx context.Context) (*models.WebsiteConfig, error) {
	return &m.Config, nil
}

func (m *MockWebsiteService) UpdateName(ctx context.Context, caller *models.Identity, name string) (*models.WebsiteConfig, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, caller, name)
	}
	if caller == nil || !caller.IsAdmin {
		return nil, &models.AuthorizationError{Reason: "not admin"}
	}
	m.Config.Name = name
	return &m.Config, nil
}
