package mocks

import (
	"context"
	"sort"

	"github.com/page-cms-api/internal/models"
	"github.com/page-cms-api/internal/repository"
)

// MockUserRepository is an in-memory implementation of UserRepository
type MockUserRepository struct {
	Users map[int]*models.User
	Err   error // when set, every method fails with it
}

// Verify interface compliance
var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[int]*models.User)}
}

// Add stores a user under its id.
func (m *MockUserRepository) Add(user *models.User) {
	m.Users[user.ID] = user
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) ListNames(ctx context.Context) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var names []string
	for _, u := range m.Users {
		names = append(names, u.Name)
	}
	sort.Strings(names)
	return names, nil
}

// MockPageRepository is an in-memory implementation of PageRepository
type MockPageRepository struct {
	Pages  map[int]*models.Page
	NextID int
	Err    error // when set, every method fails with it

	// Optional hooks for simulating interleaved writers
	GetByIDFunc func(ctx context.Context, id int) (*models.Page, error)
	UpdateFunc  func(ctx context.Context, id int, page *models.Page) (bool, error)
}

// Verify interface compliance
var _ repository.PageRepository = (*MockPageRepository)(nil)

func NewMockPageRepository() *MockPageRepository {
	return &MockPageRepository{Pages: make(map[int]*models.Page), NextID: 1}
}

// Add stores a page, assigning an id when it has none.
func (m *MockPageRepository) Add(page *models.Page) *models.Page {
	if page.ID == 0 {
		page.ID = m.NextID
	}
	if page.ID >= m.NextID {
		m.NextID = page.ID + 1
	}
	m.Pages[page.ID] = page
	return page
}

func (m *MockPageRepository) List(ctx context.Context) ([]*models.Page, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	ids := make([]int, 0, len(m.Pages))
	for id := range m.Pages {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	pages := make([]*models.Page, 0, len(ids))
	for _, id := range ids {
		pages = append(pages, m.Pages[id])
	}
	return pages, nil
}

func (m *MockPageRepository) GetByID(ctx context.Context, id int) (*models.Page, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Pages[id], nil
}

func (m *MockPageRepository) Insert(ctx context.Context, page *models.Page) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	stored := *page
	stored.ID = m.NextID
	m.NextID++
	m.Pages[stored.ID] = &stored
	return stored.ID, nil
}

func (m *MockPageRepository) Update(ctx context.Context, id int, page *models.Page) (bool, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, page)
	}
	if m.Err != nil {
		return false, m.Err
	}
	stored, ok := m.Pages[id]
	if !ok {
		return false, nil
	}
	updated := *page
	updated.ID = id
	updated.CreationDate = stored.CreationDate
	m.Pages[id] = &updated
	return true, nil
}

func (m *MockPageRepository) Delete(ctx context.Context, id int) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Pages[id]; !ok {
		return false, nil
	}
	delete(m.Pages, id)
	return true, nil
}

// MockWebsiteRepository is an in-memory implementation of WebsiteRepository
type MockWebsiteRepository struct {
	Name string
	Err  error
}

// Verify interface compliance
var _ repository.WebsiteRepository = (*MockWebsiteRepository)(nil)

func NewMockWebsiteRepository() *MockWebsiteRepository {
	return &MockWebsiteRepository{Name: "CMSmall"}
}

func (m *MockWebsiteRepository) Get(ctx context.Context) (*models.WebsiteConfig, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &models.WebsiteConfig{Name: m.Name}, nil
}

func (m *MockWebsiteRepository) SetName(ctx context.Context, name string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Name = name
	return nil
}
