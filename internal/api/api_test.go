package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/page-cms-api/internal/api"
	"github.com/page-cms-api/internal/config"
	"github.com/page-cms-api/internal/mocks"
	"github.com/page-cms-api/internal/models"
	"github.com/page-cms-api/internal/service"
	"github.com/rs/zerolog"
)

type testEnv struct {
	handler http.Handler
	auth    *mocks.MockAuthService
	pages   *mocks.MockPageService
	users   *mocks.MockUserService
	website *mocks.MockWebsiteService
}

func setupTestRouter() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		auth:    mocks.NewMockAuthService(),
		pages:   &mocks.MockPageService{},
		users:   &mocks.MockUserService{},
		website: &mocks.MockWebsiteService{Config: models.WebsiteConfig{Name: "CMSmall"}},
	}
	env.auth.AddAccount(&models.Identity{ID: 1, Username: "alice@example.com", Name: "Alice"}, "password")
	env.auth.AddAccount(&models.Identity{ID: 3, Username: "admin@example.com", Name: "Admin", IsAdmin: true}, "password")

	services := &service.Services{
		Auth:    env.auth,
		Page:    env.pages,
		User:    env.users,
		Website: env.website,
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "3001", AllowOrigin: "http://localhost:5173"},
	}

	// In-memory session store; the middleware wraps the router exactly
	// as in main.
	sessions := scs.New()
	router := api.NewRouter(services, sessions, cfg, zerolog.Nop())
	env.handler = sessions.LoadAndSave(router)

	return env
}

// login authenticates and returns the session cookie.
func login(t *testing.T, env *testEnv, username, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest("POST", "/api/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Login failed with status %d: %s", w.Code, w.Body.String())
	}
	cookie := w.Header().Get("Set-Cookie")
	if cookie == "" {
		t.Fatal("Expected a session cookie")
	}
	return cookie
}

func TestHealthEndpoint(t *testing.T) {
	env := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
}

func TestLogin_WrongCredentials(t *testing.T) {
	env := setupTestRouter()

	body, _ := json.Marshal(map[string]string{"username": "alice@example.com", "password": "wrong"})
	req := httptest.NewRequest("POST", "/api/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestSessionLifecycle(t *testing.T) {
	env := setupTestRouter()
	cookie := login(t, env, "alice@example.com", "password")

	// Current identity with the session cookie
	req := httptest.NewRequest("GET", "/api/sessions/current", nil)
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var identity models.Identity
	json.Unmarshal(w.Body.Bytes(), &identity)
	if identity.Name != "Alice" {
		t.Errorf("Expected Alice, got %q", identity.Name)
	}

	// Logout
	req = httptest.NewRequest("DELETE", "/api/sessions/current", nil)
	req.Header.Set("Cookie", cookie)
	w = httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 on logout, got %d", w.Code)
	}

	// Without a valid session, current identity is a 401
	req = httptest.NewRequest("GET", "/api/sessions/current", nil)
	w = httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 after logout, got %d", w.Code)
	}
}

func TestListPages_Anonymous(t *testing.T) {
	env := setupTestRouter()
	env.pages.ListFunc = func(ctx context.Context, caller *models.Identity) ([]*models.Page, error) {
		if caller != nil {
			t.Errorf("Expected anonymous caller, got %+v", caller)
		}
		return []*models.Page{{ID: 1, Title: "Hi", Author: "Alice"}}, nil
	}

	req := httptest.NewRequest("GET", "/api/pages", nil)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var pages []*models.Page
	json.Unmarshal(w.Body.Bytes(), &pages)
	if len(pages) != 1 || pages[0].Title != "Hi" {
		t.Errorf("Unexpected pages: %v", pages)
	}
}

func TestGetPage_NotFound(t *testing.T) {
	env := setupTestRouter()
	env.pages.GetFunc = func(ctx context.Context, id int, caller *models.Identity) (*models.Page, error) {
		return nil, &models.NotFoundError{Entity: "page", ID: id}
	}

	req := httptest.NewRequest("GET", "/api/pages/42", nil)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestGetPage_InvalidID(t *testing.T) {
	env := setupTestRouter()

	req := httptest.NewRequest("GET", "/api/pages/abc", nil)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestCreatePage_RequiresAuthentication(t *testing.T) {
	env := setupTestRouter()

	body, _ := json.Marshal(map[string]string{"title": "Hi"})
	req := httptest.NewRequest("POST", "/api/pages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestCreatePage_Authenticated(t *testing.T) {
	env := setupTestRouter()
	env.pages.CreateFunc = func(ctx context.Context, caller *models.Identity, candidate *models.Page) (*models.Page, error) {
		if caller == nil || caller.Name != "Alice" {
			t.Errorf("Expected Alice as caller, got %+v", caller)
		}
		candidate.ID = 7
		return candidate, nil
	}

	cookie := login(t, env, "alice@example.com", "password")

	page := map[string]interface{}{
		"title":           "Hi",
		"author":          "Alice",
		"creationDate":    "2024-01-01",
		"publicationDate": "2024-01-01",
		"blocks": map[string]interface{}{
			"blocks": []map[string]string{
				{"type": "header", "content": "Hi"},
				{"type": "paragraph", "content": "body"},
			},
		},
	}
	body, _ := json.Marshal(page)
	req := httptest.NewRequest("POST", "/api/pages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var created models.Page
	json.Unmarshal(w.Body.Bytes(), &created)
	if created.ID != 7 {
		t.Errorf("Expected id 7, got %d", created.ID)
	}
	if len(created.Blocks.Blocks) != 2 || created.Blocks.Blocks[0].Kind != models.BlockHeader {
		t.Errorf("Expected block order preserved, got %v", created.Blocks.Blocks)
	}
}

func TestCreatePage_ValidationErrorMapping(t *testing.T) {
	env := setupTestRouter()
	env.pages.CreateFunc = func(ctx context.Context, caller *models.Identity, candidate *models.Page) (*models.Page, error) {
		return nil, &models.ValidationError{Reasons: []string{"title is required", "a page must contain at least two blocks"}}
	}

	cookie := login(t, env, "alice@example.com", "password")

	body, _ := json.Marshal(map[string]string{"author": "Alice"})
	req := httptest.NewRequest("POST", "/api/pages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d", w.Code)
	}
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	want := "title is required, a page must contain at least two blocks"
	if response["error"] != want {
		t.Errorf("Expected joined reasons %q, got %q", want, response["error"])
	}
}

func TestUpdatePage_AuthorNotFoundMapping(t *testing.T) {
	env := setupTestRouter()
	env.pages.UpdateFunc = func(ctx context.Context, id int, caller *models.Identity, candidate *models.Page) (*models.Page, error) {
		return nil, &models.AuthorizationError{Reason: "author does not exist"}
	}

	cookie := login(t, env, "admin@example.com", "password")

	body, _ := json.Marshal(map[string]string{"author": "Nobody"})
	req := httptest.NewRequest("PUT", "/api/pages/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["error"] != "Author does not exist." {
		t.Errorf("Unexpected message: %q", response["error"])
	}
}

func TestUpdatePage_ConflictMapping(t *testing.T) {
	env := setupTestRouter()
	env.pages.UpdateFunc = func(ctx context.Context, id int, caller *models.Identity, candidate *models.Page) (*models.Page, error) {
		return nil, &models.ConflictError{Reason: "creation date cannot be changed"}
	}

	cookie := login(t, env, "alice@example.com", "password")

	body, _ := json.Marshal(map[string]string{"creationDate": "2030-01-01"})
	req := httptest.NewRequest("PUT", "/api/pages/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestListUsers_AdminOnly(t *testing.T) {
	env := setupTestRouter()
	env.users.Names = []string{"Admin", "Alice", "Bob"}

	// Non-admin is denied
	cookie := login(t, env, "alice@example.com", "password")
	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Cookie", cookie)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for non-admin, got %d", w.Code)
	}

	// Admin gets the list
	cookie = login(t, env, "admin@example.com", "password")
	req = httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Cookie", cookie)
	w = httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for admin, got %d", w.Code)
	}
	var names []string
	json.Unmarshal(w.Body.Bytes(), &names)
	if len(names) != 3 {
		t.Errorf("Expected 3 names, got %v", names)
	}
}

func TestWebsiteName(t *testing.T) {
	env := setupTestRouter()

	// Public read
	req := httptest.NewRequest("GET", "/api/website/name", nil)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var cfg models.WebsiteConfig
	json.Unmarshal(w.Body.Bytes(), &cfg)
	if cfg.Name != "CMSmall" {
		t.Errorf("Expected CMSmall, got %q", cfg.Name)
	}

	// Admin rename
	cookie := login(t, env, "admin@example.com", "password")
	body, _ := json.Marshal(map[string]string{"name": "New Site"})
	req = httptest.NewRequest("PUT", "/api/website/name", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	w = httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if env.website.Config.Name != "New Site" {
		t.Errorf("Expected name to change, got %q", env.website.Config.Name)
	}
}
