package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blog-cms-api/internal/api"
	"github.com/blog-cms-api/internal/config"
	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/service"
	"github.com/blog-cms-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "3000"},
		Auth:   config.AuthConfig{Secret: "test-secret", TokenTTL: time.Hour},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:4200"}},
	}
	log := zerolog.Nop()

	services := service.NewServices(store.New(), cfg, log)
	return api.NewRouter(services, cfg, log)
}

func doRequest(router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter()

	w, _ := doRequest(router, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "blog-cms-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestPostLifecycle(t *testing.T) {
	router := setupTestRouter()

	// Create
	w, env := doRequest(router, "POST", "/posts", `{"title":"T","content":"C","mainImage":"img"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var created models.Post
	json.Unmarshal(env.Data, &created)
	if created.ID != "1" {
		t.Errorf("Expected id '1', got %q", created.ID)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("Expected createdAt == updatedAt at creation")
	}

	// Partial update keeps unsupplied fields
	w, env = doRequest(router, "PUT", "/posts/1", `{"title":"T2"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated models.Post
	json.Unmarshal(env.Data, &updated)
	if updated.Title != "T2" {
		t.Errorf("Expected title 'T2', got %q", updated.Title)
	}
	if updated.Content != "C" {
		t.Errorf("Expected content 'C' to survive the update, got %q", updated.Content)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("createdAt must not change on update")
	}

	// Delete
	w, env = doRequest(router, "DELETE", "/posts/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !env.Success || env.Message != "Post deleted" {
		t.Errorf("Expected delete confirmation, got %+v", env)
	}

	// Fetch after delete
	w, env = doRequest(router, "GET", "/posts/1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 after delete, got %d", w.Code)
	}
	if env.Success {
		t.Errorf("Expected success:false after delete")
	}

	// Second delete is not-found too
	w, _ = doRequest(router, "DELETE", "/posts/1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 on second delete, got %d", w.Code)
	}
}

func TestNotFoundPolicyIsUniform(t *testing.T) {
	router := setupTestRouter()

	paths := []struct {
		method, path, body, message string
	}{
		{"GET", "/posts/9", "", "Post not found"},
		{"PUT", "/posts/9", `{"title":"x"}`, "Post not found"},
		{"DELETE", "/posts/9", "", "Post not found"},
		{"GET", "/categories/9", "", "Category not found"},
		{"PUT", "/categories/9", `{"name":"x"}`, "Category not found"},
		{"DELETE", "/categories/9", "", "Category not found"},
		{"GET", "/comments/9", "", "Comment not found"},
		{"DELETE", "/comments/9", "", "Comment not found"},
		{"GET", "/authors/9", "", "Author not found"},
		{"DELETE", "/authors/9", "", "Author not found"},
	}

	for _, tt := range paths {
		w, env := doRequest(router, tt.method, tt.path, tt.body)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected 404, got %d", tt.method, tt.path, w.Code)
		}
		if env.Success || env.Message != tt.message {
			t.Errorf("%s %s: expected %q envelope, got %+v", tt.method, tt.path, tt.message, env)
		}
	}
}

func TestCreatePostValidation(t *testing.T) {
	router := setupTestRouter()

	w, env := doRequest(router, "POST", "/posts", `{"title":"T"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if !strings.Contains(env.Message, "content") || !strings.Contains(env.Message, "mainImage") {
		t.Errorf("Expected message to name missing fields, got %q", env.Message)
	}

	// Nothing was stored
	_, env = doRequest(router, "GET", "/posts", "")
	var posts []models.Post
	json.Unmarshal(env.Data, &posts)
	if len(posts) != 0 {
		t.Errorf("Expected no stored posts after rejection, got %d", len(posts))
	}
}

func TestCreateAuthorEmailValidation(t *testing.T) {
	router := setupTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"firstName":"Ada","lastName":"Lovelace"}`},
		{"malformed email", `{"firstName":"Ada","lastName":"Lovelace","email":"not-an-email"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doRequest(router, "POST", "/authors", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", w.Code)
			}
			if !strings.Contains(env.Message, "email") {
				t.Errorf("Expected message to reference email, got %q", env.Message)
			}
		})
	}

	_, env := doRequest(router, "GET", "/authors", "")
	var authors []models.Author
	json.Unmarshal(env.Data, &authors)
	if len(authors) != 0 {
		t.Errorf("Expected no stored authors after rejections, got %d", len(authors))
	}
}

func TestUnknownFieldsAreRejected(t *testing.T) {
	router := setupTestRouter()

	w, env := doRequest(router, "POST", "/posts", `{"title":"T","content":"C","mainImage":"img","extra":"nope"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if !strings.Contains(env.Message, "extra") {
		t.Errorf("Expected message to name the unknown field, got %q", env.Message)
	}

	// Categories get no field validation, but unknown fields still fail
	// at decode time.
	w, _ = doRequest(router, "POST", "/categories", `{"name":"n","bogus":true}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown category field, got %d", w.Code)
	}
}

func TestCategoryHasNoFieldValidation(t *testing.T) {
	router := setupTestRouter()

	w, env := doRequest(router, "POST", "/categories", `{}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201 for empty category body, got %d", w.Code)
	}

	var category models.Category
	json.Unmarshal(env.Data, &category)
	if category.ID != "1" || category.Name != "" {
		t.Errorf("Expected stored empty-name category, got %+v", category)
	}
}

func TestPostsByCategoryRoute(t *testing.T) {
	router := setupTestRouter()

	doRequest(router, "POST", "/categories", `{"name":"go"}`)
	doRequest(router, "POST", "/posts", `{"title":"a","content":"c","mainImage":"i","categoryId":"1"}`)
	doRequest(router, "POST", "/posts", `{"title":"b","content":"c","mainImage":"i"}`)

	w, env := doRequest(router, "GET", "/posts/category/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var posts []models.Post
	json.Unmarshal(env.Data, &posts)
	if len(posts) != 1 || posts[0].Title != "a" {
		t.Errorf("Expected exactly the categorized post, got %+v", posts)
	}

	// Orphaned category ids are tolerated and simply match nothing.
	_, env = doRequest(router, "GET", "/posts/category/42", "")
	json.Unmarshal(env.Data, &posts)
	if len(posts) != 0 {
		t.Errorf("Expected empty result for unknown category, got %+v", posts)
	}
	if string(env.Data) != "[]" {
		t.Errorf("Expected empty JSON array, got %s", env.Data)
	}
}

func TestCommentQueryFilters(t *testing.T) {
	router := setupTestRouter()

	doRequest(router, "POST", "/comments", `{"text":"a","postId":"1","authorId":"7"}`)
	doRequest(router, "POST", "/comments", `{"text":"b","postId":"2","authorId":"7"}`)
	doRequest(router, "POST", "/comments", `{"text":"c","postId":"1","authorId":"8","parentCommentId":"1"}`)

	var comments []models.Comment

	_, env := doRequest(router, "GET", "/comments?postId=1", "")
	json.Unmarshal(env.Data, &comments)
	if len(comments) != 2 {
		t.Errorf("Expected 2 comments for postId=1, got %d", len(comments))
	}

	_, env = doRequest(router, "GET", "/comments?authorId=7", "")
	json.Unmarshal(env.Data, &comments)
	if len(comments) != 2 {
		t.Errorf("Expected 2 comments for authorId=7, got %d", len(comments))
	}

	_, env = doRequest(router, "GET", "/comments", "")
	json.Unmarshal(env.Data, &comments)
	if len(comments) != 3 {
		t.Errorf("Expected 3 comments unfiltered, got %d", len(comments))
	}

	_, env = doRequest(router, "GET", "/comments?postId=404", "")
	json.Unmarshal(env.Data, &comments)
	if len(comments) != 0 {
		t.Errorf("Expected empty result, got %d", len(comments))
	}
}

func TestAuthorEmailQuery(t *testing.T) {
	router := setupTestRouter()

	doRequest(router, "POST", "/authors", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`)

	var authors []models.Author

	_, env := doRequest(router, "GET", "/authors?email=ada@example.com", "")
	json.Unmarshal(env.Data, &authors)
	if len(authors) != 1 || authors[0].FirstName != "Ada" {
		t.Errorf("Expected single matching author, got %+v", authors)
	}

	_, env = doRequest(router, "GET", "/authors?email=nobody@example.com", "")
	json.Unmarshal(env.Data, &authors)
	if len(authors) != 0 {
		t.Errorf("Expected empty list for unknown email, got %+v", authors)
	}
}

func TestLoginAndVerify(t *testing.T) {
	router := setupTestRouter()

	w, env := doRequest(router, "POST", "/auth/login", `{"username":"admin","password":"admin"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result models.LoginResult
	json.Unmarshal(env.Data, &result)
	if result.AccessToken == "" {
		t.Fatal("Expected a token")
	}
	if result.User.ID != "1" || result.User.Username != "admin" {
		t.Errorf("Expected admin user projection, got %+v", result.User)
	}

	w, env = doRequest(router, "POST", "/auth/verify", `{"token":"`+result.AccessToken+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var payload map[string]interface{}
	json.Unmarshal(env.Data, &payload)
	if payload["username"] != "admin" || payload["sub"] != "1" {
		t.Errorf("Expected username/sub claims for admin, got %v", payload)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := setupTestRouter()

	tests := []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"root","password":"admin"}`,
		`{"username":"","password":""}`,
	}

	for _, body := range tests {
		w, env := doRequest(router, "POST", "/auth/login", body)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401 for %s, got %d", body, w.Code)
		}
		if env.Success || env.Message != "Invalid credentials" {
			t.Errorf("Expected generic rejection, got %+v", env)
		}
	}
}

func TestVerifyRejectsInvalidToken(t *testing.T) {
	router := setupTestRouter()

	w, env := doRequest(router, "POST", "/auth/verify", `{"token":"garbage"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
	if env.Success || env.Message != "Invalid token" {
		t.Errorf("Expected generic rejection, got %+v", env)
	}
}

func TestCORSAllowList(t *testing.T) {
	router := setupTestRouter()

	// Allowed origin gets the credentialed CORS headers back
	req := httptest.NewRequest("GET", "/posts", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:4200" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("Expected credentials to be allowed")
	}

	// Unknown origin is rejected
	req = httptest.NewRequest("GET", "/posts", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for disallowed origin, got %d", w.Code)
	}

	// No Origin header: non-browser clients always pass
	req = httptest.NewRequest("GET", "/posts", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 without Origin, got %d", w.Code)
	}

	// Preflight from an allowed origin
	req = httptest.NewRequest("OPTIONS", "/posts", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204 for preflight, got %d", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := setupTestRouter()

	w, _ := doRequest(router, "GET", "/health", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a generated X-Request-ID header")
	}

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-ID") != "abc-123" {
		t.Error("Expected the client request id to be echoed")
	}
}

func TestDashboardIsServed(t *testing.T) {
	router := setupTestRouter()

	w, _ := doRequest(router, "GET", "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "login-form") {
		t.Error("Expected the app shell to contain the login form")
	}

	// Unknown client-side routes fall back to the shell
	w, _ = doRequest(router, "GET", "/dashboard", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "login-form") {
		t.Error("Expected SPA fallback for unknown GET paths")
	}
}
