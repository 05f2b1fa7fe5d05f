package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"alma_leads_backend/internal/auth/service"
	"alma_leads_backend/platform/logger"
	"alma_leads_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type testConfig struct {
	hash string
}

func (c *testConfig) GetJWTSecret() string             { return "login-test-secret" }
func (c *testConfig) GetAccessTokenTTL() time.Duration { return 30 * time.Minute }
func (c *testConfig) GetAttorneyUsername() string      { return "attorney@alma.com" }
func (c *testConfig) GetAttorneyPasswordHash() string  { return c.hash }

func newLoginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate hash: %v", err)
	}

	svc := service.New(&testConfig{hash: string(hash)})
	h := New(svc, validator.New(), logger.New("development"))

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1/auth"))
	return engine
}

func postLogin(t *testing.T, engine *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{}
	if username != "" {
		form.Set("username", username)
	}
	if password != "" {
		form.Set("password", password)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestLoginReturnsBearerToken(t *testing.T) {
	engine := newLoginRouter(t)

	rec := postLogin(t, engine, "attorney@alma.com", "password123")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected a non-empty access_token")
	}
	if resp.TokenType != "bearer" {
		t.Errorf("token_type = %q, want %q", resp.TokenType, "bearer")
	}
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	engine := newLoginRouter(t)

	rec := postLogin(t, engine, "attorney@alma.com", "wrong")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (body: %s)", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("WWW-Authenticate") == "" {
		t.Error("missing WWW-Authenticate challenge")
	}
}

func TestLoginUnknownUserUnauthorized(t *testing.T) {
	engine := newLoginRouter(t)

	rec := postLogin(t, engine, "nobody@alma.com", "password123")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestLoginMissingFieldsValidationError(t *testing.T) {
	engine := newLoginRouter(t)

	rec := postLogin(t, engine, "attorney@alma.com", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body: %s)", rec.Code, rec.Body.String())
	}
}
