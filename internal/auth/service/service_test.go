package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type testConfig struct {
	secret   string
	ttl      time.Duration
	username string
	hash     string
}

func (c *testConfig) GetJWTSecret() string             { return c.secret }
func (c *testConfig) GetAccessTokenTTL() time.Duration { return c.ttl }
func (c *testConfig) GetAttorneyUsername() string      { return c.username }
func (c *testConfig) GetAttorneyPasswordHash() string  { return c.hash }

func newTestConfig(t *testing.T, password string) *testConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate hash: %v", err)
	}
	return &testConfig{
		secret:   "test-secret",
		ttl:      30 * time.Minute,
		username: "attorney@alma.com",
		hash:     string(hash),
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	cfg := newTestConfig(t, "password123")
	svc := New(cfg)

	token, err := svc.Login("attorney@alma.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	subject, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if subject != "attorney@alma.com" {
		t.Errorf("subject = %q, want %q", subject, "attorney@alma.com")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	cfg := newTestConfig(t, "password123")
	svc := New(cfg)

	if _, err := svc.Login("attorney@alma.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRejectsUnknownUsername(t *testing.T) {
	cfg := newTestConfig(t, "password123")
	svc := New(cfg)

	if _, err := svc.Login("someone@else.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	cfg := newTestConfig(t, "password123")
	cfg.ttl = -time.Minute
	svc := New(cfg)

	token, err := svc.Login("attorney@alma.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.VerifyToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyTokenRejectsWrongSignature(t *testing.T) {
	cfg := newTestConfig(t, "password123")
	svc := New(cfg)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "attorney@alma.com",
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	raw, err := forged.SignedString([]byte("not-the-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.VerifyToken(raw); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyTokenRejectsWrongType(t *testing.T) {
	cfg := newTestConfig(t, "password123")
	svc := New(cfg)

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "attorney@alma.com",
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	raw, err := refresh.SignedString([]byte(cfg.secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.VerifyToken(raw); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyTokenRejectsMissingExpiry(t *testing.T) {
	cfg := newTestConfig(t, "password123")
	svc := New(cfg)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "attorney@alma.com",
		"type": "access",
	})
	raw, err := noExp.SignedString([]byte(cfg.secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.VerifyToken(raw); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := New(newTestConfig(t, "password123"))

	if _, err := svc.VerifyToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}
