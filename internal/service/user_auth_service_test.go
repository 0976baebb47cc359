package service

import (
	"errors"
	"testing"

	"github.com/sugarloaf/bakehouse/internal/config"
	"github.com/sugarloaf/bakehouse/internal/constants"
	"github.com/sugarloaf/bakehouse/internal/repository"
)

func newUserAuthService(t *testing.T) *UserAuthService {
	t.Helper()
	db := setupServiceDB(t)
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "unit-test-secret-key-0123456789abcdef"
	cfg.JWT.ExpireHours = 1
	return NewUserAuthService(cfg, repository.NewUserRepository(db))
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	svc := newUserAuthService(t)

	user, err := svc.Register("Ana", "Ana@Example.com", "sup3r-secret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("email should normalize, got %s", user.Email)
	}
	if user.Role != constants.UserRoleCustomer || user.AuthType != constants.AuthTypeLocal {
		t.Fatalf("unexpected role/auth type: %s/%s", user.Role, user.AuthType)
	}
	if user.PasswordHash == "sup3r-secret" || user.PasswordHash == "" {
		t.Fatalf("password must be hashed")
	}

	if _, err := svc.Register("Other", "ana@example.com", "different"); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists got %v", err)
	}
	if _, err := svc.Register("Bad", "not-an-email", "pw"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail got %v", err)
	}
	if _, err := svc.Register("Blank", "blank@example.com", "   "); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for blank password got %v", err)
	}
}

func TestLoginAndVerifyToken(t *testing.T) {
	svc := newUserAuthService(t)

	registered, err := svc.Register("Ben", "ben@example.com", "sup3r-secret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, _, err := svc.Login("ben@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("nobody@example.com", "sup3r-secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for unknown email got %v", err)
	}

	user, token, expiresAt, err := svc.Login("Ben@Example.com", "sup3r-secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("login returned wrong user: %d", user.ID)
	}
	if token == "" || expiresAt.IsZero() {
		t.Fatalf("expected token and expiry")
	}
	if user.LastLoginAt == nil {
		t.Fatalf("last login should be stamped")
	}

	verified, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}
	if verified.ID != registered.ID {
		t.Fatalf("verified wrong user: %d", verified.ID)
	}

	if _, err := svc.VerifyToken(token + "tampered"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken got %v", err)
	}
}
