package auth

import (
	"errors"
	"testing"

	"github.com/RiniPat/aaDinehub/internal/apperr"
)

func TestRegister_PasswordIsHashed(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	user, err := service.Register("alice", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.GetByID(user.ID)
	if err != nil {
		t.Fatalf("user not found: %v", err)
	}
	if stored.Password == password {
		t.Fatal("password was stored in plain text")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	_, err := service.Register("", "pw")
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if appErr.Field != "username" {
		t.Fatalf("expected offending field 'username', got %q", appErr.Field)
	}

	_, err = service.Register("bob", "")
	if !errors.As(err, &appErr) || appErr.Field != "password" {
		t.Fatalf("expected validation error on password, got %v", err)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("alice", "pw1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.Register("alice", "pw2")
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	registered, err := service.Register("alice", "pw1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := service.Login("alice", "pw1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %d, got %d", registered.ID, user.ID)
	}

	if _, err := service.Login("alice", "wrong"); err == nil {
		t.Fatal("expected error for bad password")
	}
	if _, err := service.Login("nobody", "pw1"); err == nil {
		t.Fatal("expected error for unknown user")
	}
}
