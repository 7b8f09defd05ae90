package store

import (
	"context"
	"errors"
	"testing"

	"github.com/huertohogar/shop-backend/internal/auth"
	"github.com/huertohogar/shop-backend/internal/entity"
)

func TestLogin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Login(ctx, "demo@huertohogar.cl", "Huerto1234*"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	user, ok := s.CurrentUser()
	if !ok || user.Email != "demo@huertohogar.cl" {
		t.Errorf("Expected session user, got %+v ok=%v", user, ok)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	s := newTestStore(t)

	err := s.Login(context.Background(), "demo@huertohogar.cl", "wrong")
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials, got: %v", err)
	}

	if _, ok := s.CurrentUser(); ok {
		t.Error("Expected no session after failed login")
	}
	if toast := s.Toast(); !toast.Show || toast.Variant != entity.ToastError {
		t.Errorf("Expected error toast, got %+v", toast)
	}
}

func TestLogout(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	s.Login(ctx, "demo@huertohogar.cl", "Huerto1234*")

	s.Logout()

	if _, ok := s.CurrentUser(); ok {
		t.Error("Expected session cleared")
	}
}

func TestRegister_DoesNotStartSession(t *testing.T) {
	s := newTestStore(t)

	err := s.Register(context.Background(), auth.Registration{
		Name:     "Ana Pérez",
		Email:    "ana@huertohogar.cl",
		Password: "Secreta1!",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, ok := s.CurrentUser(); ok {
		t.Error("Expected registration not to log the user in")
	}
}

func TestRegister_Invalid(t *testing.T) {
	s := newTestStore(t)

	err := s.Register(context.Background(), auth.Registration{
		Name:     "Ana Pérez",
		Email:    "ana@example.com",
		Password: "Secreta1!",
	})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if toast := s.Toast(); !toast.Show || toast.Variant != entity.ToastError {
		t.Errorf("Expected error toast, got %+v", toast)
	}
}
