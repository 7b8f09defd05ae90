package store

import (
	"context"

	"github.com/huertohogar/shop-backend/internal/auth"
	"github.com/huertohogar/shop-backend/internal/entity"
	"github.com/huertohogar/shop-backend/internal/mirror"
)

// Login authenticates through the configured authenticator and starts a
// session. A failed login emits an error toast and leaves the session empty.
func (s *Store) Login(ctx context.Context, email, password string) error {
	user, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.mu.Lock()
		s.showToastLocked("Wrong email or password", entity.ToastError)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.showToastLocked("Logged in successfully", entity.ToastSuccess)
	s.commitLocked(mirror.SliceUser)
	return nil
}

// Register validates and submits a registration. It does not start a
// session; the user logs in afterwards.
func (s *Store) Register(ctx context.Context, reg auth.Registration) error {
	if err := s.auth.Register(ctx, reg); err != nil {
		s.mu.Lock()
		s.showToastLocked(err.Error(), entity.ToastError)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.showToastLocked("Registration successful, you can now log in", entity.ToastSuccess)
	return nil
}

// Logout clears the session user.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.showToastLocked("Session closed", entity.ToastInfo)
	s.commitLocked(mirror.SliceUser)
}
