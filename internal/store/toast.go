package store

import (
	"time"

	"github.com/huertohogar/shop-backend/internal/entity"
)

// showToastLocked replaces the visible toast and arms its expiry timer. A
// new toast arriving before the previous one expires simply replaces it:
// last write wins, no queueing.
func (s *Store) showToastLocked(message, variant string) {
	if s.toastTimer != nil {
		s.toastTimer.Stop()
	}
	s.toast = entity.Toast{Message: message, Variant: variant, Show: true}
	s.toastTimer = time.AfterFunc(s.toastTTL, s.expireToast)
	s.notifyLocked()
}

func (s *Store) expireToast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toast.Show = false
	s.notifyLocked()
}

// Toast returns the current notification state.
func (s *Store) Toast() entity.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toast
}

// HideToast dismisses the visible toast immediately.
func (s *Store) HideToast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toast.Show = false
	s.notifyLocked()
}
