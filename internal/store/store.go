// Package store holds the authoritative shop state: catalog, cart, session
// user, loyalty points and reviews. Every mutator runs to completion under a
// single lock, writes mirrored slices through to durable storage, then
// notifies subscribers. A rejected operation leaves state unchanged.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/huertohogar/shop-backend/internal/auth"
	"github.com/huertohogar/shop-backend/internal/entity"
	"github.com/huertohogar/shop-backend/internal/messaging"
	"github.com/huertohogar/shop-backend/internal/mirror"
	"github.com/huertohogar/shop-backend/internal/repository"
)

// Precondition violations. All are local and non-fatal: the operation emits
// an error toast and mutates nothing.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOutOfStock         = errors.New("product out of stock")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInsufficientPoints = errors.New("not enough points")
	ErrInvalidReview      = errors.New("rating and comment are required")
	ErrInvalidStage       = errors.New("invalid checkout stage transition")
)

const defaultToastTTL = 3 * time.Second

// Config wires the store's collaborators. Mirror is required; the rest are
// optional (nil disables the corresponding side effect).
type Config struct {
	Mirror   mirror.Mirror
	Products []entity.Product // defaults when nothing is mirrored
	Auth     auth.Authenticator
	Orders   repository.OrderRepository
	Events   messaging.Publisher
	ToastTTL time.Duration // 0 means 3s
}

// Store is the single source of truth for shop state.
type Store struct {
	mu sync.Mutex

	products []entity.Product
	cart     []entity.CartLine
	user     *entity.User
	points   int
	reviews  map[string][]entity.Review

	stage       Stage
	reviewingID string // product with an open review form, "" when closed

	toast      entity.Toast
	toastTimer *time.Timer
	toastTTL   time.Duration

	mirror mirror.Mirror
	auth   auth.Authenticator
	orders repository.OrderRepository
	events messaging.Publisher

	subs []chan struct{}
}

// New builds a Store, rehydrating each mirrored slice from durable storage
// or falling back to the supplied defaults.
func New(ctx context.Context, cfg Config) *Store {
	s := &Store{
		stage:    StageBrowsing,
		reviews:  make(map[string][]entity.Review),
		toastTTL: cfg.ToastTTL,
		mirror:   cfg.Mirror,
		auth:     cfg.Auth,
		orders:   cfg.Orders,
		events:   cfg.Events,
	}
	if s.toastTTL == 0 {
		s.toastTTL = defaultToastTTL
	}

	if !s.mirror.Load(ctx, mirror.SliceProducts, &s.products) {
		s.products = append([]entity.Product(nil), cfg.Products...)
	}
	s.mirror.Load(ctx, mirror.SliceCart, &s.cart)
	s.mirror.Load(ctx, mirror.SliceUser, &s.user)
	s.mirror.Load(ctx, mirror.SlicePoints, &s.points)
	if !s.mirror.Load(ctx, mirror.SliceReviews, &s.reviews) || s.reviews == nil {
		s.reviews = make(map[string][]entity.Review)
	}
	return s
}

// Subscribe returns a channel signaled after every commit. Notifications are
// coalescing: a slow subscriber sees at least one signal, not one per commit.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// commitLocked writes the named slices through the mirror, then notifies
// subscribers. Write failures are swallowed: in-memory state stays
// authoritative for the session.
func (s *Store) commitLocked(slices ...string) {
	ctx := context.Background()
	for _, name := range slices {
		var v any
		switch name {
		case mirror.SliceProducts:
			v = s.products
		case mirror.SliceCart:
			v = s.cart
		case mirror.SliceUser:
			v = s.user
		case mirror.SlicePoints:
			v = s.points
		case mirror.SliceReviews:
			v = s.reviews
		}
		if err := s.mirror.Save(ctx, name, v); err != nil {
			slog.Debug("Slice write-through failed", "slice", name, "err", err)
		}
	}
	s.notifyLocked()
}

func (s *Store) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *Store) findProductLocked(productID string) *entity.Product {
	for i := range s.products {
		if s.products[i].ID == productID {
			return &s.products[i]
		}
	}
	return nil
}

func (s *Store) findLineLocked(productID string) *entity.CartLine {
	for i := range s.cart {
		if s.cart[i].ID == productID {
			return &s.cart[i]
		}
	}
	return nil
}

// --- Read-only snapshots ---

// Products returns a copy of the current catalog.
func (s *Store) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Product(nil), s.products...)
}

// Cart returns a copy of the current cart lines.
func (s *Store) Cart() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.CartLine(nil), s.cart...)
}

// CurrentUser returns the session user, if any.
func (s *Store) CurrentUser() (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return entity.User{}, false
	}
	return *s.user, true
}

// Points returns the current loyalty points balance.
func (s *Store) Points() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points
}

// Reviews returns a copy of the reviews for one product.
func (s *Store) Reviews(productID string) []entity.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Review(nil), s.reviews[productID]...)
}
