package store

import (
	"context"
	"testing"
	"time"

	"github.com/huertohogar/shop-backend/internal/auth"
	"github.com/huertohogar/shop-backend/internal/entity"
	"github.com/huertohogar/shop-backend/internal/mirror"
)

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: "FR001", Name: "Fuji Apples", Price: 1200, Stock: 10},
		{ID: "PO001", Name: "Organic Honey", Price: 5000, Stock: 2},
		{ID: "VR009", Name: "Empty Shelf", Price: 500, Stock: 0},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(context.Background(), Config{
		Mirror:   mirror.NewMemory(),
		Products: testProducts(),
		Auth:     auth.NewSimulated(),
		ToastTTL: 50 * time.Millisecond,
	})
}

func TestStore_RehydratesFromMirror(t *testing.T) {
	ctx := context.Background()
	m := mirror.NewMemory()

	first := New(ctx, Config{Mirror: m, Products: testProducts(), Auth: auth.NewSimulated()})
	if err := first.AddToCart("FR001"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := first.AddToCart("FR001"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := first.SubmitReview("FR001", 5, "very crisp"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	second := New(ctx, Config{Mirror: m, Products: testProducts(), Auth: auth.NewSimulated()})

	cart := second.Cart()
	if len(cart) != 1 || cart[0].Quantity != 2 {
		t.Fatalf("Expected rehydrated cart with one line of quantity 2, got %+v", cart)
	}
	products := second.Products()
	if products[0].Stock != 8 {
		t.Errorf("Expected rehydrated stock 8, got %d", products[0].Stock)
	}
	reviews := second.Reviews("FR001")
	if len(reviews) != 1 || reviews[0].Comment != "very crisp" {
		t.Errorf("Expected rehydrated review, got %+v", reviews)
	}
}

func TestStore_DefaultsWhenMirrorEmpty(t *testing.T) {
	s := newTestStore(t)

	if got := len(s.Products()); got != 3 {
		t.Errorf("Expected 3 seed products, got %d", got)
	}
	if got := len(s.Cart()); got != 0 {
		t.Errorf("Expected empty cart, got %d lines", got)
	}
	if got := s.Points(); got != 0 {
		t.Errorf("Expected zero points, got %d", got)
	}
	if _, ok := s.CurrentUser(); ok {
		t.Error("Expected no session user")
	}
	if got := s.Stage(); got != StageBrowsing {
		t.Errorf("Expected browsing stage, got %s", got)
	}
}

// failingMirror rejects every write; loads always miss.
type failingMirror struct{}

func (failingMirror) Load(ctx context.Context, slice string, dest any) bool { return false }
func (failingMirror) Save(ctx context.Context, slice string, value any) error {
	return context.DeadlineExceeded
}

func TestStore_MirrorWriteFailureIsSwallowed(t *testing.T) {
	s := New(context.Background(), Config{
		Mirror:   failingMirror{},
		Products: testProducts(),
		Auth:     auth.NewSimulated(),
	})

	if err := s.AddToCart("FR001"); err != nil {
		t.Fatalf("Expected mutation to succeed despite persistence failure, got: %v", err)
	}
	if len(s.Cart()) != 1 {
		t.Error("Expected in-memory cart to stay authoritative")
	}
}

func TestStore_SubscribeSignalsOnCommit(t *testing.T) {
	s := newTestStore(t)
	updates := s.Subscribe()

	if err := s.AddToCart("FR001"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("Expected a commit notification")
	}
}
