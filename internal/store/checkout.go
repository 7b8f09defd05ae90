package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/huertohogar/shop-backend/internal/entity"
	"github.com/huertohogar/shop-backend/internal/mirror"
)

// Stage is the UI-visible step of the purchase flow.
type Stage string

const (
	StageBrowsing     Stage = "browsing"
	StageCartOpen     Stage = "cart_open"
	StageCheckoutOpen Stage = "checkout_open"
)

// TopicOrdersPlaced is the topic OrderPlaced events are published to.
const TopicOrdersPlaced = "orders.placed"

// Stage returns the current purchase-flow stage.
func (s *Store) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// OpenCart moves Browsing -> CartOpen.
func (s *Store) OpenCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageBrowsing {
		return ErrInvalidStage
	}
	s.stage = StageCartOpen
	s.notifyLocked()
	return nil
}

// OpenCheckout moves CartOpen -> CheckoutOpen.
func (s *Store) OpenCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageCartOpen {
		return ErrInvalidStage
	}
	s.stage = StageCheckoutOpen
	s.notifyLocked()
	return nil
}

// Cancel returns to Browsing from CartOpen or CheckoutOpen with no side
// effects. Cancelling while already browsing is a no-op.
func (s *Store) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage == StageBrowsing {
		return
	}
	s.stage = StageBrowsing
	s.notifyLocked()
}

// ConfirmPurchase finalizes the cart: credits floor(subtotal/100) points,
// debits the redeemed points, clears the cart and returns the points earned.
// The three updates apply atomically; a precondition failure changes
// nothing. Callers pre-check the points balance in the UI, but the operation
// re-validates so a stale caller can never drive the balance negative.
//
// The order projection and the OrderPlaced event are written after the
// commit, best-effort: their failure is logged and never rolls back state.
func (s *Store) ConfirmPurchase(ctx context.Context, info entity.CheckoutInfo, pointsToRedeem int) (int, error) {
	s.mu.Lock()

	if len(s.cart) == 0 {
		s.showToastLocked("Your cart is empty", entity.ToastError)
		s.mu.Unlock()
		return 0, ErrEmptyCart
	}
	if pointsToRedeem < 0 || pointsToRedeem > s.points {
		s.showToastLocked("Not enough points", entity.ToastError)
		s.mu.Unlock()
		return 0, ErrInsufficientPoints
	}

	subtotal := 0
	items := make([]entity.OrderItem, 0, len(s.cart))
	for _, line := range s.cart {
		subtotal += line.Price * line.Quantity
		items = append(items, entity.OrderItem{
			ProductID: line.ID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}
	earned := subtotal / 100

	order := entity.Order{
		ID:             uuid.New().String(),
		Items:          items,
		Subtotal:       subtotal,
		PointsEarned:   earned,
		PointsRedeemed: pointsToRedeem,
		Shipping:       info,
		Status:         "placed",
		CreatedAt:      time.Now(),
	}

	s.points += earned - pointsToRedeem
	s.cart = nil
	s.stage = StageBrowsing
	s.showToastLocked("Purchase confirmed, thank you!", entity.ToastSuccess)
	s.commitLocked(mirror.SliceCart, mirror.SlicePoints)
	s.mu.Unlock()

	if s.orders != nil {
		if err := s.orders.SaveOrder(ctx, &order); err != nil {
			slog.Error("Failed to save order projection", "order_id", order.ID, "err", err)
		}
	}
	if s.events != nil {
		event := entity.OrderPlaced{
			OrderID:        order.ID,
			Items:          order.Items,
			Subtotal:       order.Subtotal,
			PointsEarned:   order.PointsEarned,
			PointsRedeemed: order.PointsRedeemed,
			PlacedAt:       order.CreatedAt,
		}
		if err := s.events.PublishEvent(ctx, TopicOrdersPlaced, order.ID, event); err != nil {
			slog.Error("Failed to publish OrderPlaced", "order_id", order.ID, "err", err)
		}
	}

	slog.Info("Purchase confirmed", "order_id", order.ID, "subtotal", subtotal, "points_earned", earned, "points_redeemed", pointsToRedeem)
	return earned, nil
}
