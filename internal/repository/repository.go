package repository

import (
	"context"

	"github.com/huertohogar/shop-backend/internal/entity"
)

// ProductRepository handles persistence for the catalog.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]entity.Product, error)
	// Seed inserts initial products if none exist.
	Seed(ctx context.Context, products []entity.Product) error
}

// OrderRepository persists the order-history projection.
type OrderRepository interface {
	// SaveOrder writes an order and its items in one transaction. Saving the
	// same order twice is a no-op.
	SaveOrder(ctx context.Context, order *entity.Order) error
	FindRecent(ctx context.Context, limit int) ([]entity.Order, error)
}
