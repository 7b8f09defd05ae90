package entity

import (
	"time"
)

// Category groups products in the catalog.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Product represents a product in the store. Price is in integer currency
// units; Stock is never negative.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           int      `json:"price"`
	ImageURL        string   `json:"image_url"`
	Category        Category `json:"category"`
	Stock           int      `json:"stock"`
	Origin          string   `json:"origin,omitempty"`
	Sustainability  string   `json:"sustainability,omitempty"`
	Recipe          string   `json:"recipe,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// CartLine is a product snapshot plus a quantity. Quantity is always >= 1;
// a line that would drop to zero is removed instead.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// User is the session user. No password material is kept here.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Review is a product review. Rating is 1-5.
type Review struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Toast variants.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastInfo    = "info"
)

// Toast is a transient notification shown to the user.
type Toast struct {
	Message string `json:"message"`
	Variant string `json:"variant"`
	Show    bool   `json:"show"`
}

// CheckoutInfo is the shipping data collected at checkout.
type CheckoutInfo struct {
	Address      string `json:"address"`
	Contact      string `json:"contact"`
	DeliveryDate string `json:"delivery_date"`
}

// OrderItem is a line item within an order.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Order is the record of a confirmed purchase.
type Order struct {
	ID             string       `json:"id"`
	Items          []OrderItem  `json:"items"`
	Subtotal       int          `json:"subtotal"`
	PointsEarned   int          `json:"points_earned"`
	PointsRedeemed int          `json:"points_redeemed"`
	Shipping       CheckoutInfo `json:"shipping"`
	Status         string       `json:"status"` // "placed", "confirmed"
	CreatedAt      time.Time    `json:"created_at"`
}

// --- Events ---

// OrderPlaced is emitted when a purchase is confirmed.
type OrderPlaced struct {
	OrderID        string      `json:"order_id"`
	Items          []OrderItem `json:"items"`
	Subtotal       int         `json:"subtotal"`
	PointsEarned   int         `json:"points_earned"`
	PointsRedeemed int         `json:"points_redeemed"`
	PlacedAt       time.Time   `json:"placed_at"`
}

func (e OrderPlaced) EventType() string { return "OrderPlaced" }
