package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/huertohogar/shop-backend/internal/auth"
	"github.com/huertohogar/shop-backend/internal/catalog"
	"github.com/huertohogar/shop-backend/internal/entity"
	"github.com/huertohogar/shop-backend/internal/repository"
	"github.com/huertohogar/shop-backend/internal/store"
)

// Handler exposes the store operations over HTTP.
type Handler struct {
	store  *store.Store
	orders repository.OrderRepository // nil when Postgres is unavailable
}

func NewHandler(st *store.Store, orders repository.OrderRepository) *Handler {
	return &Handler{store: st, orders: orders}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.handleGetProducts)
	mux.HandleFunc("GET /api/categories", h.handleGetCategories)
	mux.HandleFunc("GET /api/products/{id}/reviews", h.handleGetReviews)
	mux.HandleFunc("POST /api/products/{id}/reviews", h.handleSubmitReview)

	mux.HandleFunc("GET /api/cart", h.handleGetCart)
	mux.HandleFunc("POST /api/cart/items", h.handleAddToCart)
	mux.HandleFunc("PUT /api/cart/items/{id}", h.handleUpdateQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.handleRemoveFromCart)

	mux.HandleFunc("POST /api/checkout", h.handleCheckout)
	mux.HandleFunc("POST /api/stage", h.handleStage)
	mux.HandleFunc("GET /api/orders", h.handleGetOrders)

	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/auth/logout", h.handleLogout)

	mux.HandleFunc("GET /api/session", h.handleGetSession)
	mux.HandleFunc("GET /api/toast", h.handleGetToast)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// storeError maps store precondition violations onto HTTP statuses.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, store.ErrOutOfStock),
		errors.Is(err, store.ErrInsufficientStock),
		errors.Is(err, store.ErrEmptyCart),
		errors.Is(err, store.ErrInsufficientPoints),
		errors.Is(err, store.ErrInvalidStage):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, store.ErrInvalidReview):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("Unexpected store error", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) handleGetProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Products())
}

func (h *Handler) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories)
}

func (h *Handler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"lines":  h.store.Cart(),
		"points": h.store.Points(),
		"stage":  h.store.Stage(),
	})
}

type addToCartRequest struct {
	ProductID string `json:"product_id"`
}

func (h *Handler) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.store.AddToCart(req.ProductID); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.store.Cart())
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.store.UpdateQuantity(r.PathValue("id"), req.Quantity); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.store.Cart())
}

func (h *Handler) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemoveFromCart(r.PathValue("id")); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.store.Cart())
}

type checkoutRequest struct {
	Shipping       entity.CheckoutInfo `json:"shipping"`
	PointsToRedeem int                 `json:"points_to_redeem"`
}

func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	earned, err := h.store.ConfirmPurchase(r.Context(), req.Shipping, req.PointsToRedeem)
	if err != nil {
		storeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"points_earned": earned,
		"points":        h.store.Points(),
	})
}

type stageRequest struct {
	Action string `json:"action"` // "open_cart", "open_checkout", "cancel"
}

func (h *Handler) handleStage(w http.ResponseWriter, r *http.Request) {
	var req stageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var err error
	switch req.Action {
	case "open_cart":
		err = h.store.OpenCart()
	case "open_checkout":
		err = h.store.OpenCheckout()
	case "cancel":
		h.store.Cancel()
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stage": h.store.Stage()})
}

func (h *Handler) handleGetOrders(w http.ResponseWriter, r *http.Request) {
	if h.orders == nil {
		writeJSON(w, http.StatusOK, []entity.Order{})
		return
	}

	orders, err := h.orders.FindRecent(r.Context(), 50)
	if err != nil {
		slog.Error("Failed to get orders", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) handleGetReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Reviews(r.PathValue("id")))
}

type submitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handler) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	productID := r.PathValue("id")
	if err := h.store.SubmitReview(productID, req.Rating, req.Comment); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.store.Reviews(productID))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.store.Login(r.Context(), req.Email, req.Password); err != nil {
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
		return
	}

	user, _ := h.store.CurrentUser()
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var reg auth.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.store.Register(r.Context(), reg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	user, ok := h.store.CurrentUser()
	if !ok {
		http.Error(w, "no active session", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user":   user,
		"points": h.store.Points(),
	})
}

func (h *Handler) handleGetToast(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Toast())
}

// EnableCORS is a middleware to allow the storefront frontend to connect.
func EnableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
