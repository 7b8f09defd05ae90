package store

import (
	"fmt"

	"github.com/huertohogar/shop-backend/internal/entity"
	"github.com/huertohogar/shop-backend/internal/mirror"
)

// AddToCart moves one unit of a product from stock into the cart. If the
// product is already a cart line its quantity grows by one, otherwise a new
// line is created.
func (s *Store) AddToCart(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProductLocked(productID)
	if p == nil {
		return ErrProductNotFound
	}
	if p.Stock <= 0 {
		s.showToastLocked("Product out of stock", entity.ToastError)
		return ErrOutOfStock
	}

	p.Stock--
	if line := s.findLineLocked(productID); line != nil {
		line.Quantity++
	} else {
		s.cart = append(s.cart, entity.CartLine{Product: *p, Quantity: 1})
	}

	s.showToastLocked(p.Name+" added to cart", entity.ToastSuccess)
	s.commitLocked(mirror.SliceProducts, mirror.SliceCart)
	return nil
}

// UpdateQuantity sets a cart line to newQuantity, adjusting stock by the
// difference. A newQuantity of zero or less removes the line. An increase
// larger than the remaining stock is rejected whole: all-or-nothing.
func (s *Store) UpdateQuantity(productID string, newQuantity int) error {
	if newQuantity <= 0 {
		return s.RemoveFromCart(productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line := s.findLineLocked(productID)
	p := s.findProductLocked(productID)
	if line == nil || p == nil {
		return ErrProductNotFound
	}

	delta := newQuantity - line.Quantity
	if delta > 0 && p.Stock < delta {
		s.showToastLocked(fmt.Sprintf("Not enough stock, only %d left", p.Stock), entity.ToastError)
		return ErrInsufficientStock
	}

	p.Stock -= delta
	line.Quantity = newQuantity
	s.commitLocked(mirror.SliceProducts, mirror.SliceCart)
	return nil
}

// RemoveFromCart returns the full line quantity to stock and deletes the
// line. Removing a product that is not in the cart is a no-op.
func (s *Store) RemoveFromCart(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := s.findLineLocked(productID)
	if line == nil {
		return nil
	}

	if p := s.findProductLocked(productID); p != nil {
		p.Stock += line.Quantity
	}

	kept := s.cart[:0]
	for _, l := range s.cart {
		if l.ID != productID {
			kept = append(kept, l)
		}
	}
	s.cart = kept

	s.showToastLocked("Product removed from cart", entity.ToastInfo)
	s.commitLocked(mirror.SliceProducts, mirror.SliceCart)
	return nil
}
