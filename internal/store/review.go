package store

import (
	"github.com/huertohogar/shop-backend/internal/entity"
	"github.com/huertohogar/shop-backend/internal/mirror"
)

// OpenReview marks a product as having its review form open.
func (s *Store) OpenReview(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviewingID = productID
	s.notifyLocked()
}

// CloseReview closes the review form without submitting.
func (s *Store) CloseReview() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviewingID = ""
	s.notifyLocked()
}

// ReviewingProduct returns the product whose review form is open, if any.
func (s *Store) ReviewingProduct() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reviewingID, s.reviewingID != ""
}

// SubmitReview appends a review to a product's list. Rating must be 1-5 and
// the comment non-empty; a violation leaves the list unchanged. Submitting
// also closes any open review form.
func (s *Store) SubmitReview(productID string, rating int, comment string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rating < 1 || rating > 5 || comment == "" {
		s.showToastLocked("Please fill in all fields", entity.ToastError)
		return ErrInvalidReview
	}

	s.reviews[productID] = append(s.reviews[productID], entity.Review{Rating: rating, Comment: comment})
	s.reviewingID = ""
	s.showToastLocked("Review submitted", entity.ToastSuccess)
	s.commitLocked(mirror.SliceReviews)
	return nil
}
