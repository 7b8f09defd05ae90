package store

import (
	"errors"
	"testing"
)

func TestSubmitReview(t *testing.T) {
	s := newTestStore(t)
	s.OpenReview("FR001")

	if err := s.SubmitReview("FR001", 4, "good apples"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	reviews := s.Reviews("FR001")
	if len(reviews) != 1 || reviews[0].Rating != 4 || reviews[0].Comment != "good apples" {
		t.Fatalf("Expected one review, got %+v", reviews)
	}
	if _, open := s.ReviewingProduct(); open {
		t.Error("Expected review form closed after submit")
	}
}

func TestSubmitReview_EmptyComment(t *testing.T) {
	s := newTestStore(t)

	err := s.SubmitReview("FR001", 4, "")
	if !errors.Is(err, ErrInvalidReview) {
		t.Fatalf("Expected ErrInvalidReview, got: %v", err)
	}
	if len(s.Reviews("FR001")) != 0 {
		t.Error("Expected review list unchanged")
	}
}

func TestSubmitReview_RatingOutOfRange(t *testing.T) {
	s := newTestStore(t)

	for _, rating := range []int{0, 6, -1} {
		if err := s.SubmitReview("FR001", rating, "fine"); !errors.Is(err, ErrInvalidReview) {
			t.Errorf("Expected ErrInvalidReview for rating %d, got: %v", rating, err)
		}
	}
	if len(s.Reviews("FR001")) != 0 {
		t.Error("Expected review list unchanged")
	}
}

func TestSubmitReview_AppendsInOrder(t *testing.T) {
	s := newTestStore(t)

	s.SubmitReview("FR001", 5, "first")
	s.SubmitReview("FR001", 3, "second")

	reviews := s.Reviews("FR001")
	if len(reviews) != 2 || reviews[0].Comment != "first" || reviews[1].Comment != "second" {
		t.Errorf("Expected append-only review list, got %+v", reviews)
	}
}

func TestOpenAndCloseReview(t *testing.T) {
	s := newTestStore(t)

	s.OpenReview("FR001")
	if id, open := s.ReviewingProduct(); !open || id != "FR001" {
		t.Errorf("Expected review form open for FR001, got %q open=%v", id, open)
	}

	s.CloseReview()
	if _, open := s.ReviewingProduct(); open {
		t.Error("Expected review form closed")
	}
}
