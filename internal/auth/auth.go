// Package auth isolates authentication behind a port so the simulated
// credential check can be swapped for a real backend call without touching
// store logic.
package auth

import (
	"context"
	"errors"
	"regexp"
	"unicode"

	"github.com/huertohogar/shop-backend/internal/entity"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidName        = errors.New("name must contain only letters and spaces")
	ErrInvalidEmail       = errors.New("email must belong to the shop domain")
	ErrInvalidPhone       = errors.New("phone number is not valid")
	ErrWeakPassword       = errors.New("password must be 8+ characters with upper, lower, digit and symbol")
)

// Registration is the data collected by the sign-up form.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
	Commune  string `json:"commune,omitempty"`
}

// Authenticator verifies credentials and accepts registrations.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (entity.User, error)
	Register(ctx context.Context, reg Registration) error
}

var (
	namePattern  = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ ]+$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9-_.]+@huertohogar\.cl$`)
	phonePattern = regexp.MustCompile(`^[0-9+()-]{8,15}$`)
)

// strongPassword requires length 8+ with at least one lowercase, uppercase,
// digit and symbol.
func strongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// Simulated is a stand-in Authenticator: a single fixed account is accepted
// and registrations are validated but not stored.
type Simulated struct {
	Email    string
	Password string
	Name     string
}

// NewSimulated returns the demo account used until a real backend exists.
func NewSimulated() *Simulated {
	return &Simulated{
		Email:    "demo@huertohogar.cl",
		Password: "Huerto1234*",
		Name:     "Demo Customer",
	}
}

func (a *Simulated) Login(ctx context.Context, email, password string) (entity.User, error) {
	if email == a.Email && password == a.Password {
		return entity.User{Name: a.Name, Email: email}, nil
	}
	return entity.User{}, ErrInvalidCredentials
}

func (a *Simulated) Register(ctx context.Context, reg Registration) error {
	if !namePattern.MatchString(reg.Name) {
		return ErrInvalidName
	}
	if !emailPattern.MatchString(reg.Email) {
		return ErrInvalidEmail
	}
	if reg.Phone != "" && !phonePattern.MatchString(reg.Phone) {
		return ErrInvalidPhone
	}
	if !strongPassword(reg.Password) {
		return ErrWeakPassword
	}
	return nil
}
