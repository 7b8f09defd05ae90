package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulated_Login(t *testing.T) {
	a := NewSimulated()
	ctx := context.Background()

	user, err := a.Login(ctx, "demo@huertohogar.cl", "Huerto1234*")
	require.NoError(t, err)
	assert.Equal(t, "demo@huertohogar.cl", user.Email)
	assert.Equal(t, "Demo Customer", user.Name)

	_, err = a.Login(ctx, "demo@huertohogar.cl", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login(ctx, "other@huertohogar.cl", "Huerto1234*")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSimulated_Register(t *testing.T) {
	a := NewSimulated()
	ctx := context.Background()

	valid := Registration{
		Name:     "Ana Pérez",
		Email:    "ana.perez@huertohogar.cl",
		Phone:    "+56912345678",
		Password: "Secreta1!",
	}
	require.NoError(t, a.Register(ctx, valid))

	tests := []struct {
		name    string
		mutate  func(*Registration)
		wantErr error
	}{
		{"digits in name", func(r *Registration) { r.Name = "Ana123" }, ErrInvalidName},
		{"empty name", func(r *Registration) { r.Name = "" }, ErrInvalidName},
		{"foreign domain", func(r *Registration) { r.Email = "ana@gmail.com" }, ErrInvalidEmail},
		{"bad phone", func(r *Registration) { r.Phone = "abc" }, ErrInvalidPhone},
		{"short password", func(r *Registration) { r.Password = "Ab1!" }, ErrWeakPassword},
		{"no symbol", func(r *Registration) { r.Password = "Secreta12" }, ErrWeakPassword},
		{"no upper", func(r *Registration) { r.Password = "secreta1!" }, ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := valid
			tt.mutate(&reg)
			assert.ErrorIs(t, a.Register(ctx, reg), tt.wantErr)
		})
	}
}

func TestSimulated_Register_PhoneOptional(t *testing.T) {
	a := NewSimulated()

	reg := Registration{
		Name:     "Ana Pérez",
		Email:    "ana@huertohogar.cl",
		Password: "Secreta1!",
	}
	assert.NoError(t, a.Register(context.Background(), reg))
}
