package repository

import (
	"context"

	"github.com/meli-labs/seller-dashboard/internal/domain"
)

type UserRepository interface {
	// Create persists a new user. Email uniqueness is enforced by the
	// store itself; a concurrent duplicate surfaces as ErrEmailTaken.
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
