package repository

import (
	"context"

	"github.com/polkiloo/mmtc/internal/domain/model"
)

// UserRepository describes persistence operations for users.
// Email uniqueness is not enforced; GetByEmail returns the first match.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}
