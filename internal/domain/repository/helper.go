package repository

import (
	"context"

	"github.com/polkiloo/mmtc/internal/domain/criteria"
	"github.com/polkiloo/mmtc/internal/domain/model"
)

// HelperRepository describes persistence operations with helpers.
type HelperRepository interface {
	Find(ctx context.Context, c criteria.Criteria) ([]model.Helper, error)
	// FindOne returns an arbitrary matching helper or ErrHelperNotFound.
	FindOne(ctx context.Context, c criteria.Criteria) (*model.Helper, error)
	GetByID(ctx context.Context, id string) (*model.Helper, error)
	Create(ctx context.Context, helper model.Helper) (*model.Helper, error)
	Update(ctx context.Context, id string, helper model.Helper) error
	Delete(ctx context.Context, id string) error
}
