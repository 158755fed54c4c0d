package repository

import (
	"context"

	"github.com/polkiloo/mmtc/internal/domain/criteria"
	"github.com/polkiloo/mmtc/internal/domain/model"
)

// EmployerRepository describes persistence operations with employers.
type EmployerRepository interface {
	Find(ctx context.Context, c criteria.Criteria) ([]model.Employer, error)
	// FindOne returns an arbitrary matching employer or ErrEmployerNotFound.
	FindOne(ctx context.Context, c criteria.Criteria) (*model.Employer, error)
	GetByID(ctx context.Context, id string) (*model.Employer, error)
	Create(ctx context.Context, employer model.Employer) (*model.Employer, error)
	Update(ctx context.Context, id string, employer model.Employer) error
	Delete(ctx context.Context, id string) error
}
