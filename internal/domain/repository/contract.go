package repository

import (
	"context"

	"github.com/polkiloo/mmtc/internal/domain/model"
)

// ContractRepository stores contracts. Contracts are immutable, so there is
// no update operation.
type ContractRepository interface {
	List(ctx context.Context) ([]model.Contract, error)
	GetByID(ctx context.Context, id string) (*model.Contract, error)
	Create(ctx context.Context, contract model.Contract) (*model.Contract, error)
	Delete(ctx context.Context, id string) error
}
