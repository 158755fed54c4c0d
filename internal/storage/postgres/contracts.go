package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/mmtc/internal/domain/errors"
	"github.com/polkiloo/mmtc/internal/domain/model"
)

type contractRepository struct {
	storage *Storage
}

const selectContracts = `SELECT id, employer, helper, start_date, loan_fee, created_at FROM contracts`

func (r *contractRepository) List(ctx context.Context) ([]model.Contract, error) {
	rows, err := r.storage.pool.Query(ctx, selectContracts+" ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Contract{}
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *contractRepository) GetByID(ctx context.Context, id string) (*model.Contract, error) {
	return scanContract(r.storage.pool.QueryRow(ctx, selectContracts+" WHERE id=$1", id))
}

// Create stores the snapshots and schedule as JSONB documents.
func (r *contractRepository) Create(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	const query = `INSERT INTO contracts (id, employer, helper, start_date, loan_fee)
                   VALUES ($1, $2, $3, $4, $5) RETURNING created_at`

	employer, err := json.Marshal(contract.Employer)
	if err != nil {
		return nil, fmt.Errorf("encode employer snapshot: %w", err)
	}
	helper, err := json.Marshal(contract.Helper)
	if err != nil {
		return nil, fmt.Errorf("encode helper snapshot: %w", err)
	}
	if contract.LoanFeeSchedule == nil {
		contract.LoanFeeSchedule = []model.Invoice{}
	}
	loanFee, err := json.Marshal(contract.LoanFeeSchedule)
	if err != nil {
		return nil, fmt.Errorf("encode loan fee schedule: %w", err)
	}

	contract.ID = newID()
	err = r.storage.pool.QueryRow(ctx, query, contract.ID, employer, helper, contract.StartDate, loanFee).Scan(&contract.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM contracts WHERE id=$1`, id)
	return affectedOrNotFound(tag, err, domainErrors.ErrContractNotFound)
}

func scanContract(row pgx.Row) (*model.Contract, error) {
	var (
		c                         model.Contract
		employer, helper, loanFee []byte
	)
	if err := row.Scan(&c.ID, &employer, &helper, &c.StartDate, &loanFee, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrContractNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(employer, &c.Employer); err != nil {
		return nil, fmt.Errorf("decode employer snapshot: %w", err)
	}
	if err := json.Unmarshal(helper, &c.Helper); err != nil {
		return nil, fmt.Errorf("decode helper snapshot: %w", err)
	}
	if err := json.Unmarshal(loanFee, &c.LoanFeeSchedule); err != nil {
		return nil, fmt.Errorf("decode loan fee schedule: %w", err)
	}
	return &c, nil
}
