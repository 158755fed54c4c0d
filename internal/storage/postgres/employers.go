package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/mmtc/internal/domain/criteria"
	domainErrors "github.com/polkiloo/mmtc/internal/domain/errors"
	"github.com/polkiloo/mmtc/internal/domain/model"
)

type employerRepository struct {
	storage *Storage
}

const selectEmployers = `SELECT id, name, ic, contact_number, email_address, physical_address, created_at FROM employers`

func (r *employerRepository) Find(ctx context.Context, c criteria.Criteria) ([]model.Employer, error) {
	where, args, err := whereClause(c, employerColumns)
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.pool.Query(ctx, selectEmployers+where+" ORDER BY created_at", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Employer{}
	for rows.Next() {
		e, err := scanEmployer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// FindOne returns whichever matching row the database yields first.
func (r *employerRepository) FindOne(ctx context.Context, c criteria.Criteria) (*model.Employer, error) {
	where, args, err := whereClause(c, employerColumns)
	if err != nil {
		return nil, err
	}
	return scanEmployer(r.storage.pool.QueryRow(ctx, selectEmployers+where+" LIMIT 1", args...))
}

func (r *employerRepository) GetByID(ctx context.Context, id string) (*model.Employer, error) {
	return scanEmployer(r.storage.pool.QueryRow(ctx, selectEmployers+" WHERE id=$1", id))
}

func (r *employerRepository) Create(ctx context.Context, employer model.Employer) (*model.Employer, error) {
	const query = `INSERT INTO employers (id, name, ic, contact_number, email_address, physical_address)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
	employer.ID = newID()
	err := r.storage.pool.QueryRow(ctx, query,
		employer.ID, employer.Name, employer.IC, employer.ContactNumber, employer.EmailAddress, employer.PhysicalAddress,
	).Scan(&employer.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *employerRepository) Update(ctx context.Context, id string, employer model.Employer) error {
	const query = `UPDATE employers SET name=$1, ic=$2, contact_number=$3, email_address=$4, physical_address=$5 WHERE id=$6`
	tag, err := r.storage.pool.Exec(ctx, query,
		employer.Name, employer.IC, employer.ContactNumber, employer.EmailAddress, employer.PhysicalAddress, id)
	return affectedOrNotFound(tag, err, domainErrors.ErrEmployerNotFound)
}

func (r *employerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM employers WHERE id=$1`, id)
	return affectedOrNotFound(tag, err, domainErrors.ErrEmployerNotFound)
}

func scanEmployer(row pgx.Row) (*model.Employer, error) {
	var e model.Employer
	if err := row.Scan(&e.ID, &e.Name, &e.IC, &e.ContactNumber, &e.EmailAddress, &e.PhysicalAddress, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrEmployerNotFound
		}
		return nil, err
	}
	return &e, nil
}
