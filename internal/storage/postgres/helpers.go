package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/mmtc/internal/domain/criteria"
	domainErrors "github.com/polkiloo/mmtc/internal/domain/errors"
	"github.com/polkiloo/mmtc/internal/domain/model"
)

type helperRepository struct {
	storage *Storage
}

const selectHelpers = `SELECT id, name, dob, age, ethnic_group, nationality, skills, created_at FROM helpers`

func (r *helperRepository) Find(ctx context.Context, c criteria.Criteria) ([]model.Helper, error) {
	where, args, err := whereClause(c, helperColumns)
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.pool.Query(ctx, selectHelpers+where+" ORDER BY created_at", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Helper{}
	for rows.Next() {
		h, err := scanHelper(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *helperRepository) FindOne(ctx context.Context, c criteria.Criteria) (*model.Helper, error) {
	where, args, err := whereClause(c, helperColumns)
	if err != nil {
		return nil, err
	}
	return scanHelper(r.storage.pool.QueryRow(ctx, selectHelpers+where+" LIMIT 1", args...))
}

func (r *helperRepository) GetByID(ctx context.Context, id string) (*model.Helper, error) {
	return scanHelper(r.storage.pool.QueryRow(ctx, selectHelpers+" WHERE id=$1", id))
}

func (r *helperRepository) Create(ctx context.Context, helper model.Helper) (*model.Helper, error) {
	const query = `INSERT INTO helpers (id, name, dob, age, ethnic_group, nationality, skills)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	helper.ID = newID()
	helper.Skills = skillsOrEmpty(helper.Skills)
	err := r.storage.pool.QueryRow(ctx, query,
		helper.ID, helper.Name, helper.DOB, helper.Age, helper.EthnicGroup, helper.Nationality, helper.Skills,
	).Scan(&helper.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &helper, nil
}

func (r *helperRepository) Update(ctx context.Context, id string, helper model.Helper) error {
	const query = `UPDATE helpers SET name=$1, dob=$2, age=$3, ethnic_group=$4, nationality=$5, skills=$6 WHERE id=$7`
	tag, err := r.storage.pool.Exec(ctx, query,
		helper.Name, helper.DOB, helper.Age, helper.EthnicGroup, helper.Nationality, skillsOrEmpty(helper.Skills), id)
	return affectedOrNotFound(tag, err, domainErrors.ErrHelperNotFound)
}

func (r *helperRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM helpers WHERE id=$1`, id)
	return affectedOrNotFound(tag, err, domainErrors.ErrHelperNotFound)
}

func scanHelper(row pgx.Row) (*model.Helper, error) {
	var h model.Helper
	if err := row.Scan(&h.ID, &h.Name, &h.DOB, &h.Age, &h.EthnicGroup, &h.Nationality, &h.Skills, &h.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrHelperNotFound
		}
		return nil, err
	}
	return &h, nil
}

func skillsOrEmpty(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
