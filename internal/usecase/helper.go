package usecase

import (
	"context"
	"strings"

	"github.com/polkiloo/mmtc/internal/domain/criteria"
	domainErrors "github.com/polkiloo/mmtc/internal/domain/errors"
	"github.com/polkiloo/mmtc/internal/domain/model"
	"github.com/polkiloo/mmtc/internal/domain/repository"
)

// HelperUseCase manages helper records.
type HelperUseCase struct {
	helpers repository.HelperRepository
}

// NewHelperUseCase constructs HelperUseCase.
func NewHelperUseCase(helpers repository.HelperRepository) *HelperUseCase {
	return &HelperUseCase{helpers: helpers}
}

// List returns helpers matching the optional search parameters.
func (u *HelperUseCase) List(ctx context.Context, params map[string]string) ([]model.Helper, error) {
	return u.helpers.Find(ctx, criteria.Build(params, criteria.HelperSchema))
}

func (u *HelperUseCase) Get(ctx context.Context, id string) (*model.Helper, error) {
	return u.helpers.GetByID(ctx, id)
}

// Create stores a new helper and returns its identifier.
func (u *HelperUseCase) Create(ctx context.Context, helper model.Helper) (string, error) {
	if err := validateHelper(helper); err != nil {
		return "", err
	}
	created, err := u.helpers.Create(ctx, helper)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

// Update replaces the helper fields.
func (u *HelperUseCase) Update(ctx context.Context, id string, helper model.Helper) error {
	if err := validateHelper(helper); err != nil {
		return err
	}
	return u.helpers.Update(ctx, id, helper)
}

func (u *HelperUseCase) Delete(ctx context.Context, id string) error {
	return u.helpers.Delete(ctx, id)
}

func validateHelper(h model.Helper) error {
	var missing []string
	if strings.TrimSpace(h.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(h.DOB) == "" {
		missing = append(missing, "DOB")
	}
	if strings.TrimSpace(h.EthnicGroup) == "" {
		missing = append(missing, "ethicGroup")
	}
	if strings.TrimSpace(h.Nationality) == "" {
		missing = append(missing, "Nationality")
	}
	if len(missing) > 0 {
		return domainErrors.MissingFields(missing...)
	}
	return nil
}
