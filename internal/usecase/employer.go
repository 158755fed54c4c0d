package usecase

import (
	"context"
	"strings"

	"github.com/polkiloo/mmtc/internal/domain/criteria"
	domainErrors "github.com/polkiloo/mmtc/internal/domain/errors"
	"github.com/polkiloo/mmtc/internal/domain/model"
	"github.com/polkiloo/mmtc/internal/domain/repository"
)

// EmployerUseCase manages employer records.
type EmployerUseCase struct {
	employers repository.EmployerRepository
}

// NewEmployerUseCase constructs EmployerUseCase.
func NewEmployerUseCase(employers repository.EmployerRepository) *EmployerUseCase {
	return &EmployerUseCase{employers: employers}
}

// List returns employers matching the optional search parameters.
func (u *EmployerUseCase) List(ctx context.Context, params map[string]string) ([]model.Employer, error) {
	return u.employers.Find(ctx, criteria.Build(params, criteria.EmployerSchema))
}

func (u *EmployerUseCase) Get(ctx context.Context, id string) (*model.Employer, error) {
	return u.employers.GetByID(ctx, id)
}

// Create stores a new employer and returns its identifier.
func (u *EmployerUseCase) Create(ctx context.Context, employer model.Employer) (string, error) {
	if err := validateEmployer(employer); err != nil {
		return "", err
	}
	created, err := u.employers.Create(ctx, employer)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

// Update replaces the employer fields.
func (u *EmployerUseCase) Update(ctx context.Context, id string, employer model.Employer) error {
	if err := validateEmployer(employer); err != nil {
		return err
	}
	return u.employers.Update(ctx, id, employer)
}

func (u *EmployerUseCase) Delete(ctx context.Context, id string) error {
	return u.employers.Delete(ctx, id)
}

func validateEmployer(e model.Employer) error {
	var missing []string
	if strings.TrimSpace(e.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(e.IC) == "" {
		missing = append(missing, "ic")
	}
	if strings.TrimSpace(e.ContactNumber) == "" {
		missing = append(missing, "phone_number")
	}
	if strings.TrimSpace(e.PhysicalAddress) == "" {
		missing = append(missing, "physical_address")
	}
	if len(missing) > 0 {
		return domainErrors.MissingFields(missing...)
	}
	return nil
}
