package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/polkiloo/mmtc/internal/domain/criteria"
	domainErrors "github.com/polkiloo/mmtc/internal/domain/errors"
	"github.com/polkiloo/mmtc/internal/domain/model"
	"github.com/polkiloo/mmtc/internal/domain/repository"
)

// ContractPolicy holds the terms applied to newly originated contracts.
type ContractPolicy struct {
	Months        int
	MonthlyAmount float64
}

// ContractUseCase originates and serves contracts.
type ContractUseCase struct {
	employers repository.EmployerRepository
	helpers   repository.HelperRepository
	contracts repository.ContractRepository
	policy    ContractPolicy
	now       func() time.Time
}

// NewContractUseCase constructs ContractUseCase.
func NewContractUseCase(employers repository.EmployerRepository, helpers repository.HelperRepository, contracts repository.ContractRepository, policy ContractPolicy) *ContractUseCase {
	return &ContractUseCase{
		employers: employers,
		helpers:   helpers,
		contracts: contracts,
		policy:    policy,
		now:       time.Now,
	}
}

// Originate resolves an employer and a helper by case-insensitive name
// substring and stores a contract holding snapshots of both plus a loan fee
// schedule starting today. Both lookups finish before anything is written.
//
// When several documents match a name the store's first match wins; which one
// that is stays unspecified.
func (u *ContractUseCase) Originate(ctx context.Context, employerName, helperName string) (string, error) {
	var missing []string
	if strings.TrimSpace(employerName) == "" {
		missing = append(missing, "employerName")
	}
	if strings.TrimSpace(helperName) == "" {
		missing = append(missing, "helperName")
	}
	if len(missing) > 0 {
		return "", domainErrors.MissingFields(missing...)
	}

	employer, err := u.employers.FindOne(ctx, criteria.Substring(criteria.FieldName, employerName))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return "", domainErrors.ErrEmployerNotFound
		}
		return "", fmt.Errorf("lookup employer: %w", err)
	}

	helper, err := u.helpers.FindOne(ctx, criteria.Substring(criteria.FieldName, helperName))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return "", domainErrors.ErrHelperNotFound
		}
		return "", fmt.Errorf("lookup helper: %w", err)
	}

	start := startOfDay(u.now())
	contract := model.Contract{
		Employer:        employer.Snapshot(),
		Helper:          helper.Snapshot(),
		StartDate:       FormatDate(start),
		LoanFeeSchedule: GenerateInvoices(start, u.policy.Months, u.policy.MonthlyAmount),
	}

	created, err := u.contracts.Create(ctx, contract)
	if err != nil {
		return "", fmt.Errorf("store contract: %w", err)
	}
	return created.ID, nil
}

// List returns every stored contract.
func (u *ContractUseCase) List(ctx context.Context) ([]model.Contract, error) {
	return u.contracts.List(ctx)
}

// Get fetches a contract by identifier.
func (u *ContractUseCase) Get(ctx context.Context, id string) (*model.Contract, error) {
	return u.contracts.GetByID(ctx, id)
}

// Delete removes a contract by identifier.
func (u *ContractUseCase) Delete(ctx context.Context, id string) error {
	return u.contracts.Delete(ctx, id)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
