package test

import (
	"context"

	domainErrors "github.com/polkiloo/mmtc/internal/domain/errors"
	"github.com/polkiloo/mmtc/internal/domain/model"
)

// EmployerFacadeStub provides controllable behaviour for employer endpoints.
type EmployerFacadeStub struct {
	ListFn   func(context.Context, map[string]string) ([]model.Employer, error)
	GetFn    func(context.Context, string) (*model.Employer, error)
	CreateFn func(context.Context, model.Employer) (string, error)
	UpdateFn func(context.Context, string, model.Employer) error
	DeleteFn func(context.Context, string) error
}

func (s EmployerFacadeStub) Employers(ctx context.Context, params map[string]string) ([]model.Employer, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, params)
	}
	return []model.Employer{{ID: "employer-1", Name: "Tan Ah Kow"}}, nil
}

func (s EmployerFacadeStub) Employer(ctx context.Context, id string) (*model.Employer, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Employer{ID: id, Name: "Tan Ah Kow"}, nil
}

func (s EmployerFacadeStub) CreateEmployer(ctx context.Context, employer model.Employer) (string, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, employer)
	}
	return "employer-1", nil
}

func (s EmployerFacadeStub) UpdateEmployer(ctx context.Context, id string, employer model.Employer) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, employer)
	}
	return nil
}

func (s EmployerFacadeStub) DeleteEmployer(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// HelperFacadeStub provides controllable behaviour for helper endpoints.
type HelperFacadeStub struct {
	ListFn   func(context.Context, map[string]string) ([]model.Helper, error)
	GetFn    func(context.Context, string) (*model.Helper, error)
	CreateFn func(context.Context, model.Helper) (string, error)
	UpdateFn func(context.Context, string, model.Helper) error
	DeleteFn func(context.Context, string) error
}

func (s HelperFacadeStub) Helpers(ctx context.Context, params map[string]string) ([]model.Helper, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, params)
	}
	return []model.Helper{{ID: "helper-1", Name: "Siti"}}, nil
}

func (s HelperFacadeStub) Helper(ctx context.Context, id string) (*model.Helper, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Helper{ID: id, Name: "Siti"}, nil
}

func (s HelperFacadeStub) CreateHelper(ctx context.Context, helper model.Helper) (string, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, helper)
	}
	return "helper-1", nil
}

func (s HelperFacadeStub) UpdateHelper(ctx context.Context, id string, helper model.Helper) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, helper)
	}
	return nil
}

func (s HelperFacadeStub) DeleteHelper(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ContractFacadeStub provides controllable behaviour for contract endpoints.
type ContractFacadeStub struct {
	ListFn      func(context.Context) ([]model.Contract, error)
	GetFn       func(context.Context, string) (*model.Contract, error)
	OriginateFn func(context.Context, string, string) (string, error)
	DeleteFn    func(context.Context, string) error
}

func (s ContractFacadeStub) Contracts(ctx context.Context) ([]model.Contract, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Contract{}, nil
}

func (s ContractFacadeStub) Contract(ctx context.Context, id string) (*model.Contract, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return nil, domainErrors.ErrContractNotFound
}

func (s ContractFacadeStub) OriginateContract(ctx context.Context, employerName, helperName string) (string, error) {
	if s.OriginateFn != nil {
		return s.OriginateFn(ctx, employerName, helperName)
	}
	return "contract-1", nil
}

func (s ContractFacadeStub) DeleteContract(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// HealthCheckerStub reports configured store health.
type HealthCheckerStub struct {
	Err error
}

func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// PlacementFacadeStub aggregates facade dependencies for HTTP layer tests.
type PlacementFacadeStub struct {
	AuthFacadeStub
	EmployerFacadeStub
	HelperFacadeStub
	ContractFacadeStub
	HealthCheckerStub
}
