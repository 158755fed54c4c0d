package handlers

import (
	"context"

	"github.com/polkiloo/mmtc/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	Verify(header string) (*model.Claims, error)
}

// EmployerFacade encapsulates employer operations exposed via HTTP.
type EmployerFacade interface {
	Employers(ctx context.Context, params map[string]string) ([]model.Employer, error)
	Employer(ctx context.Context, id string) (*model.Employer, error)
	CreateEmployer(ctx context.Context, employer model.Employer) (string, error)
	UpdateEmployer(ctx context.Context, id string, employer model.Employer) error
	DeleteEmployer(ctx context.Context, id string) error
}

// HelperFacade encapsulates helper operations exposed via HTTP.
type HelperFacade interface {
	Helpers(ctx context.Context, params map[string]string) ([]model.Helper, error)
	Helper(ctx context.Context, id string) (*model.Helper, error)
	CreateHelper(ctx context.Context, helper model.Helper) (string, error)
	UpdateHelper(ctx context.Context, id string, helper model.Helper) error
	DeleteHelper(ctx context.Context, id string) error
}

// ContractFacade provides contract origination and retrieval.
type ContractFacade interface {
	Contracts(ctx context.Context) ([]model.Contract, error)
	Contract(ctx context.Context, id string) (*model.Contract, error)
	OriginateContract(ctx context.Context, employerName, helperName string) (string, error)
	DeleteContract(ctx context.Context, id string) error
}

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// PlacementFacade aggregates the full set of operations used across handlers.
type PlacementFacade interface {
	AuthFacade
	EmployerFacade
	HelperFacade
	ContractFacade
	HealthChecker
}
