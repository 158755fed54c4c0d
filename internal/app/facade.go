package app

import (
	"context"

	"github.com/polkiloo/mmtc/internal/domain/model"
	"github.com/polkiloo/mmtc/internal/usecase"
)

// HealthChecker reports whether the record store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type PlacementFacade struct {
	auth      *usecase.AuthUseCase
	employers *usecase.EmployerUseCase
	helpers   *usecase.HelperUseCase
	contracts *usecase.ContractUseCase
	health    HealthChecker
}

func NewPlacementFacade(auth *usecase.AuthUseCase, employers *usecase.EmployerUseCase, helpers *usecase.HelperUseCase, contracts *usecase.ContractUseCase, health HealthChecker) *PlacementFacade {
	return &PlacementFacade{auth: auth, employers: employers, helpers: helpers, contracts: contracts, health: health}
}

func (f *PlacementFacade) Register(ctx context.Context, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, email, password)
}

func (f *PlacementFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *PlacementFacade) Verify(header string) (*model.Claims, error) {
	return f.auth.Verify(header)
}

func (f *PlacementFacade) Employers(ctx context.Context, params map[string]string) ([]model.Employer, error) {
	return f.employers.List(ctx, params)
}

func (f *PlacementFacade) Employer(ctx context.Context, id string) (*model.Employer, error) {
	return f.employers.Get(ctx, id)
}

func (f *PlacementFacade) CreateEmployer(ctx context.Context, employer model.Employer) (string, error) {
	return f.employers.Create(ctx, employer)
}

func (f *PlacementFacade) UpdateEmployer(ctx context.Context, id string, employer model.Employer) error {
	return f.employers.Update(ctx, id, employer)
}

func (f *PlacementFacade) DeleteEmployer(ctx context.Context, id string) error {
	return f.employers.Delete(ctx, id)
}

func (f *PlacementFacade) Helpers(ctx context.Context, params map[string]string) ([]model.Helper, error) {
	return f.helpers.List(ctx, params)
}

func (f *PlacementFacade) Helper(ctx context.Context, id string) (*model.Helper, error) {
	return f.helpers.Get(ctx, id)
}

func (f *PlacementFacade) CreateHelper(ctx context.Context, helper model.Helper) (string, error) {
	return f.helpers.Create(ctx, helper)
}

func (f *PlacementFacade) UpdateHelper(ctx context.Context, id string, helper model.Helper) error {
	return f.helpers.Update(ctx, id, helper)
}

func (f *PlacementFacade) DeleteHelper(ctx context.Context, id string) error {
	return f.helpers.Delete(ctx, id)
}

func (f *PlacementFacade) Contracts(ctx context.Context) ([]model.Contract, error) {
	return f.contracts.List(ctx)
}

func (f *PlacementFacade) Contract(ctx context.Context, id string) (*model.Contract, error) {
	return f.contracts.Get(ctx, id)
}

func (f *PlacementFacade) OriginateContract(ctx context.Context, employerName, helperName string) (string, error) {
	return f.contracts.Originate(ctx, employerName, helperName)
}

func (f *PlacementFacade) DeleteContract(ctx context.Context, id string) error {
	return f.contracts.Delete(ctx, id)
}

func (f *PlacementFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
