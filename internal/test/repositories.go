package test

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"sync"

	"github.com/polkiloo/mmtc/internal/domain/criteria"
	domainErrors "github.com/polkiloo/mmtc/internal/domain/errors"
	"github.com/polkiloo/mmtc/internal/domain/model"
	"github.com/polkiloo/mmtc/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	mu    sync.Mutex
	Users []*model.User
	Next  int
	Err   error
}

// NewUserRepositoryStub constructs stub repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{}
}

// Create stores user unless stub has explicit error. Emails are not unique.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	user := &model.User{ID: fmt.Sprintf("user-%d", s.Next), Email: email, PasswordHash: passwordHash}
	s.Users = append(s.Users, user)
	return user, nil
}

// GetByEmail fetches the first user with the email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainErrors.ErrUserNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainErrors.ErrUserNotFound
}

// EmployerRepositoryStub keeps employers in insertion order.
type EmployerRepositoryStub struct {
	mu        sync.Mutex
	Items     []model.Employer
	Next      int
	Err       error
	FindOneFn func(context.Context, criteria.Criteria) (*model.Employer, error)
	Queries   []criteria.Criteria
}

// NewEmployerRepositoryStub constructs stub seeded with items.
func NewEmployerRepositoryStub(items ...model.Employer) *EmployerRepositoryStub {
	return &EmployerRepositoryStub{Items: items}
}

// Find returns every employer satisfying all predicates.
func (s *EmployerRepositoryStub) Find(ctx context.Context, c criteria.Criteria) ([]model.Employer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Queries = append(s.Queries, c)
	if s.Err != nil {
		return nil, s.Err
	}
	out := []model.Employer{}
	for _, e := range s.Items {
		if matches(c, func(field string) []string { return employerValues(e, field) }) {
			out = append(out, e)
		}
	}
	return out, nil
}

// FindOne returns the first matching employer.
func (s *EmployerRepositoryStub) FindOne(ctx context.Context, c criteria.Criteria) (*model.Employer, error) {
	if s.FindOneFn != nil {
		return s.FindOneFn(ctx, c)
	}
	found, err := s.Find(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domainErrors.ErrEmployerNotFound
	}
	return &found[0], nil
}

// GetByID fetches employer by identifier.
func (s *EmployerRepositoryStub) GetByID(ctx context.Context, id string) (*model.Employer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if i := s.index(id); i >= 0 {
		e := s.Items[i]
		return &e, nil
	}
	return nil, domainErrors.ErrEmployerNotFound
}

// Create assigns a sequential identifier and stores the employer.
func (s *EmployerRepositoryStub) Create(ctx context.Context, employer model.Employer) (*model.Employer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	employer.ID = "employer-" + strconv.Itoa(s.Next)
	s.Items = append(s.Items, employer)
	return &employer, nil
}

// Update replaces stored employer fields.
func (s *EmployerRepositoryStub) Update(ctx context.Context, id string, employer model.Employer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	i := s.index(id)
	if i < 0 {
		return domainErrors.ErrEmployerNotFound
	}
	employer.ID = id
	s.Items[i] = employer
	return nil
}

// Delete removes stored employer.
func (s *EmployerRepositoryStub) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	i := s.index(id)
	if i < 0 {
		return domainErrors.ErrEmployerNotFound
	}
	s.Items = slices.Delete(s.Items, i, i+1)
	return nil
}

func (s *EmployerRepositoryStub) index(id string) int {
	return slices.IndexFunc(s.Items, func(e model.Employer) bool { return e.ID == id })
}

// HelperRepositoryStub keeps helpers in insertion order.
type HelperRepositoryStub struct {
	mu        sync.Mutex
	Items     []model.Helper
	Next      int
	Err       error
	FindOneFn func(context.Context, criteria.Criteria) (*model.Helper, error)
	Queries   []criteria.Criteria
}

// NewHelperRepositoryStub constructs stub seeded with items.
func NewHelperRepositoryStub(items ...model.Helper) *HelperRepositoryStub {
	return &HelperRepositoryStub{Items: items}
}

// Find returns every helper satisfying all predicates.
func (s *HelperRepositoryStub) Find(ctx context.Context, c criteria.Criteria) ([]model.Helper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Queries = append(s.Queries, c)
	if s.Err != nil {
		return nil, s.Err
	}
	out := []model.Helper{}
	for _, h := range s.Items {
		if matches(c, func(field string) []string { return helperValues(h, field) }) {
			out = append(out, h)
		}
	}
	return out, nil
}

// FindOne returns the first matching helper.
func (s *HelperRepositoryStub) FindOne(ctx context.Context, c criteria.Criteria) (*model.Helper, error) {
	if s.FindOneFn != nil {
		return s.FindOneFn(ctx, c)
	}
	found, err := s.Find(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domainErrors.ErrHelperNotFound
	}
	return &found[0], nil
}

// GetByID fetches helper by identifier.
func (s *HelperRepositoryStub) GetByID(ctx context.Context, id string) (*model.Helper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if i := s.index(id); i >= 0 {
		h := s.Items[i]
		return &h, nil
	}
	return nil, domainErrors.ErrHelperNotFound
}

// Create assigns a sequential identifier and stores the helper.
func (s *HelperRepositoryStub) Create(ctx context.Context, helper model.Helper) (*model.Helper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	helper.ID = "helper-" + strconv.Itoa(s.Next)
	s.Items = append(s.Items, helper)
	return &helper, nil
}

// Update replaces stored helper fields.
func (s *HelperRepositoryStub) Update(ctx context.Context, id string, helper model.Helper) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	i := s.index(id)
	if i < 0 {
		return domainErrors.ErrHelperNotFound
	}
	helper.ID = id
	s.Items[i] = helper
	return nil
}

// Delete removes stored helper.
func (s *HelperRepositoryStub) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	i := s.index(id)
	if i < 0 {
		return domainErrors.ErrHelperNotFound
	}
	s.Items = slices.Delete(s.Items, i, i+1)
	return nil
}

func (s *HelperRepositoryStub) index(id string) int {
	return slices.IndexFunc(s.Items, func(h model.Helper) bool { return h.ID == id })
}

// ContractRepositoryStub records created contracts.
type ContractRepositoryStub struct {
	mu    sync.Mutex
	Items []model.Contract
	Next  int
	Err   error
}

// NewContractRepositoryStub constructs empty stub.
func NewContractRepositoryStub() *ContractRepositoryStub {
	return &ContractRepositoryStub{}
}

// List returns stored contracts.
func (s *ContractRepositoryStub) List(ctx context.Context) ([]model.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return slices.Clone(s.Items), nil
}

// GetByID fetches contract by identifier.
func (s *ContractRepositoryStub) GetByID(ctx context.Context, id string) (*model.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Items {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domainErrors.ErrContractNotFound
}

// Create assigns a sequential identifier and stores the contract.
func (s *ContractRepositoryStub) Create(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	contract.ID = "contract-" + strconv.Itoa(s.Next)
	s.Items = append(s.Items, contract)
	return &contract, nil
}

// Delete removes stored contract.
func (s *ContractRepositoryStub) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	i := slices.IndexFunc(s.Items, func(c model.Contract) bool { return c.ID == id })
	if i < 0 {
		return domainErrors.ErrContractNotFound
	}
	s.Items = slices.Delete(s.Items, i, i+1)
	return nil
}

// Created reports how many contracts are stored.
func (s *ContractRepositoryStub) Created() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Items)
}

// RepositoryFactoryStub bundles in-memory repositories.
type RepositoryFactoryStub struct {
	UserRepo     *UserRepositoryStub
	EmployerRepo *EmployerRepositoryStub
	HelperRepo   *HelperRepositoryStub
	ContractRepo *ContractRepositoryStub
}

// NewRepositoryFactoryStub constructs factory with empty repositories.
func NewRepositoryFactoryStub() *RepositoryFactoryStub {
	return &RepositoryFactoryStub{
		UserRepo:     NewUserRepositoryStub(),
		EmployerRepo: NewEmployerRepositoryStub(),
		HelperRepo:   NewHelperRepositoryStub(),
		ContractRepo: NewContractRepositoryStub(),
	}
}

func (f *RepositoryFactoryStub) Users() repository.UserRepository         { return f.UserRepo }
func (f *RepositoryFactoryStub) Employers() repository.EmployerRepository { return f.EmployerRepo }
func (f *RepositoryFactoryStub) Helpers() repository.HelperRepository     { return f.HelperRepo }
func (f *RepositoryFactoryStub) Contracts() repository.ContractRepository { return f.ContractRepo }

// matches mirrors the store semantics: substring predicates are unescaped
// case-insensitive patterns, exact predicates test tag membership.
func matches(c criteria.Criteria, values func(field string) []string) bool {
	for _, p := range c.Predicates {
		vals := values(p.Field)
		switch p.Match {
		case criteria.MatchExact:
			if !slices.Contains(vals, p.Value) {
				return false
			}
		default:
			re, err := regexp.Compile("(?i)" + p.Value)
			if err != nil {
				return false
			}
			if !slices.ContainsFunc(vals, re.MatchString) {
				return false
			}
		}
	}
	return true
}

func employerValues(e model.Employer, field string) []string {
	switch field {
	case criteria.FieldName:
		return []string{e.Name}
	case criteria.FieldIC:
		return []string{e.IC}
	case criteria.FieldContactNumber:
		return []string{e.ContactNumber}
	case criteria.FieldEmailAddress:
		return []string{e.EmailAddress}
	case criteria.FieldPhysicalAddress:
		return []string{e.PhysicalAddress}
	}
	return nil
}

func helperValues(h model.Helper, field string) []string {
	switch field {
	case criteria.FieldName:
		return []string{h.Name}
	case criteria.FieldDOB:
		return []string{h.DOB}
	case criteria.FieldAge:
		return []string{strconv.Itoa(h.Age)}
	case criteria.FieldEthnicGroup:
		return []string{h.EthnicGroup}
	case criteria.FieldNationality:
		return []string{h.Nationality}
	case criteria.FieldSkills:
		return h.Skills
	}
	return nil
}

var (
	_ repository.UserRepository     = (*UserRepositoryStub)(nil)
	_ repository.EmployerRepository = (*EmployerRepositoryStub)(nil)
	_ repository.HelperRepository   = (*HelperRepositoryStub)(nil)
	_ repository.ContractRepository = (*ContractRepositoryStub)(nil)
	_ repository.Factory            = (*RepositoryFactoryStub)(nil)
)
