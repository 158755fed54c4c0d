package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/mmtc/internal/domain/errors"
	"github.com/polkiloo/mmtc/internal/domain/model"
	"github.com/polkiloo/mmtc/internal/server/http/dto"
	"github.com/polkiloo/mmtc/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/mmtc/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var decoded dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode error body %q: %v", resp.Body.String(), err)
	}
	return decoded.Error
}

func TestCurrentUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUser(c); got != nil {
		t.Fatalf("expected nil when not set, got %+v", got)
	}

	c.Set(middleware.UserContextKey, "not claims")
	if got := CurrentUser(c); got != nil {
		t.Fatalf("expected nil for foreign value, got %+v", got)
	}

	claims := &model.Claims{SubjectID: "u1", Email: "a@example.com"}
	c.Set(middleware.UserContextKey, claims)
	if got := CurrentUser(c); got != claims {
		t.Fatalf("expected stored claims, got %+v", got)
	}
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{name: "validation", err: domainErrors.MissingFields("name"), status: http.StatusBadRequest, body: "missing required fields: name"},
		{name: "credentials", err: domainErrors.ErrInvalidCredentials, status: http.StatusUnauthorized, body: "invalid credentials"},
		{name: "forbidden", err: errors.Join(domainErrors.ErrForbidden, errors.New("token expired")), status: http.StatusForbidden, body: "forbidden"},
		{name: "not found", err: domainErrors.ErrHelperNotFound, status: http.StatusNotFound, body: "helper not found"},
		{name: "internal", err: errors.New("connection refused"), status: http.StatusInternalServerError, body: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodGet, "/", "/", func(c *gin.Context) { writeError(c, tt.err) }, nil, nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if got := decodeError(t, resp); got != tt.body {
				t.Fatalf("expected error %q, got %q", tt.body, got)
			}
		})
	}
}

func TestAuthHandlerSignup(t *testing.T) {
	email := testhelpers.RandomASCIIString(7, 14) + "@example.com"
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.CredentialsRequest{Email: email, Password: password})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotEmail, gotPassword string) (*model.User, error) {
		if gotEmail != email || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotEmail, gotPassword)
		}
		return &model.User{ID: "user-7", Email: gotEmail}, nil
	}})

	resp := performRequest(t, http.MethodPost, "/users", "/users", handler.Signup, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Message != "New user account has been created" || decoded.Result != "user-7" {
		t.Fatalf("unexpected response %+v", decoded)
	}
}

func TestAuthHandlerSignupFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
		error  string
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest, error: "invalid request body"},
		{name: "missing password", body: []byte(`{"email":"a@example.com"}`), status: http.StatusBadRequest, error: "missing required fields: password"},
		{name: "missing both", body: []byte(`{}`), status: http.StatusBadRequest, error: "missing required fields: email, password"},
		{name: "internal", body: []byte(`{"email":"a@example.com","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (*model.User, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError, error: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/users", "/users", NewAuthHandler(tt.facade).Signup, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if got := decodeError(t, resp); got != tt.error {
				t.Fatalf("expected error %q, got %q", tt.error, got)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.CredentialsRequest{Email: "a@example.com", Password: "pass"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
		return "signed-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/login", "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.AccessToken != "signed-token" {
		t.Fatalf("unexpected token %q", decoded.AccessToken)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "missing fields", body: []byte(`{"email":""}`), status: http.StatusBadRequest},
		{name: "invalid", body: []byte(`{"email":"a@example.com","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "internal", body: []byte(`{"email":"a@example.com","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(tt.facade).Login, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerProfile(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/profile", "/profile", handler.Profile, nil, nil, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 without claims, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/profile", "/profile", handler.Profile, func(c *gin.Context) {
		c.Set(middleware.UserContextKey, &model.Claims{SubjectID: "u1", Email: "a@example.com"})
	}, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded struct {
		User model.Claims `json:"user"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.User.SubjectID != "u1" || decoded.User.Email != "a@example.com" {
		t.Fatalf("unexpected profile %+v", decoded.User)
	}
}

func TestEmployerHandlerList(t *testing.T) {
	var gotParams map[string]string
	facade := testhelpers.EmployerFacadeStub{ListFn: func(_ context.Context, params map[string]string) ([]model.Employer, error) {
		gotParams = params
		return []model.Employer{{ID: "e1", Name: "Tan"}, {ID: "e2", Name: "Lim"}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/employers", "/employers?name=ta&ic=S1&ic=ignored", NewEmployerHandler(facade).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotParams["name"] != "ta" || gotParams["ic"] != "S1" || len(gotParams) != 2 {
		t.Fatalf("unexpected params %+v", gotParams)
	}
	var decoded dto.EmployersResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded.Employers) != 2 {
		t.Fatalf("expected 2 employers, got %d", len(decoded.Employers))
	}
}

func TestEmployerHandlerCreate(t *testing.T) {
	var got model.Employer
	facade := testhelpers.EmployerFacadeStub{CreateFn: func(_ context.Context, employer model.Employer) (string, error) {
		got = employer
		return "e9", nil
	}}
	body := []byte(`{"name":"Tan","ic":"S1","phone_number":"9123","email_address":"t@example.com","physical_address":"1 Road"}`)
	resp := performRequest(t, http.MethodPost, "/employers", "/employers", NewEmployerHandler(facade).Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if got.ContactNumber != "9123" || got.EmailAddress != "t@example.com" {
		t.Fatalf("unexpected employer passed to facade %+v", got)
	}
	var decoded dto.MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Message != "employer data created successfully" || decoded.Result != "e9" {
		t.Fatalf("unexpected response %+v", decoded)
	}
}

func TestEmployerHandlerCreateMissingFields(t *testing.T) {
	called := false
	facade := testhelpers.EmployerFacadeStub{CreateFn: func(context.Context, model.Employer) (string, error) {
		called = true
		return "", nil
	}}
	resp := performRequest(t, http.MethodPost, "/employers", "/employers", NewEmployerHandler(facade).Create, nil, []byte(`{"name":"Tan"}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if got := decodeError(t, resp); got != "missing required fields: ic, phone_number, physical_address" {
		t.Fatalf("unexpected error %q", got)
	}
	if called {
		t.Fatal("facade must not be called for invalid payload")
	}
}

func TestEmployerHandlerByID(t *testing.T) {
	facade := testhelpers.EmployerFacadeStub{
		GetFn: func(_ context.Context, id string) (*model.Employer, error) {
			if id != "e1" {
				return nil, domainErrors.ErrEmployerNotFound
			}
			return &model.Employer{ID: id, Name: "Tan"}, nil
		},
		UpdateFn: func(_ context.Context, id string, _ model.Employer) error {
			if id != "e1" {
				return domainErrors.ErrEmployerNotFound
			}
			return nil
		},
		DeleteFn: func(_ context.Context, id string) error {
			if id != "e1" {
				return domainErrors.ErrEmployerNotFound
			}
			return nil
		},
	}
	handler := NewEmployerHandler(facade)
	update := []byte(`{"name":"Tan","ic":"S1","phone_number":"9123","physical_address":"1 Road"}`)

	tests := []struct {
		name    string
		method  string
		handler gin.HandlerFunc
		target  string
		body    []byte
		status  int
	}{
		{"get", http.MethodGet, handler.Get, "/employers/e1", nil, http.StatusOK},
		{"get missing", http.MethodGet, handler.Get, "/employers/e2", nil, http.StatusNotFound},
		{"update", http.MethodPut, handler.Update, "/employers/e1", update, http.StatusOK},
		{"update missing", http.MethodPut, handler.Update, "/employers/e2", update, http.StatusNotFound},
		{"update invalid", http.MethodPut, handler.Update, "/employers/e1", []byte(`{}`), http.StatusBadRequest},
		{"delete", http.MethodDelete, handler.Delete, "/employers/e1", nil, http.StatusOK},
		{"delete missing", http.MethodDelete, handler.Delete, "/employers/e2", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, tt.method, "/employers/:id", tt.target, tt.handler, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d: %s", tt.status, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestHelperHandlerCreate(t *testing.T) {
	var got model.Helper
	facade := testhelpers.HelperFacadeStub{CreateFn: func(_ context.Context, helper model.Helper) (string, error) {
		got = helper
		return "h3", nil
	}}
	body := []byte(`{"name":"Siti","DOB":"1990-02-01","ethicGroup":"Malay","Nationality":"Indonesian","Skills":["cooking","infant care"]}`)
	resp := performRequest(t, http.MethodPost, "/helpers", "/helpers", NewHelperHandler(facade).Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if got.EthnicGroup != "Malay" || len(got.Skills) != 2 {
		t.Fatalf("unexpected helper passed to facade %+v", got)
	}

	resp = performRequest(t, http.MethodPost, "/helpers", "/helpers", NewHelperHandler(facade).Create, nil, []byte(`{"name":"Siti"}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if got := decodeError(t, resp); got != "missing required fields: DOB, ethicGroup, Nationality" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestHelperHandlerCreateAcceptsQuotedAge(t *testing.T) {
	var got model.Helper
	facade := testhelpers.HelperFacadeStub{CreateFn: func(_ context.Context, helper model.Helper) (string, error) {
		got = helper
		return "h4", nil
	}}
	handler := NewHelperHandler(facade)

	tests := []struct {
		name   string
		age    string
		status int
		want   int
	}{
		{name: "quoted", age: `"30"`, status: http.StatusCreated, want: 30},
		{name: "bare", age: `41`, status: http.StatusCreated, want: 41},
		{name: "empty string", age: `""`, status: http.StatusCreated, want: 0},
		{name: "not a number", age: `"thirty"`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = model.Helper{}
			body := []byte(`{"name":"Siti","DOB":"1990-02-01","age":` + tt.age + `,"ethicGroup":"Malay","Nationality":"Indonesian"}`)
			resp := performRequest(t, http.MethodPost, "/helpers", "/helpers", handler.Create, nil, body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d: %s", tt.status, resp.Code, resp.Body.String())
			}
			if tt.status == http.StatusCreated && got.Age != tt.want {
				t.Fatalf("expected age %d, got %d", tt.want, got.Age)
			}
		})
	}
}

func TestHelperHandlerListAndDelete(t *testing.T) {
	var gotParams map[string]string
	facade := testhelpers.HelperFacadeStub{
		ListFn: func(_ context.Context, params map[string]string) ([]model.Helper, error) {
			gotParams = params
			return nil, errors.New("invalid regexp")
		},
		DeleteFn: func(context.Context, string) error { return domainErrors.ErrHelperNotFound },
	}
	handler := NewHelperHandler(facade)

	resp := performRequest(t, http.MethodGet, "/helpers", "/helpers?Skills=cooking", handler.List, nil, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	if gotParams["Skills"] != "cooking" {
		t.Fatalf("unexpected params %+v", gotParams)
	}

	resp = performRequest(t, http.MethodDelete, "/helpers/:id", "/helpers/h1", handler.Delete, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if got := decodeError(t, resp); got != "helper not found" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestContractHandlerCreate(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.ContractFacadeStub
		body   []byte
		status int
	}{
		{name: "created", body: []byte(`{"employerName":"tan","helperName":"siti"}`), status: http.StatusCreated},
		{name: "missing helper", body: []byte(`{"employerName":"tan"}`), status: http.StatusBadRequest},
		{name: "employer not found", body: []byte(`{"employerName":"x","helperName":"y"}`), facade: testhelpers.ContractFacadeStub{OriginateFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrEmployerNotFound
		}}, status: http.StatusNotFound},
		{name: "internal", body: []byte(`{"employerName":"x","helperName":"y"}`), facade: testhelpers.ContractFacadeStub{OriginateFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/contract", "/contract", NewContractHandler(tt.facade).Create, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestContractHandlerGetAndList(t *testing.T) {
	contract := model.Contract{ID: "c1", StartDate: "1 Jan 2025", LoanFeeSchedule: []model.Invoice{{Title: model.LoanFeeTitle, Date: "1 Jan 2025", Amount: 480}}}
	facade := testhelpers.ContractFacadeStub{
		ListFn: func(context.Context) ([]model.Contract, error) { return []model.Contract{contract}, nil },
		GetFn: func(_ context.Context, id string) (*model.Contract, error) {
			if id != "c1" {
				return nil, domainErrors.ErrContractNotFound
			}
			return &contract, nil
		},
	}
	handler := NewContractHandler(facade)

	resp := performRequest(t, http.MethodGet, "/contract", "/contract", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var list dto.ContractsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list.Contracts) != 1 || list.Contracts[0].ID != "c1" {
		t.Fatalf("unexpected contracts %+v", list.Contracts)
	}

	resp = performRequest(t, http.MethodGet, "/contract/:id", "/contract/c1", handler.Get, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded model.Contract
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded.LoanFeeSchedule) != 1 || decoded.LoanFeeSchedule[0].Amount != 480 {
		t.Fatalf("unexpected contract %+v", decoded)
	}

	resp = performRequest(t, http.MethodGet, "/contract/:id", "/contract/c2", handler.Get, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestContractHandlerDelete(t *testing.T) {
	var gotID string
	facade := testhelpers.ContractFacadeStub{DeleteFn: func(_ context.Context, id string) error {
		gotID = id
		return nil
	}}
	resp := performRequest(t, http.MethodDelete, "/contract/:id", "/contract/c5", NewContractHandler(facade).Delete, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotID != "c5" {
		t.Fatalf("unexpected id %q", gotID)
	}
}

func TestHealthHandler(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/healthz", "/healthz", NewHealthHandler(testhelpers.HealthCheckerStub{}).Check, nil, nil, nil)
	if resp.Code != http.StatusOK || resp.Body.String() != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", resp.Code, resp.Body.String())
	}

	resp = performRequest(t, http.MethodGet, "/healthz", "/healthz", NewHealthHandler(testhelpers.HealthCheckerStub{Err: errors.New("down")}).Check, nil, nil, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
