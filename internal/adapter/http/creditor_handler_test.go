package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	creditorDomain "dkcash/internal/domain/creditor"
	"dkcash/internal/domain/query"
	"dkcash/internal/domain/uow"
	"dkcash/internal/testutil/creditormock"
	"dkcash/internal/testutil/uowmock"
	uc "dkcash/internal/usecase/creditor"
)

func newCreditorEcho(repo *creditormock.Repo, repos uow.Repos) (*echo.Echo, *CreditorHandler) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewCreditorHandler(uc.NewUsecase(repo, uowmock.New(repos)))
	return e, h
}

func TestCreditorCreateHandler(t *testing.T) {
	repo := &creditormock.Repo{
		CreateFn: func(ctx context.Context, c *creditorDomain.Creditor) error {
			c.ID = 7
			return nil
		},
	}
	e, h := newCreditorEcho(repo, uow.Repos{})

	body := `{"name":"Dagobert Duck","address":["Entengasse 5","12345 Entenhausen"],"email":"duck@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/creditors", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body)
	}
	var dto uc.CreditorDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.ID != 7 || dto.Name != "Dagobert Duck" {
		t.Errorf("dto %+v", dto)
	}
}

func TestCreditorCreateHandler_BadBody(t *testing.T) {
	e, h := newCreditorEcho(&creditormock.Repo{}, uow.Repos{})

	req := httptest.NewRequest(http.MethodPost, "/creditors", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestCreditorCreateHandler_ValidationDetails(t *testing.T) {
	e, h := newCreditorEcho(&creditormock.Repo{}, uow.Repos{})

	req := httptest.NewRequest(http.MethodPost, "/creditors", strings.NewReader(`{"address":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !containsFieldMsg(resp.Details, "Name", "required") {
		t.Errorf("missing name detail: %+v", resp.Details)
	}
}

func TestCreditorGetHandler_NotFound(t *testing.T) {
	repo := &creditormock.Repo{
		FindFn: func(ctx context.Context, f query.Filters) ([]creditorDomain.Creditor, error) {
			return nil, nil
		},
	}
	e, h := newCreditorEcho(repo, uow.Repos{})

	req := httptest.NewRequest(http.MethodGet, "/creditors/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestCreditorGetHandler_BadID(t *testing.T) {
	e, h := newCreditorEcho(&creditormock.Repo{}, uow.Repos{})

	req := httptest.NewRequest(http.MethodGet, "/creditors/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestCreditorListHandler_Wildcard(t *testing.T) {
	var gotFilters query.Filters
	repo := &creditormock.Repo{
		FindFn: func(ctx context.Context, f query.Filters) ([]creditorDomain.Creditor, error) {
			gotFilters = f
			return []creditorDomain.Creditor{{ID: 1, Name: "Dagobert Duck"}}, nil
		},
	}
	e, h := newCreditorEcho(repo, uow.Repos{})

	req := httptest.NewRequest(http.MethodGet, "/creditors?name=Da*&newsletter=true", nil)
	rec := httptest.NewRecorder()

	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if m, ok := gotFilters["name"]; !ok || !m.IsPattern() {
		t.Errorf("name filter not a pattern: %v", gotFilters)
	}
	if m, ok := gotFilters["newsletter"]; !ok || m.IsPattern() || m.Value() != true {
		t.Errorf("newsletter filter not a typed exact: %v", gotFilters)
	}
}
