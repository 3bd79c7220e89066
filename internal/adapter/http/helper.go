package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"dkcash/internal/domain/contract"
	"dkcash/internal/domain/creditor"
	"dkcash/internal/domain/ledger"
	"dkcash/internal/domain/query"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// writeError maps domain errors onto status codes; the handlers hold no
// mapping logic of their own.
func writeError(c echo.Context, err error) error {
	var dbe *contract.DatabaseError
	switch {
	case errors.As(err, &dbe):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: dbe.Error()})
	case errors.Is(err, creditor.ErrHasContracts):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, creditor.ErrNotFound),
		errors.Is(err, contract.ErrNotFound),
		errors.Is(err, ledger.ErrAccountNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// filtersFromQuery turns whitelisted query parameters into tagged filter
// values, applying the `*` wildcard convention. Numeric and boolean values
// are typed before comparison.
func filtersFromQuery(c echo.Context, keys []string) query.Filters {
	f := query.Filters{}
	for _, k := range keys {
		raw := c.QueryParam(k)
		if raw == "" {
			continue
		}
		f[k] = query.FromValue(typedValue(raw))
	}
	return f
}

func typedValue(raw string) any {
	if strings.Contains(raw, "*") {
		return raw
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
