package gnucash

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"dkcash/internal/domain/query"
)

// Filterable columns per table. Note there is no "address" key for
// creditors: a generic OR-across-lines address search is unsupported, the
// caller must filter on a positional line.
var creditorFilterColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"address1":   "address1",
	"address2":   "address2",
	"address3":   "address3",
	"address4":   "address4",
	"phone":      "phone",
	"email":      "email",
	"newsletter": "newsletter",
}

var contractFilterColumns = map[string]string{
	"id":                "id",
	"creditor":          "creditor",
	"account":           "account",
	"date":              "date",
	"amount":            "amount",
	"interest":          "interest",
	"interest_payment":  "interest_payment",
	"version":           "version",
	"period_type":       "period_type",
	"period_notice":     "period_notice",
	"period_end":        "period_end",
	"cancellation_date": "cancellation_date",
	"active":            "active",
}

// applyFilters compiles the tagged filter values into WHERE clauses with AND
// semantics. Keys are visited in sorted order so generated SQL is stable.
func applyFilters(tx *gorm.DB, columns map[string]string, f query.Filters) (*gorm.DB, error) {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		col, ok := columns[k]
		if !ok {
			return nil, fmt.Errorf("%w: %s", query.ErrUnsupportedFilter, k)
		}
		m := f[k]
		if m.IsPattern() {
			tx = tx.Where(col+" LIKE ? ESCAPE '\\'", likePattern(m.Glob()))
		} else {
			tx = tx.Where(col+" = ?", m.Value())
		}
	}
	return tx, nil
}

// likePattern translates a `*` glob into a LIKE pattern, escaping the
// characters LIKE treats specially.
func likePattern(glob string) string {
	esc := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(glob)
	return strings.ReplaceAll(esc, "*", "%")
}
