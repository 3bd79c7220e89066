package query

import (
	"errors"
	"strings"
)

var ErrUnsupportedFilter = errors.New("unsupported filter field")

// Match is a tagged filter value: either an exact comparison or a glob
// pattern (`*` wildcard). Repositories compile it into the backing query
// language; AND semantics across a Filters map.
type Match struct {
	value     any
	glob      string
	isPattern bool
}

func Exact(v any) Match { return Match{value: v} }

func Pattern(glob string) Match { return Match{glob: glob, isPattern: true} }

// FromValue applies the string convention: a string containing `*` becomes a
// Pattern, everything else an Exact match.
func FromValue(v any) Match {
	if s, ok := v.(string); ok && strings.Contains(s, "*") {
		return Pattern(s)
	}
	return Exact(v)
}

func (m Match) IsPattern() bool { return m.isPattern }
func (m Match) Glob() string    { return m.glob }
func (m Match) Value() any      { return m.value }

// Filters maps filter field names to match values.
type Filters map[string]Match
