package uowmock

import (
	"context"

	"dkcash/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

// UoW runs the unit-of-work body directly against the given repos, without
// any real transaction. Handy for usecase tests over mocked repos.
type UoW struct {
	Repos uow.Repos
	// WithinTxFn overrides the default pass-through when set.
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func New(r uow.Repos) *UoW { return &UoW{Repos: r} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}
