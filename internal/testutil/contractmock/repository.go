package contractmock

import (
	"context"
	"errors"

	domain "dkcash/internal/domain/contract"
	"dkcash/internal/domain/query"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("contractmock: method not implemented")

// Repo is a function-backed mock that satisfies contract.Repository.
type Repo struct {
	CreateFn  func(ctx context.Context, c *domain.Contract) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Contract, error)
	UpdateFn  func(ctx context.Context, id int64, p domain.Patch) (bool, error)
	FindFn    func(ctx context.Context, f query.Filters) ([]domain.Contract, error)
	DeleteFn  func(ctx context.Context, id int64) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Contract) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.Contract, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Update(ctx context.Context, id int64, p domain.Patch) (bool, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, p)
	}
	return false, errUnimplemented
}

func (m *Repo) Find(ctx context.Context, f query.Filters) ([]domain.Contract, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, f)
	}
	return nil, errUnimplemented
}

func (m *Repo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return errUnimplemented
}
