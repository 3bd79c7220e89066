package creditormock

import (
	"context"
	"errors"

	domain "dkcash/internal/domain/creditor"
	"dkcash/internal/domain/query"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("creditormock: method not implemented")

// Repo is a function-backed mock that satisfies creditor.Repository.
// Fill in the function fields you need in a test.
type Repo struct {
	CreateFn  func(ctx context.Context, c *domain.Creditor) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Creditor, error)
	UpdateFn  func(ctx context.Context, id int64, p domain.Patch) (bool, error)
	FindFn    func(ctx context.Context, f query.Filters) ([]domain.Creditor, error)
	DeleteFn  func(ctx context.Context, id int64) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Creditor) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.Creditor, error) {
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

func (m *Repo) Find(ctx context.Context, f query.Filters) ([]domain.Creditor, error) {
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
