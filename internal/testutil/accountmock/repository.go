package accountmock

import (
	"context"
	"errors"

	domain "dkcash/internal/domain/ledger"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("accountmock: method not implemented")

// Repo is a function-backed mock that satisfies ledger.Repository.
type Repo struct {
	RootFn                  func(ctx context.Context) (*domain.Account, error)
	GetByGUIDFn             func(ctx context.Context, guid string) (*domain.Account, error)
	GetByFullNameFn         func(ctx context.Context, fullname string) (*domain.Account, error)
	ChildFn                 func(ctx context.Context, parentGUID, name string) (*domain.Account, error)
	CreateFn                func(ctx context.Context, a *domain.Account) error
	EnsureContractAccountFn func(ctx context.Context, parent *domain.Account, contractID int64) (*domain.Account, error)
	DefaultCommodityFn      func(ctx context.Context) (*domain.Commodity, error)
}

func (m *Repo) Root(ctx context.Context) (*domain.Account, error) {
	if m.RootFn != nil {
		return m.RootFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByGUID(ctx context.Context, guid string) (*domain.Account, error) {
	if m.GetByGUIDFn != nil {
		return m.GetByGUIDFn(ctx, guid)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByFullName(ctx context.Context, fullname string) (*domain.Account, error) {
	if m.GetByFullNameFn != nil {
		return m.GetByFullNameFn(ctx, fullname)
	}
	return nil, errUnimplemented
}

func (m *Repo) Child(ctx context.Context, parentGUID, name string) (*domain.Account, error) {
	if m.ChildFn != nil {
		return m.ChildFn(ctx, parentGUID, name)
	}
	return nil, errUnimplemented
}

func (m *Repo) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) EnsureContractAccount(ctx context.Context, parent *domain.Account, contractID int64) (*domain.Account, error) {
	if m.EnsureContractAccountFn != nil {
		return m.EnsureContractAccountFn(ctx, parent, contractID)
	}
	return nil, errUnimplemented
}

func (m *Repo) DefaultCommodity(ctx context.Context) (*domain.Commodity, error) {
	if m.DefaultCommodityFn != nil {
		return m.DefaultCommodityFn(ctx)
	}
	return nil, errUnimplemented
}
