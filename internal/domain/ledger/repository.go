package ledger

import "context"

type Repository interface {
	Root(ctx context.Context) (*Account, error)
	GetByGUID(ctx context.Context, guid string) (*Account, error)
	// GetByFullName resolves a colon-separated full path ("Aktiva:DKVerwaltung")
	// by exact match; the empty path resolves to the root account.
	GetByFullName(ctx context.Context, fullname string) (*Account, error)
	Child(ctx context.Context, parentGUID, name string) (*Account, error)
	Create(ctx context.Context, a *Account) error
	// EnsureContractAccount creates the dedicated liability account of one
	// contract under parent if it does not exist yet, and returns it either way.
	EnsureContractAccount(ctx context.Context, parent *Account, contractID int64) (*Account, error)
	DefaultCommodity(ctx context.Context) (*Commodity, error)
}
