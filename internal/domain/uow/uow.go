package uow

import (
	"context"

	"dkcash/internal/domain/contract"
	"dkcash/internal/domain/creditor"
	"dkcash/internal/domain/ledger"
)

type Repos struct {
	Creditors creditor.Repository
	Contracts contract.Repository
	Accounts  ledger.Repository
}

// UnitOfWork runs multi-step record-store work in one transaction, e.g.
// contract insert plus account provisioning, or a cascading creditor delete.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
