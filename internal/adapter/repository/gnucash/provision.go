package gnucash

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"dkcash/internal/domain/contract"
	"dkcash/internal/domain/creditor"
	"dkcash/internal/domain/ledger"
	"dkcash/pkg/id"
)

// Bases names the parent accounts for the three well-known account roles,
// as colon-separated full paths. An empty path means the root account.
type Bases struct {
	DK        string
	Ausgleich string
	Zinsen    string
}

// Accounts holds the three provisioned role accounts.
type Accounts struct {
	Direktkredite *ledger.Account
	Ausgleich     *ledger.Account
	Zinsen        *ledger.Account
}

// Provision makes a freshly opened connection usable: book skeleton, the
// three role accounts, then the auxiliary tables. Accounts come before
// tables because the contracts table carries a foreign key into accounts.
// Every step is idempotent; re-running on a provisioned store is a no-op.
func Provision(ctx context.Context, db *gorm.DB, bases Bases) (*Accounts, error) {
	if err := EnsureBook(ctx, db); err != nil {
		return nil, err
	}
	accounts, err := EnsureAccounts(ctx, db, bases)
	if err != nil {
		return nil, err
	}
	if err := EnsureTables(ctx, db); err != nil {
		return nil, err
	}
	return accounts, nil
}

// EnsureBook migrates the GnuCash core tables and, for a brand-new file,
// creates the minimal book skeleton: EUR commodity, root account, book row.
func EnsureBook(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&ledger.Commodity{},
		&ledger.Account{},
		&ledger.Book{},
	); err != nil {
		return fmt.Errorf("migrate ledger tables: %w", err)
	}
	var n int64
	if err := db.WithContext(ctx).Model(&ledger.Book{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	eur := &ledger.Commodity{
		GUID:      id.NewGUID(),
		Namespace: "CURRENCY",
		Mnemonic:  ledger.DefaultCurrency,
		Fullname:  "Euro",
		Fraction:  100,
	}
	root := &ledger.Account{
		GUID:          id.NewGUID(),
		Name:          "Root Account",
		Type:          ledger.TypeRoot,
		CommodityGUID: eur.GUID,
		CommoditySCU:  100,
	}
	book := &ledger.Book{
		GUID:            id.NewGUID(),
		RootAccountGUID: root.GUID,
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(eur).Error; err != nil {
			return err
		}
		if err := tx.Create(root).Error; err != nil {
			return err
		}
		return tx.Create(book).Error
	})
}

// EnsureAccounts resolves the configured base accounts and creates the three
// role accounts underneath when missing. A configured base path that does
// not resolve is a configuration error and aborts provisioning.
func EnsureAccounts(ctx context.Context, db *gorm.DB, bases Bases) (*Accounts, error) {
	repo := NewAccountRepository(db)
	dk, err := ensureRole(ctx, repo, bases.DK, ledger.NameDirektkredite, ledger.TypeLiability, "DK", true)
	if err != nil {
		return nil, err
	}
	ausgleich, err := ensureRole(ctx, repo, bases.Ausgleich, ledger.NameAusgleich, ledger.TypeAsset, "DKA", false)
	if err != nil {
		return nil, err
	}
	zinsen, err := ensureRole(ctx, repo, bases.Zinsen, ledger.NameZinsen, ledger.TypeExpense, "DKZ", false)
	if err != nil {
		return nil, err
	}
	return &Accounts{Direktkredite: dk, Ausgleich: ausgleich, Zinsen: zinsen}, nil
}

func ensureRole(ctx context.Context, repo *AccountRepository, base, name string, typ ledger.AccountType, code string, placeholder bool) (*ledger.Account, error) {
	parent, err := repo.GetByFullName(ctx, base)
	if err != nil {
		return nil, err
	}
	acc, err := repo.Child(ctx, parent.GUID, name)
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, ledger.ErrAccountNotFound) {
		return nil, err
	}
	commodity := parent.CommodityGUID
	if commodity == "" {
		c, err := repo.DefaultCommodity(ctx)
		if err != nil {
			return nil, err
		}
		commodity = c.GUID
	}
	acc = &ledger.Account{
		GUID:          id.NewGUID(),
		Name:          name,
		Type:          typ,
		CommodityGUID: commodity,
		CommoditySCU:  100,
		ParentGUID:    &parent.GUID,
		Code:          code,
		Placeholder:   placeholder,
	}
	if err := repo.Create(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// EnsureTables idempotently creates the auxiliary creditors and contracts
// tables next to the GnuCash schema.
func EnsureTables(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&creditor.Creditor{},
		&contract.Contract{},
	); err != nil {
		return fmt.Errorf("migrate auxiliary tables: %w", err)
	}
	return nil
}
