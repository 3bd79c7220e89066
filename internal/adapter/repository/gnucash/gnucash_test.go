package gnucash

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	contractDomain "dkcash/internal/domain/contract"
	creditorDomain "dkcash/internal/domain/creditor"
	"dkcash/internal/infrastructure/db"
)

// openTestDB opens a fresh GnuCash file in a temp dir through the real
// opener, so the foreign-key pragma is active like in production.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.gnucash"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return gdb
}

func provisionTestDB(t *testing.T) (*gorm.DB, *Accounts) {
	t.Helper()
	gdb := openTestDB(t)
	accounts, err := Provision(context.Background(), gdb, Bases{})
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	return gdb, accounts
}

func makeCreditor(name string) *creditorDomain.Creditor {
	return &creditorDomain.Creditor{
		Name:     name,
		Address1: "Entengasse 5",
		Address2: "12345 Entenhausen",
		Phone:    "+491234567890",
		Email:    "duck@example.com",
	}
}

func makeContract(id, creditorID int64, accountGUID string) *contractDomain.Contract {
	end := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &contractDomain.Contract{
		ID:              id,
		CreditorID:      creditorID,
		AccountGUID:     accountGUID,
		Date:            time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromFloat(1234.56),
		Interest:        1.5,
		InterestPayment: contractDomain.PayInterestOut,
		PeriodType:      contractDomain.PeriodFixedDuration,
		PeriodEnd:       &end,
	}
}

// seedContract provisions the per-contract account and inserts the row.
func seedContract(t *testing.T, gdb *gorm.DB, accounts *Accounts, id, creditorID int64) *contractDomain.Contract {
	t.Helper()
	ctx := context.Background()
	acc, err := NewAccountRepository(gdb).EnsureContractAccount(ctx, accounts.Direktkredite, id)
	if err != nil {
		t.Fatalf("ensure contract account: %v", err)
	}
	c := makeContract(id, creditorID, acc.GUID)
	if err := NewContractRepository(gdb).Create(ctx, c); err != nil {
		t.Fatalf("create contract: %v", err)
	}
	return c
}
