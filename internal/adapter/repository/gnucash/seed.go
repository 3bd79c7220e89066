package gnucash

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"dkcash/internal/domain/contract"
	"dkcash/internal/domain/creditor"
	"dkcash/internal/domain/query"
)

// Seed inserts one sample creditor with one contract into an empty store.
// Intended for development setups and tests; a store that already holds
// creditors is left untouched.
func Seed(ctx context.Context, db *gorm.DB, accounts *Accounts) error {
	creditors := NewCreditorRepository(db)
	existing, err := creditors.Find(ctx, query.Filters{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	c := &creditor.Creditor{
		Name:       "Newly Newt",
		Address1:   "New Street 1",
		Address2:   "12345 Irgendwo",
		Email:      "newt@example.com",
		Newsletter: true,
	}
	if err := creditors.Create(ctx, c); err != nil {
		return err
	}
	accountsRepo := NewAccountRepository(db)
	acc, err := accountsRepo.EnsureContractAccount(ctx, accounts.Direktkredite, 23)
	if err != nil {
		return err
	}
	end := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	return NewContractRepository(db).Create(ctx, &contract.Contract{
		ID:              23,
		CreditorID:      c.ID,
		AccountGUID:     acc.GUID,
		Date:            time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromFloat(1234.56),
		Interest:        1.5,
		InterestPayment: contract.PayInterestOut,
		PeriodType:      contract.PeriodFixedDuration,
		PeriodEnd:       &end,
	})
}
