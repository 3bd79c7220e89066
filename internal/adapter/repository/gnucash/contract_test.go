package gnucash

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	contractDomain "dkcash/internal/domain/contract"
	"dkcash/internal/domain/ledger"
	"dkcash/internal/domain/query"
)

func TestContractCreateAndGetByID(t *testing.T) {
	gdb, accounts := provisionTestDB(t)
	ctx := context.Background()

	cred := makeCreditor("Dagobert Duck")
	if err := NewCreditorRepository(gdb).Create(ctx, cred); err != nil {
		t.Fatalf("create creditor: %v", err)
	}
	c := seedContract(t, gdb, accounts, 23, cred.ID)

	got, err := NewContractRepository(gdb).GetByID(ctx, 23)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.CreditorID != cred.ID || got.AccountGUID != c.AccountGUID {
		t.Errorf("links wrong: %+v", got)
	}
	if !got.Amount.Equal(c.Amount) {
		t.Errorf("amount %s, want %s", got.Amount, c.Amount)
	}
	if got.Interest != c.Interest || got.InterestPayment != c.InterestPayment {
		t.Errorf("interest fields wrong: %+v", got)
	}
	if got.PeriodType != contractDomain.PeriodFixedDuration || got.PeriodEnd == nil {
		t.Errorf("period fields wrong: %+v", got)
	}
	if got.Active {
		t.Errorf("new contract should start inactive")
	}
}

func TestContractCreate_DuplicateID(t *testing.T) {
	gdb, accounts := provisionTestDB(t)
	ctx := context.Background()

	cred := makeCreditor("Dagobert Duck")
	if err := NewCreditorRepository(gdb).Create(ctx, cred); err != nil {
		t.Fatalf("create creditor: %v", err)
	}
	first := seedContract(t, gdb, accounts, 23, cred.ID)

	dup := makeContract(23, cred.ID, first.AccountGUID)
	dup.Amount = decimal.NewFromInt(999)
	err := NewContractRepository(gdb).Create(ctx, dup)

	var dbErr *contractDomain.DatabaseError
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected DatabaseError, got %v", err)
	}
	if dbErr.Table != "contracts" || dbErr.Column != "id" {
		t.Errorf("wrong error detail: %+v", dbErr)
	}

	// the stored row still carries the first insert's values
	got, err := NewContractRepository(gdb).GetByID(ctx, 23)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.Amount.Equal(first.Amount) {
		t.Errorf("duplicate insert changed stored amount: %s", got.Amount)
	}
}

func TestEnsureContractAccount(t *testing.T) {
	gdb, accounts := provisionTestDB(t)
	ctx := context.Background()
	repo := NewAccountRepository(gdb)

	acc, err := repo.EnsureContractAccount(ctx, accounts.Direktkredite, 23)
	if err != nil {
		t.Fatalf("EnsureContractAccount: %v", err)
	}
	if acc.Name != "Direktkredit 023" {
		t.Errorf("name %q", acc.Name)
	}
	if acc.Code != "DK023" {
		t.Errorf("code %q", acc.Code)
	}
	if acc.Type != ledger.TypeLiability {
		t.Errorf("type %q", acc.Type)
	}
	if acc.ParentGUID == nil || *acc.ParentGUID != accounts.Direktkredite.GUID {
		t.Errorf("not parented under Direktkredite: %+v", acc)
	}
	if acc.CommodityGUID != accounts.Direktkredite.CommodityGUID {
		t.Errorf("commodity %q, want parent's %q", acc.CommodityGUID, accounts.Direktkredite.CommodityGUID)
	}

	// calling again returns the same account instead of creating another
	again, err := repo.EnsureContractAccount(ctx, accounts.Direktkredite, 23)
	if err != nil {
		t.Fatalf("second EnsureContractAccount: %v", err)
	}
	if again.GUID != acc.GUID {
		t.Errorf("second call created a new account")
	}

	var n int64
	if err := gdb.Model(&ledger.Account{}).
		Where("parent_guid = ?", accounts.Direktkredite.GUID).
		Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 child account, found %d", n)
	}
}

func TestContractUpdate(t *testing.T) {
	gdb, accounts := provisionTestDB(t)
	ctx := context.Background()
	repo := NewContractRepository(gdb)

	cred := makeCreditor("Dagobert Duck")
	if err := NewCreditorRepository(gdb).Create(ctx, cred); err != nil {
		t.Fatalf("create creditor: %v", err)
	}
	seedContract(t, gdb, accounts, 23, cred.ID)

	amount := decimal.NewFromInt(5000)
	cancel := time.Date(2027, time.June, 30, 0, 0, 0, 0, time.UTC)
	active := true
	applied, err := repo.Update(ctx, 23, contractDomain.Patch{
		Amount:           &amount,
		CancellationDate: &cancel,
		Active:           &active,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !applied {
		t.Fatalf("Update reported nothing applied")
	}

	got, err := repo.GetByID(ctx, 23)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.Amount.Equal(amount) {
		t.Errorf("amount %s", got.Amount)
	}
	if got.CancellationDate == nil || !got.CancellationDate.Equal(cancel) {
		t.Errorf("cancellation date %v", got.CancellationDate)
	}
	if !got.Active {
		t.Errorf("active flag not set")
	}
	// untouched columns keep their values
	if got.Interest != 1.5 || got.CreditorID != cred.ID {
		t.Errorf("unrelated fields changed: %+v", got)
	}
}

func TestContractUpdate_UnknownID(t *testing.T) {
	gdb, _ := provisionTestDB(t)
	repo := NewContractRepository(gdb)

	active := true
	_, err := repo.Update(context.Background(), 77, contractDomain.Patch{Active: &active})
	if !errors.Is(err, contractDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// an empty patch on an unknown id still fails the existence check
	_, err = repo.Update(context.Background(), 77, contractDomain.Patch{})
	if !errors.Is(err, contractDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty patch, got %v", err)
	}
}

func TestContractFind(t *testing.T) {
	gdb, accounts := provisionTestDB(t)
	ctx := context.Background()
	repo := NewContractRepository(gdb)

	cred1 := makeCreditor("Dagobert Duck")
	cred2 := makeCreditor("Gustav Gans")
	creditors := NewCreditorRepository(gdb)
	if err := creditors.Create(ctx, cred1); err != nil {
		t.Fatalf("create creditor: %v", err)
	}
	if err := creditors.Create(ctx, cred2); err != nil {
		t.Fatalf("create creditor: %v", err)
	}
	seedContract(t, gdb, accounts, 1, cred1.ID)
	seedContract(t, gdb, accounts, 2, cred1.ID)
	seedContract(t, gdb, accounts, 3, cred2.ID)

	got, err := repo.Find(ctx, query.Filters{"creditor": query.Exact(cred1.ID)})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("creditor filter wrong: %+v", got)
	}

	got, err = repo.Find(ctx, query.Filters{})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("unfiltered find expected 3 rows, got %d", len(got))
	}

	if _, err := repo.Find(ctx, query.Filters{"amount": query.Exact(1)}); !errors.Is(err, query.ErrUnsupportedFilter) {
		t.Fatalf("expected ErrUnsupportedFilter, got %v", err)
	}
}

func TestContractDelete(t *testing.T) {
	gdb, accounts := provisionTestDB(t)
	ctx := context.Background()
	repo := NewContractRepository(gdb)

	cred := makeCreditor("Dagobert Duck")
	if err := NewCreditorRepository(gdb).Create(ctx, cred); err != nil {
		t.Fatalf("create creditor: %v", err)
	}
	c := seedContract(t, gdb, accounts, 23, cred.ID)

	if err := repo.Delete(ctx, 23); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, 23); !errors.Is(err, contractDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// the ledger account survives the contract
	if _, err := NewAccountRepository(gdb).GetByGUID(ctx, c.AccountGUID); err != nil {
		t.Errorf("contract account gone after delete: %v", err)
	}
	if err := repo.Delete(ctx, 23); !errors.Is(err, contractDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
