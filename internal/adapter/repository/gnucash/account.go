package gnucash

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"dkcash/internal/domain/ledger"
	"dkcash/pkg/id"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Root(ctx context.Context) (*ledger.Account, error) {
	var b ledger.Book
	if err := r.db.WithContext(ctx).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNoBook
		}
		return nil, err
	}
	return r.GetByGUID(ctx, b.RootAccountGUID)
}

func (r *AccountRepository) GetByGUID(ctx context.Context, guid string) (*ledger.Account, error) {
	var out ledger.Account
	err := r.db.WithContext(ctx).Where("guid = ?", guid).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ledger.ErrAccountNotFound
	}
	return &out, err
}

func (r *AccountRepository) GetByFullName(ctx context.Context, fullname string) (*ledger.Account, error) {
	acc, err := r.Root(ctx)
	if err != nil {
		return nil, err
	}
	if fullname == "" {
		return acc, nil
	}
	for _, segment := range strings.Split(fullname, ":") {
		acc, err = r.Child(ctx, acc.GUID, segment)
		if errors.Is(err, ledger.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: %s", ledger.ErrBaseAccountNotFound, fullname)
		}
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (r *AccountRepository) Child(ctx context.Context, parentGUID, name string) (*ledger.Account, error) {
	var out ledger.Account
	err := r.db.WithContext(ctx).
		Where("parent_guid = ? AND name = ?", parentGUID, name).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ledger.ErrAccountNotFound
	}
	return &out, err
}

func (r *AccountRepository) Create(ctx context.Context, a *ledger.Account) error {
	if a.GUID == "" {
		a.GUID = id.NewGUID()
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) EnsureContractAccount(ctx context.Context, parent *ledger.Account, contractID int64) (*ledger.Account, error) {
	name := ledger.ContractAccountName(contractID)
	acc, err := r.Child(ctx, parent.GUID, name)
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, ledger.ErrAccountNotFound) {
		return nil, err
	}
	commodity := parent.CommodityGUID
	if commodity == "" {
		c, err := r.DefaultCommodity(ctx)
		if err != nil {
			return nil, err
		}
		commodity = c.GUID
	}
	acc = &ledger.Account{
		GUID:          id.NewGUID(),
		Name:          name,
		Type:          ledger.TypeLiability,
		CommodityGUID: commodity,
		CommoditySCU:  100,
		ParentGUID:    &parent.GUID,
		Code:          ledger.ContractAccountCode(parent.Code, contractID),
		Description:   fmt.Sprintf("Direktkredit-Konto für Vertrag %d", contractID),
	}
	if err := r.db.WithContext(ctx).Create(acc).Error; err != nil {
		return nil, err
	}
	return acc, nil
}

func (r *AccountRepository) DefaultCommodity(ctx context.Context) (*ledger.Commodity, error) {
	var out ledger.Commodity
	err := r.db.WithContext(ctx).
		Where("namespace <> ? AND mnemonic = ?", "template", ledger.DefaultCurrency).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// book created by another tool without EUR; fall back to any currency
		err = r.db.WithContext(ctx).Where("namespace <> ?", "template").First(&out).Error
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
