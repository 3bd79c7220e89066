package gnucash

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dkcash/internal/domain/contract"
	"dkcash/internal/domain/query"
)

type ContractRepository struct{ db *gorm.DB }

func NewContractRepository(db *gorm.DB) *ContractRepository { return &ContractRepository{db: db} }

func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return &contract.DatabaseError{
			Table:  "contracts",
			Column: "id",
			Desc:   fmt.Sprintf("contract %d already exists", c.ID),
		}
	}
	return err
}

func (r *ContractRepository) GetByID(ctx context.Context, id int64) (*contract.Contract, error) {
	var out contract.Contract
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, contract.ErrNotFound
	}
	return &out, err
}

func (r *ContractRepository) Update(ctx context.Context, id int64, p contract.Patch) (bool, error) {
	updates := map[string]any{}
	if p.CreditorID != nil {
		updates["creditor"] = *p.CreditorID
	}
	if p.Date != nil {
		updates["date"] = *p.Date
	}
	if p.Amount != nil {
		updates["amount"] = *p.Amount
	}
	if p.Interest != nil {
		updates["interest"] = *p.Interest
	}
	if p.InterestPayment != nil {
		updates["interest_payment"] = *p.InterestPayment
	}
	if p.Version != nil {
		updates["version"] = *p.Version
	}
	if p.PeriodType != nil {
		updates["period_type"] = *p.PeriodType
	}
	if p.PeriodNotice != nil {
		updates["period_notice"] = *p.PeriodNotice
	}
	if p.PeriodEnd != nil {
		updates["period_end"] = *p.PeriodEnd
	}
	if p.CancellationDate != nil {
		updates["cancellation_date"] = *p.CancellationDate
	}
	if p.Active != nil {
		updates["active"] = *p.Active
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return false, err
	}
	if len(updates) == 0 {
		return false, nil
	}
	err := r.db.WithContext(ctx).
		Model(&contract.Contract{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ContractRepository) Find(ctx context.Context, f query.Filters) ([]contract.Contract, error) {
	tx, err := applyFilters(r.db.WithContext(ctx), contractFilterColumns, f)
	if err != nil {
		return nil, err
	}
	var out []contract.Contract
	if err := tx.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContractRepository) Delete(ctx context.Context, id int64) error {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&contract.Contract{}).
		Where("id = ?", id).
		Count(&n).Error; err != nil {
		return err
	}
	switch {
	case n == 0:
		return fmt.Errorf("%w: id %d", contract.ErrNotFound, id)
	case n > 1:
		return fmt.Errorf("%w: id %d matches %d rows", contract.ErrInconsistent, id, n)
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&contract.Contract{}).Error
}
