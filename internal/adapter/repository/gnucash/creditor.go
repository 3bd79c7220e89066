package gnucash

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dkcash/internal/domain/creditor"
	"dkcash/internal/domain/query"
)

type CreditorRepository struct{ db *gorm.DB }

func NewCreditorRepository(db *gorm.DB) *CreditorRepository { return &CreditorRepository{db: db} }

func (r *CreditorRepository) Create(ctx context.Context, c *creditor.Creditor) error {
	if c.Name == "" {
		return creditor.ErrNameRequired
	}
	if c.Address1 == "" {
		return creditor.ErrFirstAddressLine
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

func (r *CreditorRepository) GetByID(ctx context.Context, id int64) (*creditor.Creditor, error) {
	var out creditor.Creditor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, creditor.ErrNotFound
	}
	return &out, err
}

func (r *CreditorRepository) Update(ctx context.Context, id int64, p creditor.Patch) (bool, error) {
	updates := map[string]any{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Address1 != nil {
		updates["address1"] = *p.Address1
	}
	if p.Address2 != nil {
		updates["address2"] = *p.Address2
	}
	if p.Address3 != nil {
		updates["address3"] = *p.Address3
	}
	if p.Address4 != nil {
		updates["address4"] = *p.Address4
	}
	if p.Phone != nil {
		updates["phone"] = *p.Phone
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.Newsletter != nil {
		updates["newsletter"] = *p.Newsletter
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return false, err
	}
	if len(updates) == 0 {
		return false, nil
	}
	err := r.db.WithContext(ctx).
		Model(&creditor.Creditor{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *CreditorRepository) Find(ctx context.Context, f query.Filters) ([]creditor.Creditor, error) {
	tx, err := applyFilters(r.db.WithContext(ctx), creditorFilterColumns, f)
	if err != nil {
		return nil, err
	}
	var out []creditor.Creditor
	if err := tx.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CreditorRepository) Delete(ctx context.Context, id int64) error {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&creditor.Creditor{}).
		Where("id = ?", id).
		Count(&n).Error; err != nil {
		return err
	}
	switch {
	case n == 0:
		return fmt.Errorf("%w: id %d", creditor.ErrNotFound, id)
	case n > 1:
		// ids are supposed to be unique; this is corruption, not user error
		return fmt.Errorf("%w: id %d matches %d rows", creditor.ErrInconsistent, id, n)
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&creditor.Creditor{}).Error
}
