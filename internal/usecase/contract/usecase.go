package contract

import (
	"context"
	"errors"
	"fmt"
	"log"

	"dkcash/internal/domain/contract"
	"dkcash/internal/domain/creditor"
	"dkcash/internal/domain/query"
	"dkcash/internal/domain/uow"
)

type Usecase struct {
	contracts contract.Repository
	creditors creditor.Repository
	uow       uow.UnitOfWork
	// guid of the Direktkredite role account, the parent of every
	// per-contract liability account
	dkParentGUID string
}

func NewUsecase(contracts contract.Repository, creditors creditor.Repository, tx uow.UnitOfWork, dkParentGUID string) *Usecase {
	return &Usecase{contracts: contracts, creditors: creditors, uow: tx, dkParentGUID: dkParentGUID}
}

// Create validates the contract, provisions its dedicated liability account
// if absent, and inserts the row, all within one transaction. The contract
// starts out inactive; it is activated once the transfer is booked.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ContractDTO, error) {
	ent, err := u.validate(in)
	if err != nil {
		return nil, err
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Creditors.GetByID(ctx, ent.CreditorID); err != nil {
			if errors.Is(err, creditor.ErrNotFound) {
				return contract.ErrCreditorNotFound
			}
			return fmt.Errorf("look up creditor %d: %w", ent.CreditorID, err)
		}
		parent, err := r.Accounts.GetByGUID(ctx, u.dkParentGUID)
		if err != nil {
			return err
		}
		acc, err := r.Accounts.EnsureContractAccount(ctx, parent, ent.ID)
		if err != nil {
			return err
		}
		ent.AccountGUID = acc.GUID
		return r.Contracts.Create(ctx, ent)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(ent), nil
}

func (u *Usecase) Get(ctx context.Context, id int64) (*ContractDTO, error) {
	c, err := u.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

// Update overwrites the supplied fields and resynchronizes from the
// reloaded row. The second return value reports whether anything was
// supplied.
func (u *Usecase) Update(ctx context.Context, id int64, in UpdateInput) (*ContractDTO, bool, error) {
	p := contract.Patch{
		CreditorID:       in.CreditorID,
		Date:             in.Date,
		Amount:           in.Amount,
		Interest:         in.Interest,
		Version:          in.Version,
		PeriodNotice:     in.PeriodNotice,
		PeriodEnd:        in.PeriodEnd,
		CancellationDate: in.CancellationDate,
		Active:           in.Active,
	}
	if in.InterestPayment != nil {
		ip := contract.InterestPayment(*in.InterestPayment)
		if !ip.Valid() {
			return nil, false, contract.ErrBadInterestPayment
		}
		p.InterestPayment = &ip
	}
	if in.PeriodType != nil {
		pt := contract.PeriodType(*in.PeriodType)
		if !pt.Valid() {
			return nil, false, contract.ErrUnknownPeriodType
		}
		p.PeriodType = &pt
	}
	if in.Amount != nil && in.Amount.IsNegative() {
		return nil, false, contract.ErrNegativeAmount
	}
	if in.Interest != nil && *in.Interest < 0 {
		return nil, false, contract.ErrNegativeInterest
	}
	applied, err := u.contracts.Update(ctx, id, p)
	if err != nil {
		return nil, false, err
	}
	reloaded, err := u.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, applied, err
	}
	return toDTO(reloaded), applied, nil
}

// Delete removes the contract row and returns the owning creditor's id. The
// per-contract ledger account stays: it may carry transaction splits, and a
// later contract with the same number reuses it.
func (u *Usecase) Delete(ctx context.Context, id int64) (int64, error) {
	c, err := u.contracts.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := u.contracts.Delete(ctx, id); err != nil {
		return 0, err
	}
	return c.CreditorID, nil
}

func (u *Usecase) Find(ctx context.Context, f query.Filters) ([]ContractDTO, error) {
	rows, err := u.contracts.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ContractDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) validate(in CreateInput) (*contract.Contract, error) {
	id, err := contract.ParseID(in.ContractID)
	if err != nil {
		return nil, err
	}
	if in.Amount.IsNegative() {
		return nil, contract.ErrNegativeAmount
	}
	if in.Interest < 0 {
		return nil, contract.ErrNegativeInterest
	}
	ip := contract.InterestPayment(in.InterestPayment)
	if in.InterestPayment == "" {
		ip = contract.PayInterestOut
	}
	if !ip.Valid() {
		return nil, contract.ErrBadInterestPayment
	}
	pt := contract.PeriodType(in.PeriodType)
	if in.PeriodType == "" {
		pt = contract.PeriodFixedDuration
	}
	notice, end := in.PeriodNotice, in.PeriodEnd
	switch pt {
	case contract.PeriodFixedDuration:
		if end == nil {
			return nil, contract.ErrPeriodEndRequired
		}
		if notice != nil {
			log.Printf("contract %d: period notice ignored for %s", id, pt)
			notice = nil
		}
	case contract.PeriodFixedNotice:
		if notice == nil {
			return nil, contract.ErrPeriodNoticeRequired
		}
		if end != nil {
			log.Printf("contract %d: period end ignored for %s", id, pt)
			end = nil
		}
	case contract.PeriodInitialPlusN:
		if notice == nil {
			return nil, contract.ErrPeriodNoticeRequired
		}
		if end == nil {
			return nil, contract.ErrPeriodEndRequired
		}
	default:
		return nil, contract.ErrUnknownPeriodType
	}
	return &contract.Contract{
		ID:              id,
		CreditorID:      in.CreditorID,
		Date:            in.Date,
		Amount:          in.Amount,
		Interest:        in.Interest,
		InterestPayment: ip,
		Version:         in.Version,
		PeriodType:      pt,
		PeriodNotice:    notice,
		PeriodEnd:       end,
		Active:          false,
	}, nil
}

func toDTO(c *contract.Contract) *ContractDTO {
	return &ContractDTO{
		ID:               c.ID,
		CreditorID:       c.CreditorID,
		AccountGUID:      c.AccountGUID,
		Date:             c.Date,
		Amount:           c.Amount,
		Interest:         c.Interest,
		InterestPayment:  string(c.InterestPayment),
		PeriodType:       string(c.PeriodType),
		PeriodNotice:     c.PeriodNotice,
		PeriodEnd:        c.PeriodEnd,
		Version:          c.Version,
		CancellationDate: c.CancellationDate,
		Active:           c.Active,
	}
}
