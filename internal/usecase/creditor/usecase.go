package creditor

import (
	"context"
	"fmt"
	"log"

	"dkcash/internal/domain/creditor"
	"dkcash/internal/domain/query"
	"dkcash/internal/domain/uow"
)

type Usecase struct {
	repo creditor.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r creditor.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// Create validates and inserts a creditor, returning it with the
// store-assigned id.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*CreditorDTO, error) {
	ent, err := buildEntity(in)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, ent); err != nil {
		return nil, err
	}
	return toDTO(ent), nil
}

// Retrieve looks a creditor up by id and/or name; at least one key is
// required. Zero matches is a normal outcome and yields (nil, nil). More
// than one match is not fatal: the first row is used and a warning logged.
func (u *Usecase) Retrieve(ctx context.Context, id *int64, name *string) (*CreditorDTO, error) {
	if id == nil && name == nil {
		return nil, creditor.ErrRetrieveKey
	}
	f := query.Filters{}
	if id != nil {
		f["id"] = query.Exact(*id)
	}
	if name != nil {
		f["name"] = query.Exact(*name)
	}
	rows, err := u.repo.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows) > 1 {
		log.Printf("creditor retrieve: %d rows match, using id %d", len(rows), rows[0].ID)
	}
	return toDTO(&rows[0]), nil
}

// Update applies the non-nil fields, then resynchronizes every mirrored
// field from the freshly reloaded row. The second return value reports
// whether anything was supplied.
func (u *Usecase) Update(ctx context.Context, id int64, in UpdateInput) (*CreditorDTO, bool, error) {
	if id <= 0 {
		return nil, false, creditor.ErrNotInserted
	}
	p := creditor.Patch{
		Name:       in.Name,
		Phone:      in.Phone,
		Email:      in.Email,
		Newsletter: in.Newsletter,
	}
	if in.Address != nil {
		lines, err := padAddress(in.Address)
		if err != nil {
			return nil, false, err
		}
		p.Address1, p.Address2, p.Address3, p.Address4 = &lines[0], &lines[1], &lines[2], &lines[3]
	}
	applied, err := u.repo.Update(ctx, id, p)
	if err != nil {
		return nil, false, err
	}
	reloaded, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, applied, err
	}
	return toDTO(reloaded), applied, nil
}

// Delete removes a creditor. Contracts referencing it block the deletion
// unless deleteContracts is set, in which case they are removed first, all
// within one transaction.
func (u *Usecase) Delete(ctx context.Context, id int64, deleteContracts bool) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		held, err := r.Contracts.Find(ctx, query.Filters{"creditor": query.Exact(id)})
		if err != nil {
			return err
		}
		if len(held) > 0 && !deleteContracts {
			return fmt.Errorf("%w: creditor %d holds %d contract(s)", creditor.ErrHasContracts, id, len(held))
		}
		for _, c := range held {
			if err := r.Contracts.Delete(ctx, c.ID); err != nil {
				return err
			}
		}
		return r.Creditors.Delete(ctx, id)
	})
}

func (u *Usecase) Find(ctx context.Context, f query.Filters) ([]CreditorDTO, error) {
	rows, err := u.repo.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]CreditorDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func buildEntity(in CreateInput) (*creditor.Creditor, error) {
	if in.Name == "" {
		return nil, creditor.ErrNameRequired
	}
	lines, err := padAddress(in.Address)
	if err != nil {
		return nil, err
	}
	if in.Newsletter && in.Email == "" {
		return nil, creditor.ErrNewsletterNeedsEmail
	}
	return &creditor.Creditor{
		Name:       in.Name,
		Address1:   lines[0],
		Address2:   lines[1],
		Address3:   lines[2],
		Address4:   lines[3],
		Phone:      in.Phone,
		Email:      in.Email,
		Newsletter: in.Newsletter,
	}, nil
}

// padAddress validates arity and pads missing lines with empty strings.
func padAddress(address []string) ([4]string, error) {
	var lines [4]string
	if len(address) == 0 {
		return lines, creditor.ErrAddressEmpty
	}
	if len(address) > 4 {
		return lines, creditor.ErrAddressTooLong
	}
	if address[0] == "" {
		return lines, creditor.ErrFirstAddressLine
	}
	copy(lines[:], address)
	return lines, nil
}

func toDTO(c *creditor.Creditor) *CreditorDTO {
	return &CreditorDTO{
		ID:         c.ID,
		Name:       c.Name,
		Address:    c.AddressLines(),
		Phone:      c.Phone,
		Email:      c.Email,
		Newsletter: c.Newsletter,
	}
}
