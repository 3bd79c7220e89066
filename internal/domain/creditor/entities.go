package creditor

import "errors"

var (
	ErrNotFound     = errors.New("creditor not found")
	ErrInconsistent = errors.New("multiple creditors share one id")

	ErrNameRequired         = errors.New("name must not be empty")
	ErrAddressEmpty         = errors.New("address must not be empty")
	ErrAddressTooLong       = errors.New("address must consist of at most 4 lines")
	ErrFirstAddressLine     = errors.New("first line of address must not be empty")
	ErrNewsletterNeedsEmail = errors.New("newsletter requested but no email is set")

	ErrHasContracts = errors.New("creditor still has contracts")
	ErrRetrieveKey  = errors.New("retrieve needs at least an id or a name")
	ErrNotInserted  = errors.New("creditor has not been inserted yet")
)

// Creditor is a lender, one row of the auxiliary creditors table that lives
// next to the GnuCash schema in the same file.
type Creditor struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string `gorm:"column:name;not null"`
	Address1   string `gorm:"column:address1;not null"`
	Address2   string `gorm:"column:address2"`
	Address3   string `gorm:"column:address3"`
	Address4   string `gorm:"column:address4"`
	Phone      string `gorm:"column:phone"`
	Email      string `gorm:"column:email"`
	Newsletter bool   `gorm:"column:newsletter;not null"`
}

func (Creditor) TableName() string { return "creditors" }

// AddressLines returns the four positional address lines.
func (c *Creditor) AddressLines() []string {
	return []string{c.Address1, c.Address2, c.Address3, c.Address4}
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Name       *string
	Address1   *string
	Address2   *string
	Address3   *string
	Address4   *string
	Phone      *string
	Email      *string
	Newsletter *bool
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Address1 == nil && p.Address2 == nil &&
		p.Address3 == nil && p.Address4 == nil && p.Phone == nil &&
		p.Email == nil && p.Newsletter == nil
}
