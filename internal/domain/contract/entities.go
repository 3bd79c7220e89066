package contract

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"dkcash/internal/domain/creditor"
	"dkcash/internal/domain/ledger"
)

// InterestPayment says what happens with the accrued interest each year.
type InterestPayment string

const (
	PayInterestOut      InterestPayment = "payout"
	PayInterestCumul    InterestPayment = "cumulative"
	PayInterestReinvest InterestPayment = "reinvest"
)

func (p InterestPayment) Valid() bool {
	switch p {
	case PayInterestOut, PayInterestCumul, PayInterestReinvest:
		return true
	}
	return false
}

// PeriodType is the policy governing when and how a contract ends.
type PeriodType string

const (
	// Fixed end date; requires PeriodEnd.
	PeriodFixedDuration PeriodType = "fixed_duration"
	// Open-ended with a notice period; requires PeriodNotice.
	PeriodFixedNotice PeriodType = "fixed_period_notice"
	// Initial term plus rolling notice; requires both.
	PeriodInitialPlusN PeriodType = "initial_plus_n"
)

func (p PeriodType) Valid() bool {
	switch p {
	case PeriodFixedDuration, PeriodFixedNotice, PeriodInitialPlusN:
		return true
	}
	return false
}

// ParseID parses a caller-supplied contract id. The id is the number printed
// on the written contract; strings must convert losslessly to an integer.
func ParseID(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrBadContractID
	}
	return n, nil
}

// Contract is one loan agreement, one row of the auxiliary contracts table.
// The id is caller-supplied (not auto-incremented) and globally unique; each
// contract owns exactly one dedicated ledger liability account.
type Contract struct {
	ID               int64           `gorm:"column:id;primaryKey;autoIncrement:false"`
	CreditorID       int64           `gorm:"column:creditor;not null"`
	AccountGUID      string          `gorm:"column:account;type:char(32);not null"`
	Date             time.Time       `gorm:"column:date;not null"`
	Amount           decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null"`
	Interest         float64         `gorm:"column:interest;not null"`
	InterestPayment  InterestPayment `gorm:"column:interest_payment;not null"`
	Version          string          `gorm:"column:version"`
	PeriodType       PeriodType      `gorm:"column:period_type;not null"`
	PeriodNotice     *string         `gorm:"column:period_notice"`
	PeriodEnd        *time.Time      `gorm:"column:period_end"`
	CancellationDate *time.Time      `gorm:"column:cancellation_date"`
	Active           bool            `gorm:"column:active;not null"`

	Owner       creditor.Creditor `gorm:"foreignKey:CreditorID;references:ID"`
	LoanAccount ledger.Account    `gorm:"foreignKey:AccountGUID;references:GUID"`
}

func (Contract) TableName() string { return "contracts" }

// Patch carries a partial update; nil fields are left untouched. Set fields
// overwrite unconditionally, there is no historical versioning.
type Patch struct {
	CreditorID       *int64
	Date             *time.Time
	Amount           *decimal.Decimal
	Interest         *float64
	InterestPayment  *InterestPayment
	Version          *string
	PeriodType       *PeriodType
	PeriodNotice     *string
	PeriodEnd        *time.Time
	CancellationDate *time.Time
	Active           *bool
}

func (p Patch) Empty() bool {
	return p.CreditorID == nil && p.Date == nil && p.Amount == nil &&
		p.Interest == nil && p.InterestPayment == nil && p.Version == nil &&
		p.PeriodType == nil && p.PeriodNotice == nil && p.PeriodEnd == nil &&
		p.CancellationDate == nil && p.Active == nil
}
