package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInput is a contract before insertion. ContractID is the number on
// the written contract, as a string that must convert losslessly to an
// integer. InterestPayment defaults to payout, PeriodType to fixed_duration.
type CreateInput struct {
	ContractID      string
	CreditorID      int64
	Date            time.Time
	Amount          decimal.Decimal
	Interest        float64
	InterestPayment string
	PeriodType      string
	PeriodNotice    *string
	PeriodEnd       *time.Time
	Version         string
}

// UpdateInput carries a partial update; set fields overwrite
// unconditionally, there is no historical versioning.
type UpdateInput struct {
	CreditorID       *int64
	Date             *time.Time
	Amount           *decimal.Decimal
	Interest         *float64
	InterestPayment  *string
	PeriodType       *string
	PeriodNotice     *string
	PeriodEnd        *time.Time
	Version          *string
	CancellationDate *time.Time
	Active           *bool
}

type ContractDTO struct {
	ID               int64           `json:"id"`
	CreditorID       int64           `json:"creditor_id"`
	AccountGUID      string          `json:"account_guid"`
	Date             time.Time       `json:"date"`
	Amount           decimal.Decimal `json:"amount"`
	Interest         float64         `json:"interest"`
	InterestPayment  string          `json:"interest_payment"`
	PeriodType       string          `json:"period_type"`
	PeriodNotice     *string         `json:"period_notice,omitempty"`
	PeriodEnd        *time.Time      `json:"period_end,omitempty"`
	Version          string          `json:"version,omitempty"`
	CancellationDate *time.Time      `json:"cancellation_date,omitempty"`
	Active           bool            `json:"active"`
}
