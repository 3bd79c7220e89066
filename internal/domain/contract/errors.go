package contract

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("contract not found")
	ErrInconsistent = errors.New("multiple contracts share one id")

	ErrBadContractID        = errors.New("contract id must be an integer")
	ErrCreditorNotFound     = errors.New("contract references an unknown creditor")
	ErrNegativeAmount       = errors.New("amount must not be negative")
	ErrNegativeInterest     = errors.New("interest must not be negative")
	ErrBadInterestPayment   = errors.New("interest payment must be payout, cumulative or reinvest")
	ErrUnknownPeriodType    = errors.New("unknown period type")
	ErrPeriodEndRequired    = errors.New("period type requires a period end")
	ErrPeriodNoticeRequired = errors.New("period type requires a period notice")
)

// DatabaseError reports an operation that would have left the store in an
// inconsistent state, naming the offending table and column instead of
// leaking the raw storage error.
type DatabaseError struct {
	Table  string
	Column string
	Desc   string
}

func (e *DatabaseError) Error() string {
	s := fmt.Sprintf("there is a problem with %s (%s)", e.Table, e.Column)
	if e.Desc != "" {
		return s + ": " + e.Desc
	}
	return s + "."
}
