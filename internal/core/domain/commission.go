package domain

import "github.com/shopspring/decimal"

// EarnerType identifies who earns a commission.
type EarnerType string

const (
	EarnerEmployee EarnerType = "employee"
	EarnerAgency   EarnerType = "agency"
	EarnerBranch   EarnerType = "branch"
)

// CommissionStatus is a forward-only state machine:
// pending -> earned -> paid.
type CommissionStatus string

const (
	CommissionPending CommissionStatus = "pending"
	CommissionEarned  CommissionStatus = "earned"
	CommissionPaid    CommissionStatus = "paid"
)

// CanTransition reports whether moving from s to next is a legal forward step.
func (s CommissionStatus) CanTransition(next CommissionStatus) bool {
	switch s {
	case CommissionPending:
		return next == CommissionEarned
	case CommissionEarned:
		return next == CommissionPaid
	}
	return false
}

// CommissionRecord tracks one commission from accrual to payout.
// JournalEntryID is set only when the payout posts to the ledger.
type CommissionRecord struct {
	CommissionID     string                     `json:"commissionID"`
	BookingReference string                     `json:"bookingReference"`
	EarnerType       EarnerType                 `json:"earnerType"`
	EarnerID         string                     `json:"earnerID"`
	Amount           decimal.Decimal            `json:"commissionAmount"`
	Breakdown        map[string]decimal.Decimal `json:"commissionBreakdown,omitempty"`
	Status           CommissionStatus           `json:"status"`
	JournalEntryID   *string                    `json:"journalEntryID"`
	Scope
	AuditFields
}
