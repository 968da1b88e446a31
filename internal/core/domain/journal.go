package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceType identifies the business event a journal entry records.
type ReferenceType string

const (
	RefTicketBooking    ReferenceType = "ticket_booking"
	RefPackageBooking   ReferenceType = "package_booking"
	RefCustomBooking    ReferenceType = "custom_booking"
	RefPaymentReceived  ReferenceType = "payment_received"
	RefManualIncome     ReferenceType = "manual_income"
	RefManualExpense    ReferenceType = "manual_expense"
	RefSalary           ReferenceType = "salary"
	RefVendorBill       ReferenceType = "vendor_bill"
	RefAdjustment       ReferenceType = "adjustment"
	RefCommissionPayout ReferenceType = "commission_payout"
)

// PaymentMethod identifies how a customer payment was received.
type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "cash"
	PaymentBank    PaymentMethod = "bank_transfer"
	PaymentCard    PaymentMethod = "card"
	PaymentCheque  PaymentMethod = "cheque"
	PaymentGateway PaymentMethod = "gateway"
)

// JournalLine is a single debit or credit against one account. The account
// reference is a snapshot taken at posting time.
type JournalLine struct {
	Account     AccountRef      `json:"account"`
	Debit       decimal.Decimal `json:"debit"`  // >= 0
	Credit      decimal.Decimal `json:"credit"` // >= 0
	Description string          `json:"description"`
}

// JournalEntry is a single balanced financial event. It is created only by
// the journal engine and "deleted" only by flipping IsReversed.
type JournalEntry struct {
	EntryID       string        `json:"entryID"`
	EntryDate     time.Time     `json:"entryDate"`
	ReferenceType ReferenceType `json:"referenceType"`
	ReferenceID   string        `json:"referenceID"`
	Scope
	Description string        `json:"description"`
	Lines       []JournalLine `json:"lines"` // at least two
	IsReversed  bool          `json:"isReversed"`
	ReversedBy  *string       `json:"reversedBy"`
	AuditFields
}

// Totals returns the entry's summed debit and credit sides, unrounded.
func (e *JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}
