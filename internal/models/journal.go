package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the journal_entries table row. Lines live in
// journal_lines and are loaded separately or joined.
type JournalEntry struct {
	EntryID        string    `db:"entry_id"`
	EntryDate      time.Time `db:"entry_date"`
	ReferenceType  string    `db:"reference_type"`
	ReferenceID    string    `db:"reference_id"`
	OrganizationID *string   `db:"organization_id"`
	BranchID       *string   `db:"branch_id"`
	AgencyID       *string   `db:"agency_id"`
	Description    string    `db:"description"`
	IsReversed     bool      `db:"is_reversed"`
	ReversedBy     *string   `db:"reversed_by"`
	AuditFields
}

// JournalLine is the journal_lines table row. Account code and name are
// denormalized snapshots taken at posting time.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	LineNo      int             `db:"line_no"`
	AccountID   string          `db:"account_id"`
	AccountCode string          `db:"account_code"`
	AccountName string          `db:"account_name"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Description string          `db:"description"`
}
