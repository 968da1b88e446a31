package models

import "github.com/shopspring/decimal"

// CommissionRecord is the commission_records table row. Breakdown is jsonb.
type CommissionRecord struct {
	CommissionID     string          `db:"commission_id"`
	BookingReference string          `db:"booking_reference"`
	EarnerType       string          `db:"earner_type"`
	EarnerID         string          `db:"earner_id"`
	Amount           decimal.Decimal `db:"commission_amount"`
	Breakdown        []byte          `db:"commission_breakdown"`
	Status           string          `db:"status"`
	JournalEntryID   *string         `db:"journal_entry_id"`
	OrganizationID   *string         `db:"organization_id"`
	BranchID         *string         `db:"branch_id"`
	AgencyID         *string         `db:"agency_id"`
	AuditFields
}
