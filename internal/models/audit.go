package models

import "time"

// AuditRecord is the audit_trail table row. OldData/NewData are jsonb.
type AuditRecord struct {
	AuditID     string    `db:"audit_id"`
	Action      string    `db:"action"`
	Collection  string    `db:"collection"`
	ReferenceID string    `db:"reference_id"`
	OldData     []byte    `db:"old_data"`
	NewData     []byte    `db:"new_data"`
	PerformedBy string    `db:"performed_by"`
	Timestamp   time.Time `db:"timestamp"`
}
