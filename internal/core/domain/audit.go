package domain

import (
	"encoding/json"
	"time"
)

// AuditAction identifies the mutation an audit record describes.
type AuditAction string

const (
	AuditCreateJournal AuditAction = "CREATE_JOURNAL"
	AuditUpdateJournal AuditAction = "UPDATE_JOURNAL"
	AuditDeleteJournal AuditAction = "DELETE_JOURNAL"
	AuditCreateCOA     AuditAction = "CREATE_COA"
	AuditUpdateCOA     AuditAction = "UPDATE_COA"
	AuditSeedCOA       AuditAction = "SEED_COA"
	AuditPayCommission AuditAction = "PAY_COMMISSION"
)

// AuditRecord is one immutable, append-only entry of the audit trail.
// OldData/NewData carry before/after snapshots of the mutated document.
type AuditRecord struct {
	AuditID     string          `json:"auditID"`
	Action      AuditAction     `json:"action"`
	Collection  string          `json:"collection"`
	ReferenceID string          `json:"referenceID"`
	OldData     json.RawMessage `json:"oldData,omitempty"`
	NewData     json.RawMessage `json:"newData,omitempty"`
	PerformedBy string          `json:"performedBy"`
	Timestamp   time.Time       `json:"timestamp"`
}
