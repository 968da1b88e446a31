package mapping

import (
	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	"github.com/tripfin/travel_ledger_app/internal/models"
)

// ToModelAuditRecord converts a domain AuditRecord to its model row.
func ToModelAuditRecord(d domain.AuditRecord) models.AuditRecord {
	return models.AuditRecord{
		AuditID:     d.AuditID,
		Action:      string(d.Action),
		Collection:  d.Collection,
		ReferenceID: d.ReferenceID,
		OldData:     d.OldData,
		NewData:     d.NewData,
		PerformedBy: d.PerformedBy,
		Timestamp:   d.Timestamp,
	}
}

// ToDomainAuditRecord converts a model row to a domain AuditRecord.
func ToDomainAuditRecord(m models.AuditRecord) domain.AuditRecord {
	return domain.AuditRecord{
		AuditID:     m.AuditID,
		Action:      domain.AuditAction(m.Action),
		Collection:  m.Collection,
		ReferenceID: m.ReferenceID,
		OldData:     m.OldData,
		NewData:     m.NewData,
		PerformedBy: m.PerformedBy,
		Timestamp:   m.Timestamp,
	}
}

// ToDomainAuditRecordSlice converts model rows to domain AuditRecords.
func ToDomainAuditRecordSlice(ms []models.AuditRecord) []domain.AuditRecord {
	ds := make([]domain.AuditRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditRecord(m)
	}
	return ds
}
