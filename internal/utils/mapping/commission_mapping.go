package mapping

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	"github.com/tripfin/travel_ledger_app/internal/models"
)

// ToModelCommissionRecord converts a domain CommissionRecord to its model row.
func ToModelCommissionRecord(d domain.CommissionRecord) (models.CommissionRecord, error) {
	var breakdown []byte
	if len(d.Breakdown) > 0 {
		b, err := json.Marshal(d.Breakdown)
		if err != nil {
			return models.CommissionRecord{}, err
		}
		breakdown = b
	}
	return models.CommissionRecord{
		CommissionID:     d.CommissionID,
		BookingReference: d.BookingReference,
		EarnerType:       string(d.EarnerType),
		EarnerID:         d.EarnerID,
		Amount:           d.Amount,
		Breakdown:        breakdown,
		Status:           string(d.Status),
		JournalEntryID:   d.JournalEntryID,
		OrganizationID:   d.OrganizationID,
		BranchID:         d.BranchID,
		AgencyID:         d.AgencyID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainCommissionRecord converts a model row to a domain CommissionRecord.
func ToDomainCommissionRecord(m models.CommissionRecord) domain.CommissionRecord {
	var breakdown map[string]decimal.Decimal
	if len(m.Breakdown) > 0 {
		// A malformed breakdown snapshot degrades to nil rather than
		// failing the read path.
		_ = json.Unmarshal(m.Breakdown, &breakdown)
	}
	return domain.CommissionRecord{
		CommissionID:     m.CommissionID,
		BookingReference: m.BookingReference,
		EarnerType:       domain.EarnerType(m.EarnerType),
		EarnerID:         m.EarnerID,
		Amount:           m.Amount,
		Breakdown:        breakdown,
		Status:           domain.CommissionStatus(m.Status),
		JournalEntryID:   m.JournalEntryID,
		Scope: domain.Scope{
			OrganizationID: m.OrganizationID,
			BranchID:       m.BranchID,
			AgencyID:       m.AgencyID,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
