package mapping

import (
	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	"github.com/tripfin/travel_ledger_app/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to its model row.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:        d.EntryID,
		EntryDate:      d.EntryDate,
		ReferenceType:  string(d.ReferenceType),
		ReferenceID:    d.ReferenceID,
		OrganizationID: d.OrganizationID,
		BranchID:       d.BranchID,
		AgencyID:       d.AgencyID,
		Description:    d.Description,
		IsReversed:     d.IsReversed,
		ReversedBy:     d.ReversedBy,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model row to a domain JournalEntry header.
// Lines are attached by the caller.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:       m.EntryID,
		EntryDate:     m.EntryDate,
		ReferenceType: domain.ReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		Scope: domain.Scope{
			OrganizationID: m.OrganizationID,
			BranchID:       m.BranchID,
			AgencyID:       m.AgencyID,
		},
		Description: m.Description,
		IsReversed:  m.IsReversed,
		ReversedBy:  m.ReversedBy,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts one domain line to its model row.
func ToModelJournalLine(entryID string, lineNo int, d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		EntryID:     entryID,
		LineNo:      lineNo,
		AccountID:   d.Account.AccountID,
		AccountCode: d.Account.CodeSnapshot,
		AccountName: d.Account.NameSnapshot,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Description: d.Description,
	}
}

// ToDomainJournalLine converts a model row to a domain line.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		Account: domain.AccountRef{
			AccountID:    m.AccountID,
			CodeSnapshot: m.AccountCode,
			NameSnapshot: m.AccountName,
		},
		Debit:       m.Debit,
		Credit:      m.Credit,
		Description: m.Description,
	}
}

// ToDomainJournalLineSlice converts model rows to domain lines.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
