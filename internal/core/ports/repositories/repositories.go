package repositories

import (
	"context"
	"time"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
)

// ListAccountsFilter narrows account listing. Nil fields are unfiltered.
type ListAccountsFilter struct {
	OrganizationID *string
	AccountType    *domain.AccountType
	IsActive       *bool
}

// AccountRepository persists the chart of accounts. Mutations take the audit
// record alongside the document so both land in one database transaction.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account, audit domain.AuditRecord) error
	SaveAccountsBatch(ctx context.Context, accounts []domain.Account, audit domain.AuditRecord) error
	UpdateAccount(ctx context.Context, account domain.Account, audit domain.AuditRecord) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByCode(ctx context.Context, organizationID *string, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, filter ListAccountsFilter) ([]domain.Account, error)
	// ListAccountsForOrganization returns the active accounts an
	// organization may post against: its own chart plus global accounts.
	ListAccountsForOrganization(ctx context.Context, organizationID *string) ([]domain.Account, error)
}

// JournalRepository persists journal entries and their lines.
type JournalRepository interface {
	// SaveJournalEntry inserts the entry, its lines and the audit record
	// in a single transaction.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, audit domain.AuditRecord) error
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	// ListEntries returns scoped entries with lines, ordered by
	// (entry_date, created_at) ascending. Reversed entries are excluded
	// unless includeReversed is set.
	ListEntries(ctx context.Context, filter domain.ReportFilter, includeReversed bool) ([]domain.JournalEntry, error)
	MarkReversed(ctx context.Context, entryID, reversedBy string, at time.Time, audit domain.AuditRecord) error
	UpdateEntryHeader(ctx context.Context, entry domain.JournalEntry, audit domain.AuditRecord) error
	// ListAgencyIDs returns the distinct non-null agency ids present in
	// scoped, non-reversed entries.
	ListAgencyIDs(ctx context.Context, filter domain.ReportFilter) ([]string, error)
}

// ReportingRepository serves read-only aggregations over the journal log.
type ReportingRepository interface {
	// GetTrialBalanceRows groups non-reversed lines by account and sums
	// the debit and credit sides, enriched with account code/name/type.
	GetTrialBalanceRows(ctx context.Context, filter domain.ReportFilter) ([]domain.TrialBalanceRow, error)
	// GetAccountLines returns one account's non-reversed lines ordered by
	// (entry_date, created_at); running balances are derived by the caller.
	GetAccountLines(ctx context.Context, filter domain.ReportFilter, accountID string) ([]domain.LedgerLine, error)
}

// AuditRepository is the append-only audit trail store.
type AuditRepository interface {
	AppendAuditRecord(ctx context.Context, record domain.AuditRecord) error
	ListAuditRecords(ctx context.Context, collection *string, referenceID *string, limit int) ([]domain.AuditRecord, error)
}

// ListCommissionsFilter narrows commission listing. Nil fields are unfiltered.
type ListCommissionsFilter struct {
	EarnerType *domain.EarnerType
	EarnerID   *string
	Status     *domain.CommissionStatus
}

// RepositoryProvider bundles the repositories for service wiring.
type RepositoryProvider struct {
	AccountRepo    AccountRepository
	JournalRepo    JournalRepository
	ReportingRepo  ReportingRepository
	AuditRepo      AuditRepository
	CommissionRepo CommissionRepository
}

// CommissionRepository persists commission records.
type CommissionRepository interface {
	SaveCommission(ctx context.Context, record domain.CommissionRecord) error
	FindCommissionByID(ctx context.Context, commissionID string) (*domain.CommissionRecord, error)
	// UpdateCommissionStatus advances the record and, together with the
	// audit record, commits in one transaction. journalEntryID is set on
	// payout only.
	UpdateCommissionStatus(ctx context.Context, commissionID string, status domain.CommissionStatus, journalEntryID *string, updatedBy string, at time.Time, audit *domain.AuditRecord) error
	ListCommissions(ctx context.Context, filter ListCommissionsFilter) ([]domain.CommissionRecord, error)
}
