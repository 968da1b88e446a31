package services

import (
	"context"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	"github.com/tripfin/travel_ledger_app/internal/dto"
)

// ServiceContainer holds instances of all the application services. It is
// the entry point handlers use to reach service functionality.
type ServiceContainer struct {
	Account    AccountService
	Journal    JournalService
	Reporting  ReportingService
	Commission CommissionService
	Audit      AuditService
}

// AccountService manages the chart of accounts.
type AccountService interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
	// SeedDefaultChart idempotently installs the default chart for an
	// organization; already-present codes are skipped and counted.
	SeedDefaultChart(ctx context.Context, organizationID string, actorUserID string) (*dto.SeedChartResult, error)
}

// JournalService is the sole write path into the ledger.
type JournalService interface {
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.JournalEntry, error)
	GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context, filter domain.ReportFilter, includeReversed bool) ([]domain.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, entryID string, req dto.UpdateJournalRequest, updaterUserID string) (*domain.JournalEntry, error)
	// ReverseJournalEntry soft-voids an entry: it stays retrievable with
	// IsReversed set, and stops contributing to every report.
	ReverseJournalEntry(ctx context.Context, entryID string, reversedBy string) (*domain.JournalEntry, error)

	// Domain posting rules. Each builds balanced lines and goes through
	// CreateJournalEntry.
	PostBookingSale(ctx context.Context, req dto.BookingSaleRequest, creatorUserID string) ([]*domain.JournalEntry, error)
	PostPaymentReceived(ctx context.Context, req dto.PaymentReceivedRequest, creatorUserID string) (*domain.JournalEntry, error)
	PostManualEntry(ctx context.Context, req dto.ManualEntryRequest, creatorUserID string) (*domain.JournalEntry, error)
	PostCommissionPayout(ctx context.Context, commission *domain.CommissionRecord, creatorUserID string) (*domain.JournalEntry, error)
}

// ReportingService derives every report from the journal log on demand.
type ReportingService interface {
	TrialBalance(ctx context.Context, filter domain.ReportFilter) (*domain.TrialBalanceReport, error)
	ProfitAndLoss(ctx context.Context, filter domain.ReportFilter) (*domain.ProfitAndLossReport, error)
	BalanceSheet(ctx context.Context, filter domain.ReportFilter) (*domain.BalanceSheetReport, error)
	Ledger(ctx context.Context, filter domain.ReportFilter, accountID *string) (*domain.LedgerReport, error)
	AgencyStatement(ctx context.Context, agencyID string, filter domain.ReportFilter) (*domain.AgencyStatement, error)
	AllAgencyStatements(ctx context.Context, filter domain.ReportFilter) ([]domain.AgencyStatement, error)
	DashboardKPIs(ctx context.Context, filter domain.ReportFilter) (*domain.DashboardKPIs, error)
}

// CommissionService drives the pending -> earned -> paid lifecycle.
type CommissionService interface {
	CreateCommission(ctx context.Context, req dto.CreateCommissionRequest, creatorUserID string) (*domain.CommissionRecord, error)
	MarkEarned(ctx context.Context, commissionID string, actorUserID string) (*domain.CommissionRecord, error)
	// Pay posts the payout journal entry and advances the record to paid,
	// storing the new entry id.
	Pay(ctx context.Context, commissionID string, actorUserID string) (*domain.CommissionRecord, error)
	GetCommissionByID(ctx context.Context, commissionID string) (*domain.CommissionRecord, error)
	ListCommissions(ctx context.Context, params dto.ListCommissionsParams) ([]domain.CommissionRecord, error)
}

// AuditService exposes the append-only audit trail.
type AuditService interface {
	Write(ctx context.Context, record domain.AuditRecord) error
	List(ctx context.Context, params dto.ListAuditParams) ([]domain.AuditRecord, error)
}
