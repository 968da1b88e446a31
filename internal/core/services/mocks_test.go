package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripfin/travel_ledger_app/internal/core/ports/repositories"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account, audit domain.AuditRecord) error {
	args := m.Called(ctx, account, audit)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccountsBatch(ctx context.Context, accounts []domain.Account, audit domain.AuditRecord) error {
	args := m.Called(ctx, accounts, audit)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account, audit domain.AuditRecord) error {
	args := m.Called(ctx, account, audit)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, organizationID *string, code string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, filter portsrepo.ListAccountsFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsForOrganization(ctx context.Context, organizationID *string) ([]domain.Account, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockJournalRepository is a mock type for the JournalRepository interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, audit domain.AuditRecord) error {
	args := m.Called(ctx, entry, audit)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, filter domain.ReportFilter, includeReversed bool) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, filter, includeReversed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) MarkReversed(ctx context.Context, entryID, reversedBy string, at time.Time, audit domain.AuditRecord) error {
	args := m.Called(ctx, entryID, reversedBy, at, audit)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateEntryHeader(ctx context.Context, entry domain.JournalEntry, audit domain.AuditRecord) error {
	args := m.Called(ctx, entry, audit)
	return args.Error(0)
}

func (m *MockJournalRepository) ListAgencyIDs(ctx context.Context, filter domain.ReportFilter) ([]string, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetTrialBalanceRows(ctx context.Context, filter domain.ReportFilter) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) GetAccountLines(ctx context.Context, filter domain.ReportFilter, accountID string) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, filter, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

// MockAuditRepository is a mock type for the AuditRepository interface
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) AppendAuditRecord(ctx context.Context, record domain.AuditRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAuditRepository) ListAuditRecords(ctx context.Context, collection *string, referenceID *string, limit int) ([]domain.AuditRecord, error) {
	args := m.Called(ctx, collection, referenceID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditRecord), args.Error(1)
}

// MockCommissionRepository is a mock type for the CommissionRepository interface
type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) SaveCommission(ctx context.Context, record domain.CommissionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCommissionRepository) FindCommissionByID(ctx context.Context, commissionID string) (*domain.CommissionRecord, error) {
	args := m.Called(ctx, commissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionRecord), args.Error(1)
}

func (m *MockCommissionRepository) UpdateCommissionStatus(ctx context.Context, commissionID string, status domain.CommissionStatus, journalEntryID *string, updatedBy string, at time.Time, audit *domain.AuditRecord) error {
	args := m.Called(ctx, commissionID, status, journalEntryID, updatedBy, at, audit)
	return args.Error(0)
}

func (m *MockCommissionRepository) ListCommissions(ctx context.Context, filter portsrepo.ListCommissionsFilter) ([]domain.CommissionRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommissionRecord), args.Error(1)
}
