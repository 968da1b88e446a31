package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tripfin/travel_ledger_app/internal/apperrors"
	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripfin/travel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tripfin/travel_ledger_app/internal/core/ports/services"
	"github.com/tripfin/travel_ledger_app/internal/dto"
	"github.com/tripfin/travel_ledger_app/internal/utils/accounting"
)

const journalCollection = "journal_entries"

// Posting account names the built-in rules resolve against the chart.
const (
	receivableAccountName        = "Accounts Receivable"
	cashAccountName              = "Cash"
	bankAccountName              = "Bank"
	costOfSalesAccountName       = "Cost of Sales"
	supplierPayableAccountName   = "Supplier Payable"
	commissionExpenseAccountName = "Commission Expense"
	commissionPayableAccountName = "Commissions Payable"
)

// journalService is the sole write path into the ledger. Every mutation
// lands together with its audit record in one repository transaction.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) portssvc.JournalService {
	return &journalService{journalRepo: journalRepo, accountRepo: accountRepo}
}

var _ portssvc.JournalService = (*journalService)(nil)

// CreateJournalEntry posts a raw entry. Line accounts are referenced by
// exact code and snapshotted into the lines at write time.
func (s *journalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.JournalEntry, error) {
	scope := req.ToDomainScope()

	lines := make([]domain.JournalLine, 0, len(req.Lines))
	for _, lr := range req.Lines {
		account, err := s.accountRepo.FindAccountByCode(ctx, scope.OrganizationID, lr.AccountCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown account code %s", apperrors.ErrValidation, lr.AccountCode)
			}
			s.LogError(ctx, err, "Failed to resolve account code", slog.String("code", lr.AccountCode))
			return nil, fmt.Errorf("failed to resolve account code %s: %w", lr.AccountCode, err)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, lr.AccountCode)
		}
		lines = append(lines, domain.JournalLine{
			Account:     accountRefOf(account),
			Debit:       lr.Debit,
			Credit:      lr.Credit,
			Description: lr.Description,
		})
	}

	entry := s.newEntry(req.ReferenceType, req.ReferenceID, req.Date, scope, req.Description, lines, creatorUserID)
	if err := s.saveEntry(ctx, entry, creatorUserID); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetJournalEntry retrieves one entry with its lines, reversed or not.
func (s *journalService) GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("journal entry %s: %w", entryID, err)
	}
	return entry, nil
}

// ListJournalEntries returns scoped entries ordered by (entry_date,
// created_at) ascending.
func (s *journalService) ListJournalEntries(ctx context.Context, filter domain.ReportFilter, includeReversed bool) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListEntries(ctx, filter, includeReversed)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// UpdateJournalEntry patches the entry header. Lines and amounts are
// immutable; correcting them means reversing and reposting.
func (s *journalService) UpdateJournalEntry(ctx context.Context, entryID string, req dto.UpdateJournalRequest, updaterUserID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("journal entry %s: %w", entryID, err)
	}
	if entry.IsReversed {
		return nil, fmt.Errorf("%w: journal entry %s is reversed", apperrors.ErrConflict, entryID)
	}

	before := *entry
	updated := false
	if req.Date != nil {
		entry.EntryDate = *req.Date
		updated = true
	}
	if req.Description != nil {
		entry.Description = *req.Description
		updated = true
	}
	if !updated {
		return entry, nil
	}

	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = updaterUserID

	audit := newAuditRecord(domain.AuditUpdateJournal, journalCollection, entry.EntryID, before, entry, updaterUserID)
	if err := s.journalRepo.UpdateEntryHeader(ctx, *entry, audit); err != nil {
		s.LogError(ctx, err, "Failed to update journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update journal entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "Journal entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

// ReverseJournalEntry soft-voids an entry. The entry stays retrievable with
// IsReversed set and stops contributing to every report; no compensating
// entry is written.
func (s *journalService) ReverseJournalEntry(ctx context.Context, entryID string, reversedBy string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("journal entry %s: %w", entryID, err)
	}
	if entry.IsReversed {
		return nil, fmt.Errorf("%w: journal entry %s is already reversed", apperrors.ErrConflict, entryID)
	}

	before := *entry
	now := time.Now().UTC()
	entry.IsReversed = true
	entry.ReversedBy = &reversedBy
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = reversedBy

	audit := newAuditRecord(domain.AuditDeleteJournal, journalCollection, entry.EntryID, before, entry, reversedBy)
	if err := s.journalRepo.MarkReversed(ctx, entryID, reversedBy, now, audit); err != nil {
		s.LogError(ctx, err, "Failed to reverse journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to reverse journal entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("entry_id", entryID),
		slog.String("reversed_by", reversedBy))
	return entry, nil
}

// PostBookingSale records the revenue of one booking and, when a purchasing
// cost can be derived, a second cost entry. The two entries share the same
// reference id.
func (s *journalService) PostBookingSale(ctx context.Context, req dto.BookingSaleRequest, creatorUserID string) ([]*domain.JournalEntry, error) {
	payload := req.Payload()
	if payload == nil {
		return nil, fmt.Errorf("%w: booking payload does not match kind %q", apperrors.ErrValidation, req.Kind)
	}

	selling, purchasing := payload.Totals()
	if !selling.IsPositive() {
		return nil, fmt.Errorf("%w: booking %s has no positive selling total", apperrors.ErrValidation, req.BookingID)
	}

	scope := req.ToDomainScope()
	wanted := []string{receivableAccountName, payload.RevenueAccountName()}
	if purchasing.IsPositive() {
		wanted = append(wanted, costOfSalesAccountName, supplierPayableAccountName)
	}
	refs, err := s.resolveByName(ctx, scope.OrganizationID, wanted)
	if err != nil {
		return nil, err
	}

	saleLines := []domain.JournalLine{
		{
			Account:     refs[receivableAccountName],
			Debit:       selling,
			Credit:      decimal.Zero,
			Description: fmt.Sprintf("Receivable for booking %s", req.BookingID),
		},
		{
			Account:     refs[payload.RevenueAccountName()],
			Debit:       decimal.Zero,
			Credit:      selling,
			Description: fmt.Sprintf("Revenue for booking %s", req.BookingID),
		},
	}
	sale := s.newEntry(payload.ReferenceType(), req.BookingID, req.Date, scope,
		fmt.Sprintf("Booking sale %s", req.BookingID), saleLines, creatorUserID)
	if err := s.saveEntry(ctx, sale, creatorUserID); err != nil {
		return nil, err
	}
	entries := []*domain.JournalEntry{sale}

	if purchasing.IsPositive() {
		costLines := []domain.JournalLine{
			{
				Account:     refs[costOfSalesAccountName],
				Debit:       purchasing,
				Credit:      decimal.Zero,
				Description: fmt.Sprintf("Cost of booking %s", req.BookingID),
			},
			{
				Account:     refs[supplierPayableAccountName],
				Debit:       decimal.Zero,
				Credit:      purchasing,
				Description: fmt.Sprintf("Supplier payable for booking %s", req.BookingID),
			},
		}
		cost := s.newEntry(payload.ReferenceType(), req.BookingID, req.Date, scope,
			fmt.Sprintf("Booking cost %s", req.BookingID), costLines, creatorUserID)
		if err := s.saveEntry(ctx, cost, creatorUserID); err != nil {
			return nil, err
		}
		entries = append(entries, cost)
	}

	return entries, nil
}

// PostPaymentReceived settles customer receivables. Cash payments debit the
// cash account, every other method debits the bank account.
func (s *journalService) PostPaymentReceived(ctx context.Context, req dto.PaymentReceivedRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	debitName := bankAccountName
	if req.Method == domain.PaymentCash {
		debitName = cashAccountName
	}

	scope := req.ToDomainScope()
	refs, err := s.resolveByName(ctx, scope.OrganizationID, []string{debitName, receivableAccountName})
	if err != nil {
		return nil, err
	}

	lines := []domain.JournalLine{
		{
			Account:     refs[debitName],
			Debit:       req.Amount,
			Credit:      decimal.Zero,
			Description: fmt.Sprintf("Payment %s received via %s", req.PaymentID, req.Method),
		},
		{
			Account:     refs[receivableAccountName],
			Debit:       decimal.Zero,
			Credit:      req.Amount,
			Description: fmt.Sprintf("Receivable settled by payment %s", req.PaymentID),
		},
	}

	entry := s.newEntry(domain.RefPaymentReceived, req.PaymentID, req.Date, scope,
		fmt.Sprintf("Customer payment %s", req.PaymentID), lines, creatorUserID)
	if err := s.saveEntry(ctx, entry, creatorUserID); err != nil {
		return nil, err
	}
	return entry, nil
}

// PostManualEntry records an income, expense, salary, vendor bill or
// adjustment using the default posting codes for the entry type, unless the
// request overrides one or both sides with explicit codes.
func (s *journalService) PostManualEntry(ctx context.Context, req dto.ManualEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: manual entry amount must be positive", apperrors.ErrValidation)
	}

	defaults, ok := manualEntryDefaults[req.EntryType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown manual entry type %q", apperrors.ErrValidation, req.EntryType)
	}

	debitCode := defaults.DebitCode
	if req.DebitCode != nil {
		debitCode = *req.DebitCode
	}
	creditCode := defaults.CreditCode
	if req.CreditCode != nil {
		creditCode = *req.CreditCode
	}

	scope := req.ToDomainScope()
	debitRef, err := s.resolveByCode(ctx, scope.OrganizationID, debitCode)
	if err != nil {
		return nil, err
	}
	creditRef, err := s.resolveByCode(ctx, scope.OrganizationID, creditCode)
	if err != nil {
		return nil, err
	}

	lines := []domain.JournalLine{
		{
			Account:     debitRef,
			Debit:       req.Amount,
			Credit:      decimal.Zero,
			Description: req.Description,
		},
		{
			Account:     creditRef,
			Debit:       decimal.Zero,
			Credit:      req.Amount,
			Description: req.Description,
		},
	}

	entry := s.newEntry(req.EntryType, req.ReferenceID, req.Date, scope, req.Description, lines, creatorUserID)
	if err := s.saveEntry(ctx, entry, creatorUserID); err != nil {
		return nil, err
	}
	return entry, nil
}

// PostCommissionPayout accrues the commission expense against the
// commissions payable account at payout time.
func (s *journalService) PostCommissionPayout(ctx context.Context, commission *domain.CommissionRecord, creatorUserID string) (*domain.JournalEntry, error) {
	if commission == nil {
		return nil, fmt.Errorf("%w: nil commission record", apperrors.ErrValidation)
	}
	if !commission.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: commission %s amount must be positive", apperrors.ErrValidation, commission.CommissionID)
	}

	refs, err := s.resolveByName(ctx, commission.OrganizationID,
		[]string{commissionExpenseAccountName, commissionPayableAccountName})
	if err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("Commission payout to %s %s", commission.EarnerType, commission.EarnerID)
	lines := []domain.JournalLine{
		{
			Account:     refs[commissionExpenseAccountName],
			Debit:       commission.Amount,
			Credit:      decimal.Zero,
			Description: desc,
		},
		{
			Account:     refs[commissionPayableAccountName],
			Debit:       decimal.Zero,
			Credit:      commission.Amount,
			Description: desc,
		},
	}

	entry := s.newEntry(domain.RefCommissionPayout, commission.CommissionID, nil, commission.Scope, desc, lines, creatorUserID)
	if err := s.saveEntry(ctx, entry, creatorUserID); err != nil {
		return nil, err
	}
	return entry, nil
}

// newEntry assembles an unsaved journal entry. A nil date defaults to now.
func (s *journalService) newEntry(refType domain.ReferenceType, refID string, date *time.Time, scope domain.Scope, description string, lines []domain.JournalLine, creatorUserID string) *domain.JournalEntry {
	now := time.Now().UTC()
	entryDate := now
	if date != nil {
		entryDate = *date
	}
	return &domain.JournalEntry{
		EntryID:       uuid.NewString(),
		EntryDate:     entryDate,
		ReferenceType: refType,
		ReferenceID:   refID,
		Scope:         scope,
		Description:   description,
		Lines:         lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
}

// saveEntry validates the double-entry invariant and writes the entry and
// its CREATE_JOURNAL audit record in one repository transaction.
func (s *journalService) saveEntry(ctx context.Context, entry *domain.JournalEntry, creatorUserID string) error {
	if err := accounting.ValidateDoubleEntry(entry.Lines); err != nil {
		s.LogWarn(ctx, "Rejected unbalanced journal entry",
			slog.String("reference_type", string(entry.ReferenceType)),
			slog.String("reference_id", entry.ReferenceID),
			slog.String("error", err.Error()))
		return err
	}

	audit := newAuditRecord(domain.AuditCreateJournal, journalCollection, entry.EntryID, nil, entry, creatorUserID)
	if err := s.journalRepo.SaveJournalEntry(ctx, *entry, audit); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry",
			slog.String("entry_id", entry.EntryID),
			slog.String("reference_type", string(entry.ReferenceType)))
		return fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("reference_type", string(entry.ReferenceType)),
		slog.String("reference_id", entry.ReferenceID))
	return nil
}

// resolveByCode snapshots one active account referenced by exact code.
func (s *journalService) resolveByCode(ctx context.Context, organizationID *string, code string) (domain.AccountRef, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, organizationID, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.AccountRef{}, fmt.Errorf("%w: unknown account code %s", apperrors.ErrValidation, code)
		}
		return domain.AccountRef{}, fmt.Errorf("failed to resolve account code %s: %w", code, err)
	}
	if !account.IsActive {
		return domain.AccountRef{}, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, code)
	}
	return accountRefOf(account), nil
}

// resolveByName maps posting account names to account snapshots over the
// organization's active chart. Matching is a case-insensitive substring
// check against the account name; when several accounts match, the one with
// the shortest name wins so "Accounts Receivable" is preferred over
// "Accounts Receivable - Corporate". Names that resolve to no account are
// reported together in one MissingAccountsError.
func (s *journalService) resolveByName(ctx context.Context, organizationID *string, names []string) (map[string]domain.AccountRef, error) {
	accounts, err := s.accountRepo.ListAccountsForOrganization(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for name resolution")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	refs := make(map[string]domain.AccountRef, len(names))
	var missing []string
	for _, name := range names {
		target := strings.ToLower(name)
		var candidates []domain.Account
		for _, acc := range accounts {
			if strings.Contains(strings.ToLower(acc.Name), target) {
				candidates = append(candidates, acc)
			}
		}
		if len(candidates) == 0 {
			missing = append(missing, name)
			continue
		}
		sort.Slice(candidates, func(i, j int) bool {
			if len(candidates[i].Name) != len(candidates[j].Name) {
				return len(candidates[i].Name) < len(candidates[j].Name)
			}
			return candidates[i].Code < candidates[j].Code
		})
		refs[name] = accountRefOf(&candidates[0])
	}

	if len(missing) > 0 {
		return nil, &apperrors.MissingAccountsError{Missing: missing}
	}
	return refs, nil
}

func accountRefOf(a *domain.Account) domain.AccountRef {
	return domain.AccountRef{
		AccountID:    a.AccountID,
		CodeSnapshot: a.Code,
		NameSnapshot: a.Name,
	}
}
