package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tripfin/travel_ledger_app/internal/apperrors"
	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripfin/travel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tripfin/travel_ledger_app/internal/core/ports/services"
	"github.com/tripfin/travel_ledger_app/internal/dto"
)

const accountsCollection = "accounts"

// accountService manages the chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountService {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountService = (*accountService)(nil)

// CreateAccount creates a single account. The (code, organization) pair must
// be unique; a collision surfaces as DuplicateAccountCodeError.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if !domain.ValidAccountType(req.AccountType) {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	existing, err := s.accountRepo.FindAccountByCode(ctx, req.OrganizationID, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account code uniqueness", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to check account code %s: %w", req.Code, err)
	}
	if existing != nil {
		orgID := ""
		if req.OrganizationID != nil {
			orgID = *req.OrganizationID
		}
		return nil, &apperrors.DuplicateAccountCodeError{Code: req.Code, OrganizationID: orgID}
	}

	if req.ParentAccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID); err != nil {
			return nil, fmt.Errorf("parent account %s: %w", *req.ParentAccountID, err)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     req.AccountType,
		ParentAccountID: req.ParentAccountID,
		OrganizationID:  req.OrganizationID,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	audit := newAuditRecord(domain.AuditCreateCOA, accountsCollection, account.AccountID, nil, account, creatorUserID)
	if err := s.accountRepo.SaveAccount(ctx, account, audit); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// UpdateAccount patches an account. Accounts are never deleted; setting
// IsActive=false deactivates them.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for update", slog.String("account_id", accountID))
		}
		return nil, fmt.Errorf("account %s: %w", accountID, err)
	}

	before := *account
	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.ParentAccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID); err != nil {
			return nil, fmt.Errorf("parent account %s: %w", *req.ParentAccountID, err)
		}
		account.ParentAccountID = req.ParentAccountID
		updated = true
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
		updated = true
	}

	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = updaterUserID

	audit := newAuditRecord(domain.AuditUpdateCOA, accountsCollection, account.AccountID, before, account, updaterUserID)
	if err := s.accountRepo.UpdateAccount(ctx, *account, audit); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

// GetAccountByID retrieves one account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", accountID, err)
	}
	return account, nil
}

// ListAccounts returns accounts matching the filter, sorted by code.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, portsrepo.ListAccountsFilter{
		OrganizationID: params.OrganizationID,
		AccountType:    params.AccountType,
		IsActive:       params.IsActive,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// SeedDefaultChart installs the default chart for an organization in two
// passes: roots first (building the code-to-id map), then children whose
// parent id resolves from that map. Codes already present are skipped and
// counted, so repeated seeding is idempotent and keeps account ids stable.
// One SEED_COA audit record covers the whole batch.
func (s *accountService) SeedDefaultChart(ctx context.Context, organizationID string, actorUserID string) (*dto.SeedChartResult, error) {
	chart, err := loadDefaultChart()
	if err != nil {
		return nil, err
	}

	existing, err := s.accountRepo.ListAccounts(ctx, portsrepo.ListAccountsFilter{OrganizationID: &organizationID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list existing accounts for seeding", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list accounts for organization %s: %w", organizationID, err)
	}

	codeToID := make(map[string]string, len(chart.Accounts))
	for _, acc := range existing {
		codeToID[acc.Code] = acc.AccountID
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorUserID,
	}

	var toInsert []domain.Account
	skipped := 0

	// Pass one: roots.
	for _, row := range chart.Accounts {
		if row.Parent != "" {
			continue
		}
		if _, ok := codeToID[row.Code]; ok {
			skipped++
			continue
		}
		acc := domain.Account{
			AccountID:      uuid.NewString(),
			Code:           row.Code,
			Name:           row.Name,
			AccountType:    domain.AccountType(row.Type),
			OrganizationID: &organizationID,
			IsActive:       true,
			AuditFields:    audit,
		}
		codeToID[row.Code] = acc.AccountID
		toInsert = append(toInsert, acc)
	}

	// Pass two: children, resolving parent ids from the map built above.
	for _, row := range chart.Accounts {
		if row.Parent == "" {
			continue
		}
		if _, ok := codeToID[row.Code]; ok {
			skipped++
			continue
		}
		parentID, ok := codeToID[row.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: parent code %s unresolved while seeding %s", apperrors.ErrInternal, row.Parent, row.Code)
		}
		acc := domain.Account{
			AccountID:       uuid.NewString(),
			Code:            row.Code,
			Name:            row.Name,
			AccountType:     domain.AccountType(row.Type),
			ParentAccountID: &parentID,
			OrganizationID:  &organizationID,
			IsActive:        true,
			AuditFields:     audit,
		}
		codeToID[row.Code] = acc.AccountID
		toInsert = append(toInsert, acc)
	}

	result := &dto.SeedChartResult{Inserted: len(toInsert), Skipped: skipped}

	if len(toInsert) > 0 {
		batchAudit := newAuditRecord(domain.AuditSeedCOA, accountsCollection, organizationID, nil, result, actorUserID)
		if err := s.accountRepo.SaveAccountsBatch(ctx, toInsert, batchAudit); err != nil {
			s.LogError(ctx, err, "Failed to seed default chart", slog.String("organization_id", organizationID))
			return nil, fmt.Errorf("failed to seed default chart for organization %s: %w", organizationID, err)
		}
	}

	s.LogInfo(ctx, "Default chart seeded",
		slog.String("organization_id", organizationID),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped))
	return result, nil
}
