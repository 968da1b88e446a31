package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripfin/travel_ledger_app/internal/apperrors"
	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripfin/travel_ledger_app/internal/core/ports/repositories"
	"github.com/tripfin/travel_ledger_app/internal/models"
	"github.com/tripfin/travel_ledger_app/internal/utils/mapping"
)

// PgxAccountRepository persists the chart of accounts.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, code, name, account_type, parent_account_id, organization_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

const insertAccountSQL = `
	INSERT INTO accounts (` + accountColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

// SaveAccount inserts a new account together with its audit record.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account, audit domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertAccountTx(ctx, tx, account); err != nil {
		return err
	}
	if err := insertAuditTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveAccountsBatch inserts several accounts and one covering audit record
// in a single transaction.
func (r *PgxAccountRepository) SaveAccountsBatch(ctx context.Context, accounts []domain.Account, audit domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, account := range accounts {
		if err := insertAccountTx(ctx, tx, account); err != nil {
			return err
		}
	}
	if err := insertAuditTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertAccountTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := tx.Exec(ctx, insertAccountSQL,
		m.AccountID,
		m.Code,
		m.Name,
		m.AccountType,
		m.ParentAccountID,
		m.OrganizationID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// UpdateAccount updates the mutable account fields with the audit record in
// the same transaction.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account, audit domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $2, parent_account_id = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE account_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.ParentAccountID,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertAuditTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountByCode resolves a code within one organization's chart. An
// organization-specific account shadows a global one with the same code;
// a nil organization searches the global chart only.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, organizationID *string, code string) (*domain.Account, error) {
	var query string
	var args []any
	if organizationID == nil {
		query = `SELECT ` + accountColumns + ` FROM accounts WHERE organization_id IS NULL AND code = $1;`
		args = []any{code}
	} else {
		query = `
			SELECT ` + accountColumns + `
			FROM accounts
			WHERE code = $1 AND (organization_id = $2 OR organization_id IS NULL)
			ORDER BY organization_id NULLS LAST
			LIMIT 1;
		`
		args = []any{code, *organizationID}
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find account by code %s: %w", code, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by code %s: %w", code, err)
	}

	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts returns accounts matching the filter, ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filter portsrepo.ListAccountsFilter) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE 1=1`
	var args []any
	if filter.OrganizationID != nil {
		args = append(args, *filter.OrganizationID)
		query += fmt.Sprintf(" AND organization_id = $%d", len(args))
	}
	if filter.AccountType != nil {
		args = append(args, string(*filter.AccountType))
		query += fmt.Sprintf(" AND account_type = $%d", len(args))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}
	query += " ORDER BY code;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// ListAccountsForOrganization returns the active accounts an organization
// may post against: its own chart plus global accounts.
func (r *PgxAccountRepository) ListAccountsForOrganization(ctx context.Context, organizationID *string) ([]domain.Account, error) {
	var query string
	var args []any
	if organizationID == nil {
		query = `SELECT ` + accountColumns + ` FROM accounts WHERE organization_id IS NULL AND is_active ORDER BY code;`
	} else {
		query = `
			SELECT ` + accountColumns + `
			FROM accounts
			WHERE (organization_id = $1 OR organization_id IS NULL) AND is_active
			ORDER BY code;
		`
		args = []any{*organizationID}
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for organization: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for organization: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}
