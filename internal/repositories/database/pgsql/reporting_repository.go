package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripfin/travel_ledger_app/internal/core/ports/repositories"
)

// PgxReportingRepository serves read-only aggregations over the journal
// log. Reversed entries never contribute.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetTrialBalanceRows groups non-reversed lines by account and sums the
// debit and credit sides. Account code, name and type come from the live
// chart so renamed accounts report under their current name.
func (r *PgxReportingRepository) GetTrialBalanceRows(ctx context.Context, filter domain.ReportFilter) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_id, a.code AS account_code, a.name AS account_name, a.account_type,
		       COALESCE(SUM(l.debit), 0) AS total_debit,
		       COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.is_reversed = FALSE
	`
	var args []any
	query, args = appendEntryFilter(query, args, filter, "e.")
	query += `
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance: %w", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&row.AccountType,
			&row.TotalDebit,
			&row.TotalCredit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trial balance rows: %w", err)
	}
	return result, nil
}

// GetAccountLines returns one account's non-reversed lines ordered by
// (entry_date, created_at, line_no). Running balances are derived by the
// caller. A line without its own description falls back to the entry's.
func (r *PgxReportingRepository) GetAccountLines(ctx context.Context, filter domain.ReportFilter, accountID string) ([]domain.LedgerLine, error) {
	query := `
		SELECT e.entry_id, e.entry_date, e.created_at, e.reference_type,
		       COALESCE(NULLIF(l.description, ''), e.description) AS description,
		       l.debit, l.credit
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.is_reversed = FALSE
	`
	args := []any{accountID}
	query += " AND l.account_id = $1"
	query, args = appendEntryFilter(query, args, filter, "e.")
	query += " ORDER BY e.entry_date, e.created_at, l.line_no;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger lines for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var lines []domain.LedgerLine
	for rows.Next() {
		var line domain.LedgerLine
		if err := rows.Scan(
			&line.EntryID,
			&line.EntryDate,
			&line.CreatedAt,
			&line.ReferenceType,
			&line.Description,
			&line.Debit,
			&line.Credit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger lines: %w", err)
	}
	return lines, nil
}
