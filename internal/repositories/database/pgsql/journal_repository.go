package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripfin/travel_ledger_app/internal/apperrors"
	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripfin/travel_ledger_app/internal/core/ports/repositories"
	"github.com/tripfin/travel_ledger_app/internal/models"
	"github.com/tripfin/travel_ledger_app/internal/utils/mapping"
)

// PgxJournalRepository persists journal entries and their lines.
type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, entry_date, reference_type, reference_id, organization_id, branch_id, agency_id, description, is_reversed, reversed_by, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, line_no, account_id, account_code, account_name, debit, credit, description`

// SaveJournalEntry inserts the entry header, its lines and the audit record
// in a single transaction. A failure on any row leaves nothing behind.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, audit domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	header := mapping.ToModelJournalEntry(entry)
	insertEntry := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, insertEntry,
		header.EntryID,
		header.EntryDate,
		header.ReferenceType,
		header.ReferenceID,
		header.OrganizationID,
		header.BranchID,
		header.AgencyID,
		header.Description,
		header.IsReversed,
		header.ReversedBy,
		header.CreatedAt,
		header.CreatedBy,
		header.LastUpdatedAt,
		header.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry %s: %w", header.EntryID, err)
	}

	insertLine := `
		INSERT INTO journal_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for i, line := range entry.Lines {
		m := mapping.ToModelJournalLine(entry.EntryID, i+1, line)
		_, err = tx.Exec(ctx, insertLine,
			uuid.NewString(),
			m.EntryID,
			m.LineNo,
			m.AccountID,
			m.AccountCode,
			m.AccountName,
			m.Debit,
			m.Credit,
			m.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to save journal line %d of entry %s: %w", i+1, header.EntryID, err)
		}
	}

	if err := insertAuditTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves one entry with its lines, reversed or not.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	header, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.JournalEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	linesByEntry, err := r.findLinesByEntryIDs(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainJournalEntry(header)
	entry.Lines = linesByEntry[entryID]
	return &entry, nil
}

// ListEntries returns scoped entries with their lines, ordered by
// (entry_date, created_at) ascending. Reversed entries are excluded unless
// includeReversed is set.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter domain.ReportFilter, includeReversed bool) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE 1=1`
	var args []any
	query, args = appendEntryFilter(query, args, filter, "")
	if !includeReversed {
		query += " AND is_reversed = FALSE"
	}
	query += " ORDER BY entry_date, created_at;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	headers, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[models.JournalEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if len(headers) == 0 {
		return nil, nil
	}

	entryIDs := make([]string, len(headers))
	for i, h := range headers {
		entryIDs[i] = h.EntryID
	}
	linesByEntry, err := r.findLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainJournalEntry(h)
		entries[i].Lines = linesByEntry[h.EntryID]
	}
	return entries, nil
}

// MarkReversed flips the reversal flag and appends the audit record in one
// transaction. An already-reversed entry is a conflict.
func (r *PgxJournalRepository) MarkReversed(ctx context.Context, entryID, reversedBy string, at time.Time, audit domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE journal_entries
		SET is_reversed = TRUE, reversed_by = $2, last_updated_at = $3, last_updated_by = $2
		WHERE entry_id = $1 AND is_reversed = FALSE;
	`
	tag, err := tx.Exec(ctx, query, entryID, reversedBy, at)
	if err != nil {
		return fmt.Errorf("failed to reverse journal entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s missing or already reversed", apperrors.ErrConflict, entryID)
	}

	if err := insertAuditTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateEntryHeader updates the mutable header fields with the audit record
// in the same transaction. Lines are immutable.
func (r *PgxJournalRepository) UpdateEntryHeader(ctx context.Context, entry domain.JournalEntry, audit domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	query := `
		UPDATE journal_entries
		SET entry_date = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1 AND is_reversed = FALSE;
	`
	tag, err := tx.Exec(ctx, query,
		m.EntryID,
		m.EntryDate,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertAuditTx(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ListAgencyIDs returns the distinct agencies present in scoped,
// non-reversed entries.
func (r *PgxJournalRepository) ListAgencyIDs(ctx context.Context, filter domain.ReportFilter) ([]string, error) {
	filter.AgencyID = nil
	query := `SELECT DISTINCT agency_id FROM journal_entries WHERE agency_id IS NOT NULL AND is_reversed = FALSE`
	var args []any
	query, args = appendEntryFilter(query, args, filter, "")
	query += " ORDER BY agency_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list agency ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to list agency ids: %w", err)
	}
	return ids, nil
}

// findLinesByEntryIDs loads lines for a set of entries in one query, keyed
// by entry id and ordered by line number.
func (r *PgxJournalRepository) findLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_no;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal lines: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[models.JournalLine])
	if err != nil {
		return nil, fmt.Errorf("failed to load journal lines: %w", err)
	}

	byEntry := make(map[string][]domain.JournalLine, len(entryIDs))
	for _, m := range ms {
		byEntry[m.EntryID] = append(byEntry[m.EntryID], mapping.ToDomainJournalLine(m))
	}
	return byEntry, nil
}

// appendEntryFilter appends the scope and date conditions of a report
// filter to a journal_entries query. prefix qualifies the column names when
// the query joins other tables (e.g. "e.").
func appendEntryFilter(query string, args []any, filter domain.ReportFilter, prefix string) (string, []any) {
	if filter.OrganizationID != nil {
		args = append(args, *filter.OrganizationID)
		query += fmt.Sprintf(" AND %sorganization_id = $%d", prefix, len(args))
	}
	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		query += fmt.Sprintf(" AND %sbranch_id = $%d", prefix, len(args))
	}
	if filter.AgencyID != nil {
		args = append(args, *filter.AgencyID)
		query += fmt.Sprintf(" AND %sagency_id = $%d", prefix, len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += fmt.Sprintf(" AND %sentry_date >= $%d", prefix, len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += fmt.Sprintf(" AND %sentry_date <= $%d", prefix, len(args))
	}
	return query, args
}
