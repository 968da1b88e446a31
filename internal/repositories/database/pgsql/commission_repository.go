package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripfin/travel_ledger_app/internal/apperrors"
	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripfin/travel_ledger_app/internal/core/ports/repositories"
	"github.com/tripfin/travel_ledger_app/internal/models"
	"github.com/tripfin/travel_ledger_app/internal/utils/mapping"
)

// PgxCommissionRepository persists commission records.
type PgxCommissionRepository struct {
	BaseRepository
}

func newPgxCommissionRepository(pool *pgxpool.Pool) portsrepo.CommissionRepository {
	return &PgxCommissionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CommissionRepository = (*PgxCommissionRepository)(nil)

const commissionColumns = `commission_id, booking_reference, earner_type, earner_id, commission_amount, commission_breakdown, status, journal_entry_id, organization_id, branch_id, agency_id, created_at, created_by, last_updated_at, last_updated_by`

// SaveCommission inserts a new commission record.
func (r *PgxCommissionRepository) SaveCommission(ctx context.Context, record domain.CommissionRecord) error {
	m, err := mapping.ToModelCommissionRecord(record)
	if err != nil {
		return fmt.Errorf("failed to encode commission %s: %w", record.CommissionID, err)
	}

	query := `
		INSERT INTO commission_records (` + commissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.CommissionID,
		m.BookingReference,
		m.EarnerType,
		m.EarnerID,
		m.Amount,
		m.Breakdown,
		m.Status,
		m.JournalEntryID,
		m.OrganizationID,
		m.BranchID,
		m.AgencyID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: commission %s already exists", apperrors.ErrDuplicate, m.CommissionID)
		}
		return fmt.Errorf("failed to save commission %s: %w", m.CommissionID, err)
	}
	return nil
}

// FindCommissionByID retrieves one commission record.
func (r *PgxCommissionRepository) FindCommissionByID(ctx context.Context, commissionID string) (*domain.CommissionRecord, error) {
	query := `SELECT ` + commissionColumns + ` FROM commission_records WHERE commission_id = $1;`
	rows, err := r.Pool.Query(ctx, query, commissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find commission %s: %w", commissionID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.CommissionRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find commission %s: %w", commissionID, err)
	}

	record := mapping.ToDomainCommissionRecord(m)
	return &record, nil
}

// UpdateCommissionStatus advances the record's status and, when an audit
// record is supplied, commits both in one transaction. journalEntryID is
// only set on payout.
func (r *PgxCommissionRepository) UpdateCommissionStatus(ctx context.Context, commissionID string, status domain.CommissionStatus, journalEntryID *string, updatedBy string, at time.Time, audit *domain.AuditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE commission_records
		SET status = $2, journal_entry_id = COALESCE($3, journal_entry_id), last_updated_at = $4, last_updated_by = $5
		WHERE commission_id = $1;
	`
	tag, err := tx.Exec(ctx, query, commissionID, string(status), journalEntryID, at, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update commission %s: %w", commissionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if audit != nil {
		if err := insertAuditTx(ctx, tx, *audit); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

// ListCommissions returns records matching the filter, newest first.
func (r *PgxCommissionRepository) ListCommissions(ctx context.Context, filter portsrepo.ListCommissionsFilter) ([]domain.CommissionRecord, error) {
	query := `SELECT ` + commissionColumns + ` FROM commission_records WHERE 1=1`
	var args []any
	if filter.EarnerType != nil {
		args = append(args, string(*filter.EarnerType))
		query += fmt.Sprintf(" AND earner_type = $%d", len(args))
	}
	if filter.EarnerID != nil {
		args = append(args, *filter.EarnerID)
		query += fmt.Sprintf(" AND earner_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[models.CommissionRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}

	records := make([]domain.CommissionRecord, len(ms))
	for i, m := range ms {
		records[i] = mapping.ToDomainCommissionRecord(m)
	}
	return records, nil
}
