package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripfin/travel_ledger_app/internal/apperrors"
	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	"github.com/tripfin/travel_ledger_app/internal/utils/mapping"
)

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. A rollback after a successful commit
// is a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

const insertAuditSQL = `
	INSERT INTO audit_trail (audit_id, action, collection, reference_id, old_data, new_data, performed_by, "timestamp")
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

// insertAuditTx appends one audit record inside the caller's transaction so
// the audit row commits or rolls back with the primary write.
func insertAuditTx(ctx context.Context, tx pgx.Tx, record domain.AuditRecord) error {
	m := mapping.ToModelAuditRecord(record)
	_, err := tx.Exec(ctx, insertAuditSQL,
		m.AuditID,
		m.Action,
		m.Collection,
		m.ReferenceID,
		m.OldData,
		m.NewData,
		m.PerformedBy,
		m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit record %s: %w", m.AuditID, err)
	}
	return nil
}
