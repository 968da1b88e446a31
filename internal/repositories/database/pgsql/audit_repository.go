package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripfin/travel_ledger_app/internal/core/ports/repositories"
	"github.com/tripfin/travel_ledger_app/internal/models"
	"github.com/tripfin/travel_ledger_app/internal/utils/mapping"
)

// PgxAuditRepository is the append-only audit trail store. There is no
// update or delete path.
type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepository {
	return &PgxAuditRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

// AppendAuditRecord appends one standalone audit record. Records written
// alongside another mutation go through that repository's transaction
// instead.
func (r *PgxAuditRepository) AppendAuditRecord(ctx context.Context, record domain.AuditRecord) error {
	m := mapping.ToModelAuditRecord(record)
	_, err := r.Pool.Exec(ctx, insertAuditSQL,
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
		return fmt.Errorf("failed to append audit record %s: %w", m.AuditID, err)
	}
	return nil
}

// ListAuditRecords returns records newest-first, optionally filtered by
// collection and reference id.
func (r *PgxAuditRepository) ListAuditRecords(ctx context.Context, collection *string, referenceID *string, limit int) ([]domain.AuditRecord, error) {
	query := `
		SELECT audit_id, action, collection, reference_id, old_data, new_data, performed_by, "timestamp"
		FROM audit_trail
		WHERE 1=1
	`
	var args []any
	if collection != nil {
		args = append(args, *collection)
		query += fmt.Sprintf(" AND collection = $%d", len(args))
	}
	if referenceID != nil {
		args = append(args, *referenceID)
		query += fmt.Sprintf(" AND reference_id = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY "timestamp" DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[models.AuditRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	return mapping.ToDomainAuditRecordSlice(ms), nil
}
