package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripfin/travel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tripfin/travel_ledger_app/internal/core/ports/services"
	"github.com/tripfin/travel_ledger_app/internal/dto"
)

// auditService exposes the append-only audit trail. Mutating services embed
// audit records into their repository calls so the append shares the primary
// write's transaction; this service serves standalone appends and listing.
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditRepository
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditRepository) portssvc.AuditService {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditService = (*auditService)(nil)

// Write appends one audit record. It never mutates or deletes.
func (s *auditService) Write(ctx context.Context, record domain.AuditRecord) error {
	if record.AuditID == "" {
		record.AuditID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}
	if err := s.auditRepo.AppendAuditRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to append audit record",
			slog.String("action", string(record.Action)),
			slog.String("reference_id", record.ReferenceID))
		return fmt.Errorf("failed to append audit record: %w", err)
	}
	return nil
}

// List returns audit records newest-first, optionally filtered by
// collection and reference id.
func (s *auditService) List(ctx context.Context, params dto.ListAuditParams) ([]domain.AuditRecord, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	records, err := s.auditRepo.ListAuditRecords(ctx, params.Collection, params.ReferenceID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit records")
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	return records, nil
}

// newAuditRecord builds an audit record with marshalled before/after
// snapshots. Snapshot marshalling is best effort: an unmarshallable value
// yields a null snapshot rather than blocking the mutation being audited.
func newAuditRecord(action domain.AuditAction, collection, referenceID string, oldData, newData any, performedBy string) domain.AuditRecord {
	return domain.AuditRecord{
		AuditID:     uuid.NewString(),
		Action:      action,
		Collection:  collection,
		ReferenceID: referenceID,
		OldData:     marshalSnapshot(oldData),
		NewData:     marshalSnapshot(newData),
		PerformedBy: performedBy,
		Timestamp:   time.Now().UTC(),
	}
}

func marshalSnapshot(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
