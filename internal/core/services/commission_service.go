package services

import (
	"context"
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

const commissionsCollection = "commission_records"

// commissionService drives the pending -> earned -> paid lifecycle. The
// payout step is the only one that touches the ledger, through the journal
// service.
type commissionService struct {
	BaseService
	commissionRepo portsrepo.CommissionRepository
	journalService portssvc.JournalService
}

// NewCommissionService creates a new CommissionService.
func NewCommissionService(commissionRepo portsrepo.CommissionRepository, journalService portssvc.JournalService) portssvc.CommissionService {
	return &commissionService{commissionRepo: commissionRepo, journalService: journalService}
}

var _ portssvc.CommissionService = (*commissionService)(nil)

// CreateCommission registers a pending commission.
func (s *commissionService) CreateCommission(ctx context.Context, req dto.CreateCommissionRequest, creatorUserID string) (*domain.CommissionRecord, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: commission amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	record := domain.CommissionRecord{
		CommissionID:     uuid.NewString(),
		BookingReference: req.BookingReference,
		EarnerType:       req.EarnerType,
		EarnerID:         req.EarnerID,
		Amount:           req.Amount,
		Breakdown:        req.Breakdown,
		Status:           domain.CommissionPending,
		Scope:            req.ToDomainScope(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.commissionRepo.SaveCommission(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save commission",
			slog.String("booking_reference", req.BookingReference))
		return nil, fmt.Errorf("failed to save commission: %w", err)
	}

	s.LogInfo(ctx, "Commission created",
		slog.String("commission_id", record.CommissionID),
		slog.String("earner_id", record.EarnerID))
	return &record, nil
}

// MarkEarned advances a pending commission to earned.
func (s *commissionService) MarkEarned(ctx context.Context, commissionID string, actorUserID string) (*domain.CommissionRecord, error) {
	return s.advance(ctx, commissionID, domain.CommissionEarned, nil, actorUserID, nil)
}

// Pay posts the payout journal entry and advances an earned commission to
// paid, storing the entry id on the record. The status update and its
// PAY_COMMISSION audit record commit together.
func (s *commissionService) Pay(ctx context.Context, commissionID string, actorUserID string) (*domain.CommissionRecord, error) {
	record, err := s.commissionRepo.FindCommissionByID(ctx, commissionID)
	if err != nil {
		return nil, fmt.Errorf("commission %s: %w", commissionID, err)
	}
	if !record.Status.CanTransition(domain.CommissionPaid) {
		return nil, fmt.Errorf("%w: commission %s cannot move from %s to %s",
			apperrors.ErrConflict, commissionID, record.Status, domain.CommissionPaid)
	}

	entry, err := s.journalService.PostCommissionPayout(ctx, record, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to post commission payout: %w", err)
	}

	after := *record
	after.Status = domain.CommissionPaid
	after.JournalEntryID = &entry.EntryID
	audit := newAuditRecord(domain.AuditPayCommission, commissionsCollection, commissionID, record, after, actorUserID)
	return s.advance(ctx, commissionID, domain.CommissionPaid, &entry.EntryID, actorUserID, &audit)
}

// GetCommissionByID retrieves one commission record.
func (s *commissionService) GetCommissionByID(ctx context.Context, commissionID string) (*domain.CommissionRecord, error) {
	record, err := s.commissionRepo.FindCommissionByID(ctx, commissionID)
	if err != nil {
		return nil, fmt.Errorf("commission %s: %w", commissionID, err)
	}
	return record, nil
}

// ListCommissions returns records matching the filter, newest first.
func (s *commissionService) ListCommissions(ctx context.Context, params dto.ListCommissionsParams) ([]domain.CommissionRecord, error) {
	records, err := s.commissionRepo.ListCommissions(ctx, portsrepo.ListCommissionsFilter{
		EarnerType: params.EarnerType,
		EarnerID:   params.EarnerID,
		Status:     params.Status,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list commissions")
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	return records, nil
}

// advance performs one forward step of the status machine and returns the
// refreshed record.
func (s *commissionService) advance(ctx context.Context, commissionID string, next domain.CommissionStatus, journalEntryID *string, actorUserID string, audit *domain.AuditRecord) (*domain.CommissionRecord, error) {
	record, err := s.commissionRepo.FindCommissionByID(ctx, commissionID)
	if err != nil {
		return nil, fmt.Errorf("commission %s: %w", commissionID, err)
	}
	if !record.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: commission %s cannot move from %s to %s",
			apperrors.ErrConflict, commissionID, record.Status, next)
	}

	now := time.Now().UTC()
	if err := s.commissionRepo.UpdateCommissionStatus(ctx, commissionID, next, journalEntryID, actorUserID, now, audit); err != nil {
		s.LogError(ctx, err, "Failed to update commission status",
			slog.String("commission_id", commissionID),
			slog.String("status", string(next)))
		return nil, fmt.Errorf("failed to update commission %s: %w", commissionID, err)
	}

	record.Status = next
	if journalEntryID != nil {
		record.JournalEntryID = journalEntryID
	}
	record.LastUpdatedAt = now
	record.LastUpdatedBy = actorUserID

	s.LogInfo(ctx, "Commission status advanced",
		slog.String("commission_id", commissionID),
		slog.String("status", string(next)))
	return record, nil
}
