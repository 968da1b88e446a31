package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
)

// CreateCommissionRequest registers a pending commission.
type CreateCommissionRequest struct {
	BookingReference string                     `json:"bookingReference" binding:"required"`
	EarnerType       domain.EarnerType          `json:"earnerType" binding:"required,oneof=employee agency branch"`
	EarnerID         string                     `json:"earnerID" binding:"required"`
	Amount           decimal.Decimal            `json:"commissionAmount" binding:"required"`
	Breakdown        map[string]decimal.Decimal `json:"commissionBreakdown"`
	ScopeRequest
}

// ListCommissionsParams defines query parameters for listing commissions.
type ListCommissionsParams struct {
	EarnerType *domain.EarnerType       `form:"earnerType"`
	EarnerID   *string                  `form:"earnerID"`
	Status     *domain.CommissionStatus `form:"status"`
}

// CommissionResponse defines the data returned for a commission record.
type CommissionResponse struct {
	CommissionID     string                     `json:"commissionID"`
	BookingReference string                     `json:"bookingReference"`
	EarnerType       domain.EarnerType          `json:"earnerType"`
	EarnerID         string                     `json:"earnerID"`
	Amount           decimal.Decimal            `json:"commissionAmount"`
	Breakdown        map[string]decimal.Decimal `json:"commissionBreakdown,omitempty"`
	Status           domain.CommissionStatus    `json:"status"`
	JournalEntryID   *string                    `json:"journalEntryID"`
	CreatedAt        time.Time                  `json:"createdAt"`
	LastUpdatedAt    time.Time                  `json:"lastUpdatedAt"`
}

// ToCommissionResponse converts a domain.CommissionRecord to a response DTO.
func ToCommissionResponse(c *domain.CommissionRecord) CommissionResponse {
	return CommissionResponse{
		CommissionID:     c.CommissionID,
		BookingReference: c.BookingReference,
		EarnerType:       c.EarnerType,
		EarnerID:         c.EarnerID,
		Amount:           c.Amount,
		Breakdown:        c.Breakdown,
		Status:           c.Status,
		JournalEntryID:   c.JournalEntryID,
		CreatedAt:        c.CreatedAt,
		LastUpdatedAt:    c.LastUpdatedAt,
	}
}

// ToCommissionResponses converts domain records to response DTOs.
func ToCommissionResponses(cs []domain.CommissionRecord) []CommissionResponse {
	res := make([]CommissionResponse, len(cs))
	for i := range cs {
		res[i] = ToCommissionResponse(&cs[i])
	}
	return res
}
