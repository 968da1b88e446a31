package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
)

// ScopeRequest carries the optional tenant dimensions of a posting.
type ScopeRequest struct {
	OrganizationID *string `json:"organizationID"`
	BranchID       *string `json:"branchID"`
	AgencyID       *string `json:"agencyID"`
}

// ToDomainScope converts the request scope to a domain scope.
func (s ScopeRequest) ToDomainScope() domain.Scope {
	return domain.Scope{
		OrganizationID: s.OrganizationID,
		BranchID:       s.BranchID,
		AgencyID:       s.AgencyID,
	}
}

// JournalLineRequest references the account by code; the engine resolves and
// snapshots it at write time.
type JournalLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// CreateJournalRequest defines a raw journal entry posting.
type CreateJournalRequest struct {
	Date          *time.Time           `json:"date"`
	ReferenceType domain.ReferenceType `json:"referenceType" binding:"required"`
	ReferenceID   string               `json:"referenceID" binding:"required"`
	Description   string               `json:"description"`
	Lines         []JournalLineRequest `json:"lines" binding:"required,min=2"`
	ScopeRequest
}

// UpdateJournalRequest defines the patchable journal header fields.
type UpdateJournalRequest struct {
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
}

// BookingSaleRequest posts the revenue (and derived cost) of one booking.
// Exactly one payload variant must be set, selected by Kind.
type BookingSaleRequest struct {
	BookingID string                 `json:"bookingID" binding:"required"`
	Kind      string                 `json:"kind" binding:"required,oneof=ticket package custom"`
	Date      *time.Time             `json:"date"`
	Ticket    *domain.TicketBooking  `json:"ticket,omitempty"`
	Package   *domain.PackageBooking `json:"package,omitempty"`
	Custom    *domain.CustomBooking  `json:"custom,omitempty"`
	ScopeRequest
}

// Payload returns the selected booking variant, or nil when the request is
// inconsistent with its Kind discriminator.
func (r BookingSaleRequest) Payload() domain.BookingPayload {
	switch r.Kind {
	case "ticket":
		if r.Ticket != nil {
			return *r.Ticket
		}
	case "package":
		if r.Package != nil {
			return *r.Package
		}
	case "custom":
		if r.Custom != nil {
			return *r.Custom
		}
	}
	return nil
}

// PaymentReceivedRequest posts a customer payment against receivables.
type PaymentReceivedRequest struct {
	PaymentID string               `json:"paymentID" binding:"required"`
	Amount    decimal.Decimal      `json:"amount" binding:"required"`
	Method    domain.PaymentMethod `json:"method" binding:"required"`
	Date      *time.Time           `json:"date"`
	ScopeRequest
}

// ManualEntryRequest posts a manual income/expense/salary/vendor/adjustment
// entry. Account codes may override the default posting table.
type ManualEntryRequest struct {
	EntryType   domain.ReferenceType `json:"entryType" binding:"required,oneof=manual_income manual_expense salary vendor_bill adjustment"`
	ReferenceID string               `json:"referenceID" binding:"required"`
	Amount      decimal.Decimal      `json:"amount" binding:"required"`
	Description string               `json:"description"`
	Date        *time.Time           `json:"date"`
	DebitCode   *string              `json:"debitAccountCode"`
	CreditCode  *string              `json:"creditAccountCode"`
	ScopeRequest
}

// JournalLineResponse mirrors domain.JournalLine.
type JournalLineResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	EntryID        string                `json:"entryID"`
	EntryDate      time.Time             `json:"entryDate"`
	ReferenceType  domain.ReferenceType  `json:"referenceType"`
	ReferenceID    string                `json:"referenceID"`
	OrganizationID *string               `json:"organizationID"`
	BranchID       *string               `json:"branchID"`
	AgencyID       *string               `json:"agencyID"`
	Description    string                `json:"description"`
	Lines          []JournalLineResponse `json:"lines"`
	IsReversed     bool                  `json:"isReversed"`
	ReversedBy     *string               `json:"reversedBy,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
}

// ToJournalResponse converts a domain.JournalEntry to JournalResponse.
func ToJournalResponse(e *domain.JournalEntry) JournalResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			AccountID:   l.Account.AccountID,
			AccountCode: l.Account.CodeSnapshot,
			AccountName: l.Account.NameSnapshot,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return JournalResponse{
		EntryID:        e.EntryID,
		EntryDate:      e.EntryDate,
		ReferenceType:  e.ReferenceType,
		ReferenceID:    e.ReferenceID,
		OrganizationID: e.OrganizationID,
		BranchID:       e.BranchID,
		AgencyID:       e.AgencyID,
		Description:    e.Description,
		Lines:          lines,
		IsReversed:     e.IsReversed,
		ReversedBy:     e.ReversedBy,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
	}
}

// ToJournalResponses converts a slice of domain entries to responses.
func ToJournalResponses(entries []domain.JournalEntry) []JournalResponse {
	res := make([]JournalResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalResponse(&entries[i])
	}
	return res
}
