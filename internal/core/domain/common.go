package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Scope carries the multi-tenant dimensions a journal entry applies to.
// A nil key means the entry is not attributed on that dimension; it never
// means "global zero".
type Scope struct {
	OrganizationID *string `json:"organizationID"`
	BranchID       *string `json:"branchID"`
	AgencyID       *string `json:"agencyID"`
}

// ReportFilter narrows report computation. Nil fields are unfiltered.
type ReportFilter struct {
	OrganizationID *string    `json:"organizationID"`
	BranchID       *string    `json:"branchID"`
	AgencyID       *string    `json:"agencyID"`
	DateFrom       *time.Time `json:"dateFrom"`
	DateTo         *time.Time `json:"dateTo"`
}
