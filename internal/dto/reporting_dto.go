package dto

import (
	"time"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
)

// ReportFilterParams is the common query-parameter tuple every report
// endpoint shares. Omitted parameters leave that dimension unfiltered.
type ReportFilterParams struct {
	OrganizationID *string    `form:"organizationID"`
	BranchID       *string    `form:"branchID"`
	AgencyID       *string    `form:"agencyID"`
	DateFrom       *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo         *time.Time `form:"dateTo" time_format:"2006-01-02"`
}

// ToDomainFilter converts the query parameters to a domain report filter.
func (p ReportFilterParams) ToDomainFilter() domain.ReportFilter {
	return domain.ReportFilter{
		OrganizationID: p.OrganizationID,
		BranchID:       p.BranchID,
		AgencyID:       p.AgencyID,
		DateFrom:       p.DateFrom,
		DateTo:         p.DateTo,
	}
}

// ListAuditParams defines query parameters for listing audit records.
type ListAuditParams struct {
	Collection  *string `form:"collection"`
	ReferenceID *string `form:"referenceID"`
	Limit       int     `form:"limit,default=100"`
}
