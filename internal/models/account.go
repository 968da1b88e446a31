package models

// Account is the accounts table row.
type Account struct {
	AccountID       string  `db:"account_id"`
	Code            string  `db:"code"`
	Name            string  `db:"name"`
	AccountType     string  `db:"account_type"`
	ParentAccountID *string `db:"parent_account_id"` // nullable self reference
	OrganizationID  *string `db:"organization_id"`   // null = global chart
	IsActive        bool    `db:"is_active"`
	AuditFields
}
