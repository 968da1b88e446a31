package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// ValidAccountType reports whether t is one of the five account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account is one node of an organization's chart of accounts.
// Accounts are never physically deleted, only deactivated.
type Account struct {
	AccountID       string      `json:"accountID"`
	Code            string      `json:"code"` // unique per organization
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	ParentAccountID *string     `json:"parentAccountID"` // nullable self reference
	OrganizationID  *string     `json:"organizationID"`  // nil = global chart
	IsActive        bool        `json:"isActive"`
	AuditFields
}

// AccountRef is the denormalized account snapshot copied into each journal
// line at write time. It is intentionally never re-resolved afterwards, so
// ledger history keeps the code and name the account had when posted.
type AccountRef struct {
	AccountID    string `json:"accountID"`
	CodeSnapshot string `json:"accountCode"`
	NameSnapshot string `json:"accountName"`
}
