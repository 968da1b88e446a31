package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one account's aggregated position. BalanceDebit and
// BalanceCredit are mutually exclusive: whichever side nets positive carries
// the balance, the other is zero.
type TrialBalanceRow struct {
	AccountID     string          `json:"accountID"`
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
	BalanceDebit  decimal.Decimal `json:"balanceDebit"`
	BalanceCredit decimal.Decimal `json:"balanceCredit"`
}

// TrialBalanceReport is the base derivation every other report builds on.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Balanced    bool              `json:"balanced"`
}

// ReportLine is an account with its net amount for P&L / balance sheet.
type ReportLine struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	NetAmount   decimal.Decimal `json:"netAmount"`
}

// ProfitAndLossReport partitions income and expense activity for a period.
type ProfitAndLossReport struct {
	Income       []ReportLine    `json:"income"`
	Expenses     []ReportLine    `json:"expenses"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	CostOfSales  decimal.Decimal `json:"costOfSales"`
	GrossProfit  decimal.Decimal `json:"grossProfit"`
	NetProfit    decimal.Decimal `json:"netProfit"`
}

// BalanceSheetReport states financial position. TotalEquity includes the
// period net profit as unstored retained earnings.
type BalanceSheetReport struct {
	Assets           []ReportLine    `json:"assets"`
	Liabilities      []ReportLine    `json:"liabilities"`
	Equity           []ReportLine    `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	Balanced         bool            `json:"balanced"`
}

// LedgerLine is one movement on a single account with its running balance
// (debit minus credit, accumulated in date order).
type LedgerLine struct {
	EntryID        string          `json:"entryID"`
	EntryDate      time.Time       `json:"entryDate"`
	CreatedAt      time.Time       `json:"createdAt"`
	ReferenceType  ReferenceType   `json:"referenceType"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerReport is either a single account's movement history or, when no
// account is requested, the trial-balance summary rows.
type LedgerReport struct {
	AccountID *string           `json:"accountID,omitempty"`
	Lines     []LedgerLine      `json:"lines,omitempty"`
	Summary   []TrialBalanceRow `json:"summary,omitempty"`
}

// AgencyStatementRow is one dated movement on an agency's account with the
// organization. Sign convention: negative balance = the agency owes.
type AgencyStatementRow struct {
	EntryID       string          `json:"entryID"`
	EntryDate     time.Time       `json:"entryDate"`
	ReferenceType ReferenceType   `json:"referenceType"`
	Description   string          `json:"description"`
	Owed          decimal.Decimal `json:"owed"`
	Paid          decimal.Decimal `json:"paid"`
	Balance       decimal.Decimal `json:"balance"`
}

// AgencyStatement is the statement of account for one agency.
type AgencyStatement struct {
	AgencyID       string               `json:"agencyID"`
	Rows           []AgencyStatementRow `json:"rows"`
	TotalOwed      decimal.Decimal      `json:"totalOwed"`
	TotalPaid      decimal.Decimal      `json:"totalPaid"`
	CurrentBalance decimal.Decimal      `json:"currentBalance"`
}

// DashboardKPIs composes headline figures from the P&L and trial balance.
type DashboardKPIs struct {
	Revenue               decimal.Decimal `json:"revenue"`
	GrossProfit           decimal.Decimal `json:"grossProfit"`
	NetProfit             decimal.Decimal `json:"netProfit"`
	OutstandingReceivable decimal.Decimal `json:"outstandingReceivable"`
	OutstandingPayable    decimal.Decimal `json:"outstandingPayable"`
}
