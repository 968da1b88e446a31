package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	portsrepo "github.com/tripfin/travel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tripfin/travel_ledger_app/internal/core/ports/services"
)

// reportingService derives every report on demand from the journal log.
// Nothing here is persisted; reversed entries never contribute.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	journalRepo   portsrepo.JournalRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, journalRepo portsrepo.JournalRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo, journalRepo: journalRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance aggregates per-account debit and credit activity and nets
// each row to one balance side.
func (s *reportingService) TrialBalance(ctx context.Context, filter domain.ReportFilter) (*domain.TrialBalanceReport, error) {
	rows, err := s.reportingRepo.GetTrialBalanceRows(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute trial balance")
		return nil, fmt.Errorf("failed to compute trial balance: %w", err)
	}

	report := &domain.TrialBalanceReport{
		Rows:        rows,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for i := range rows {
		net := rows[i].TotalDebit.Sub(rows[i].TotalCredit)
		if net.IsNegative() {
			rows[i].BalanceDebit = decimal.Zero
			rows[i].BalanceCredit = net.Neg()
		} else {
			rows[i].BalanceDebit = net
			rows[i].BalanceCredit = decimal.Zero
		}
		report.TotalDebit = report.TotalDebit.Add(rows[i].TotalDebit)
		report.TotalCredit = report.TotalCredit.Add(rows[i].TotalCredit)
	}
	report.Balanced = report.TotalDebit.Round(2).Equal(report.TotalCredit.Round(2))
	return report, nil
}

// ProfitAndLoss partitions the trial balance into income and expense
// activity. Income nets credit minus debit, expenses net debit minus credit.
// Gross profit is revenue less the cost-of-sales accounts.
func (s *reportingService) ProfitAndLoss(ctx context.Context, filter domain.ReportFilter) (*domain.ProfitAndLossReport, error) {
	tb, err := s.TrialBalance(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &domain.ProfitAndLossReport{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		CostOfSales:  decimal.Zero,
	}
	for _, row := range tb.Rows {
		switch row.AccountType {
		case domain.Income:
			net := row.TotalCredit.Sub(row.TotalDebit)
			report.Income = append(report.Income, reportLineOf(row, net))
			report.TotalIncome = report.TotalIncome.Add(net)
		case domain.Expense:
			net := row.TotalDebit.Sub(row.TotalCredit)
			report.Expenses = append(report.Expenses, reportLineOf(row, net))
			report.TotalExpense = report.TotalExpense.Add(net)
			if strings.Contains(strings.ToLower(row.AccountName), strings.ToLower(costOfSalesAccountName)) {
				report.CostOfSales = report.CostOfSales.Add(net)
			}
		}
	}
	report.GrossProfit = report.TotalIncome.Sub(report.CostOfSales)
	report.NetProfit = report.TotalIncome.Sub(report.TotalExpense)
	return report, nil
}

// BalanceSheet states position from the same trial balance. The period net
// profit rolls into equity as unstored retained earnings, which is what
// makes the statement balance.
func (s *reportingService) BalanceSheet(ctx context.Context, filter domain.ReportFilter) (*domain.BalanceSheetReport, error) {
	tb, err := s.TrialBalance(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
		NetProfit:        decimal.Zero,
	}
	for _, row := range tb.Rows {
		switch row.AccountType {
		case domain.Asset:
			net := row.TotalDebit.Sub(row.TotalCredit)
			report.Assets = append(report.Assets, reportLineOf(row, net))
			report.TotalAssets = report.TotalAssets.Add(net)
		case domain.Liability:
			net := row.TotalCredit.Sub(row.TotalDebit)
			report.Liabilities = append(report.Liabilities, reportLineOf(row, net))
			report.TotalLiabilities = report.TotalLiabilities.Add(net)
		case domain.Equity:
			net := row.TotalCredit.Sub(row.TotalDebit)
			report.Equity = append(report.Equity, reportLineOf(row, net))
			report.TotalEquity = report.TotalEquity.Add(net)
		case domain.Income:
			report.NetProfit = report.NetProfit.Add(row.TotalCredit.Sub(row.TotalDebit))
		case domain.Expense:
			report.NetProfit = report.NetProfit.Sub(row.TotalDebit.Sub(row.TotalCredit))
		}
	}
	report.TotalEquity = report.TotalEquity.Add(report.NetProfit)
	report.Balanced = report.TotalAssets.Round(2).
		Equal(report.TotalLiabilities.Add(report.TotalEquity).Round(2))
	return report, nil
}

// Ledger returns one account's dated movements with a running balance, or
// the trial-balance summary when no account is requested.
func (s *reportingService) Ledger(ctx context.Context, filter domain.ReportFilter, accountID *string) (*domain.LedgerReport, error) {
	if accountID == nil {
		tb, err := s.TrialBalance(ctx, filter)
		if err != nil {
			return nil, err
		}
		return &domain.LedgerReport{Summary: tb.Rows}, nil
	}

	lines, err := s.reportingRepo.GetAccountLines(ctx, filter, *accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger lines", slog.String("account_id", *accountID))
		return nil, fmt.Errorf("failed to load ledger for account %s: %w", *accountID, err)
	}

	running := decimal.Zero
	for i := range lines {
		running = running.Add(lines[i].Debit).Sub(lines[i].Credit)
		lines[i].RunningBalance = running
	}
	return &domain.LedgerReport{AccountID: accountID, Lines: lines}, nil
}

// AgencyStatement builds one agency's statement of account by walking its
// journal entries. Booking entries contribute the receivable debit as owed;
// payment entries contribute their credited amount as paid. Sign convention:
// a negative balance means the agency owes the organization.
func (s *reportingService) AgencyStatement(ctx context.Context, agencyID string, filter domain.ReportFilter) (*domain.AgencyStatement, error) {
	filter.AgencyID = &agencyID
	entries, err := s.journalRepo.ListEntries(ctx, filter, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries for agency statement", slog.String("agency_id", agencyID))
		return nil, fmt.Errorf("failed to build statement for agency %s: %w", agencyID, err)
	}

	statement := &domain.AgencyStatement{
		AgencyID:  agencyID,
		TotalOwed: decimal.Zero,
		TotalPaid: decimal.Zero,
	}
	balance := decimal.Zero
	for i := range entries {
		e := &entries[i]
		owed, paid := statementAmounts(e)
		if owed.IsZero() && paid.IsZero() {
			continue
		}
		balance = balance.Sub(owed).Add(paid)
		statement.TotalOwed = statement.TotalOwed.Add(owed)
		statement.TotalPaid = statement.TotalPaid.Add(paid)
		statement.Rows = append(statement.Rows, domain.AgencyStatementRow{
			EntryID:       e.EntryID,
			EntryDate:     e.EntryDate,
			ReferenceType: e.ReferenceType,
			Description:   e.Description,
			Owed:          owed,
			Paid:          paid,
			Balance:       balance,
		})
	}
	statement.CurrentBalance = balance
	return statement, nil
}

// AllAgencyStatements returns the statements of every agency that currently
// owes money, most indebted first.
func (s *reportingService) AllAgencyStatements(ctx context.Context, filter domain.ReportFilter) ([]domain.AgencyStatement, error) {
	agencyIDs, err := s.journalRepo.ListAgencyIDs(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list agency ids")
		return nil, fmt.Errorf("failed to list agencies: %w", err)
	}

	var statements []domain.AgencyStatement
	for _, agencyID := range agencyIDs {
		statement, err := s.AgencyStatement(ctx, agencyID, filter)
		if err != nil {
			return nil, err
		}
		if statement.CurrentBalance.IsNegative() {
			statements = append(statements, *statement)
		}
	}
	sort.Slice(statements, func(i, j int) bool {
		return statements[i].CurrentBalance.LessThan(statements[j].CurrentBalance)
	})
	return statements, nil
}

// DashboardKPIs composes the headline figures from the P&L and the trial
// balance outstanding positions.
func (s *reportingService) DashboardKPIs(ctx context.Context, filter domain.ReportFilter) (*domain.DashboardKPIs, error) {
	pnl, err := s.ProfitAndLoss(ctx, filter)
	if err != nil {
		return nil, err
	}
	tb, err := s.TrialBalance(ctx, filter)
	if err != nil {
		return nil, err
	}

	kpis := &domain.DashboardKPIs{
		Revenue:               pnl.TotalIncome,
		GrossProfit:           pnl.GrossProfit,
		NetProfit:             pnl.NetProfit,
		OutstandingReceivable: decimal.Zero,
		OutstandingPayable:    decimal.Zero,
	}
	for _, row := range tb.Rows {
		name := strings.ToLower(row.AccountName)
		if strings.Contains(name, "receivable") {
			kpis.OutstandingReceivable = kpis.OutstandingReceivable.Add(row.TotalDebit.Sub(row.TotalCredit))
		}
		if row.AccountType == domain.Liability && strings.Contains(name, "payable") {
			kpis.OutstandingPayable = kpis.OutstandingPayable.Add(row.TotalCredit.Sub(row.TotalDebit))
		}
	}
	return kpis, nil
}

// statementAmounts extracts this entry's effect on an agency statement.
// Booking entries count the debit of their receivable line as owed; payment
// entries count the receivable credit as paid. Cost entries, which carry no
// receivable line, contribute nothing.
func statementAmounts(e *domain.JournalEntry) (owed, paid decimal.Decimal) {
	owed, paid = decimal.Zero, decimal.Zero
	switch e.ReferenceType {
	case domain.RefTicketBooking, domain.RefPackageBooking, domain.RefCustomBooking:
		for _, l := range e.Lines {
			if isReceivableLine(l) {
				owed = owed.Add(l.Debit)
			}
		}
	case domain.RefPaymentReceived:
		for _, l := range e.Lines {
			if isReceivableLine(l) {
				paid = paid.Add(l.Credit)
			}
		}
	}
	return owed, paid
}

func isReceivableLine(l domain.JournalLine) bool {
	return strings.Contains(strings.ToLower(l.Account.NameSnapshot), "receivable")
}

func reportLineOf(row domain.TrialBalanceRow, net decimal.Decimal) domain.ReportLine {
	return domain.ReportLine{
		AccountID:   row.AccountID,
		AccountCode: row.AccountCode,
		AccountName: row.AccountName,
		NetAmount:   net,
	}
}
