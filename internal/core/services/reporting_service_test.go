package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	portssvc "github.com/tripfin/travel_ledger_app/internal/core/ports/services"
	"github.com/tripfin/travel_ledger_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockJournalRepo   *MockJournalRepository
	service           portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockJournalRepo)
}

func tbRow(code, name string, t domain.AccountType, debit, credit int64) domain.TrialBalanceRow {
	return domain.TrialBalanceRow{
		AccountID:   uuid.NewString(),
		AccountCode: code,
		AccountName: name,
		AccountType: t,
		TotalDebit:  decimal.NewFromInt(debit),
		TotalCredit: decimal.NewFromInt(credit),
	}
}

// scenarioRows models one ticket sale of 1000 sold / 840 cost, with a 400
// customer payment and a 2000 owner contribution.
func scenarioRows() []domain.TrialBalanceRow {
	return []domain.TrialBalanceRow{
		tbRow("1100", "Cash", domain.Asset, 2400, 0),
		tbRow("1200", "Accounts Receivable", domain.Asset, 1000, 400),
		tbRow("2100", "Supplier Payable", domain.Liability, 0, 840),
		tbRow("3100", "Owner Capital", domain.Equity, 0, 2000),
		tbRow("4100", "Ticket Revenue", domain.Income, 0, 1000),
		tbRow("5100", "Cost of Sales", domain.Expense, 840, 0),
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_NetsEachRowToOneSide() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GetTrialBalanceRows", ctx, mock.AnythingOfType("domain.ReportFilter")).
		Return(scenarioRows(), nil).Once()

	report, err := suite.service.TrialBalance(ctx, domain.ReportFilter{})

	suite.Require().NoError(err)
	suite.True(report.Balanced)
	suite.True(report.TotalDebit.Equal(decimal.NewFromInt(4240)))
	suite.True(report.TotalCredit.Equal(decimal.NewFromInt(4240)))

	// Accounts Receivable nets to the debit side, Supplier Payable to the
	// credit side.
	ar := report.Rows[1]
	suite.True(ar.BalanceDebit.Equal(decimal.NewFromInt(600)))
	suite.True(ar.BalanceCredit.IsZero())
	payable := report.Rows[2]
	suite.True(payable.BalanceDebit.IsZero())
	suite.True(payable.BalanceCredit.Equal(decimal.NewFromInt(840)))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_UnbalancedDetected() {
	ctx := context.Background()
	rows := []domain.TrialBalanceRow{
		tbRow("1100", "Cash", domain.Asset, 100, 0),
		tbRow("4100", "Ticket Revenue", domain.Income, 0, 90),
	}
	suite.mockReportingRepo.On("GetTrialBalanceRows", ctx, mock.Anything).Return(rows, nil).Once()

	report, err := suite.service.TrialBalance(ctx, domain.ReportFilter{})

	suite.Require().NoError(err)
	suite.False(report.Balanced)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GetTrialBalanceRows", ctx, mock.Anything).Return(scenarioRows(), nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, domain.ReportFilter{})

	suite.Require().NoError(err)
	suite.True(report.TotalIncome.Equal(decimal.NewFromInt(1000)))
	suite.True(report.TotalExpense.Equal(decimal.NewFromInt(840)))
	suite.True(report.CostOfSales.Equal(decimal.NewFromInt(840)))
	suite.True(report.GrossProfit.Equal(decimal.NewFromInt(160)))
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(160)))
	suite.Len(report.Income, 1)
	suite.Len(report.Expenses, 1)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_NonCostExpenseLowersNetOnly() {
	ctx := context.Background()
	rows := append(scenarioRows(), tbRow("5300", "Salary Expense", domain.Expense, 100, 0))
	suite.mockReportingRepo.On("GetTrialBalanceRows", ctx, mock.Anything).Return(rows, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, domain.ReportFilter{})

	suite.Require().NoError(err)
	suite.True(report.CostOfSales.Equal(decimal.NewFromInt(840)))
	suite.True(report.GrossProfit.Equal(decimal.NewFromInt(160)))
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(60)))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_NetProfitBalancesEquity() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GetTrialBalanceRows", ctx, mock.Anything).Return(scenarioRows(), nil).Once()

	report, err := suite.service.BalanceSheet(ctx, domain.ReportFilter{})

	suite.Require().NoError(err)
	// Assets: cash 2400 + receivable 600. Liabilities: 840. Equity: 2000
	// capital + 160 period profit.
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(3000)))
	suite.True(report.TotalLiabilities.Equal(decimal.NewFromInt(840)))
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(160)))
	suite.True(report.TotalEquity.Equal(decimal.NewFromInt(2160)))
	suite.True(report.Balanced)
}

func (suite *ReportingServiceTestSuite) TestLedger_NoAccountReturnsSummary() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GetTrialBalanceRows", ctx, mock.Anything).Return(scenarioRows(), nil).Once()

	report, err := suite.service.Ledger(ctx, domain.ReportFilter{}, nil)

	suite.Require().NoError(err)
	suite.Nil(report.AccountID)
	suite.Empty(report.Lines)
	suite.Len(report.Summary, 6)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetAccountLines", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestLedger_RunningBalance() {
	ctx := context.Background()
	accountID := uuid.NewString()
	lines := []domain.LedgerLine{
		{EntryID: uuid.NewString(), Debit: decimal.NewFromInt(1000), Credit: decimal.Zero},
		{EntryID: uuid.NewString(), Debit: decimal.Zero, Credit: decimal.NewFromInt(400)},
		{EntryID: uuid.NewString(), Debit: decimal.NewFromInt(250), Credit: decimal.Zero},
	}
	suite.mockReportingRepo.On("GetAccountLines", ctx, mock.Anything, accountID).Return(lines, nil).Once()

	report, err := suite.service.Ledger(ctx, domain.ReportFilter{}, &accountID)

	suite.Require().NoError(err)
	suite.Require().Len(report.Lines, 3)
	suite.True(report.Lines[0].RunningBalance.Equal(decimal.NewFromInt(1000)))
	suite.True(report.Lines[1].RunningBalance.Equal(decimal.NewFromInt(600)))
	suite.True(report.Lines[2].RunningBalance.Equal(decimal.NewFromInt(850)))
}

func agencyEntry(refType domain.ReferenceType, agencyID string, lines []domain.JournalLine, day int) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:       uuid.NewString(),
		EntryDate:     time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC),
		ReferenceType: refType,
		ReferenceID:   uuid.NewString(),
		Scope:         domain.Scope{AgencyID: &agencyID},
		Lines:         lines,
	}
}

func agencyFixture(agencyID string) []domain.JournalEntry {
	receivable := domain.AccountRef{AccountID: uuid.NewString(), CodeSnapshot: "1200", NameSnapshot: "Accounts Receivable"}
	revenue := domain.AccountRef{AccountID: uuid.NewString(), CodeSnapshot: "4100", NameSnapshot: "Ticket Revenue"}
	cost := domain.AccountRef{AccountID: uuid.NewString(), CodeSnapshot: "5100", NameSnapshot: "Cost of Sales"}
	payable := domain.AccountRef{AccountID: uuid.NewString(), CodeSnapshot: "2100", NameSnapshot: "Supplier Payable"}
	bank := domain.AccountRef{AccountID: uuid.NewString(), CodeSnapshot: "1150", NameSnapshot: "Bank"}

	return []domain.JournalEntry{
		agencyEntry(domain.RefTicketBooking, agencyID, []domain.JournalLine{
			{Account: receivable, Debit: decimal.NewFromInt(1000)},
			{Account: revenue, Credit: decimal.NewFromInt(1000)},
		}, 1),
		// The cost leg has no receivable line, so it must not move the
		// statement.
		agencyEntry(domain.RefTicketBooking, agencyID, []domain.JournalLine{
			{Account: cost, Debit: decimal.NewFromInt(840)},
			{Account: payable, Credit: decimal.NewFromInt(840)},
		}, 1),
		agencyEntry(domain.RefPaymentReceived, agencyID, []domain.JournalLine{
			{Account: bank, Debit: decimal.NewFromInt(400)},
			{Account: receivable, Credit: decimal.NewFromInt(400)},
		}, 5),
	}
}

func (suite *ReportingServiceTestSuite) TestAgencyStatement() {
	ctx := context.Background()
	agencyID := uuid.NewString()
	suite.mockJournalRepo.On("ListEntries", ctx, mock.MatchedBy(func(f domain.ReportFilter) bool {
		return f.AgencyID != nil && *f.AgencyID == agencyID
	}), false).Return(agencyFixture(agencyID), nil).Once()

	statement, err := suite.service.AgencyStatement(ctx, agencyID, domain.ReportFilter{})

	suite.Require().NoError(err)
	suite.True(statement.TotalOwed.Equal(decimal.NewFromInt(1000)))
	suite.True(statement.TotalPaid.Equal(decimal.NewFromInt(400)))
	suite.True(statement.CurrentBalance.Equal(decimal.NewFromInt(-600)))

	// The zero-effect cost entry is not a statement row.
	suite.Require().Len(statement.Rows, 2)
	suite.True(statement.Rows[0].Balance.Equal(decimal.NewFromInt(-1000)))
	suite.True(statement.Rows[1].Balance.Equal(decimal.NewFromInt(-600)))
}

func (suite *ReportingServiceTestSuite) TestAllAgencyStatements_OnlyDebtorsMostIndebtedFirst() {
	ctx := context.Background()
	smallDebtor := uuid.NewString()
	bigDebtor := uuid.NewString()
	settled := uuid.NewString()

	receivable := domain.AccountRef{AccountID: uuid.NewString(), NameSnapshot: "Accounts Receivable"}
	revenue := domain.AccountRef{AccountID: uuid.NewString(), NameSnapshot: "Ticket Revenue"}
	bank := domain.AccountRef{AccountID: uuid.NewString(), NameSnapshot: "Bank"}

	owe := func(agencyID string, amount int64) domain.JournalEntry {
		return agencyEntry(domain.RefTicketBooking, agencyID, []domain.JournalLine{
			{Account: receivable, Debit: decimal.NewFromInt(amount)},
			{Account: revenue, Credit: decimal.NewFromInt(amount)},
		}, 1)
	}
	pay := func(agencyID string, amount int64) domain.JournalEntry {
		return agencyEntry(domain.RefPaymentReceived, agencyID, []domain.JournalLine{
			{Account: bank, Debit: decimal.NewFromInt(amount)},
			{Account: receivable, Credit: decimal.NewFromInt(amount)},
		}, 2)
	}

	suite.mockJournalRepo.On("ListAgencyIDs", ctx, mock.Anything).
		Return([]string{smallDebtor, bigDebtor, settled}, nil).Once()
	expectEntries := func(agencyID string, entries []domain.JournalEntry) {
		suite.mockJournalRepo.On("ListEntries", ctx, mock.MatchedBy(func(f domain.ReportFilter) bool {
			return f.AgencyID != nil && *f.AgencyID == agencyID
		}), false).Return(entries, nil).Once()
	}
	expectEntries(smallDebtor, []domain.JournalEntry{owe(smallDebtor, 300)})
	expectEntries(bigDebtor, []domain.JournalEntry{owe(bigDebtor, 900)})
	expectEntries(settled, []domain.JournalEntry{owe(settled, 500), pay(settled, 500)})

	statements, err := suite.service.AllAgencyStatements(ctx, domain.ReportFilter{})

	suite.Require().NoError(err)
	suite.Require().Len(statements, 2)
	suite.Equal(bigDebtor, statements[0].AgencyID)
	suite.True(statements[0].CurrentBalance.Equal(decimal.NewFromInt(-900)))
	suite.Equal(smallDebtor, statements[1].AgencyID)
	suite.True(statements[1].CurrentBalance.Equal(decimal.NewFromInt(-300)))
}

func (suite *ReportingServiceTestSuite) TestDashboardKPIs() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GetTrialBalanceRows", ctx, mock.Anything).Return(scenarioRows(), nil).Twice()

	kpis, err := suite.service.DashboardKPIs(ctx, domain.ReportFilter{})

	suite.Require().NoError(err)
	suite.True(kpis.Revenue.Equal(decimal.NewFromInt(1000)))
	suite.True(kpis.GrossProfit.Equal(decimal.NewFromInt(160)))
	suite.True(kpis.NetProfit.Equal(decimal.NewFromInt(160)))
	suite.True(kpis.OutstandingReceivable.Equal(decimal.NewFromInt(600)))
	suite.True(kpis.OutstandingPayable.Equal(decimal.NewFromInt(840)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
