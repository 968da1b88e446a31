package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tripfin/travel_ledger_app/internal/apperrors"
	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	portssvc "github.com/tripfin/travel_ledger_app/internal/core/ports/services"
	"github.com/tripfin/travel_ledger_app/internal/core/services"
	"github.com/tripfin/travel_ledger_app/internal/dto"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.JournalService
	orgID           string
	actorID         string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo)
	suite.orgID = uuid.NewString()
	suite.actorID = uuid.NewString()
}

func (suite *JournalServiceTestSuite) chartAccounts() []domain.Account {
	mk := func(code, name string, t domain.AccountType) domain.Account {
		return domain.Account{
			AccountID:      uuid.NewString(),
			Code:           code,
			Name:           name,
			AccountType:    t,
			OrganizationID: &suite.orgID,
			IsActive:       true,
		}
	}
	return []domain.Account{
		mk("1100", "Cash", domain.Asset),
		mk("1150", "Bank", domain.Asset),
		mk("1200", "Accounts Receivable", domain.Asset),
		mk("2100", "Supplier Payable", domain.Liability),
		mk("2200", "Commissions Payable", domain.Liability),
		mk("4100", "Ticket Revenue", domain.Income),
		mk("4200", "Package Revenue", domain.Income),
		mk("4300", "Custom Booking Revenue", domain.Income),
		mk("5100", "Cost of Sales", domain.Expense),
		mk("5200", "Commission Expense", domain.Expense),
	}
}

func (suite *JournalServiceTestSuite) expectChart() {
	suite.mockAccountRepo.On("ListAccountsForOrganization", mock.Anything, &suite.orgID).
		Return(suite.chartAccounts(), nil)
}

// --- CreateJournalEntry ---

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_Balanced() {
	ctx := context.Background()
	cash := &domain.Account{AccountID: uuid.NewString(), Code: "1100", Name: "Cash", AccountType: domain.Asset, IsActive: true}
	revenue := &domain.Account{AccountID: uuid.NewString(), Code: "4400", Name: "Other Income", AccountType: domain.Income, IsActive: true}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, &suite.orgID, "1100").Return(cash, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, &suite.orgID, "4400").Return(revenue, nil).Once()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("domain.AuditRecord")).Return(nil).Once()

	req := dto.CreateJournalRequest{
		ReferenceType: domain.RefManualIncome,
		ReferenceID:   "inc-1",
		Description:   "interest received",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "1100", Debit: decimal.NewFromInt(150)},
			{AccountCode: "4400", Credit: decimal.NewFromInt(150)},
		},
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	entry, err := suite.service.CreateJournalEntry(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(entry.Lines, 2)
	suite.Equal(cash.AccountID, entry.Lines[0].Account.AccountID)
	suite.Equal("Cash", entry.Lines[0].Account.NameSnapshot)
	suite.False(entry.IsReversed)

	debit, credit := entry.Totals()
	suite.True(debit.Equal(credit))

	audit := suite.mockJournalRepo.Calls[0].Arguments.Get(2).(domain.AuditRecord)
	suite.Equal(domain.AuditCreateJournal, audit.Action)
	suite.Equal(entry.EntryID, audit.ReferenceID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_Unbalanced() {
	ctx := context.Background()
	cash := &domain.Account{AccountID: uuid.NewString(), Code: "1100", Name: "Cash", AccountType: domain.Asset, IsActive: true}
	revenue := &domain.Account{AccountID: uuid.NewString(), Code: "4400", Name: "Other Income", AccountType: domain.Income, IsActive: true}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, &suite.orgID, "1100").Return(cash, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, &suite.orgID, "4400").Return(revenue, nil).Once()

	req := dto.CreateJournalRequest{
		ReferenceType: domain.RefManualIncome,
		ReferenceID:   "inc-2",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "1100", Debit: decimal.NewFromInt(150)},
			{AccountCode: "4400", Credit: decimal.NewFromInt(149)},
		},
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	_, err := suite.service.CreateJournalEntry(ctx, req, suite.actorID)

	var unbalanced *apperrors.UnbalancedEntryError
	suite.Require().ErrorAs(err, &unbalanced)
	suite.True(unbalanced.DebitTotal.Equal(decimal.NewFromInt(150)))
	suite.True(unbalanced.CreditTotal.Equal(decimal.NewFromInt(149)))
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_RoundedBalanceAccepted() {
	ctx := context.Background()
	cash := &domain.Account{AccountID: uuid.NewString(), Code: "1100", Name: "Cash", AccountType: domain.Asset, IsActive: true}
	revenue := &domain.Account{AccountID: uuid.NewString(), Code: "4400", Name: "Other Income", AccountType: domain.Income, IsActive: true}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, &suite.orgID, "1100").Return(cash, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, &suite.orgID, "4400").Return(revenue, nil).Once()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	// 100.001 vs 100.0009 agree when rounded to two decimal places.
	req := dto.CreateJournalRequest{
		ReferenceType: domain.RefManualIncome,
		ReferenceID:   "inc-3",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "1100", Debit: decimal.RequireFromString("100.001")},
			{AccountCode: "4400", Credit: decimal.RequireFromString("100.0009")},
		},
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	_, err := suite.service.CreateJournalEntry(ctx, req, suite.actorID)
	suite.Require().NoError(err)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_UnknownCode() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, &suite.orgID, "0000").Return(nil, apperrors.ErrNotFound).Once()

	req := dto.CreateJournalRequest{
		ReferenceType: domain.RefManualIncome,
		ReferenceID:   "inc-4",
		Lines: []dto.JournalLineRequest{
			{AccountCode: "0000", Debit: decimal.NewFromInt(10)},
			{AccountCode: "4400", Credit: decimal.NewFromInt(10)},
		},
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	_, err := suite.service.CreateJournalEntry(ctx, req, suite.actorID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

// --- ReverseJournalEntry ---

func (suite *JournalServiceTestSuite) TestReverseJournalEntry() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{
		EntryID:       entryID,
		ReferenceType: domain.RefTicketBooking,
		ReferenceID:   "bk-1",
		Lines: []domain.JournalLine{
			{Account: domain.AccountRef{AccountID: uuid.NewString()}, Debit: decimal.NewFromInt(100)},
			{Account: domain.AccountRef{AccountID: uuid.NewString()}, Credit: decimal.NewFromInt(100)},
		},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("MarkReversed", ctx, entryID, suite.actorID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("domain.AuditRecord")).Return(nil).Once()

	reversed, err := suite.service.ReverseJournalEntry(ctx, entryID, suite.actorID)

	suite.Require().NoError(err)
	suite.True(reversed.IsReversed)
	suite.Require().NotNil(reversed.ReversedBy)
	suite.Equal(suite.actorID, *reversed.ReversedBy)

	audit := suite.mockJournalRepo.Calls[1].Arguments.Get(4).(domain.AuditRecord)
	suite.Equal(domain.AuditDeleteJournal, audit.Action)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestReverseJournalEntry_AlreadyReversed() {
	ctx := context.Background()
	entryID := uuid.NewString()
	by := uuid.NewString()
	entry := &domain.JournalEntry{EntryID: entryID, IsReversed: true, ReversedBy: &by}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()

	_, err := suite.service.ReverseJournalEntry(ctx, entryID, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "MarkReversed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestReverseJournalEntry_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()
	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ReverseJournalEntry(ctx, entryID, suite.actorID)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

// --- PostBookingSale ---

func (suite *JournalServiceTestSuite) TestPostBookingSale_TicketWithCost() {
	ctx := context.Background()
	suite.expectChart()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(nil).Twice()

	req := dto.BookingSaleRequest{
		BookingID: "bk-100",
		Kind:      "ticket",
		Ticket: &domain.TicketBooking{
			SellingPrice:    decimal.NewFromInt(500),
			PurchasingPrice: decimal.NewFromInt(420),
			Quantity:        2,
		},
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	entries, err := suite.service.PostBookingSale(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)

	sale := entries[0]
	suite.Equal(domain.RefTicketBooking, sale.ReferenceType)
	suite.Equal("bk-100", sale.ReferenceID)
	suite.Equal("Accounts Receivable", sale.Lines[0].Account.NameSnapshot)
	suite.True(sale.Lines[0].Debit.Equal(decimal.NewFromInt(1000)))
	suite.Equal("Ticket Revenue", sale.Lines[1].Account.NameSnapshot)
	suite.True(sale.Lines[1].Credit.Equal(decimal.NewFromInt(1000)))

	cost := entries[1]
	suite.Equal("Cost of Sales", cost.Lines[0].Account.NameSnapshot)
	suite.True(cost.Lines[0].Debit.Equal(decimal.NewFromInt(840)))
	suite.Equal("Supplier Payable", cost.Lines[1].Account.NameSnapshot)
	suite.True(cost.Lines[1].Credit.Equal(decimal.NewFromInt(840)))
}

func (suite *JournalServiceTestSuite) TestPostBookingSale_PackageOverrideWins() {
	ctx := context.Background()
	suite.expectChart()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(nil).Twice()

	override := decimal.NewFromInt(700)
	req := dto.BookingSaleRequest{
		BookingID: "bk-200",
		Kind:      "package",
		Package: &domain.PackageBooking{
			SellingTotal:       decimal.NewFromInt(1000),
			PurchasingOverride: &override,
			Components: []domain.PackageComponent{
				{Name: "hotel", PurchasingPrice: decimal.NewFromInt(999)},
			},
		},
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	entries, err := suite.service.PostBookingSale(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(domain.RefPackageBooking, entries[0].ReferenceType)
	suite.Equal("Package Revenue", entries[0].Lines[1].Account.NameSnapshot)
	suite.True(entries[1].Lines[0].Debit.Equal(decimal.NewFromInt(700)))
}

func (suite *JournalServiceTestSuite) TestPostBookingSale_NoCostEntryWhenPurchasingZero() {
	ctx := context.Background()
	suite.expectChart()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	req := dto.BookingSaleRequest{
		BookingID: "bk-300",
		Kind:      "custom",
		Custom: &domain.CustomBooking{
			SellingTotal: decimal.NewFromInt(250),
		},
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	entries, err := suite.service.PostBookingSale(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(domain.RefCustomBooking, entries[0].ReferenceType)
	suite.Equal("Custom Booking Revenue", entries[0].Lines[1].Account.NameSnapshot)
	suite.mockJournalRepo.AssertNumberOfCalls(suite.T(), "SaveJournalEntry", 1)
}

func (suite *JournalServiceTestSuite) TestPostBookingSale_MissingAccounts() {
	ctx := context.Background()
	// Chart with no revenue accounts at all.
	suite.mockAccountRepo.On("ListAccountsForOrganization", mock.Anything, &suite.orgID).
		Return([]domain.Account{
			{AccountID: uuid.NewString(), Code: "1200", Name: "Accounts Receivable", AccountType: domain.Asset, IsActive: true},
		}, nil)

	req := dto.BookingSaleRequest{
		BookingID: "bk-400",
		Kind:      "ticket",
		Ticket: &domain.TicketBooking{
			SellingPrice: decimal.NewFromInt(100),
			Quantity:     1,
		},
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	_, err := suite.service.PostBookingSale(ctx, req, suite.actorID)

	var missing *apperrors.MissingAccountsError
	suite.Require().ErrorAs(err, &missing)
	suite.Contains(missing.Missing, "Ticket Revenue")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostBookingSale_KindPayloadMismatch() {
	ctx := context.Background()
	req := dto.BookingSaleRequest{
		BookingID:    "bk-500",
		Kind:         "package",
		Ticket:       &domain.TicketBooking{SellingPrice: decimal.NewFromInt(100), Quantity: 1},
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	_, err := suite.service.PostBookingSale(ctx, req, suite.actorID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestPostBookingSale_FuzzyPrefersShortestName() {
	ctx := context.Background()
	accounts := suite.chartAccounts()
	accounts = append(accounts, domain.Account{
		AccountID:      uuid.NewString(),
		Code:           "1210",
		Name:           "Accounts Receivable - Corporate",
		AccountType:    domain.Asset,
		OrganizationID: &suite.orgID,
		IsActive:       true,
	})
	suite.mockAccountRepo.On("ListAccountsForOrganization", mock.Anything, &suite.orgID).Return(accounts, nil)
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	req := dto.BookingSaleRequest{
		BookingID: "bk-600",
		Kind:      "ticket",
		Ticket: &domain.TicketBooking{
			SellingPrice: decimal.NewFromInt(100),
			Quantity:     1,
		},
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	entries, err := suite.service.PostBookingSale(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal("Accounts Receivable", entries[0].Lines[0].Account.NameSnapshot)
}

// --- PostPaymentReceived ---

func (suite *JournalServiceTestSuite) TestPostPaymentReceived_CashMethod() {
	ctx := context.Background()
	suite.expectChart()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	req := dto.PaymentReceivedRequest{
		PaymentID:    "pay-1",
		Amount:       decimal.NewFromInt(300),
		Method:       domain.PaymentCash,
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	entry, err := suite.service.PostPaymentReceived(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.RefPaymentReceived, entry.ReferenceType)
	suite.Equal("Cash", entry.Lines[0].Account.NameSnapshot)
	suite.True(entry.Lines[0].Debit.Equal(decimal.NewFromInt(300)))
	suite.Equal("Accounts Receivable", entry.Lines[1].Account.NameSnapshot)
	suite.True(entry.Lines[1].Credit.Equal(decimal.NewFromInt(300)))
}

func (suite *JournalServiceTestSuite) TestPostPaymentReceived_BankForOtherMethods() {
	ctx := context.Background()
	suite.expectChart()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(nil)

	for _, method := range []domain.PaymentMethod{domain.PaymentBank, domain.PaymentCard, domain.PaymentCheque, domain.PaymentGateway} {
		req := dto.PaymentReceivedRequest{
			PaymentID:    "pay-" + string(method),
			Amount:       decimal.NewFromInt(50),
			Method:       method,
			ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
		}
		entry, err := suite.service.PostPaymentReceived(ctx, req, suite.actorID)
		suite.Require().NoError(err)
		suite.Equal("Bank", entry.Lines[0].Account.NameSnapshot, "method %s should debit the bank account", method)
	}
}

func (suite *JournalServiceTestSuite) TestPostPaymentReceived_RejectsNonPositive() {
	ctx := context.Background()
	req := dto.PaymentReceivedRequest{
		PaymentID:    "pay-zero",
		Amount:       decimal.Zero,
		Method:       domain.PaymentCash,
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	_, err := suite.service.PostPaymentReceived(ctx, req, suite.actorID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

// --- PostManualEntry ---

func (suite *JournalServiceTestSuite) manualAccount(code, name string, t domain.AccountType) *domain.Account {
	return &domain.Account{AccountID: uuid.NewString(), Code: code, Name: name, AccountType: t, IsActive: true}
}

func (suite *JournalServiceTestSuite) TestPostManualEntry_SalaryDefaults() {
	ctx := context.Background()
	salary := suite.manualAccount("5300", "Salary Expense", domain.Expense)
	bank := suite.manualAccount("1150", "Bank", domain.Asset)

	suite.mockAccountRepo.On("FindAccountByCode", ctx, &suite.orgID, "5300").Return(salary, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, &suite.orgID, "1150").Return(bank, nil).Once()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	req := dto.ManualEntryRequest{
		EntryType:    domain.RefSalary,
		ReferenceID:  "sal-1",
		Amount:       decimal.NewFromInt(2000),
		Description:  "August payroll",
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	entry, err := suite.service.PostManualEntry(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.RefSalary, entry.ReferenceType)
	suite.Equal("5300", entry.Lines[0].Account.CodeSnapshot)
	suite.True(entry.Lines[0].Debit.Equal(decimal.NewFromInt(2000)))
	suite.Equal("1150", entry.Lines[1].Account.CodeSnapshot)
	suite.True(entry.Lines[1].Credit.Equal(decimal.NewFromInt(2000)))
}

func (suite *JournalServiceTestSuite) TestPostManualEntry_AdjustmentSelfCanceling() {
	ctx := context.Background()
	clearing := suite.manualAccount("3900", "Adjustment Clearing", domain.Equity)

	suite.mockAccountRepo.On("FindAccountByCode", ctx, &suite.orgID, "3900").Return(clearing, nil).Twice()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	req := dto.ManualEntryRequest{
		EntryType:    domain.RefAdjustment,
		ReferenceID:  "adj-1",
		Amount:       decimal.NewFromInt(75),
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	entry, err := suite.service.PostManualEntry(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	// Both sides hit the same clearing account so the net effect on every
	// other account is zero.
	suite.Equal(entry.Lines[0].Account.AccountID, entry.Lines[1].Account.AccountID)
	debit, credit := entry.Totals()
	suite.True(debit.Equal(credit))
}

func (suite *JournalServiceTestSuite) TestPostManualEntry_CodeOverrides() {
	ctx := context.Background()
	travel := suite.manualAccount("5600", "Travel Expense", domain.Expense)
	cash := suite.manualAccount("1100", "Cash", domain.Asset)
	debitCode, creditCode := "5600", "1100"

	suite.mockAccountRepo.On("FindAccountByCode", ctx, &suite.orgID, "5600").Return(travel, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, &suite.orgID, "1100").Return(cash, nil).Once()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	req := dto.ManualEntryRequest{
		EntryType:    domain.RefManualExpense,
		ReferenceID:  "exp-1",
		Amount:       decimal.NewFromInt(90),
		DebitCode:    &debitCode,
		CreditCode:   &creditCode,
		ScopeRequest: dto.ScopeRequest{OrganizationID: &suite.orgID},
	}

	entry, err := suite.service.PostManualEntry(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal("5600", entry.Lines[0].Account.CodeSnapshot)
	suite.Equal("1100", entry.Lines[1].Account.CodeSnapshot)
}

// --- PostCommissionPayout ---

func (suite *JournalServiceTestSuite) TestPostCommissionPayout() {
	ctx := context.Background()
	suite.expectChart()
	suite.mockJournalRepo.On("SaveJournalEntry", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	commission := &domain.CommissionRecord{
		CommissionID: uuid.NewString(),
		EarnerType:   domain.EarnerEmployee,
		EarnerID:     "emp-7",
		Amount:       decimal.NewFromInt(120),
		Status:       domain.CommissionEarned,
		Scope:        domain.Scope{OrganizationID: &suite.orgID},
	}

	entry, err := suite.service.PostCommissionPayout(ctx, commission, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.RefCommissionPayout, entry.ReferenceType)
	suite.Equal(commission.CommissionID, entry.ReferenceID)
	suite.Equal("Commission Expense", entry.Lines[0].Account.NameSnapshot)
	suite.True(entry.Lines[0].Debit.Equal(decimal.NewFromInt(120)))
	suite.Equal("Commissions Payable", entry.Lines[1].Account.NameSnapshot)
	suite.True(entry.Lines[1].Credit.Equal(decimal.NewFromInt(120)))
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
