package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
	"github.com/tripfin/travel_ledger_app/internal/utils/export"
)

func TestWriteTrialBalanceCSV(t *testing.T) {
	report := &domain.TrialBalanceReport{
		Rows: []domain.TrialBalanceRow{
			{
				AccountCode:   "1200",
				AccountName:   "Accounts Receivable",
				AccountType:   domain.Asset,
				TotalDebit:    decimal.NewFromInt(1000),
				TotalCredit:   decimal.NewFromInt(400),
				BalanceDebit:  decimal.NewFromInt(600),
				BalanceCredit: decimal.Zero,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteTrialBalanceCSV(&buf, report))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"account_code", "account_name", "account_type", "total_debit", "total_credit", "balance_debit", "balance_credit"}, records[0])
	assert.Equal(t, []string{"1200", "Accounts Receivable", "ASSET", "1000.00", "400.00", "600.00", "0.00"}, records[1])
}

func TestWriteLedgerCSV(t *testing.T) {
	report := &domain.LedgerReport{
		Lines: []domain.LedgerLine{
			{
				EntryID:        "e-1",
				EntryDate:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
				ReferenceType:  domain.RefTicketBooking,
				Description:    "ticket sale, 2 seats",
				Debit:          decimal.NewFromInt(1000),
				Credit:         decimal.Zero,
				RunningBalance: decimal.NewFromInt(1000),
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteLedgerCSV(&buf, report))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"e-1", "2026-08-01", "ticket_booking", "ticket sale, 2 seats", "1000.00", "0.00", "1000.00"}, records[1])
}

func TestWriteAgencyStatementCSV(t *testing.T) {
	statement := &domain.AgencyStatement{
		AgencyID: "ag-1",
		Rows: []domain.AgencyStatementRow{
			{
				EntryID:       "e-1",
				EntryDate:     time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
				ReferenceType: domain.RefPaymentReceived,
				Description:   "partial settlement",
				Owed:          decimal.Zero,
				Paid:          decimal.NewFromInt(400),
				Balance:       decimal.NewFromInt(-600),
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteAgencyStatementCSV(&buf, statement))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"e-1", "2026-08-05", "payment_received", "partial settlement", "0.00", "400.00", "-600.00"}, records[1])
}
