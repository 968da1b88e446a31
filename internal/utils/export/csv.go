package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tripfin/travel_ledger_app/internal/core/domain"
)

const dateFormat = "2006-01-02"

// WriteTrialBalanceCSV writes trial balance rows as CSV, header included.
func WriteTrialBalanceCSV(w io.Writer, report *domain.TrialBalanceReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"account_code", "account_name", "account_type", "total_debit", "total_credit", "balance_debit", "balance_credit"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range report.Rows {
		rec := []string{
			row.AccountCode,
			row.AccountName,
			string(row.AccountType),
			row.TotalDebit.StringFixed(2),
			row.TotalCredit.StringFixed(2),
			row.BalanceDebit.StringFixed(2),
			row.BalanceCredit.StringFixed(2),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteLedgerCSV writes one account's ledger lines as CSV, header included.
func WriteLedgerCSV(w io.Writer, report *domain.LedgerReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"entry_id", "date", "reference_type", "description", "debit", "credit", "running_balance"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, line := range report.Lines {
		rec := []string{
			line.EntryID,
			line.EntryDate.Format(dateFormat),
			string(line.ReferenceType),
			line.Description,
			line.Debit.StringFixed(2),
			line.Credit.StringFixed(2),
			line.RunningBalance.StringFixed(2),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteAgencyStatementCSV writes an agency statement as CSV, header included.
func WriteAgencyStatementCSV(w io.Writer, statement *domain.AgencyStatement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"entry_id", "date", "reference_type", "description", "owed", "paid", "balance"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range statement.Rows {
		rec := []string{
			row.EntryID,
			row.EntryDate.Format(dateFormat),
			string(row.ReferenceType),
			row.Description,
			row.Owed.StringFixed(2),
			row.Paid.StringFixed(2),
			row.Balance.StringFixed(2),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
