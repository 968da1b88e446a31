package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tripfin/travel_ledger_app/internal/apperrors"
	"github.com/tripfin/travel_ledger_app/internal/core/domain"
)

// EntryTotals sums the debit and credit sides of a set of journal lines.
func EntryTotals(lines []domain.JournalLine) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// ValidateDoubleEntry enforces the ledger's core invariant: at least two
// lines, no negative amounts, and debit/credit totals equal when rounded to
// two decimal places.
func ValidateDoubleEntry(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	}

	for i, l := range lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i)
		}
		if l.Account.AccountID == "" {
			return fmt.Errorf("%w: line %d has no account reference", apperrors.ErrValidation, i)
		}
	}

	debit, credit := EntryTotals(lines)
	if !debit.Round(2).Equal(credit.Round(2)) {
		return &apperrors.UnbalancedEntryError{DebitTotal: debit, CreditTotal: credit}
	}
	return nil
}

// IsBalanced reports the double-entry invariant without line-level checks.
func IsBalanced(lines []domain.JournalLine) bool {
	debit, credit := EntryTotals(lines)
	return debit.Round(2).Equal(credit.Round(2))
}
