package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("resource state conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps an underlying error with an HTTP-ish status code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// UnbalancedEntryError is returned when a journal entry's debit and credit
// totals (rounded to 2 decimal places) differ. It is always caught before
// anything is persisted.
type UnbalancedEntryError struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry is not balanced: total debit %s, total credit %s",
		e.DebitTotal.StringFixed(2), e.CreditTotal.StringFixed(2))
}

func (e *UnbalancedEntryError) Unwrap() error {
	return ErrValidation
}

// MissingAccountsError is returned when one or more required account names
// cannot be resolved in the organization's chart of accounts. The journal
// engine never invents accounts; the chart must be seeded first.
type MissingAccountsError struct {
	Missing []string
}

func (e *MissingAccountsError) Error() string {
	return "required accounts not found in chart of accounts: " + strings.Join(e.Missing, ", ")
}

func (e *MissingAccountsError) Unwrap() error {
	return ErrValidation
}

// DuplicateAccountCodeError is returned when an account code already exists
// within the same organization scope.
type DuplicateAccountCodeError struct {
	Code           string
	OrganizationID string
}

func (e *DuplicateAccountCodeError) Error() string {
	if e.OrganizationID == "" {
		return fmt.Sprintf("account code %s already exists in the global chart", e.Code)
	}
	return fmt.Sprintf("account code %s already exists for organization %s", e.Code, e.OrganizationID)
}

func (e *DuplicateAccountCodeError) Unwrap() error {
	return ErrDuplicate
}
