package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Error types for ledger validation errors.
//
// Every error here is detected before any balance mutation occurs, so a
// failed operation leaves the ledger exactly as it was. None of these are
// retried or swallowed internally; they are surfaced to the caller
// synchronously.

// InvalidAmountError is returned when a supplied monetary amount is zero
// or negative.
type InvalidAmountError struct {
	Account string
	Amount  decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %s for account %q: amounts must be positive", e.Amount, e.Account)
}

// NewInvalidAmountError creates an error for a non-positive amount.
func NewInvalidAmountError(account string, amount decimal.Decimal) *InvalidAmountError {
	return &InvalidAmountError{Account: account, Amount: amount}
}

// EmptyCreditsError is returned when a transaction is constructed with no
// credit entries.
type EmptyCreditsError struct {
	Date        time.Time
	Description string
}

func (e *EmptyCreditsError) Error() string {
	return fmt.Sprintf("%s: transaction %q has no credit entries", e.Date.Format("2006-01-02"), e.Description)
}

// NewEmptyCreditsError creates an error for a transaction without credits.
func NewEmptyCreditsError(date time.Time, description string) *EmptyCreditsError {
	return &EmptyCreditsError{Date: date, Description: description}
}

// UnbalancedTransactionError is returned when the debit amount does not
// equal the sum of the credit amounts.
type UnbalancedTransactionError struct {
	Date        time.Time
	Description string
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

func (e *UnbalancedTransactionError) Error() string {
	return fmt.Sprintf("%s: transaction %q does not balance: debits %s, credits %s (residual %s)",
		e.Date.Format("2006-01-02"), e.Description,
		e.DebitTotal.StringFixed(2), e.CreditTotal.StringFixed(2),
		e.DebitTotal.Sub(e.CreditTotal).StringFixed(2))
}

// Residual returns the unbalanced amount (debits minus credits).
func (e *UnbalancedTransactionError) Residual() decimal.Decimal {
	return e.DebitTotal.Sub(e.CreditTotal)
}

// NewUnbalancedTransactionError creates an error for an unbalanced transaction.
func NewUnbalancedTransactionError(txn *Transaction) *UnbalancedTransactionError {
	return &UnbalancedTransactionError{
		Date:        txn.Date,
		Description: txn.Description,
		DebitTotal:  txn.Debit.Amount,
		CreditTotal: txn.CreditTotal(),
	}
}

// UnknownAccountError is returned when a transaction references an account
// that does not exist in the target ledger.
type UnknownAccountError struct {
	Account     string
	Date        time.Time
	Description string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("%s: transaction %q references unknown account %q",
		e.Date.Format("2006-01-02"), e.Description, e.Account)
}

// NewUnknownAccountError creates an error for a reference to a
// nonexistent account.
func NewUnknownAccountError(txn *Transaction, account string) *UnknownAccountError {
	return &UnknownAccountError{
		Account:     account,
		Date:        txn.Date,
		Description: txn.Description,
	}
}

// DuplicateAccountError is returned when account creation is requested for
// a name that already exists in the ledger.
type DuplicateAccountError struct {
	Name string
	Type AccountType
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account %q already exists (%s)", e.Name, e.Type)
}

// NewDuplicateAccountError creates an error for a duplicate account name.
// The Type field carries the type of the existing account, not the
// requested one.
func NewDuplicateAccountError(existing *Account) *DuplicateAccountError {
	return &DuplicateAccountError{Name: existing.Name, Type: existing.Type}
}

// TransactionAlreadyPostedError is returned when a posted transaction is
// submitted for posting again. Posting is not idempotent.
type TransactionAlreadyPostedError struct {
	ID          int
	Date        time.Time
	Description string
}

func (e *TransactionAlreadyPostedError) Error() string {
	return fmt.Sprintf("%s: transaction %q was already posted as #%d",
		e.Date.Format("2006-01-02"), e.Description, e.ID)
}

// NewTransactionAlreadyPostedError creates an error for a repost attempt.
func NewTransactionAlreadyPostedError(txn *Transaction) *TransactionAlreadyPostedError {
	return &TransactionAlreadyPostedError{
		ID:          txn.ID,
		Date:        txn.Date,
		Description: txn.Description,
	}
}
