package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType represents the type of account
type AccountType int

const (
	AccountTypeUnknown AccountType = iota
	AccountTypeAsset
	AccountTypeLiability
	AccountTypeEquity
	AccountTypeRevenue
	AccountTypeExpense
)

// String returns the string representation of the account type
func (t AccountType) String() string {
	switch t {
	case AccountTypeAsset:
		return "Asset"
	case AccountTypeLiability:
		return "Liability"
	case AccountTypeEquity:
		return "Equity"
	case AccountTypeRevenue:
		return "Revenue"
	case AccountTypeExpense:
		return "Expense"
	default:
		return "Unknown"
	}
}

// ParseAccountType parses an account type from its string name.
// Returns AccountTypeUnknown and false for unrecognized names.
func ParseAccountType(s string) (AccountType, bool) {
	switch s {
	case "Asset":
		return AccountTypeAsset, true
	case "Liability":
		return AccountTypeLiability, true
	case "Equity":
		return AccountTypeEquity, true
	case "Revenue":
		return AccountTypeRevenue, true
	case "Expense":
		return AccountTypeExpense, true
	default:
		return AccountTypeUnknown, false
	}
}

// DebitIncreases returns true if a debit increases the balance of accounts
// of this type. Asset and Expense accounts grow on the debit side;
// Liability, Equity, and Revenue accounts grow on the credit side.
func (t AccountType) DebitIncreases() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// Account represents a named, typed balance holder in the ledger.
// The balance is mutated exclusively through Debit and Credit; the type
// determines which side increases it.
type Account struct {
	Name string
	Type AccountType

	balance decimal.Decimal
}

// Balance returns the current balance of the account.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Debit applies a debit to the account. The amount must be positive.
func (a *Account) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewInvalidAmountError(a.Name, amount)
	}

	if a.Type.DebitIncreases() {
		a.balance = a.balance.Add(amount)
	} else {
		a.balance = a.balance.Sub(amount)
	}

	return nil
}

// Credit applies a credit to the account. The amount must be positive.
func (a *Account) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewInvalidAmountError(a.Name, amount)
	}

	if a.Type.DebitIncreases() {
		a.balance = a.balance.Sub(amount)
	} else {
		a.balance = a.balance.Add(amount)
	}

	return nil
}

// String returns a human-readable representation of the account.
func (a *Account) String() string {
	return fmt.Sprintf("%s (%s): %s", a.Name, a.Type, a.balance.StringFixed(2))
}
