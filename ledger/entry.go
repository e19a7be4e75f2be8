package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Entry pairs an account reference with a positive monetary amount.
// The account is referenced by name; it is resolved against the target
// ledger at posting time.
type Entry struct {
	Account string
	Amount  decimal.Decimal
}

// NewEntry creates an entry, fixing the amount to the monetary precision
// used throughout the ledger (two decimal places, half-up). Amounts that
// are zero or negative after fixing are rejected.
//
// Fixing precision here is what makes IsBalanced an exact comparison:
// every amount that ever enters a transaction has already been rounded.
func NewEntry(account string, amount decimal.Decimal) (Entry, error) {
	// decimal.Round rounds half away from zero, which for positive
	// amounts is exactly half-up.
	fixed := amount.Round(2)
	if !fixed.IsPositive() {
		return Entry{}, NewInvalidAmountError(account, amount)
	}

	return Entry{Account: account, Amount: fixed}, nil
}

// MustNewEntry creates an entry and panics on error.
// Use only in tests or when the amount is known to be valid.
func MustNewEntry(account string, amount decimal.Decimal) Entry {
	e, err := NewEntry(account, amount)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns a human-readable representation of the entry.
func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Account, e.Amount.StringFixed(2))
}
