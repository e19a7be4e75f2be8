package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TestNewEntryFixesPrecision tests that amounts are fixed to two decimal
// places with half-up rounding at construction.
func TestNewEntryFixesPrecision(t *testing.T) {
	tests := []struct {
		amount string
		fixed  string
	}{
		{"10", "10.00"},
		{"10.005", "10.01"},
		{"10.004", "10.00"},
		{"829.155", "829.16"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			entry, err := NewEntry("Cash", d(tt.amount))
			assert.NoError(t, err)
			assert.Equal(t, tt.fixed, entry.Amount.StringFixed(2))
		})
	}
}

func TestNewEntryRejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []string{"0", "-1.00", "0.004"} {
		_, err := NewEntry("Cash", d(amount))

		var invalidErr *InvalidAmountError
		assert.Error(t, err)
		assert.True(t, errors.As(err, &invalidErr))
		assert.Equal(t, "Cash", invalidErr.Account)
	}
}

func TestNewTransactionRequiresCredits(t *testing.T) {
	debit := MustNewEntry("Cash", d("100.00"))

	_, err := NewTransaction(date(1397, 1, 1), "no credits", debit, nil)

	var emptyErr *EmptyCreditsError
	assert.Error(t, err)
	assert.True(t, errors.As(err, &emptyErr))
}

// TestIsBalancedExact tests that balance comparison is exact decimal
// equality, including the multi-credit split case.
func TestIsBalancedExact(t *testing.T) {
	txn, err := NewTransaction(date(1397, 8, 10), "Loan repayment with interest",
		MustNewEntry("Cash", d("829.16")),
		[]Entry{
			MustNewEntry("Loans Receivable", d("720.31")),
			MustNewEntry("Interest Income", d("108.85")),
		})
	assert.NoError(t, err)
	assert.True(t, txn.IsBalanced())
	assert.Equal(t, "829.16", txn.CreditTotal().StringFixed(2))
}

func TestIsBalancedDetectsResidual(t *testing.T) {
	txn, err := NewTransaction(date(1397, 2, 15), "Off by fifty",
		MustNewEntry("Cash", d("2000.00")),
		[]Entry{
			MustNewEntry("Loans Receivable", d("1200.00")),
			MustNewEntry("Interest Income", d("750.00")),
		})
	assert.NoError(t, err)
	assert.False(t, txn.IsBalanced())
}

func TestTransactionString(t *testing.T) {
	txn, err := NewTransaction(date(1397, 1, 1), "Initial investment",
		MustNewEntry("Cash", d("10000.00")),
		[]Entry{MustNewEntry("Owner's Capital", d("10000.00"))})
	assert.NoError(t, err)

	expected := "Transaction: 1397-01-01 - Initial investment\n" +
		"  Debit:\n    Cash: 10000.00\n" +
		"  Credits:\n    Owner's Capital: 10000.00"
	assert.Equal(t, expected, txn.String())
}
