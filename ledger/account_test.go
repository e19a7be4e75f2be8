package ledger

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestAccountTypeDebitIncreases tests the sign convention lookup for all
// five account types.
func TestAccountTypeDebitIncreases(t *testing.T) {
	tests := []struct {
		accountType    AccountType
		debitIncreases bool
	}{
		{AccountTypeAsset, true},
		{AccountTypeExpense, true},
		{AccountTypeLiability, false},
		{AccountTypeEquity, false},
		{AccountTypeRevenue, false},
	}

	for _, tt := range tests {
		t.Run(tt.accountType.String(), func(t *testing.T) {
			assert.Equal(t, tt.debitIncreases, tt.accountType.DebitIncreases())
		})
	}
}

func TestParseAccountType(t *testing.T) {
	for _, accountType := range []AccountType{
		AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense,
	} {
		parsed, ok := ParseAccountType(accountType.String())
		assert.True(t, ok)
		assert.Equal(t, accountType, parsed)
	}

	_, ok := ParseAccountType("Income")
	assert.False(t, ok)
}

// TestAssetDebitThenCredit tests that for an Asset account a debit of D
// followed by a credit of C yields balance D - C.
func TestAssetDebitThenCredit(t *testing.T) {
	account := &Account{Name: "Cash", Type: AccountTypeAsset}

	assert.NoError(t, account.Debit(d("150.00")))
	assert.NoError(t, account.Credit(d("40.00")))

	assert.True(t, account.Balance().Equal(d("110.00")))
}

// TestLiabilityDebitThenCredit tests that for a Liability account the same
// sequence yields C - D.
func TestLiabilityDebitThenCredit(t *testing.T) {
	account := &Account{Name: "Loans", Type: AccountTypeLiability}

	assert.NoError(t, account.Debit(d("150.00")))
	assert.NoError(t, account.Credit(d("40.00")))

	assert.True(t, account.Balance().Equal(d("-110.00")))
}

func TestAccountRejectsNonPositiveAmounts(t *testing.T) {
	account := &Account{Name: "Cash", Type: AccountTypeAsset}

	for _, amount := range []decimal.Decimal{decimal.Zero, d("-5.00")} {
		var invalidErr *InvalidAmountError

		err := account.Debit(amount)
		assert.Error(t, err)
		assert.True(t, errors.As(err, &invalidErr))

		err = account.Credit(amount)
		assert.Error(t, err)
		assert.True(t, errors.As(err, &invalidErr))
	}

	assert.True(t, account.Balance().IsZero())
}

func TestAccountString(t *testing.T) {
	account := &Account{Name: "Cash", Type: AccountTypeAsset}
	assert.NoError(t, account.Debit(d("10.5")))

	assert.Equal(t, "Cash (Asset): 10.50", account.String())
}
