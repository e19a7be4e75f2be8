package journal

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/medicibank/medici/ledger"
)

func TestInferAccountType(t *testing.T) {
	tests := []struct {
		account string
		want    ledger.AccountType
	}{
		{"Cash", ledger.AccountTypeAsset},
		{"Loans Receivable", ledger.AccountTypeAsset},
		{"Due from Rome Branch", ledger.AccountTypeAsset},
		{"Wool Inventory", ledger.AccountTypeAsset},
		{"Deposits Payable", ledger.AccountTypeLiability},
		{"Bills Payable", ledger.AccountTypeLiability},
		{"Owner's Capital", ledger.AccountTypeEquity},
		{"Retained Earnings", ledger.AccountTypeEquity},
		{"Interest Income", ledger.AccountTypeRevenue},
		{"Exchange Revenue", ledger.AccountTypeRevenue},
		{"Wages Expense", ledger.AccountTypeExpense},
		{"Branch Operating Costs", ledger.AccountTypeExpense},
	}

	for _, tt := range tests {
		t.Run(tt.account, func(t *testing.T) {
			assert.Equal(t, tt.want, InferAccountType(tt.account))
		})
	}
}
