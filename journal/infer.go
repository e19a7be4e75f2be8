package journal

import (
	"strings"

	"github.com/medicibank/medici/ledger"
)

// InferAccountType guesses an account's type from its name, for records
// that carry no explicit type (the CSV format). The heuristic follows the
// naming conventions of the historical dataset: receivables and cash-like
// accounts are assets, payables are liabilities, income-like accounts are
// revenue, capital accounts are equity, and anything else is treated as
// an operating expense.
func InferAccountType(name string) ledger.AccountType {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "receivable"),
		strings.HasPrefix(lower, "due from"),
		lower == "cash",
		strings.Contains(lower, "inventory"),
		lower == "land":
		return ledger.AccountTypeAsset

	case strings.Contains(lower, "payable"),
		lower == "loans":
		return ledger.AccountTypeLiability

	case strings.Contains(lower, "capital"),
		strings.Contains(lower, "retained earnings"),
		strings.Contains(lower, "equity"):
		return ledger.AccountTypeEquity

	case strings.Contains(lower, "income"),
		strings.Contains(lower, "revenue"):
		return ledger.AccountTypeRevenue

	default:
		return ledger.AccountTypeExpense
	}
}
