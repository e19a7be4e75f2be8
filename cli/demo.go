package cli

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/medicibank/medici/ledger"
)

// DemoCmd replays the Medici Bank's founding year: Giovanni di Bicci's
// initial capital, a loan to a wool merchant, its partial repayment with
// interest, the purchase of a banking house, and the year's wages.
type DemoCmd struct{}

func (cmd *DemoCmd) Run(ctx *kong.Context, globals *Globals) error {
	_, report := runContext(ctx, globals, "demo")
	defer report()

	l := ledger.New("Medici Family Bank")

	accounts := []struct {
		name string
		typ  ledger.AccountType
	}{
		{"Cash", ledger.AccountTypeAsset},
		{"Accounts Receivable", ledger.AccountTypeAsset},
		{"Inventory", ledger.AccountTypeAsset},
		{"Land", ledger.AccountTypeAsset},
		{"Accounts Payable", ledger.AccountTypeLiability},
		{"Loans", ledger.AccountTypeLiability},
		{"Owner's Capital", ledger.AccountTypeEquity},
		{"Retained Earnings", ledger.AccountTypeEquity},
		{"Revenue", ledger.AccountTypeRevenue},
		{"Interest Income", ledger.AccountTypeRevenue},
		{"Expenses", ledger.AccountTypeExpense},
		{"Wages", ledger.AccountTypeExpense},
	}
	for _, a := range accounts {
		if _, err := l.CreateAccount(a.name, a.typ); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(ctx.Stdout, "=== STARTING THE MEDICI BANK ===")

	transactions := []struct {
		date        time.Time
		description string
		debit       ledger.Entry
		credits     []ledger.Entry
	}{
		{
			demoDate(1397, time.January, 1),
			"Initial investment from Giovanni de' Medici",
			entry("Cash", "10000.00"),
			[]ledger.Entry{entry("Owner's Capital", "10000.00")},
		},
		{
			demoDate(1397, time.February, 15),
			"Loan to Wool Merchant",
			entry("Accounts Receivable", "2000.00"),
			[]ledger.Entry{entry("Cash", "2000.00")},
		},
		{
			demoDate(1397, time.August, 10),
			"Partial loan repayment from Wool Merchant with interest",
			entry("Cash", "1200.00"),
			[]ledger.Entry{
				entry("Accounts Receivable", "1000.00"),
				entry("Interest Income", "200.00"),
			},
		},
		{
			demoDate(1397, time.September, 5),
			"Purchase of land for new Medici banking house",
			entry("Land", "3000.00"),
			[]ledger.Entry{entry("Cash", "3000.00")},
		},
		{
			demoDate(1397, time.December, 1),
			"Quarterly wages for bank employees",
			entry("Wages", "800.00"),
			[]ledger.Entry{entry("Cash", "800.00")},
		},
	}

	for _, t := range transactions {
		txn, err := l.Record(t.date, t.description, t.debit, t.credits...)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(ctx.Stdout, txn)
	}

	renderer := newReportRenderer(ctx.Stdout)

	_, _ = fmt.Fprintln(ctx.Stdout, "\n=== MEDICI BANK TRIAL BALANCE (Year 1397) ===")
	renderer.renderTrialBalance(l.TrialBalance())

	_, _ = fmt.Fprintln(ctx.Stdout, "\n=== MEDICI BANK BALANCE SHEET (Year 1397) ===")
	renderer.renderBalanceSheet(l.BalanceSheet())

	_, _ = fmt.Fprintln(ctx.Stdout, "\n=== MEDICI BANK INCOME STATEMENT (Year 1397) ===")
	renderer.renderIncomeStatement(l.IncomeStatement())

	return nil
}

func demoDate(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func entry(account, amount string) ledger.Entry {
	return ledger.MustNewEntry(account, decimal.RequireFromString(amount))
}
