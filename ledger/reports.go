package ledger

import "github.com/shopspring/decimal"

// Reports are computed on demand by summing current account balances
// grouped by type. They never mutate state, so calling them repeatedly
// with no intervening posts yields identical results.

// TrialBalanceRow is one account's line in the trial balance. Exactly one
// of Debit/Credit is non-zero for accounts with a non-zero balance.
type TrialBalanceRow struct {
	Account string
	Type    AccountType
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// TrialBalance lists every account's balance split into debit and credit
// columns. The column totals are equal by construction: both are derived
// from the same set of balanced postings.
type TrialBalance struct {
	Rows         []TrialBalanceRow
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
}

// Balanced returns true if the debit and credit column totals match.
// A false result indicates a bug in the posting engine, not bad input.
func (tb *TrialBalance) Balanced() bool {
	return tb.TotalDebits.Equal(tb.TotalCredits)
}

// TrialBalance computes the trial balance over all accounts in creation
// order. An account's balance lands in the column of its natural
// increasing side; an abnormal (negative) balance lands in the opposite
// column as a positive magnitude.
func (l *Ledger) TrialBalance() *TrialBalance {
	tb := &TrialBalance{
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}

	for _, name := range l.order {
		account := l.accounts[name]
		balance := account.Balance()

		row := TrialBalanceRow{
			Account: account.Name,
			Type:    account.Type,
			Debit:   decimal.Zero,
			Credit:  decimal.Zero,
		}

		debitSide := account.Type.DebitIncreases()
		if balance.IsNegative() {
			debitSide = !debitSide
			balance = balance.Abs()
		}

		if debitSide {
			row.Debit = balance
			tb.TotalDebits = tb.TotalDebits.Add(balance)
		} else {
			row.Credit = balance
			tb.TotalCredits = tb.TotalCredits.Add(balance)
		}

		tb.Rows = append(tb.Rows, row)
	}

	return tb
}

// ReportLine is one account's contribution to a balance sheet or income
// statement section.
type ReportLine struct {
	Account string
	Balance decimal.Decimal
}

// BalanceSheet reports Assets, Liabilities, and Equity. Undistributed net
// income (Revenue − Expenses) appears as a "Net Income" equity line, so
// for any sequence of successfully posted transactions the statement
// satisfies Assets == Liabilities + Equity.
type BalanceSheet struct {
	Assets      []ReportLine
	Liabilities []ReportLine
	Equity      []ReportLine

	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
}

// Balanced verifies the accounting equation Assets = Liabilities + Equity.
func (bs *BalanceSheet) Balanced() bool {
	return bs.TotalAssets.Equal(bs.TotalLiabilities.Add(bs.TotalEquity))
}

// BalanceSheet computes the balance sheet from current account balances.
// Zero-balance accounts are omitted from the line items but still count
// toward the totals (as zero).
func (l *Ledger) BalanceSheet() *BalanceSheet {
	bs := &BalanceSheet{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	netIncome := decimal.Zero

	for _, name := range l.order {
		account := l.accounts[name]
		balance := account.Balance()

		switch account.Type {
		case AccountTypeAsset:
			bs.TotalAssets = bs.TotalAssets.Add(balance)
			if !balance.IsZero() {
				bs.Assets = append(bs.Assets, ReportLine{Account: account.Name, Balance: balance})
			}
		case AccountTypeLiability:
			bs.TotalLiabilities = bs.TotalLiabilities.Add(balance)
			if !balance.IsZero() {
				bs.Liabilities = append(bs.Liabilities, ReportLine{Account: account.Name, Balance: balance})
			}
		case AccountTypeEquity:
			bs.TotalEquity = bs.TotalEquity.Add(balance)
			if !balance.IsZero() {
				bs.Equity = append(bs.Equity, ReportLine{Account: account.Name, Balance: balance})
			}
		case AccountTypeRevenue:
			netIncome = netIncome.Add(balance)
		case AccountTypeExpense:
			netIncome = netIncome.Sub(balance)
		}
	}

	// Undistributed earnings belong to the owners; without this line the
	// accounting equation only holds for ledgers with no revenue or
	// expense activity.
	if !netIncome.IsZero() {
		bs.Equity = append(bs.Equity, ReportLine{Account: "Net Income", Balance: netIncome})
	}
	bs.TotalEquity = bs.TotalEquity.Add(netIncome)

	return bs
}

// IncomeStatement reports Revenue − Expenses = Net Income.
type IncomeStatement struct {
	Revenue  []ReportLine
	Expenses []ReportLine

	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// IncomeStatement computes the income statement from current account
// balances.
func (l *Ledger) IncomeStatement() *IncomeStatement {
	is := &IncomeStatement{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, name := range l.order {
		account := l.accounts[name]
		balance := account.Balance()

		switch account.Type {
		case AccountTypeRevenue:
			is.TotalRevenue = is.TotalRevenue.Add(balance)
			if !balance.IsZero() {
				is.Revenue = append(is.Revenue, ReportLine{Account: account.Name, Balance: balance})
			}
		case AccountTypeExpense:
			is.TotalExpenses = is.TotalExpenses.Add(balance)
			if !balance.IsZero() {
				is.Expenses = append(is.Expenses, ReportLine{Account: account.Name, Balance: balance})
			}
		}
	}

	is.NetIncome = is.TotalRevenue.Sub(is.TotalExpenses)

	return is
}
