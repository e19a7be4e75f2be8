package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/medicibank/medici/ledger"
	"github.com/medicibank/medici/output"
)

// reportRenderer renders financial reports as aligned text tables.
type reportRenderer struct {
	w      io.Writer
	styles *output.Styles

	nameWidth   int
	amountWidth int
}

func newReportRenderer(w io.Writer) *reportRenderer {
	r := &reportRenderer{
		w:           w,
		styles:      output.NewStyles(w),
		nameWidth:   30,
		amountWidth: 15,
	}

	// Widen the name column on wide terminals.
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 80 {
		r.nameWidth = width - 2*r.amountWidth - 2
		if r.nameWidth > 50 {
			r.nameWidth = 50
		}
	}

	return r
}

// padName left-aligns a name into the name column, accounting for
// double-width runes.
func (r *reportRenderer) padName(name string) string {
	if runewidth.StringWidth(name) > r.nameWidth {
		name = runewidth.Truncate(name, r.nameWidth, "…")
	}
	return runewidth.FillRight(name, r.nameWidth)
}

func (r *reportRenderer) padAmount(amount string) string {
	return runewidth.FillLeft(amount, r.amountWidth)
}

func (r *reportRenderer) rule(width int) string {
	return strings.Repeat("-", width)
}

func (r *reportRenderer) sectionHeader(title string) {
	_, _ = fmt.Fprintln(r.w, r.styles.Header(title))
	_, _ = fmt.Fprintln(r.w, r.rule(r.nameWidth+r.amountWidth))
}

func (r *reportRenderer) line(name, amount string) {
	_, _ = fmt.Fprintf(r.w, "%s%s\n",
		r.padName(name),
		r.styles.Amount(r.padAmount(amount)))
}

func (r *reportRenderer) totalLine(name, amount string) {
	_, _ = fmt.Fprintln(r.w, r.rule(r.nameWidth+r.amountWidth))
	_, _ = fmt.Fprintf(r.w, "%s%s\n",
		r.styles.Header(r.padName(name)),
		r.styles.Amount(r.padAmount(amount)))
}

func (r *reportRenderer) verdict(balanced bool, okMessage, failMessage string) {
	_, _ = fmt.Fprintln(r.w)
	if balanced {
		_, _ = fmt.Fprintln(r.w, r.styles.Success(fmt.Sprintf("%s %s", successSymbol, okMessage)))
	} else {
		_, _ = fmt.Fprintln(r.w, r.styles.Error(fmt.Sprintf("%s %s", errorSymbol, failMessage)))
	}
}

func (r *reportRenderer) renderTrialBalance(tb *ledger.TrialBalance) {
	width := r.nameWidth + 2*r.amountWidth

	_, _ = fmt.Fprintf(r.w, "%s%s%s\n",
		r.styles.Header(r.padName("Account")),
		r.styles.Header(r.padAmount("Debit (Florins)")),
		r.styles.Header(r.padAmount("Credit (Florins)")))
	_, _ = fmt.Fprintln(r.w, r.rule(width))

	for _, row := range tb.Rows {
		debit, credit := "", ""
		if !row.Debit.IsZero() {
			debit = row.Debit.StringFixed(2)
		}
		if !row.Credit.IsZero() {
			credit = row.Credit.StringFixed(2)
		}
		_, _ = fmt.Fprintf(r.w, "%s%s%s\n",
			r.padName(row.Account),
			r.styles.Amount(r.padAmount(debit)),
			r.styles.Amount(r.padAmount(credit)))
	}

	_, _ = fmt.Fprintln(r.w, r.rule(width))
	_, _ = fmt.Fprintf(r.w, "%s%s%s\n",
		r.styles.Header(r.padName("TOTAL")),
		r.styles.Amount(r.padAmount(tb.TotalDebits.StringFixed(2))),
		r.styles.Amount(r.padAmount(tb.TotalCredits.StringFixed(2))))

	r.verdict(tb.Balanced(),
		"The books are balanced!",
		"WARNING: The books are NOT balanced!")
}

func (r *reportRenderer) renderBalanceSheet(bs *ledger.BalanceSheet) {
	r.sectionHeader("ASSETS")
	for _, line := range bs.Assets {
		r.line(line.Account, line.Balance.StringFixed(2))
	}
	r.totalLine("TOTAL ASSETS", bs.TotalAssets.StringFixed(2))
	_, _ = fmt.Fprintln(r.w)

	r.sectionHeader("LIABILITIES")
	for _, line := range bs.Liabilities {
		r.line(line.Account, line.Balance.StringFixed(2))
	}
	r.totalLine("TOTAL LIABILITIES", bs.TotalLiabilities.StringFixed(2))
	_, _ = fmt.Fprintln(r.w)

	r.sectionHeader("EQUITY")
	for _, line := range bs.Equity {
		r.line(line.Account, line.Balance.StringFixed(2))
	}
	r.totalLine("TOTAL EQUITY", bs.TotalEquity.StringFixed(2))
	_, _ = fmt.Fprintln(r.w)

	r.sectionHeader("ACCOUNTING EQUATION")
	r.line("Total Assets", bs.TotalAssets.StringFixed(2))
	r.line("Total Liabilities + Equity", bs.TotalLiabilities.Add(bs.TotalEquity).StringFixed(2))

	r.verdict(bs.Balanced(),
		"The accounting equation is balanced!",
		"WARNING: The accounting equation is NOT balanced!")
}

func (r *reportRenderer) renderIncomeStatement(is *ledger.IncomeStatement) {
	r.sectionHeader("REVENUE")
	for _, line := range is.Revenue {
		r.line(line.Account, line.Balance.StringFixed(2))
	}
	r.totalLine("TOTAL REVENUE", is.TotalRevenue.StringFixed(2))
	_, _ = fmt.Fprintln(r.w)

	r.sectionHeader("EXPENSES")
	for _, line := range is.Expenses {
		r.line(line.Account, line.Balance.StringFixed(2))
	}
	r.totalLine("TOTAL EXPENSES", is.TotalExpenses.StringFixed(2))
	_, _ = fmt.Fprintln(r.w)

	r.sectionHeader("SUMMARY")
	r.line("Total Revenue", is.TotalRevenue.StringFixed(2))
	r.line("Total Expenses", is.TotalExpenses.StringFixed(2))
	r.totalLine("NET INCOME", is.NetIncome.StringFixed(2))
}
