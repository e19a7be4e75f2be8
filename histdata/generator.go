// Package histdata generates synthetic journal records modelled on the
// Medici Bank's operations between 1390 and 1440: papal deposits during
// the Western Schism, loans to merchants and nobles, bills of exchange
// between branches, war financing for Florence, and the famous 35,000
// florin ransom paid for Pope John XXIII at the Council of Constance.
//
// Every generated record balances by construction, so a generated
// dataset replays into a ledger without rejections.
package histdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/medicibank/medici/journal"
	"github.com/medicibank/medici/telemetry"
)

// Transaction kinds, carried on the records' provenance fields.
const (
	KindDeposit          = "deposit"
	KindWithdrawal       = "withdrawal"
	KindLoanIssuance     = "loan_issuance"
	KindLoanRepayment    = "loan_repayment"
	KindWarFinancing     = "war_financing"
	KindAlumTrade        = "alum_trade"
	KindBillOfExchange   = "bill_of_exchange"
	KindOperatingExpense = "operating_expense"
	KindRansomPayment    = "ransom_payment"
)

// DefaultSeed reproduces the canonical dataset.
const DefaultSeed = 42

var (
	simulationStart = day(1390, time.January, 1)
	simulationEnd   = day(1440, time.December, 31)
)

var branches = []string{
	"Florence", "Rome", "Venice", "Milan", "Geneva", "Bruges", "London", "Avignon",
}

var merchants = []string{
	"Wool Merchant", "Silk Trader", "Spice Merchant", "Cloth Merchant",
	"Wine Trader", "Gold Merchant", "Jewel Trader", "Grain Merchant",
	"Armor Smith", "Textile Merchant", "Banking House", "Trading Company",
}

var nobles = []string{
	"Duke of Milan", "Doge of Venice", "King of Naples", "Cardinal",
	"Archbishop", "Count of Urbino", "Marquis", "Baron", "Lord",
}

var papalEntities = []string{
	"Papal Curia", "Vatican Treasury", "Cardinal's Office", "Papal Court",
	"Holy See", "Apostolic Chamber", "Sacred College",
}

// Relative frequency of each transaction kind. War periods and the papal
// banking boom skew these further at generation time.
var kindWeights = []struct {
	kind   string
	weight float64
}{
	{"papal_deposit", 0.15},
	{KindLoanIssuance, 0.12},
	{KindLoanRepayment, 0.13},
	{"deposit_withdrawal", 0.20},
	{KindBillOfExchange, 0.10},
	{KindAlumTrade, 0.08},
	{KindWarFinancing, 0.05},
	{KindOperatingExpense, 0.17},
}

// Generator produces seeded, reproducible historical datasets.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator with its own random stream. The same seed
// always yields the same dataset.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces n records: the fixed Constance ransom plus weighted
// random transactions across 1390-1440, sorted by date and renumbered
// sequentially from 1.
func (g *Generator) Generate(ctx context.Context, n int) ([]journal.Record, error) {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("histdata.generate (%d records)", n))
	defer timer.End()

	records := make([]journal.Record, 0, n)
	records = append(records, g.constanceRansom())

	for len(records) < n {
		if len(records)%1000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		date := g.randomDate(simulationStart, simulationEnd)
		records = append(records, g.generateOne(date))
	}

	// Sort stably so records on the same day keep generation order, then
	// renumber.
	slices.SortStableFunc(records, func(a, b journal.Record) int {
		return a.Date.Compare(b.Date)
	})
	records = records[:n]
	for i := range records {
		records[i].ID = i + 1
	}

	return records, nil
}

func (g *Generator) generateOne(date time.Time) journal.Record {
	kind := g.pickKind()

	// Papal banking surges after John XXIII's appointment.
	if PapalBankingBoom.Contains(date) && g.rng.Float64() < 0.3 {
		kind = "papal_deposit"
	}

	// Wars pull the bank into government lending.
	for _, period := range warPeriods {
		if period.Contains(date) && g.rng.Float64() < 0.15 {
			kind = KindWarFinancing
			break
		}
	}

	switch kind {
	case "papal_deposit":
		return g.papalDeposit(date)
	case KindLoanIssuance:
		return g.loanIssuance(date)
	case KindLoanRepayment:
		return g.loanRepayment(date)
	case "deposit_withdrawal":
		return g.depositOrWithdrawal(date)
	case KindBillOfExchange:
		return g.billOfExchange(date)
	case KindAlumTrade:
		return g.alumTrade(date)
	case KindWarFinancing:
		return g.warFinancing(date)
	default:
		return g.operatingExpense(date)
	}
}

func (g *Generator) pickKind() string {
	roll := g.rng.Float64()
	cumulative := 0.0
	for _, kw := range kindWeights {
		cumulative += kw.weight
		if roll <= cumulative {
			return kw.kind
		}
	}
	return KindOperatingExpense
}

func (g *Generator) randomDate(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, g.rng.Intn(days+1))
}

// randomAmount draws a uniform base and scales it by a factor weighted
// toward small multipliers, giving many small transactions and a long
// tail of very large ones.
func (g *Generator) randomAmount(min, max int) decimal.Decimal {
	base := float64(min) + g.rng.Float64()*float64(max-min)
	factors := []int{1, 1, 1, 2, 5, 10, 20, 50}
	factor := factors[g.rng.Intn(len(factors))]
	return decimal.NewFromFloat(base * float64(factor)).Round(2)
}

func (g *Generator) choice(options []string) string {
	return options[g.rng.Intn(len(options))]
}

func (g *Generator) papalDeposit(date time.Time) journal.Record {
	entity := g.choice(papalEntities)
	amount := g.randomAmount(500, 50000)

	return journal.Record{
		Date:         date,
		Description:  fmt.Sprintf("Deposit from %s to Rome branch", entity),
		Branch:       "Rome",
		Kind:         KindDeposit,
		Counterparty: entity,
		Currency:     "florin",
		Debit:        journal.EntryRecord{Account: "Cash", Amount: amount},
		Credits: []journal.EntryRecord{
			{Account: "Deposits Payable", Amount: amount},
		},
	}
}

func (g *Generator) loanIssuance(date time.Time) journal.Record {
	branch := g.choice(branches)
	isNoble := g.rng.Float64() > 0.7

	var counterparty string
	var amount decimal.Decimal
	if isNoble {
		counterparty = g.choice(nobles)
		amount = g.randomAmount(1000, 100000)
	} else {
		counterparty = g.choice(merchants)
		amount = g.randomAmount(100, 10000)
	}

	return journal.Record{
		Date:         date,
		Description:  fmt.Sprintf("Loan issued to %s from %s branch", counterparty, branch),
		Branch:       branch,
		Kind:         KindLoanIssuance,
		Counterparty: counterparty,
		Currency:     "florin",
		Debit:        journal.EntryRecord{Account: "Loans Receivable", Amount: amount},
		Credits: []journal.EntryRecord{
			{Account: "Cash", Amount: amount},
		},
	}
}

func (g *Generator) loanRepayment(date time.Time) journal.Record {
	branch := g.choice(branches)
	isNoble := g.rng.Float64() > 0.7
	var counterparty string
	if isNoble {
		counterparty = g.choice(nobles)
	} else {
		counterparty = g.choice(merchants)
	}

	principal := g.randomAmount(100, 10000)
	rate := decimal.New(int64(8+g.rng.Intn(18)), -2)
	interest := principal.Mul(rate).Round(2)
	total := principal.Add(interest)

	return journal.Record{
		Date:         date,
		Description:  fmt.Sprintf("Loan repayment from %s with interest", counterparty),
		Branch:       branch,
		Kind:         KindLoanRepayment,
		Counterparty: counterparty,
		Currency:     "florin",
		Debit:        journal.EntryRecord{Account: "Cash", Amount: total},
		Credits: []journal.EntryRecord{
			{Account: "Loans Receivable", Amount: principal},
			{Account: "Interest Income", Amount: interest},
		},
	}
}

func (g *Generator) depositOrWithdrawal(date time.Time) journal.Record {
	branch := g.choice(branches)
	counterparty := g.choice(append(append([]string(nil), merchants...), nobles...))
	amount := g.randomAmount(100, 15000)

	if g.rng.Float64() > 0.5 {
		return journal.Record{
			Date:         date,
			Description:  fmt.Sprintf("Withdrawal by %s", counterparty),
			Branch:       branch,
			Kind:         KindWithdrawal,
			Counterparty: counterparty,
			Currency:     "florin",
			Debit:        journal.EntryRecord{Account: "Deposits Payable", Amount: amount},
			Credits: []journal.EntryRecord{
				{Account: "Cash", Amount: amount},
			},
		}
	}

	return journal.Record{
		Date:         date,
		Description:  fmt.Sprintf("Deposit by %s", counterparty),
		Branch:       branch,
		Kind:         KindDeposit,
		Counterparty: counterparty,
		Currency:     "florin",
		Debit:        journal.EntryRecord{Account: "Cash", Amount: amount},
		Credits: []journal.EntryRecord{
			{Account: "Deposits Payable", Amount: amount},
		},
	}
}

func (g *Generator) billOfExchange(date time.Time) journal.Record {
	from := g.choice(branches)
	to := from
	for to == from {
		to = g.choice(branches)
	}

	amount := g.randomAmount(500, 20000)
	feeRate := decimal.New(int64(100+g.rng.Intn(201)), -4)
	fee := amount.Mul(feeRate).Round(2)

	return journal.Record{
		Date:         date,
		Description:  fmt.Sprintf("Bill of exchange from %s to %s", from, to),
		Branch:       from,
		Kind:         KindBillOfExchange,
		Counterparty: fmt.Sprintf("Transfer to %s", to),
		Currency:     "florin",
		Debit:        journal.EntryRecord{Account: fmt.Sprintf("Due from %s", to), Amount: amount},
		Credits: []journal.EntryRecord{
			{Account: "Cash", Amount: amount.Sub(fee)},
			{Account: "Exchange Fee Revenue", Amount: fee},
		},
	}
}

func (g *Generator) alumTrade(date time.Time) journal.Record {
	branch := g.choice([]string{"Rome", "Florence", "Venice"})
	amount := g.randomAmount(200, 5000)

	return journal.Record{
		Date:         date,
		Description:  "Alum sale from papal mines",
		Branch:       branch,
		Kind:         KindAlumTrade,
		Counterparty: g.choice(merchants),
		Currency:     "florin",
		Debit:        journal.EntryRecord{Account: "Cash", Amount: amount},
		Credits: []journal.EntryRecord{
			{Account: "Trading Revenue", Amount: amount},
		},
	}
}

func (g *Generator) warFinancing(date time.Time) journal.Record {
	amount := g.randomAmount(5000, 200000)

	descriptions := []string{
		"War financing for Florentine operations against Milan",
		"Loan to Venice for Lombardy Wars operations",
		"Emergency war financing for Florence defense",
	}

	return journal.Record{
		Date:         date,
		Description:  g.choice(descriptions),
		Branch:       "Florence",
		Kind:         KindWarFinancing,
		Counterparty: "Republic of Florence",
		Currency:     "florin",
		Debit:        journal.EntryRecord{Account: "Loans Receivable - Government", Amount: amount},
		Credits: []journal.EntryRecord{
			{Account: "Cash", Amount: amount},
		},
	}
}

var expenseKinds = []struct {
	account  string
	min, max int
}{
	{"Wages", 100, 2000},
	{"Rent", 50, 500},
	{"Supplies", 20, 300},
	{"Courier Services", 10, 100},
	{"Security", 50, 500},
	{"Maintenance", 30, 400},
}

func (g *Generator) operatingExpense(date time.Time) journal.Record {
	branch := g.choice(branches)
	expense := expenseKinds[g.rng.Intn(len(expenseKinds))]
	amount := g.randomAmount(expense.min, expense.max)

	return journal.Record{
		Date:         date,
		Description:  fmt.Sprintf("%s expense for %s branch", expense.account, branch),
		Branch:       branch,
		Kind:         KindOperatingExpense,
		Counterparty: fmt.Sprintf("%s Operations", branch),
		Currency:     "florin",
		Debit:        journal.EntryRecord{Account: expense.account, Amount: amount},
		Credits: []journal.EntryRecord{
			{Account: "Cash", Amount: amount},
		},
	}
}

// constanceRansom is the fixed 35,000 florin ransom the bank advanced
// for the deposed Pope John XXIII on 29 May 1415.
func (g *Generator) constanceRansom() journal.Record {
	ransom := decimal.RequireFromString("35000.00")

	return journal.Record{
		Date:         day(1415, time.May, 29),
		Description:  "Payment of 35,000 florin ransom for Pope John XXIII",
		Branch:       "Constance",
		Kind:         KindRansomPayment,
		Counterparty: "Council of Constance - Pope John XXIII Ransom",
		Currency:     "florin",
		Debit:        journal.EntryRecord{Account: "Papal Receivable", Amount: ransom},
		Credits: []journal.EntryRecord{
			{Account: "Cash", Amount: ransom},
		},
	}
}
