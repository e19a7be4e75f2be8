package histdata

import (
	"context"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/medicibank/medici/journal"
	"github.com/medicibank/medici/ledger"
)

func TestGenerateIsDeterministic(t *testing.T) {
	ctx := context.Background()

	first, err := New(DefaultSeed).Generate(ctx, 500)
	assert.NoError(t, err)
	second, err := New(DefaultSeed).Generate(ctx, 500)
	assert.NoError(t, err)

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Description, second[i].Description)
		assert.True(t, first[i].Debit.Amount.Equal(second[i].Debit.Amount))
	}
}

func TestGeneratedRecordsBalance(t *testing.T) {
	records, err := New(DefaultSeed).Generate(context.Background(), 2000)
	assert.NoError(t, err)
	assert.Equal(t, 2000, len(records))

	for _, record := range records {
		assert.True(t, record.Debit.Amount.Equal(record.CreditTotal()),
			"record %d (%s): debit %s != credits %s",
			record.ID, record.Description,
			record.Debit.Amount, record.CreditTotal())
		assert.True(t, record.Debit.Amount.IsPositive())
		for _, credit := range record.Credits {
			assert.True(t, credit.Amount.IsPositive())
		}
	}
}

func TestGenerateSortsAndRenumbers(t *testing.T) {
	records, err := New(DefaultSeed).Generate(context.Background(), 1000)
	assert.NoError(t, err)

	for i, record := range records {
		assert.Equal(t, i+1, record.ID)
		if i > 0 {
			assert.False(t, record.Date.Before(records[i-1].Date))
		}
		assert.False(t, record.Date.Before(simulationStart))
		assert.False(t, record.Date.After(simulationEnd))
	}
}

func TestGenerateIncludesConstanceRansom(t *testing.T) {
	records, err := New(DefaultSeed).Generate(context.Background(), 1000)
	assert.NoError(t, err)

	var ransom *journal.Record
	for i := range records {
		if records[i].Kind == KindRansomPayment {
			assert.Zero(t, ransom)
			ransom = &records[i]
		}
	}

	assert.NotZero(t, ransom)
	assert.Equal(t, day(1415, time.May, 29), ransom.Date)
	assert.Equal(t, "Constance", ransom.Branch)
	assert.Equal(t, "Papal Receivable", ransom.Debit.Account)
	assert.True(t, ransom.Debit.Amount.Equal(decimal.RequireFromString("35000.00")))
}

func TestGeneratedDatasetReplaysCleanly(t *testing.T) {
	ctx := context.Background()
	records, err := New(DefaultSeed).Generate(ctx, 3000)
	assert.NoError(t, err)

	l := ledger.New("Banco dei Medici")
	posted, err := journal.Replay(ctx, l, records)
	assert.NoError(t, err)
	assert.Equal(t, 3000, posted)

	tb := l.TrialBalance()
	assert.True(t, tb.Balanced())

	// Inference types the generator's account names correctly.
	loans, ok := l.Account("Loans Receivable")
	assert.True(t, ok)
	assert.Equal(t, ledger.AccountTypeAsset, loans.Type)
	deposits, ok := l.Account("Deposits Payable")
	assert.True(t, ok)
	assert.Equal(t, ledger.AccountTypeLiability, deposits.Type)
}

func TestGenerateHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(DefaultSeed).Generate(ctx, 50000)
	assert.IsError(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	records, err := New(DefaultSeed).Generate(context.Background(), 2000)
	assert.NoError(t, err)

	summary := Summarize(records)
	assert.Equal(t, 2000, summary.Total)
	assert.Equal(t, 1, summary.ByKind[KindRansomPayment])
	assert.True(t, summary.ByKind[KindDeposit] > 0)
	assert.True(t, summary.ByBranch["Rome"] > 0)
	assert.False(t, summary.First.After(summary.Last))
	assert.True(t, summary.Volume.IsPositive())

	total := 0
	for _, count := range summary.ByKind {
		total += count
	}
	assert.Equal(t, 2000, total)
}
