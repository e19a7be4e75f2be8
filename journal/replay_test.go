package journal

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/medicibank/medici/ledger"
)

func TestReplayCreatesAccountsAndPosts(t *testing.T) {
	l := ledger.New("Banco dei Medici")

	posted, err := Replay(context.Background(), l, sampleRecords())
	assert.NoError(t, err)
	assert.Equal(t, 2, posted)

	cash, ok := l.Account("Cash")
	assert.True(t, ok)
	assert.Equal(t, ledger.AccountTypeAsset, cash.Type)
	assert.True(t, cash.Balance().Equal(d("10829.16")))

	interest, ok := l.Account("Interest Income")
	assert.True(t, ok)
	assert.Equal(t, ledger.AccountTypeRevenue, interest.Type)
	assert.True(t, interest.Balance().Equal(d("108.85")))
}

func TestReplayTypePrecedence(t *testing.T) {
	// Options beat record types, record types beat inference.
	records := []Record{{
		Date:        date(1397, 3, 1),
		Description: "Deposit from the Archbishop",
		Debit:       EntryRecord{Account: "Cash", Amount: d("500.00")},
		Credits: []EntryRecord{
			{Account: "Vault Holdings", Type: ledger.AccountTypeLiability, Amount: d("500.00")},
		},
	}}

	l := ledger.New("test")
	_, err := Replay(context.Background(), l, records,
		WithAccountTypes(map[string]ledger.AccountType{"Vault Holdings": ledger.AccountTypeAsset}))
	assert.NoError(t, err)

	vault, _ := l.Account("Vault Holdings")
	assert.Equal(t, ledger.AccountTypeAsset, vault.Type)

	cash, _ := l.Account("Cash")
	assert.Equal(t, ledger.AccountTypeAsset, cash.Type)
}

func TestReplayCollectsRejectionsAndContinues(t *testing.T) {
	records := sampleRecords()
	unbalanced := Record{
		Date:        date(1397, 5, 1),
		Description: "Miscopied folio",
		Debit:       EntryRecord{Account: "Cash", Amount: d("100.00")},
		Credits: []EntryRecord{
			{Account: "Interest Income", Amount: d("90.00")},
		},
	}
	records = append(records[:1], append([]Record{unbalanced}, records[1:]...)...)

	l := ledger.New("test")
	posted, err := Replay(context.Background(), l, records)
	assert.Equal(t, 2, posted)
	assert.Error(t, err)

	var replayErrs *ReplayErrors
	assert.True(t, errors.As(err, &replayErrs))
	assert.Equal(t, 1, len(replayErrs.Errors))

	var recordErr *RecordError
	assert.True(t, errors.As(replayErrs.Errors[0], &recordErr))
	assert.Equal(t, "Miscopied folio", recordErr.Description)

	var unbalancedErr *ledger.UnbalancedTransactionError
	assert.True(t, errors.As(recordErr, &unbalancedErr))

	// The records after the rejected one were still posted.
	cash, _ := l.Account("Cash")
	assert.True(t, cash.Balance().Equal(d("10829.16")))
}

func TestReplayStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := ledger.New("test")
	posted, err := Replay(ctx, l, sampleRecords())
	assert.Equal(t, 0, posted)
	assert.IsError(t, err, context.Canceled)
}

func TestReplayAssignsPostedIDs(t *testing.T) {
	records := sampleRecords()
	records[0].ID = 900
	records[1].ID = 17

	l := ledger.New("test")
	_, err := Replay(context.Background(), l, records)
	assert.NoError(t, err)

	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, 2, records[1].ID)
}

func TestExportImportRoundTrip(t *testing.T) {
	source := ledger.New("Banco dei Medici")
	_, err := Replay(context.Background(), source, sampleRecords())
	assert.NoError(t, err)

	exported := FromLedger(source)
	assert.Equal(t, 2, len(exported))
	assert.Equal(t, ledger.AccountTypeEquity, exported[0].Credits[0].Type)

	var sb strings.Builder
	assert.NoError(t, WriteJSON(&sb, exported))
	imported, err := ReadJSON(strings.NewReader(sb.String()))
	assert.NoError(t, err)

	rebuilt := ledger.New("Banco dei Medici")
	_, err = Replay(context.Background(), rebuilt, imported)
	assert.NoError(t, err)

	for _, want := range source.Accounts() {
		got, ok := rebuilt.Account(want.Name)
		assert.True(t, ok)
		assert.Equal(t, want.Type, got.Type)
		assert.True(t, want.Balance().Equal(got.Balance()))
	}
}
