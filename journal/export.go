package journal

import "github.com/medicibank/medici/ledger"

// FromLedger converts a ledger's posted transaction log back into
// interchange records, resolving account types from the ledger so that an
// export/import round trip reconstructs the same accounts and balances.
func FromLedger(l *ledger.Ledger) []Record {
	accountType := func(name string) ledger.AccountType {
		if account, ok := l.Account(name); ok {
			return account.Type
		}
		return ledger.AccountTypeUnknown
	}

	transactions := l.Transactions()
	records := make([]Record, len(transactions))
	for i, txn := range transactions {
		record := Record{
			ID:          txn.ID,
			Date:        txn.Date,
			Description: txn.Description,
			Debit: EntryRecord{
				Account: txn.Debit.Account,
				Type:    accountType(txn.Debit.Account),
				Amount:  txn.Debit.Amount,
			},
		}
		for _, credit := range txn.Credits {
			record.Credits = append(record.Credits, EntryRecord{
				Account: credit.Account,
				Type:    accountType(credit.Account),
				Amount:  credit.Amount,
			})
		}
		records[i] = record
	}

	return records
}
