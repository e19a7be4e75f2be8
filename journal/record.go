// Package journal moves transaction records across the ledger boundary:
// CSV and JSON codecs, account-type inference for records that carry no
// explicit types, and replay of record streams into a ledger.
//
// A record is the interchange shape the core accepts: exactly one debit,
// one or more credits, debit amount equal to the sum of credit amounts.
// Where the records came from (the synthetic generator, an exported file,
// another system) is irrelevant to the ledger; it validates and posts
// them all the same way.
package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/medicibank/medici/ledger"
)

// EntryRecord is one side-entry of a record: an account name, an optional
// account type, and an amount. A zero Type means the type is unknown and
// must be inferred if the account has to be created on import.
type EntryRecord struct {
	Account string
	Type    ledger.AccountType
	Amount  decimal.Decimal
}

// Record is a proposed transaction in interchange form. The provenance
// fields (Branch, Kind, Counterparty, Currency) are carried for datasets
// that have them, like the historical generator's output; the ledger
// ignores them.
type Record struct {
	ID          int
	Date        time.Time
	Description string
	Debit       EntryRecord
	Credits     []EntryRecord

	Branch       string
	Kind         string
	Counterparty string
	Currency     string
}

// CreditTotal returns the exact sum of the credit amounts.
func (r *Record) CreditTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range r.Credits {
		total = total.Add(c.Amount)
	}
	return total
}

// Accounts returns every account name the record references, debit first.
func (r *Record) Accounts() []string {
	names := make([]string, 0, 1+len(r.Credits))
	names = append(names, r.Debit.Account)
	for _, c := range r.Credits {
		names = append(names, c.Account)
	}
	return names
}

// DateFormat is the wire format for record dates.
const DateFormat = "2006-01-02"
