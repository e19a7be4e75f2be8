package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a complete double-entry transaction: exactly one
// debit entry balanced against one or more credit entries.
//
// A transaction moves through three states: constructed (ID == 0),
// validated, and posted (ID assigned by the ledger). Once posted it is
// immutable; there is no reversal operation. Undoing a posted transaction
// means posting a new compensating one.
type Transaction struct {
	ID          int
	Date        time.Time
	Description string
	Debit       Entry
	Credits     []Entry
}

// NewTransaction constructs an unposted transaction. The credit sequence
// must be non-empty; split credits across multiple accounts are allowed.
func NewTransaction(date time.Time, description string, debit Entry, credits []Entry) (*Transaction, error) {
	if len(credits) == 0 {
		return nil, NewEmptyCreditsError(date, description)
	}

	return &Transaction{
		Date:        date,
		Description: description,
		Debit:       debit,
		Credits:     append([]Entry(nil), credits...),
	}, nil
}

// CreditTotal returns the exact sum of all credit entry amounts.
func (t *Transaction) CreditTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range t.Credits {
		total = total.Add(c.Amount)
	}
	return total
}

// IsBalanced returns true iff the debit amount equals the sum of the
// credit amounts. All amounts were fixed to two decimal places at entry
// construction, so this is an exact decimal comparison with no tolerance.
func (t *Transaction) IsBalanced() bool {
	return t.Debit.Amount.Equal(t.CreditTotal())
}

// Posted returns true once the ledger has assigned an ID and applied the
// transaction's entries to account balances.
func (t *Transaction) Posted() bool {
	return t.ID > 0
}

// String returns a human-readable representation of the transaction.
func (t *Transaction) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Transaction: %s - %s\n", t.Date.Format("2006-01-02"), t.Description)
	fmt.Fprintf(&sb, "  Debit:\n    %s\n", t.Debit)
	sb.WriteString("  Credits:\n")
	for _, c := range t.Credits {
		fmt.Fprintf(&sb, "    %s\n", c)
	}

	return strings.TrimRight(sb.String(), "\n")
}
