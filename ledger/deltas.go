package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Delta Architecture
//
// Validators return lightweight "delta" structs describing the balance
// mutations a transaction would cause instead of mutating state directly.
// The ledger applies a delta only after validation has passed, which keeps
// validation pure and makes posting all-or-nothing: a rejected transaction
// never touches an account balance.

// EntrySide identifies which side of a transaction a balance change
// belongs to.
type EntrySide int

const (
	// SideDebit applies the amount through Account.Debit.
	SideDebit EntrySide = iota
	// SideCredit applies the amount through Account.Credit.
	SideCredit
)

// String returns the string representation of the side.
func (s EntrySide) String() string {
	switch s {
	case SideDebit:
		return "Debit"
	case SideCredit:
		return "Credit"
	default:
		return "Unknown"
	}
}

// BalanceChange represents a single change to an account's balance.
// The amount is always positive; the side determines the effect together
// with the account's type.
type BalanceChange struct {
	Account string
	Side    EntrySide
	Amount  decimal.Decimal
}

// String returns a human-readable representation of the balance change.
func (bc BalanceChange) String() string {
	return fmt.Sprintf("%s %s %s", bc.Side, bc.Amount.StringFixed(2), bc.Account)
}

// PostingDelta represents the balance mutations to be applied when a
// transaction posts. Changes are ordered debit first, then credits in
// sequence order. The final balances do not depend on this order, but a
// deterministic order keeps any observation layer reproducible.
type PostingDelta struct {
	Transaction *Transaction
	Changes     []BalanceChange
}

// String returns a human-readable representation of the posting delta.
func (pd *PostingDelta) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Posting on %s (%s):\n", pd.Transaction.Date.Format("2006-01-02"), pd.Transaction.Description)
	for _, change := range pd.Changes {
		fmt.Fprintf(&sb, "  %s\n", change)
	}

	return sb.String()
}
