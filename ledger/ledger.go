// Package ledger implements a double-entry bookkeeping engine: typed
// accounts, balanced transactions, and a posting algorithm that keeps the
// fundamental accounting identity intact.
//
// The ledger validates that:
//   - Every transaction balances: the debit amount equals the sum of the
//     credit amounts, compared with exact decimal arithmetic
//   - Every referenced account exists before posting
//   - Every amount is positive; zero and negative amounts are rejected
//
// Posting is all-or-nothing. A transaction is validated against a
// read-only view of the ledger first; only when every rule passes are the
// account balances mutated and the transaction appended to the log. A
// rejected transaction leaves the ledger exactly as it was.
//
// All monetary values use decimal arithmetic to avoid floating point
// precision issues; the balance invariant depends on exact equality of
// sums.
//
// Example usage:
//
//	l := ledger.New("Medici Family Bank")
//	cash, _ := l.CreateAccount("Cash", ledger.AccountTypeAsset)
//	capital, _ := l.CreateAccount("Owner's Capital", ledger.AccountTypeEquity)
//
//	_, err := l.Record(date, "Initial investment",
//		ledger.MustNewEntry(cash.Name, decimal.NewFromInt(10000)),
//		ledger.MustNewEntry(capital.Name, decimal.NewFromInt(10000)))
//	if err != nil {
//	    // Transaction was rejected; no balance changed.
//	}
package ledger

import (
	"fmt"
	"time"
)

// Ledger owns the set of accounts and the ordered log of posted
// transactions. It is the single entry point for posting; no other code
// path mutates account balances.
//
// The ledger is not safe for concurrent use. Embedders that share one
// across goroutines must serialize access; a single coarse lock around
// each call is sufficient since no operation blocks on I/O.
type Ledger struct {
	name         string
	accounts     map[string]*Account
	order        []string // account names in creation order
	transactions []*Transaction
	nextID       int
}

// New creates a new empty ledger.
func New(name string) *Ledger {
	return &Ledger{
		name:     name,
		accounts: make(map[string]*Account),
		nextID:   1,
	}
}

// Name returns the ledger's name.
func (l *Ledger) Name() string {
	return l.name
}

// CreateAccount creates a new account with a zero balance. Creation is
// strict: requesting a name that already exists fails with
// DuplicateAccountError. Callers that want get-or-create semantics check
// Account first.
func (l *Ledger) CreateAccount(name string, accountType AccountType) (*Account, error) {
	if name == "" {
		return nil, fmt.Errorf("account name must not be empty")
	}
	if accountType == AccountTypeUnknown {
		return nil, fmt.Errorf("account %q: account type must be one of Asset, Liability, Equity, Revenue, Expense", name)
	}

	if existing, ok := l.accounts[name]; ok {
		return nil, NewDuplicateAccountError(existing)
	}

	account := &Account{Name: name, Type: accountType}
	l.accounts[name] = account
	l.order = append(l.order, name)

	return account, nil
}

// Account returns an account by name.
func (l *Ledger) Account(name string) (*Account, bool) {
	acc, ok := l.accounts[name]
	return acc, ok
}

// Accounts returns all accounts in creation order.
func (l *Ledger) Accounts() []*Account {
	accounts := make([]*Account, len(l.order))
	for i, name := range l.order {
		accounts[i] = l.accounts[name]
	}
	return accounts
}

// Transactions returns the posted transactions in posting order. The
// returned slice is a copy; the underlying log is append-only and serves
// as the audit trail.
func (l *Ledger) Transactions() []*Transaction {
	return append([]*Transaction(nil), l.transactions...)
}

// Post validates a transaction and, on success, assigns it the next
// sequential ID, applies its entries to the referenced account balances
// (debit first, then credits in order), and appends it to the transaction
// log. On failure the ledger is left unchanged and no ID is consumed.
func (l *Ledger) Post(txn *Transaction) error {
	v := newValidator(l.accounts)

	delta, err := v.validatePosting(txn)
	if err != nil {
		return err
	}

	l.applyPostingDelta(delta)

	return nil
}

// Record constructs a transaction from the given entries and posts it.
// This is the single call sites normally use; it enforces every invariant
// the posting path has.
func (l *Ledger) Record(date time.Time, description string, debit Entry, credits ...Entry) (*Transaction, error) {
	txn, err := NewTransaction(date, description, debit, credits)
	if err != nil {
		return nil, err
	}

	if err := l.Post(txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// applyPostingDelta mutates ledger state by applying a validated posting
// delta. Validation has already checked every account exists and every
// amount is positive.
func (l *Ledger) applyPostingDelta(delta *PostingDelta) {
	for _, change := range delta.Changes {
		account := l.accounts[change.Account]

		var err error
		switch change.Side {
		case SideDebit:
			err = account.Debit(change.Amount)
		case SideCredit:
			err = account.Credit(change.Amount)
		}
		if err != nil {
			// Validation guarantees positive amounts; reaching this is a
			// bug in the validator.
			panic(fmt.Sprintf("balance change failed after validation: %v", err))
		}
	}

	delta.Transaction.ID = l.nextID
	l.nextID++
	l.transactions = append(l.transactions, delta.Transaction)
}
