package ledger

// Validation Architecture
//
// Posting a transaction happens in two phases:
//
// 1. Validation Phase (pure)
//   - The validator holds a read-only view of the ledger's accounts.
//   - It checks every business rule without side effects and produces a
//     PostingDelta describing the planned balance mutations.
//
// 2. Mutation Phase
//   - Only executes if validation passed.
//   - The ledger applies the delta, assigns the transaction ID, and
//     appends the transaction to the log.
//
// Checks performed, in order:
//   - transaction was not posted before
//   - credit sequence is non-empty
//   - every entry amount is positive
//   - debit amount equals the sum of credit amounts exactly
//   - every referenced account exists in the ledger
//
// Because all checks run before any mutation, a rejected transaction
// leaves the ledger unchanged: no balance moved, no log entry appended,
// no ID consumed.

// validator performs pure validation against a read-only view of the
// ledger's accounts.
type validator struct {
	accounts map[string]*Account
}

// newValidator creates a validator over the given account view.
func newValidator(accounts map[string]*Account) *validator {
	return &validator{accounts: accounts}
}

// validatePosting checks a transaction against the ledger state and
// returns the delta to apply, or the first rule violation found.
func (v *validator) validatePosting(txn *Transaction) (*PostingDelta, error) {
	if txn.Posted() {
		return nil, NewTransactionAlreadyPostedError(txn)
	}

	if len(txn.Credits) == 0 {
		return nil, NewEmptyCreditsError(txn.Date, txn.Description)
	}

	if !txn.Debit.Amount.IsPositive() {
		return nil, NewInvalidAmountError(txn.Debit.Account, txn.Debit.Amount)
	}
	for _, c := range txn.Credits {
		if !c.Amount.IsPositive() {
			return nil, NewInvalidAmountError(c.Account, c.Amount)
		}
	}

	if !txn.IsBalanced() {
		return nil, NewUnbalancedTransactionError(txn)
	}

	if _, ok := v.accounts[txn.Debit.Account]; !ok {
		return nil, NewUnknownAccountError(txn, txn.Debit.Account)
	}
	for _, c := range txn.Credits {
		if _, ok := v.accounts[c.Account]; !ok {
			return nil, NewUnknownAccountError(txn, c.Account)
		}
	}

	changes := make([]BalanceChange, 0, 1+len(txn.Credits))
	changes = append(changes, BalanceChange{
		Account: txn.Debit.Account,
		Side:    SideDebit,
		Amount:  txn.Debit.Amount,
	})
	for _, c := range txn.Credits {
		changes = append(changes, BalanceChange{
			Account: c.Account,
			Side:    SideCredit,
			Amount:  c.Amount,
		})
	}

	return &PostingDelta{Transaction: txn, Changes: changes}, nil
}
