package journal

import (
	"context"
	"fmt"

	"github.com/medicibank/medici/ledger"
	"github.com/medicibank/medici/telemetry"
)

// RecordError wraps a failure for a single record with enough context to
// locate it in the source dataset.
type RecordError struct {
	ID          int
	Description string
	Err         error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record #%d (%s): %v", e.ID, e.Description, e.Err)
}

// Unwrap returns the underlying error so errors.As reaches the ledger's
// typed errors.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// ReplayErrors wraps the per-record failures of a replay. Records that
// validated cleanly have still been posted.
type ReplayErrors struct {
	Errors []error
}

func (e *ReplayErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d records rejected", len(e.Errors))
}

// Unwrap returns the underlying errors for error unwrapping
func (e *ReplayErrors) Unwrap() []error {
	return e.Errors
}

// ReplayOption configures a replay.
type ReplayOption func(*replayConfig)

type replayConfig struct {
	accountTypes map[string]ledger.AccountType
}

// WithAccountTypes supplies explicit types for accounts the replay may
// need to create, overriding both record-level types and name inference.
func WithAccountTypes(types map[string]ledger.AccountType) ReplayOption {
	return func(c *replayConfig) {
		c.accountTypes = types
	}
}

// Replay posts a stream of records into a ledger. Accounts not yet
// present are created first, typed from (in order of preference) the
// replay options, the record's own entry types, or name inference.
//
// Each record posts independently: a rejected record leaves the ledger
// untouched and is collected into the returned ReplayErrors while the
// rest of the stream continues. The returned count is the number of
// records actually posted.
func Replay(ctx context.Context, l *ledger.Ledger, records []Record, opts ...ReplayOption) (int, error) {
	var config replayConfig
	for _, opt := range opts {
		opt(&config)
	}

	timer := telemetry.StartTimer(ctx, fmt.Sprintf("journal.replay (%d records)", len(records)))
	defer timer.End()

	var errs []error
	posted := 0

	for i := range records {
		select {
		case <-ctx.Done():
			return posted, ctx.Err()
		default:
		}

		if err := replayRecord(l, &records[i], &config); err != nil {
			errs = append(errs, &RecordError{
				ID:          records[i].ID,
				Description: records[i].Description,
				Err:         err,
			})
			continue
		}
		posted++
	}

	if len(errs) > 0 {
		return posted, &ReplayErrors{Errors: errs}
	}

	return posted, nil
}

func replayRecord(l *ledger.Ledger, record *Record, config *replayConfig) error {
	// Create missing accounts before building entries, so posting itself
	// can only fail on the record's own shape.
	if err := ensureAccount(l, record.Debit, config); err != nil {
		return err
	}
	for _, credit := range record.Credits {
		if err := ensureAccount(l, credit, config); err != nil {
			return err
		}
	}

	debit, err := ledger.NewEntry(record.Debit.Account, record.Debit.Amount)
	if err != nil {
		return err
	}

	credits := make([]ledger.Entry, 0, len(record.Credits))
	for _, c := range record.Credits {
		credit, err := ledger.NewEntry(c.Account, c.Amount)
		if err != nil {
			return err
		}
		credits = append(credits, credit)
	}

	txn, err := l.Record(record.Date, record.Description, debit, credits...)
	if err != nil {
		return err
	}
	record.ID = txn.ID

	return nil
}

func ensureAccount(l *ledger.Ledger, entry EntryRecord, config *replayConfig) error {
	if _, ok := l.Account(entry.Account); ok {
		return nil
	}

	accountType, ok := config.accountTypes[entry.Account]
	if !ok {
		accountType = entry.Type
	}
	if accountType == ledger.AccountTypeUnknown {
		accountType = InferAccountType(entry.Account)
	}

	_, err := l.CreateAccount(entry.Account, accountType)
	return err
}
