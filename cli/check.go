package cli

import (
	stdErrors "errors"
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/medicibank/medici/journal"
	"github.com/medicibank/medici/ledger"
)

type CheckCmd struct {
	File FileOrStdin `help:"Journal filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, report := runContext(ctx, globals,
		fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))
	defer report()

	records, err := cmd.File.ReadRecords()
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	l := ledger.New(cmd.File.Filename)
	posted, err := journal.Replay(runCtx, l, records)
	if err != nil {
		var replayErrs *journal.ReplayErrors
		if !stdErrors.As(err, &replayErrs) {
			return err
		}

		for _, recordErr := range replayErrs.Errors {
			printError(ctx.Stderr, recordErr.Error())

			var unbalanced *ledger.UnbalancedTransactionError
			if stdErrors.As(recordErr, &unbalanced) {
				printInfof(ctx.Stderr, "  residual: %s", unbalanced.Residual().StringFixed(2))
			}
		}

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d of %d record(s) rejected", len(replayErrs.Errors), len(records)))
		return NewCommandError(1)
	}

	tb := l.TrialBalance()
	printInfof(ctx.Stdout, "Posted %d transactions across %d accounts", posted, len(l.Accounts()))
	printInfof(ctx.Stdout, "Trial balance totals: %s debit / %s credit",
		tb.TotalDebits.StringFixed(2), tb.TotalCredits.StringFixed(2))

	if !tb.Balanced() {
		printError(ctx.Stderr, "trial balance does not balance")
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, "Check passed")

	return nil
}
