package cli

import (
	stdErrors "errors"
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/medicibank/medici/journal"
	"github.com/medicibank/medici/ledger"
)

type ReportCmd struct {
	File FileOrStdin `help:"Journal filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Only string      `help:"Render a single report: trial-balance, balance-sheet, or income-statement." enum:",trial-balance,balance-sheet,income-statement" default:""`
}

func (cmd *ReportCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, report := runContext(ctx, globals,
		fmt.Sprintf("report %s", filepath.Base(cmd.File.Filename)))
	defer report()

	records, err := cmd.File.ReadRecords()
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	l := ledger.New(cmd.File.Filename)
	if _, err := journal.Replay(runCtx, l, records); err != nil {
		var replayErrs *journal.ReplayErrors
		if !stdErrors.As(err, &replayErrs) {
			return err
		}
		// Reports stay meaningful over the records that did post.
		printError(ctx.Stderr, fmt.Sprintf("%d record(s) rejected, reporting on the rest", len(replayErrs.Errors)))
	}

	renderer := newReportRenderer(ctx.Stdout)

	if cmd.Only == "" || cmd.Only == "trial-balance" {
		_, _ = fmt.Fprintln(ctx.Stdout, "=== TRIAL BALANCE ===")
		renderer.renderTrialBalance(l.TrialBalance())
	}
	if cmd.Only == "" || cmd.Only == "balance-sheet" {
		_, _ = fmt.Fprintln(ctx.Stdout, "\n=== BALANCE SHEET ===")
		renderer.renderBalanceSheet(l.BalanceSheet())
	}
	if cmd.Only == "" || cmd.Only == "income-statement" {
		_, _ = fmt.Fprintln(ctx.Stdout, "\n=== INCOME STATEMENT ===")
		renderer.renderIncomeStatement(l.IncomeStatement())
	}

	return nil
}
