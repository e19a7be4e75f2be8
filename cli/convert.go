package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/medicibank/medici/journal"
	"github.com/medicibank/medici/ledger"
)

type ConvertCmd struct {
	File   FileOrStdin `help:"Journal filename (use '-' for stdin, or omit for stdin)." arg:""`
	Output string      `help:"Output filename; the extension picks the format." arg:""`
	Force  bool        `help:"Overwrite the output file without confirmation." short:"f"`
}

func (cmd *ConvertCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, report := runContext(ctx, globals,
		fmt.Sprintf("convert %s", filepath.Base(cmd.File.Filename)))
	defer report()

	format := journal.DetectFormat(cmd.Output, nil)

	if _, err := os.Stat(cmd.Output); err == nil && !cmd.Force {
		confirmed, err := promptYesNo(ctx, fmt.Sprintf("File %q already exists. Overwrite it?", cmd.Output))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			return fmt.Errorf("refusing to overwrite %s", cmd.Output)
		}
	}

	records, err := cmd.File.ReadRecords()
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	// Round-trip through a ledger so the output carries validated,
	// renumbered records with resolved account types.
	l := ledger.New(cmd.File.Filename)
	if _, err := journal.Replay(runCtx, l, records); err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	converted := journal.FromLedger(l)
	if err := writeRecordsFile(cmd.Output, converted, format); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Converted %d records to %s", len(converted), pathStyle.Render(cmd.Output)))

	return nil
}
