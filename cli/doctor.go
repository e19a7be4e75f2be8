package cli

import (
	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
)

// DoctorCmd provides doctor utilities for debugging journal files.
type DoctorCmd struct {
	Dump DumpCmd `cmd:"" help:"Dump parsed journal records as Go values."`
}

// DumpCmd parses a journal file and pretty-prints the decoded records.
type DumpCmd struct {
	File FileOrStdin `help:"Journal filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the dump command.
func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	records, err := cmd.File.ReadRecords()
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	for _, record := range records {
		repr.New(ctx.Stdout, repr.Indent("  ")).Println(record)
	}

	return nil
}
