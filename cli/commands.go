package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/medicibank/medici/telemetry"
)

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Demo     DemoCmd     `cmd:"" help:"Walk through the Medici Bank's 1397 founding ledger."`
	Generate GenerateCmd `cmd:"" help:"Generate a synthetic historical transaction dataset."`
	Check    CheckCmd    `cmd:"" help:"Replay a journal file and report rejected records."`
	Report   ReportCmd   `cmd:"" help:"Render financial reports from a journal file."`
	Convert  ConvertCmd  `cmd:"" help:"Convert a journal file between CSV and JSON."`
	Doctor   DoctorCmd   `cmd:"" help:"Doctor utilities for debugging journal files."`
	Web      WebCmd      `cmd:"" help:"Start the report web server."`
}

// runContext returns a context carrying a timing collector when
// telemetry is enabled, plus a report function to call once the command
// finishes. The report function is safe to call when telemetry is off.
func runContext(ctx *kong.Context, globals *Globals, name string) (context.Context, func()) {
	runCtx := context.Background()

	if !globals.Telemetry {
		return runCtx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	runCtx = telemetry.WithCollector(runCtx, collector)
	timer := collector.Start(name)

	return runCtx, func() {
		timer.End()
		_, _ = fmt.Fprintln(ctx.Stderr)
		collector.Report(ctx.Stderr)
	}
}
