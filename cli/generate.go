package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/alecthomas/kong"

	"github.com/medicibank/medici/histdata"
	"github.com/medicibank/medici/journal"
)

type GenerateCmd struct {
	Count int    `help:"Number of transactions to generate." default:"20000"`
	Seed  int64  `help:"Random seed; the same seed reproduces the same dataset." default:"42"`
	CSV   string `help:"CSV output path." default:"medici_transactions.csv"`
	JSON  string `help:"JSON output path." default:"medici_transactions.json"`
	Force bool   `help:"Overwrite existing output files without confirmation." short:"f"`
}

func (cmd *GenerateCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := runContext(ctx, globals, fmt.Sprintf("generate %d", cmd.Count))
	defer report()

	for _, path := range []string{cmd.CSV, cmd.JSON} {
		if _, err := os.Stat(path); err == nil && !cmd.Force {
			confirmed, err := promptYesNo(ctx, fmt.Sprintf("File %q already exists. Overwrite it?", path))
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if !confirmed {
				return fmt.Errorf("refusing to overwrite %s", path)
			}
		}
	}

	printInfof(ctx.Stdout, "Generating %d historical transactions (seed %d)", cmd.Count, cmd.Seed)

	records, err := histdata.New(cmd.Seed).Generate(runCtx, cmd.Count)
	if err != nil {
		return err
	}

	if err := writeRecordsFile(cmd.CSV, records, journal.FormatCSV); err != nil {
		return err
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("Saved %d transactions to %s", len(records), pathStyle.Render(cmd.CSV)))

	if err := writeRecordsFile(cmd.JSON, records, journal.FormatJSON); err != nil {
		return err
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("Saved %d transactions to %s", len(records), pathStyle.Render(cmd.JSON)))

	printSummary(ctx.Stdout, histdata.Summarize(records))

	return nil
}

func writeRecordsFile(path string, records []journal.Record, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if format == journal.FormatJSON {
		err = journal.WriteJSON(f, records)
	} else {
		err = journal.WriteCSV(f, records, journal.WithProvenance())
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}

func printSummary(w io.Writer, summary histdata.Summary) {
	_, _ = fmt.Fprintf(w, "\nTotal Transactions: %d\n", summary.Total)

	_, _ = fmt.Fprintln(w, "\nTransactions by Type:")
	for _, kv := range sortedCounts(summary.ByKind) {
		percentage := float64(kv.count) / float64(summary.Total) * 100
		_, _ = fmt.Fprintf(w, "  %-25s: %5d (%5.2f%%)\n", kv.name, kv.count, percentage)
	}

	_, _ = fmt.Fprintln(w, "\nTransactions by Branch:")
	for _, kv := range sortedCounts(summary.ByBranch) {
		percentage := float64(kv.count) / float64(summary.Total) * 100
		_, _ = fmt.Fprintf(w, "  %-15s: %5d (%5.2f%%)\n", kv.name, kv.count, percentage)
	}

	_, _ = fmt.Fprintf(w, "\nDate Range: %s to %s\n",
		summary.First.Format(journal.DateFormat),
		summary.Last.Format(journal.DateFormat))
	_, _ = fmt.Fprintf(w, "Total Transaction Volume: %s florins\n", summary.Volume.StringFixed(2))
}

type countEntry struct {
	name  string
	count int
}

// sortedCounts orders by descending count, then name for stable output.
func sortedCounts(counts map[string]int) []countEntry {
	entries := make([]countEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, countEntry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	return entries
}
