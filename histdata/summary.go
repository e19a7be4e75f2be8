package histdata

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/medicibank/medici/journal"
)

// Summary describes a generated dataset.
type Summary struct {
	Total    int
	ByKind   map[string]int
	ByBranch map[string]int
	First    time.Time
	Last     time.Time

	// Volume is the sum of all debit amounts.
	Volume decimal.Decimal
}

// Summarize computes dataset statistics from the records' provenance
// fields.
func Summarize(records []journal.Record) Summary {
	summary := Summary{
		Total:    len(records),
		ByKind:   make(map[string]int),
		ByBranch: make(map[string]int),
	}

	for i, record := range records {
		kind := record.Kind
		if kind == "" {
			kind = "unknown"
		}
		summary.ByKind[kind]++

		branch := record.Branch
		if branch == "" {
			branch = "unknown"
		}
		summary.ByBranch[branch]++

		if i == 0 || record.Date.Before(summary.First) {
			summary.First = record.Date
		}
		if i == 0 || record.Date.After(summary.Last) {
			summary.Last = record.Date
		}

		summary.Volume = summary.Volume.Add(record.Debit.Amount)
	}

	return summary
}
