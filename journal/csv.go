package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// The canonical CSV format:
//
//	id,date,description,debit_account,debit_amount,credit_account,credit_amount,credit_account_2,credit_amount_2
//
// The second credit pair is empty for two-entry transactions. Datasets
// from the historical generator append provenance columns
// (branch,type,counterparty,currency); the reader locates columns by
// header name and ignores any it does not know, so both shapes load.

var csvColumns = []string{
	"id", "date", "description",
	"debit_account", "debit_amount",
	"credit_account", "credit_amount",
	"credit_account_2", "credit_amount_2",
}

var csvProvenanceColumns = []string{"branch", "type", "counterparty", "currency"}

// csvRequiredColumns must be present in any readable file.
var csvRequiredColumns = csvColumns[:7]

// WriteOption configures the CSV writer.
type WriteOption func(*csvWriterConfig)

type csvWriterConfig struct {
	provenance bool
}

// WithProvenance adds the branch,type,counterparty,currency columns to
// the output, for datasets that carry generation provenance.
func WithProvenance() WriteOption {
	return func(c *csvWriterConfig) {
		c.provenance = true
	}
}

// WriteCSV writes records in the canonical CSV format. Records with more
// than two credit entries do not fit the column layout and are rejected;
// use JSON for those.
func WriteCSV(w io.Writer, records []Record, opts ...WriteOption) error {
	var config csvWriterConfig
	for _, opt := range opts {
		opt(&config)
	}

	header := csvColumns
	if config.provenance {
		header = append(append([]string(nil), csvColumns...), csvProvenanceColumns...)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, record := range records {
		if len(record.Credits) == 0 {
			return fmt.Errorf("record %d: no credit entries", record.ID)
		}
		if len(record.Credits) > 2 {
			return fmt.Errorf("record %d: %d credit entries do not fit the CSV format, use JSON", record.ID, len(record.Credits))
		}

		row := []string{
			strconv.Itoa(record.ID),
			record.Date.Format(DateFormat),
			record.Description,
			record.Debit.Account,
			record.Debit.Amount.StringFixed(2),
			record.Credits[0].Account,
			record.Credits[0].Amount.StringFixed(2),
			"", "",
		}
		if len(record.Credits) == 2 {
			row[7] = record.Credits[1].Account
			row[8] = record.Credits[1].Amount.StringFixed(2)
		}
		if config.provenance {
			row = append(row, record.Branch, record.Kind, record.Counterparty, record.Currency)
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV reads records from the canonical CSV format. Columns are
// located by header name; unknown columns are ignored.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing CSV header")
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range csvRequiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required CSV column %q", name)
		}
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		record, err := decodeCSVRow(row, field)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func decodeCSVRow(row []string, field func([]string, string) string) (Record, error) {
	var record Record
	var err error

	if raw := field(row, "id"); raw != "" {
		record.ID, err = strconv.Atoi(raw)
		if err != nil {
			return Record{}, fmt.Errorf("invalid id %q: %w", raw, err)
		}
	}

	record.Date, err = time.Parse(DateFormat, field(row, "date"))
	if err != nil {
		return Record{}, fmt.Errorf("invalid date %q", field(row, "date"))
	}

	record.Description = field(row, "description")
	record.Branch = field(row, "branch")
	record.Kind = field(row, "type")
	record.Counterparty = field(row, "counterparty")
	record.Currency = field(row, "currency")

	record.Debit.Account = field(row, "debit_account")
	record.Debit.Amount, err = decimal.NewFromString(field(row, "debit_amount"))
	if err != nil {
		return Record{}, fmt.Errorf("invalid debit amount %q", field(row, "debit_amount"))
	}

	credit := EntryRecord{Account: field(row, "credit_account")}
	credit.Amount, err = decimal.NewFromString(field(row, "credit_amount"))
	if err != nil {
		return Record{}, fmt.Errorf("invalid credit amount %q", field(row, "credit_amount"))
	}
	record.Credits = append(record.Credits, credit)

	if raw := field(row, "credit_amount_2"); raw != "" {
		second := EntryRecord{Account: field(row, "credit_account_2")}
		if second.Account == "" {
			return Record{}, fmt.Errorf("credit_amount_2 %q has no credit_account_2", raw)
		}
		second.Amount, err = decimal.NewFromString(raw)
		if err != nil {
			return Record{}, fmt.Errorf("invalid credit amount %q", raw)
		}
		record.Credits = append(record.Credits, second)
	}

	return record, nil
}
