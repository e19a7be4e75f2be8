package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/medicibank/medici/ledger"
)

// The JSON format is an array of objects:
//
//	{
//	  "id": 1,
//	  "date": "1397-01-01",
//	  "description": "Initial investment",
//	  "debits":  [{"account": "Cash", "account_type": "Asset", "amount": "10000.00"}],
//	  "credits": [{"account": "Owner's Capital", "account_type": "Equity", "amount": "10000.00"}]
//	}
//
// The debits array must hold exactly one entry; the format keeps it an
// array for symmetry with credits. Amounts decode from either JSON
// numbers or strings.

type jsonEntry struct {
	Account     string          `json:"account"`
	AccountType string          `json:"account_type,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

type jsonRecord struct {
	ID           int         `json:"id"`
	Date         string      `json:"date"`
	Description  string      `json:"description"`
	Branch       string      `json:"branch,omitempty"`
	Kind         string      `json:"type,omitempty"`
	Counterparty string      `json:"counterparty,omitempty"`
	Currency     string      `json:"currency,omitempty"`
	Debits       []jsonEntry `json:"debits"`
	Credits      []jsonEntry `json:"credits"`
}

// WriteJSON writes records as a JSON array.
func WriteJSON(w io.Writer, records []Record) error {
	out := make([]jsonRecord, len(records))
	for i, record := range records {
		out[i] = jsonRecord{
			ID:           record.ID,
			Date:         record.Date.Format(DateFormat),
			Description:  record.Description,
			Branch:       record.Branch,
			Kind:         record.Kind,
			Counterparty: record.Counterparty,
			Currency:     record.Currency,
			Debits:       []jsonEntry{encodeJSONEntry(record.Debit)},
		}
		for _, credit := range record.Credits {
			out[i].Credits = append(out[i].Credits, encodeJSONEntry(credit))
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func encodeJSONEntry(entry EntryRecord) jsonEntry {
	je := jsonEntry{Account: entry.Account, Amount: entry.Amount}
	if entry.Type != ledger.AccountTypeUnknown {
		je.AccountType = entry.Type.String()
	}
	return je
}

// ReadJSON reads records from a JSON array.
func ReadJSON(r io.Reader) ([]Record, error) {
	var raw []jsonRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid journal JSON: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for i, jr := range raw {
		record, err := decodeJSONRecord(jr)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func decodeJSONRecord(jr jsonRecord) (Record, error) {
	if len(jr.Debits) != 1 {
		return Record{}, fmt.Errorf("expected exactly one debit entry, got %d", len(jr.Debits))
	}
	if len(jr.Credits) == 0 {
		return Record{}, fmt.Errorf("no credit entries")
	}

	date, err := time.Parse(DateFormat, jr.Date)
	if err != nil {
		return Record{}, fmt.Errorf("invalid date %q", jr.Date)
	}

	debit, err := decodeJSONEntry(jr.Debits[0])
	if err != nil {
		return Record{}, err
	}

	record := Record{
		ID:           jr.ID,
		Date:         date,
		Description:  jr.Description,
		Branch:       jr.Branch,
		Kind:         jr.Kind,
		Counterparty: jr.Counterparty,
		Currency:     jr.Currency,
		Debit:        debit,
	}
	for _, je := range jr.Credits {
		credit, err := decodeJSONEntry(je)
		if err != nil {
			return Record{}, err
		}
		record.Credits = append(record.Credits, credit)
	}

	return record, nil
}

func decodeJSONEntry(je jsonEntry) (EntryRecord, error) {
	entry := EntryRecord{Account: je.Account, Amount: je.Amount}

	if je.AccountType != "" {
		accountType, ok := ledger.ParseAccountType(je.AccountType)
		if !ok {
			return EntryRecord{}, fmt.Errorf("account %q: unknown account type %q", je.Account, je.AccountType)
		}
		entry.Type = accountType
	}

	return entry, nil
}
