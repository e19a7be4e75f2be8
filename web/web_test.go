package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

const testJournal = `id,date,description,debit_account,debit_amount,credit_account,credit_amount,credit_account_2,credit_amount_2
1,1397-01-01,Initial investment,Cash,10000.00,Owner's Capital,10000.00,,
2,1397-02-15,Loan to Wool Merchant,Loans Receivable,2000.00,Cash,2000.00,,
3,1397-08-10,Loan repayment with interest,Cash,1100.00,Loans Receivable,1000.00,Interest Income,100.00
`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "journal.csv")
	assert.NoError(t, os.WriteFile(path, []byte(testJournal), 0600))

	server := New(8080, path)
	assert.NoError(t, server.reloadLedger(context.Background()))
	return server
}

func TestAPIAccounts(t *testing.T) {
	server := newTestServer(t)
	mux := server.setupRouter()

	req := httptest.NewRequest("GET", "/api/accounts", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response AccountsResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 4, len(response.Accounts))
	assert.Equal(t, 0, response.Rejected)

	// Creation order follows first appearance in the journal.
	assert.Equal(t, "Cash", response.Accounts[0].Name)
	assert.Equal(t, "Asset", response.Accounts[0].Type)
	assert.True(t, response.Accounts[0].Balance.Equal(decimal.RequireFromString("9100.00")))

	assert.Equal(t, "Interest Income", response.Accounts[3].Name)
	assert.Equal(t, "Revenue", response.Accounts[3].Type)
}

func TestAPITrialBalance(t *testing.T) {
	server := newTestServer(t)
	mux := server.setupRouter()

	req := httptest.NewRequest("GET", "/api/reports/trial-balance", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response TrialBalanceResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Balanced)
	assert.True(t, response.TotalDebits.Equal(response.TotalCredits))
	assert.True(t, response.TotalDebits.Equal(decimal.RequireFromString("10100.00")))
}

func TestAPIBalanceSheet(t *testing.T) {
	server := newTestServer(t)
	mux := server.setupRouter()

	req := httptest.NewRequest("GET", "/api/reports/balance-sheet", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response BalanceSheetResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Balanced)
	assert.True(t, response.TotalAssets.Equal(decimal.RequireFromString("10100.00")))

	// Undistributed interest income shows up as equity.
	var netIncome *ReportLineResponse
	for i := range response.Equity {
		if response.Equity[i].Account == "Net Income" {
			netIncome = &response.Equity[i]
		}
	}
	assert.NotZero(t, netIncome)
	assert.True(t, netIncome.Balance.Equal(decimal.RequireFromString("100.00")))
}

func TestAPIIncomeStatement(t *testing.T) {
	server := newTestServer(t)
	mux := server.setupRouter()

	req := httptest.NewRequest("GET", "/api/reports/income-statement", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response IncomeStatementResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.NetIncome.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, 1, len(response.Revenue))
	assert.Equal(t, "Interest Income", response.Revenue[0].Account)
	assert.Equal(t, 0, len(response.Expenses))
}

func TestAPIRecords(t *testing.T) {
	server := newTestServer(t)
	mux := server.setupRouter()

	req := httptest.NewRequest("GET", "/api/records", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var records []struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
		Debits      []struct {
			Account     string `json:"account"`
			AccountType string `json:"account_type"`
		} `json:"debits"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&records))
	assert.Equal(t, 3, len(records))
	assert.Equal(t, "Initial investment", records[0].Description)
	assert.Equal(t, "Asset", records[0].Debits[0].AccountType)
}

func TestReloadCountsRejectedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.csv")
	badJournal := testJournal +
		"4,1397-09-01,Miscopied folio,Cash,500.00,Interest Income,400.00,,\n"
	assert.NoError(t, os.WriteFile(path, []byte(badJournal), 0600))

	server := New(8080, path)
	assert.NoError(t, server.reloadLedger(context.Background()))

	mux := server.setupRouter()
	req := httptest.NewRequest("GET", "/api/accounts", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	var response AccountsResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 1, response.Rejected)

	// The clean records are still served.
	var tbResponse TrialBalanceResponse
	req = httptest.NewRequest("GET", "/api/reports/trial-balance", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&tbResponse))
	assert.True(t, tbResponse.Balanced)
}

func TestReloadLedgerReplacesState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.csv")
	assert.NoError(t, os.WriteFile(path, []byte(testJournal), 0600))

	server := New(8080, path)
	assert.NoError(t, server.reloadLedger(context.Background()))

	server.mu.RLock()
	before := len(server.ledger.Transactions())
	server.mu.RUnlock()
	assert.Equal(t, 3, before)

	extended := testJournal +
		"4,1397-12-01,Quarterly wages,Wages Expense,800.00,Cash,800.00,,\n"
	assert.NoError(t, os.WriteFile(path, []byte(extended), 0600))
	assert.NoError(t, server.reloadLedger(context.Background()))

	server.mu.RLock()
	after := len(server.ledger.Transactions())
	server.mu.RUnlock()
	assert.Equal(t, 4, after)
}
