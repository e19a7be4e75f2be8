package web

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/medicibank/medici/ledger"
)

// TrialBalanceRowResponse is one account line in the trial balance.
type TrialBalanceRowResponse struct {
	Account string          `json:"account"`
	Type    string          `json:"type"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse is the JSON response for the trial balance report.
type TrialBalanceResponse struct {
	Rows         []TrialBalanceRowResponse `json:"rows"`
	TotalDebits  decimal.Decimal           `json:"totalDebits"`
	TotalCredits decimal.Decimal           `json:"totalCredits"`
	Balanced     bool                      `json:"balanced"`
}

// handleGetTrialBalance handles GET requests to /api/reports/trial-balance.
func (s *Server) handleGetTrialBalance(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	tb := s.ledger.TrialBalance()
	s.mu.RUnlock()

	rows := make([]TrialBalanceRowResponse, len(tb.Rows))
	for i, row := range tb.Rows {
		rows[i] = TrialBalanceRowResponse{
			Account: row.Account,
			Type:    row.Type.String(),
			Debit:   row.Debit,
			Credit:  row.Credit,
		}
	}

	writeJSONResponse(w, &TrialBalanceResponse{
		Rows:         rows,
		TotalDebits:  tb.TotalDebits,
		TotalCredits: tb.TotalCredits,
		Balanced:     tb.Balanced(),
	})
}

// ReportLineResponse is one account's contribution to a report section.
type ReportLineResponse struct {
	Account string          `json:"account"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceSheetResponse is the JSON response for the balance sheet report.
type BalanceSheetResponse struct {
	Assets      []ReportLineResponse `json:"assets"`
	Liabilities []ReportLineResponse `json:"liabilities"`
	Equity      []ReportLineResponse `json:"equity"`

	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	Balanced         bool            `json:"balanced"`
}

// handleGetBalanceSheet handles GET requests to /api/reports/balance-sheet.
func (s *Server) handleGetBalanceSheet(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	bs := s.ledger.BalanceSheet()
	s.mu.RUnlock()

	writeJSONResponse(w, &BalanceSheetResponse{
		Assets:           convertReportLines(bs.Assets),
		Liabilities:      convertReportLines(bs.Liabilities),
		Equity:           convertReportLines(bs.Equity),
		TotalAssets:      bs.TotalAssets,
		TotalLiabilities: bs.TotalLiabilities,
		TotalEquity:      bs.TotalEquity,
		Balanced:         bs.Balanced(),
	})
}

// IncomeStatementResponse is the JSON response for the income statement.
type IncomeStatementResponse struct {
	Revenue  []ReportLineResponse `json:"revenue"`
	Expenses []ReportLineResponse `json:"expenses"`

	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// handleGetIncomeStatement handles GET requests to /api/reports/income-statement.
func (s *Server) handleGetIncomeStatement(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	is := s.ledger.IncomeStatement()
	s.mu.RUnlock()

	writeJSONResponse(w, &IncomeStatementResponse{
		Revenue:       convertReportLines(is.Revenue),
		Expenses:      convertReportLines(is.Expenses),
		TotalRevenue:  is.TotalRevenue,
		TotalExpenses: is.TotalExpenses,
		NetIncome:     is.NetIncome,
	})
}

func convertReportLines(lines []ledger.ReportLine) []ReportLineResponse {
	out := make([]ReportLineResponse, len(lines))
	for i, line := range lines {
		out[i] = ReportLineResponse{Account: line.Account, Balance: line.Balance}
	}
	return out
}
