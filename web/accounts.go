package web

import (
	"net/http"

	"github.com/shopspring/decimal"
)

// AccountInfo represents one ledger account with its current balance.
type AccountInfo struct {
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountsResponse is the JSON response structure for the accounts endpoint.
type AccountsResponse struct {
	Accounts []AccountInfo `json:"accounts"`
	Rejected int           `json:"rejected,omitempty"`
}

// handleGetAccounts handles GET requests to /api/accounts.
// Returns all accounts in creation order with their current balances.
func (s *Server) handleGetAccounts(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ledgerAccounts := s.ledger.Accounts()
	accounts := make([]AccountInfo, 0, len(ledgerAccounts))
	for _, account := range ledgerAccounts {
		accounts = append(accounts, AccountInfo{
			Name:    account.Name,
			Type:    account.Type.String(),
			Balance: account.Balance(),
		})
	}

	writeJSONResponse(w, &AccountsResponse{
		Accounts: accounts,
		Rejected: s.rejected,
	})
}
