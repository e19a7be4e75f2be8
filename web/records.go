package web

import (
	"net/http"

	"github.com/medicibank/medici/journal"
)

// handleGetRecords handles GET requests to /api/records.
// Returns the posted transaction log in the journal JSON interchange
// format, with account types resolved from the ledger, so the response
// body is itself a loadable journal file.
func (s *Server) handleGetRecords(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	records := journal.FromLedger(s.ledger)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := journal.WriteJSON(w, records); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
