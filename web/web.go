// Package web provides an HTTP server exposing financial reports over a
// journal file.
//
// The server loads the journal into a ledger and serves read-only report
// endpoints. A file watcher reloads the ledger when the journal changes
// and notifies connected clients over SSE.
//
// SECURITY WARNING: This server has no authentication and should only be
// bound to localhost (127.0.0.1). Do not expose it to untrusted networks.
package web

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/medicibank/medici/journal"
	"github.com/medicibank/medici/ledger"
	"github.com/medicibank/medici/telemetry"
)

type Server struct {
	Port         int
	Host         string
	Version      string
	CommitSHA    string
	WatchEnabled bool

	mu       sync.RWMutex
	ledger   *ledger.Ledger
	rejected int // records rejected during the last reload

	// journalFile is the absolute path of the served journal.
	journalFile string

	// SSE clients for broadcasting reload events
	sseClients map[chan string]struct{}
	sseMu      sync.Mutex
}

func New(port int, journalFile string) *Server {
	return NewWithVersion(port, journalFile, "", "")
}

func NewWithVersion(port int, journalFile, version, commitSHA string) *Server {
	return &Server{
		Port:        port,
		Host:        "127.0.0.1",
		Version:     version,
		CommitSHA:   commitSHA,
		journalFile: journalFile,
	}
}

func (s *Server) Start(ctx context.Context) error {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("web.start %s:%d", s.Host, s.Port))
	defer timer.End()

	if s.journalFile == "" {
		return fmt.Errorf("journal file is required")
	}

	s.sseClients = make(map[chan string]struct{})

	loadTimer := timer.Child(fmt.Sprintf("web.load_journal %s", filepath.Base(s.journalFile)))
	if err := s.reloadLedger(ctx); err != nil {
		loadTimer.End()
		return fmt.Errorf("failed to load journal: %w", err)
	}
	loadTimer.End()

	if s.WatchEnabled {
		if err := s.startWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	mux := s.setupRouter()

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) setupRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/accounts", s.handleGetAccounts)
	mux.HandleFunc("GET /api/records", s.handleGetRecords)
	mux.HandleFunc("GET /api/reports/trial-balance", s.handleGetTrialBalance)
	mux.HandleFunc("GET /api/reports/balance-sheet", s.handleGetBalanceSheet)
	mux.HandleFunc("GET /api/reports/income-statement", s.handleGetIncomeStatement)
	mux.HandleFunc("GET /api/events", s.handleSSE)

	return mux
}

// writeJSONResponse writes a JSON response to the http.ResponseWriter.
// If encoding fails, it writes an error response.
func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// reloadLedger loads or reloads the journal from disk and replays it
// into a fresh ledger. Rejected records are counted, not fatal: the
// ledger serves whatever posted cleanly.
// Caller must NOT hold the mutex - this method acquires it internally.
func (s *Server) reloadLedger(ctx context.Context) error {
	records, err := journal.ReadFile(s.journalFile)
	if err != nil {
		return err
	}

	l := ledger.New(filepath.Base(s.journalFile))
	rejected := 0
	if _, err := journal.Replay(ctx, l, records); err != nil {
		var replayErrs *journal.ReplayErrors
		if !stdErrors.As(err, &replayErrs) {
			return err
		}
		rejected = len(replayErrs.Errors)
	}

	s.mu.Lock()
	s.ledger = l
	s.rejected = rejected
	s.mu.Unlock()

	return nil
}

// startWatcher starts a file watcher on the journal file. It reloads the
// ledger and broadcasts SSE events when the file changes.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory as well: atomic saves replace the file, which
	// drops a watch held on the file itself.
	if err := watcher.Add(filepath.Dir(s.journalFile)); err != nil {
		log.Printf("Warning: failed to watch %s: %v", filepath.Dir(s.journalFile), err)
	}
	if err := watcher.Add(s.journalFile); err != nil {
		log.Printf("Warning: failed to watch %s: %v", s.journalFile, err)
	}

	go s.runWatcher(ctx, watcher)

	return nil
}

// runWatcher processes file system events with debouncing.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	// Debounce timer - editors often write files in multiple steps
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if event.Name != s.journalFile && filepath.Base(event.Name) != filepath.Base(s.journalFile) {
				continue
			}

			// React to write/create/remove/rename events
			// (Remove/Rename are common in atomic saves)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(debounceDelay, func() {
				s.handleFileChange(ctx, watcher)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// handleFileChange reloads the ledger and notifies SSE clients.
func (s *Server) handleFileChange(ctx context.Context, watcher *fsnotify.Watcher) {
	if err := s.reloadLedger(ctx); err != nil {
		log.Printf("Failed to reload journal: %v", err)
		return
	}

	// Re-add the file watch in case an atomic save replaced the inode.
	if err := watcher.Add(s.journalFile); err != nil {
		log.Printf("Warning: failed to watch %s: %v", s.journalFile, err)
	}

	s.broadcast("reload")
}

// handleSSE handles Server-Sent Events connections for real-time updates.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	clientChan := make(chan string, 10)

	s.sseMu.Lock()
	s.sseClients[clientChan] = struct{}{}
	s.sseMu.Unlock()

	defer func() {
		s.sseMu.Lock()
		delete(s.sseClients, clientChan)
		s.sseMu.Unlock()
		close(clientChan)
	}()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	_, _ = fmt.Fprintf(w, "data: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-clientChan:
			_, _ = fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}

// broadcast sends an event to all connected SSE clients.
func (s *Server) broadcast(event string) {
	s.sseMu.Lock()
	defer s.sseMu.Unlock()

	for clientChan := range s.sseClients {
		select {
		case clientChan <- event:
		default:
			// Client buffer full, skip
		}
	}
}
