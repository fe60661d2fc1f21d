/* handlers.go
 * Contains the HTTP handlers: the refresh webhook that rebuilds a year in the background and the read-only
 * endpoints serving archived summaries
 * Authors: Zachary Bower
 */

package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"playoff-pool/api/api"
	"playoff-pool/api/shared"

	"go.mongodb.org/mongo-driver/mongo"
)

// Routes binds the handler methods to their paths
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/webhooks/refresh", s.RefreshWebhookHandler)
	mux.HandleFunc("GET /summaries/{year}", s.SummaryHandler)
	mux.HandleFunc("GET /index", s.IndexHandler)
	return mux
}

// RefreshWebhookHandler HTTP endpoint that kicks off rebuilding and archiving a year, e.g. after the pick form closes
// or a game finishes
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request. An empty body refreshes
// the current year
// Postconditions: Responds 202 and rebuilds the year in the background. Rebuilds of the same year queue behind each
// other
func (s *Server) RefreshWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var event RefreshEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil && !errors.Is(err, io.EOF) {
		s.logger.WithError(err).Warn("Failed to decode refresh webhook")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if event.Year == 0 {
		event.Year = s.api.CurrentYear
	}
	if event.Year < 1900 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	log := s.logger.WithField("year", event.Year)
	log.Info("Refresh requested")

	s.rebuilds.Add(1)
	go func(year int) {
		defer s.rebuilds.Done()
		lock := s.yearLock(year)
		lock.Lock()
		defer lock.Unlock()
		if _, err := s.api.BuildYear(context.Background(), year); err != nil {
			if errors.Is(err, shared.ErrPlayoffsNotStarted) {
				log.Info("Playoffs haven't started, nothing to refresh")
				return
			}
			log.WithError(err).Error("Refresh failed")
			return
		}
		log.Info("Refresh complete")
	}(event.Year)

	w.WriteHeader(http.StatusAccepted)
}

// SummaryHandler serves the archived summary of a year as JSON
func (s *Server) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		http.Error(w, "year must be a number", http.StatusBadRequest)
		return
	}

	summary, err := s.api.Summary(r.Context(), year)
	if err != nil {
		s.writeArchiveError(w, err)
		return
	}
	s.writeJSON(w, summary)
}

// IndexHandler serves the cross-year index as JSON
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if s.api.Store == nil {
		s.writeArchiveError(w, api.ErrNoArchive)
		return
	}
	summaries, err := s.api.Store.FetchAllYearSummaries(r.Context())
	if err != nil {
		s.writeArchiveError(w, err)
		return
	}
	s.writeJSON(w, api.BuildIndex(summaries))
}

func (s *Server) writeArchiveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		http.Error(w, "year not archived", http.StatusNotFound)
	case errors.Is(err, api.ErrNoArchive):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		s.logger.WithError(err).Error("Archive read failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Warn("Failed to write response")
	}
}
