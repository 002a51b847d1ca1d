package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
)

// analyzeRequest is the body of POST /analyze.
type analyzeRequest struct {
	Text string `json:"text"`

	// Title optionally labels the analysis in history.
	Title string `json:"title,omitempty"`

	// NoSave skips history persistence for this request.
	NoSave bool `json:"no_save,omitempty"`
}

// analyzeResponse is the body of a successful POST /analyze.
type analyzeResponse struct {
	Composite           float64                    `json:"composite"`
	Language            float64                    `json:"language"`
	Coherence           float64                    `json:"coherence"`
	Reasoning           float64                    `json:"reasoning"`
	Diagnostics         domain.Features            `json:"diagnostics"`
	TopFlaggedSentences []string                   `json:"top_flagged_sentences"`
	SentimentAnalysis   []domain.SentenceSentiment `json:"sentiment_analysis"`
}

// historyEntry is one element of GET /history.
type historyEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Source    string    `json:"source,omitempty"`
	Composite float64   `json:"composite"`
	Band      string    `json:"band"`
	CreatedAt time.Time `json:"created_at"`
}

// historyDetail is the body of GET /history/{id}.
type historyDetail struct {
	historyEntry
	Scores      domain.Scorecard           `json:"scores"`
	Diagnostics domain.Features            `json:"diagnostics"`
	Flagged     []string                   `json:"top_flagged_sentences"`
	Sentiments  []domain.SentenceSentiment `json:"sentiment_analysis"`
	Text        string                     `json:"text"`
}

// errorResponse is the JSON body for all error statuses.
type errorResponse struct {
	Detail string `json:"detail"`
}

// handleAnalyze scores the submitted text.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large.")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	analysis, err := s.ports.Analyzer.Analyze(r.Context(), req.Text, driving.AnalyzeOptions{
		Title:  req.Title,
		Source: "http",
		NoSave: req.NoSave,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTextTooShort):
			writeError(w, http.StatusBadRequest, "Text too short. Provide at least 20 characters.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Invalid input.")
		default:
			writeError(w, http.StatusInternalServerError, "Analysis failed.")
		}
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Composite:           analysis.Scores.Composite,
		Language:            analysis.Scores.Language,
		Coherence:           analysis.Scores.Coherence,
		Reasoning:           analysis.Scores.Reasoning,
		Diagnostics:         analysis.Features,
		TopFlaggedSentences: emptyIfNil(analysis.Flagged),
		SentimentAnalysis:   emptySentimentsIfNil(analysis.Sentiments),
	})
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleHistoryList returns stored analyses, newest first.
func (s *Server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		writeError(w, http.StatusNotFound, "History is not enabled.")
		return
	}

	analyses, err := s.ports.History.List(r.Context(), 0)
	if err != nil {
		if errors.Is(err, domain.ErrHistoryDisabled) {
			writeError(w, http.StatusNotFound, "History is not enabled.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Listing history failed.")
		return
	}

	entries := make([]historyEntry, len(analyses))
	for i := range analyses {
		entries[i] = toHistoryEntry(&analyses[i])
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleHistoryGet returns one stored analysis in full.
func (s *Server) handleHistoryGet(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		writeError(w, http.StatusNotFound, "History is not enabled.")
		return
	}

	analysis, err := s.ports.History.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeHistoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, historyDetail{
		historyEntry: toHistoryEntry(analysis),
		Scores:       analysis.Scores,
		Diagnostics:  analysis.Features,
		Flagged:      emptyIfNil(analysis.Flagged),
		Sentiments:   emptySentimentsIfNil(analysis.Sentiments),
		Text:         analysis.Text,
	})
}

// handleHistoryDelete removes one stored analysis.
func (s *Server) handleHistoryDelete(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		writeError(w, http.StatusNotFound, "History is not enabled.")
		return
	}

	if err := s.ports.History.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeHistoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeHistoryError maps history service errors onto HTTP statuses.
func writeHistoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Analysis not found.")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid analysis ID.")
	case errors.Is(err, domain.ErrHistoryDisabled):
		writeError(w, http.StatusNotFound, "History is not enabled.")
	default:
		writeError(w, http.StatusInternalServerError, "History lookup failed.")
	}
}

// toHistoryEntry builds the listing view of an analysis.
func toHistoryEntry(a *domain.Analysis) historyEntry {
	return historyEntry{
		ID:        a.ID,
		Title:     a.Title,
		Source:    a.Source,
		Composite: a.Scores.Composite,
		Band:      a.Scores.Band(),
		CreatedAt: a.CreatedAt,
	}
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// emptyIfNil keeps JSON arrays as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// emptySentimentsIfNil keeps JSON arrays as [] rather than null.
func emptySentimentsIfNil(s []domain.SentenceSentiment) []domain.SentenceSentiment {
	if s == nil {
		return []domain.SentenceSentiment{}
	}
	return s
}
