package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driven/storage/memory"
	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/services"
)

const sampleText = "The city should invest in public transport because it reduces congestion. " +
	"Therefore ridership grows when service is frequent and reliable. " +
	"This is a wonderful outcome for commuters."

func newTestServer(t *testing.T) (*Server, *memory.AnalysisStore) {
	t.Helper()

	store := memory.NewAnalysisStore()
	settings := services.NewSettingsService(memory.NewConfigStore())

	srv, err := NewServer(&Ports{
		Analyzer: services.NewAnalyzerService(store, settings),
		History:  services.NewHistoryService(store, settings),
		Settings: settings,
	})
	require.NoError(t, err)
	return srv, store
}

func postAnalyze(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewServer_RequiresAnalyzer(t *testing.T) {
	_, err := NewServer(&Ports{})
	assert.ErrorIs(t, err, ErrMissingAnalyzerService)
}

func TestAnalyze(t *testing.T) {
	srv, store := newTestServer(t)

	body, err := json.Marshal(map[string]string{"text": sampleText})
	require.NoError(t, err)

	rec := postAnalyze(t, srv, string(body))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Greater(t, resp.Composite, 0.0)
	assert.LessOrEqual(t, resp.Composite, 100.0)
	assert.Equal(t, 3, resp.Diagnostics.SentenceCount)
	assert.Len(t, resp.SentimentAnalysis, 3)
	assert.NotEmpty(t, resp.TopFlaggedSentences)

	// The analysis lands in history.
	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAnalyze_NoSave(t *testing.T) {
	srv, store := newTestServer(t)

	rec := postAnalyze(t, srv, fmt.Sprintf(`{"text": %q, "no_save": true}`, sampleText))
	require.Equal(t, http.StatusOK, rec.Code)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAnalyze_TextTooShort(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := postAnalyze(t, srv, `{"text": "too short"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Detail, "at least 20 characters")
}

func TestAnalyze_InvalidJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := postAnalyze(t, srv, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_BodyTooLarge(t *testing.T) {
	srv, _ := newTestServer(t)

	var buf bytes.Buffer
	buf.WriteString(`{"text": "`)
	buf.WriteString(strings.Repeat("a", maxBodyBytes+1024))
	buf.WriteString(`"}`)

	rec := postAnalyze(t, srv, buf.String())
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHistoryEndpoints(t *testing.T) {
	srv, store := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Analysis{
		ID:        "h1",
		Title:     "First essay",
		Source:    "http",
		Text:      sampleText,
		Scores:    domain.Scorecard{Composite: 72.5},
		CreatedAt: time.Now().UTC(),
	}))

	// List
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []historyEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "h1", entries[0].ID)
	assert.Equal(t, "Good", entries[0].Band)

	// Get
	req = httptest.NewRequest(http.MethodGet, "/history/h1", nil)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail historyDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, sampleText, detail.Text)

	// Unknown ID
	req = httptest.NewRequest(http.MethodGet, "/history/nope", nil)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Delete
	req = httptest.NewRequest(http.MethodDelete, "/history/h1", nil)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUI_Served(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "PaperIQ")
}

func TestUI_Disabled(t *testing.T) {
	store := memory.NewAnalysisStore()
	config := memory.NewConfigStore()
	require.NoError(t, config.Set("server.ui_enabled", false))
	settings := services.NewSettingsService(config)

	srv, err := NewServer(&Ports{
		Analyzer: services.NewAnalyzerService(store, settings),
		Settings: settings,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimiting(t *testing.T) {
	store := memory.NewAnalysisStore()
	config := memory.NewConfigStore()
	require.NoError(t, config.Set("server.rate_limit", 1.0))
	require.NoError(t, config.Set("server.burst", 1))
	settings := services.NewSettingsService(config)

	srv, err := NewServer(&Ports{
		Analyzer: services.NewAnalyzerService(store, settings),
		Settings: settings,
	})
	require.NoError(t, err)

	body := fmt.Sprintf(`{"text": %q}`, sampleText)

	rec := postAnalyze(t, srv, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = postAnalyze(t, srv, body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
