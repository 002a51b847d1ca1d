package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driven/storage/memory"
	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/services"
)

// setupServices wires memory-backed services into the command tree and
// restores the previous wiring when the test finishes.
func setupServices(t *testing.T) *memory.AnalysisStore {
	t.Helper()

	prev := Services{
		Analyzer:   analyzerService,
		History:    historyService,
		Settings:   settingsService,
		Preprocess: preprocessService,
	}
	t.Cleanup(func() { SetServices(prev) })

	store := memory.NewAnalysisStore()
	settings := services.NewSettingsService(memory.NewConfigStore())
	SetServices(Services{
		Analyzer:   services.NewAnalyzerService(store, settings),
		History:    services.NewHistoryService(store, settings),
		Settings:   settings,
		Preprocess: services.NewPreprocessService(),
	})
	return store
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// seedAnalysis stores a canned analysis for history tests.
func seedAnalysis(t *testing.T, store *memory.AnalysisStore, id string) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), &domain.Analysis{
		ID:        id,
		Title:     "Seeded essay",
		Source:    "test",
		Text:      "A seeded essay with enough characters to be valid.",
		Scores:    domain.Scorecard{Composite: 75, Language: 70, Coherence: 80, Reasoning: 75},
		CreatedAt: time.Now().UTC(),
	}))
}
