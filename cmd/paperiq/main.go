// Command paperiq scores papers and essays with transparent heuristics.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driven/config/file"
	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driven/datasets/asap"
	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driven/datasets/persuade"
	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driven/storage/memory"
	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driven/storage/sqlite"
	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driving/cli"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driven"
	"github.com/paperiq-labs/paperiq-cli/internal/core/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	analysisStore, cleanup := openAnalysisStore()
	defer cleanup()

	cli.SetServices(cli.Services{
		Analyzer:   services.NewAnalyzerService(analysisStore, settingsService),
		History:    services.NewHistoryService(analysisStore, settingsService),
		Settings:   settingsService,
		Preprocess: services.NewPreprocessService(asap.New(), persuade.New()),
	})

	return cli.ExecuteContext(ctx)
}

// openAnalysisStore opens the on-disk history store, falling back to an
// in-memory store when the database cannot be opened. Analyses still work
// in that case, they just do not persist across runs.
func openAnalysisStore() (driven.AnalysisStore, func()) {
	store, err := sqlite.NewStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr,
			"Warning: history database unavailable, history will not persist: %v\n", err)
		return memory.NewAnalysisStore(), func() {}
	}
	return store, func() {
		store.Close() //nolint:errcheck
	}
}
