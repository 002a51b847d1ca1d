// Package cli implements the paperiq command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
	"github.com/paperiq-labs/paperiq-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Package-level services injected by the application entry point.
var (
	analyzerService   driving.AnalyzerService
	historyService    driving.HistoryService
	settingsService   driving.SettingsService
	preprocessService driving.PreprocessService
)

// Services aggregates the driving ports the CLI depends on.
// This provides a single injection point for dependency injection.
type Services struct {
	Analyzer   driving.AnalyzerService
	History    driving.HistoryService
	Settings   driving.SettingsService
	Preprocess driving.PreprocessService
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	analyzerService = s.Analyzer
	historyService = s.History
	settingsService = s.Settings
	preprocessService = s.Preprocess
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "paperiq",
	Short: "Heuristic quality scoring for papers and essays",
	Long: `PaperIQ scores papers, essays and abstracts with transparent
heuristics: vocabulary richness, sentence flow, causal reasoning markers
and sentence-level sentiment.

Paste text, point it at a file, or serve the scoring API with a browser UI.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// The context is cancelled on interrupt so long-running commands
// such as serve and watch shut down cleanly.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
