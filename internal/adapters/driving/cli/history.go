package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

var (
	historyJSON  bool
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past analyses",
	Long:  `List, inspect and remove analyses stored in the local history.`,
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored analyses",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one stored analysis in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one stored analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored analyses",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.PersistentFlags().IntVar(&historyLimit, "limit", 0, "maximum entries to list (0 = configured default)")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	analyses, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return historyError(err)
	}

	if historyJSON {
		entries := make([]map[string]any, len(analyses))
		for i := range analyses {
			entries[i] = map[string]any{
				"id":         analyses[i].ID,
				"title":      analyses[i].Title,
				"source":     analyses[i].Source,
				"composite":  analyses[i].Scores.Composite,
				"band":       analyses[i].Scores.Band(),
				"created_at": analyses[i].CreatedAt,
			}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(analyses) == 0 {
		cmd.Println("No analyses in history.")
		return nil
	}

	for i := range analyses {
		a := &analyses[i]
		title := a.Title
		if title == "" {
			title = truncate(a.Text, 40)
		}
		cmd.Printf("%s  %5.1f  %-17s  %s  %s\n",
			a.CreatedAt.Local().Format("2006-01-02 15:04"),
			a.Scores.Composite, a.Scores.Band(), a.ID, title)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	analysis, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		return historyError(err)
	}

	if historyJSON {
		return printAnalysisJSON(cmd.OutOrStdout(), analysis)
	}

	cmd.Printf("ID: %s\n", analysis.ID)
	cmd.Printf("Analysed: %s\n", analysis.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	if analysis.Source != "" {
		cmd.Printf("Source: %s\n", analysis.Source)
	}
	cmd.Println()
	printAnalysis(cmd, analysis)
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Delete(cmd.Context(), args[0]); err != nil {
		return historyError(err)
	}
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	removed, err := historyService.Clear(cmd.Context())
	if err != nil {
		return historyError(err)
	}
	cmd.Printf("Removed %d analyses\n", removed)
	return nil
}

// historyError makes service errors presentable on the command line.
func historyError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return errors.New("no analysis with that ID")
	case errors.Is(err, domain.ErrHistoryDisabled):
		return errors.New("history is disabled; enable it with 'paperiq settings set history.enabled true'")
	default:
		return fmt.Errorf("history: %w", err)
	}
}
