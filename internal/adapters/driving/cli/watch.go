package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
	"github.com/paperiq-labs/paperiq-cli/internal/extractors"
	"github.com/paperiq-labs/paperiq-cli/internal/logger"
)

// watchDebounce coalesces the burst of write events editors emit on save.
const watchDebounce = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-score a file every time it is saved",
	Long: `Watch a file and re-run the analysis whenever it changes.

Useful while drafting: keep the command running in a terminal and the
scores refresh on every save. Press Ctrl-C to stop. Watched analyses are
not stored in history.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errors.New("analyzer service not configured")
	}

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors that save via
	// rename replace the inode and would silently drop a file watch.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	cmd.Printf("Watching %s (Ctrl-C to stop)\n\n", path)
	analyzeWatched(cmd, path)

	var debounce *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("change detected: %s", event.Op)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			analyzeWatched(cmd, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// analyzeWatched scores the file once and prints the result, keeping the
// watch loop alive on failure.
func analyzeWatched(cmd *cobra.Command, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		cmd.PrintErrf("reading %s: %v\n", path, err)
		return
	}

	extractor, err := extractors.ForPath(path)
	if err != nil {
		cmd.PrintErrf("cannot watch %s: %v\n", path, err)
		return
	}
	text, err := extractor.Extract(raw)
	if err != nil {
		cmd.PrintErrf("extracting %s: %v\n", path, err)
		return
	}

	analysis, err := analyzerService.Analyze(cmd.Context(), text, driving.AnalyzeOptions{
		Title:  titleFromPath(path),
		Source: path,
		NoSave: true,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTextTooShort) {
			cmd.PrintErrln("text too short, waiting for more")
			return
		}
		cmd.PrintErrf("analysis failed: %v\n", err)
		return
	}

	cmd.Printf("[%s] Composite %.1f | Language %.1f | Coherence %.1f | Reasoning %.1f (%s)\n",
		time.Now().Format("15:04:05"),
		analysis.Scores.Composite, analysis.Scores.Language,
		analysis.Scores.Coherence, analysis.Scores.Reasoning,
		analysis.Scores.Band())
}
