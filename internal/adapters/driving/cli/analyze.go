package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
	"github.com/paperiq-labs/paperiq-cli/internal/extractors"
)

var (
	analyzeJSON   bool
	analyzeNoSave bool
	analyzeTitle  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Score a paper or essay",
	Long: `Score a paper, essay or abstract with heuristic quality metrics.

Reads from the given file (.txt, .md or .docx), or from stdin when no
file is given:

  paperiq analyze essay.txt
  cat essay.txt | paperiq analyze
  paperiq analyze < draft.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the full analysis as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "do not record the analysis in history")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "label for the analysis in history")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errors.New("analyzer service not configured")
	}

	text, opts, err := readAnalyzeInput(args)
	if err != nil {
		return err
	}
	opts.NoSave = analyzeNoSave
	if analyzeTitle != "" {
		opts.Title = analyzeTitle
	}

	analysis, err := analyzerService.Analyze(cmd.Context(), text, opts)
	if err != nil {
		if errors.Is(err, domain.ErrTextTooShort) {
			return fmt.Errorf("text too short: provide at least %d characters", domain.MinTextLength)
		}
		return err
	}

	if analyzeJSON {
		return printAnalysisJSON(cmd.OutOrStdout(), analysis)
	}
	printAnalysis(cmd, analysis)
	return nil
}

// readAnalyzeInput loads the text to score from the file argument or stdin.
func readAnalyzeInput(args []string) (string, driving.AnalyzeOptions, error) {
	if len(args) == 1 {
		path := args[0]
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", driving.AnalyzeOptions{}, fmt.Errorf("reading %s: %w", path, err)
		}

		extractor, err := extractors.ForPath(path)
		if err != nil {
			return "", driving.AnalyzeOptions{}, fmt.Errorf("reading %s: %w", path, err)
		}
		text, err := extractor.Extract(raw)
		if err != nil {
			return "", driving.AnalyzeOptions{}, fmt.Errorf("extracting text from %s: %w", path, err)
		}

		return text, driving.AnalyzeOptions{
			Title:  titleFromPath(path),
			Source: path,
		}, nil
	}

	// Reading from a terminal with no file argument means the user
	// probably forgot the argument. Tell them instead of hanging.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", driving.AnalyzeOptions{},
			errors.New("no input: pass a file argument or pipe text on stdin")
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", driving.AnalyzeOptions{}, fmt.Errorf("reading stdin: %w", err)
	}
	return string(raw), driving.AnalyzeOptions{Source: "stdin"}, nil
}

// titleFromPath derives a human-readable title from a file path.
func titleFromPath(path string) string {
	name := filepath.Base(path)
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}

// printAnalysisJSON writes the full analysis as indented JSON.
func printAnalysisJSON(w io.Writer, a *domain.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(analysisJSON(a))
}

// analysisJSON is the CLI JSON view of an analysis, mirroring the API shape.
func analysisJSON(a *domain.Analysis) map[string]any {
	return map[string]any{
		"id":                    a.ID,
		"composite":             a.Scores.Composite,
		"language":              a.Scores.Language,
		"coherence":             a.Scores.Coherence,
		"reasoning":             a.Scores.Reasoning,
		"band":                  a.Scores.Band(),
		"diagnostics":           a.Features,
		"top_flagged_sentences": a.Flagged,
		"sentiment_analysis":    a.Sentiments,
	}
}

// printAnalysis renders the human-readable scorecard.
func printAnalysis(cmd *cobra.Command, a *domain.Analysis) {
	if a.Title != "" {
		cmd.Printf("%s\n", a.Title)
	}
	cmd.Printf("Composite: %.1f (%s)\n", a.Scores.Composite, a.Scores.Band())
	cmd.Println()
	cmd.Printf("  Language:  %6.1f\n", a.Scores.Language)
	cmd.Printf("  Coherence: %6.1f\n", a.Scores.Coherence)
	cmd.Printf("  Reasoning: %6.1f\n", a.Scores.Reasoning)
	cmd.Println()

	cmd.Printf("Words: %d  Sentences: %d  TTR: %.2f  Avg sentence: %.1f words\n",
		a.Features.WordCount, a.Features.SentenceCount,
		a.Features.TTR, a.Features.AvgSentenceLen)
	cmd.Printf("Tone: polarity %+.2f, subjectivity %.2f\n",
		a.Features.SentimentPolarity, a.Features.SentimentSubjectivity)

	if len(a.Flagged) > 0 {
		cmd.Println()
		cmd.Println("Sentences to revise:")
		for i, sentence := range a.Flagged {
			cmd.Printf("  %d. %s\n", i+1, truncate(sentence, 120))
		}
	}
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
