// Package results provides the scorecard view for the TUI.
package results

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driving/tui/keymap"
	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driving/tui/messages"
	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driving/tui/styles"
	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

// View renders the scorecard for the most recent analysis.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	analysis *domain.Analysis

	width  int
	height int
	ready  bool
}

// NewView creates a new results view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}
}

// SetAnalysis sets the analysis to display.
func (v *View) SetAnalysis(analysis *domain.Analysis) {
	v.analysis = analysis
}

// Analysis returns the displayed analysis.
func (v *View) Analysis() *domain.Analysis {
	return v.analysis
}

// Update handles messages for the results view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case keymap.Matches(msg.String(), v.keymap.Quit):
			return v, tea.Quit
		case keymap.Matches(msg.String(), v.keymap.Back),
			keymap.Matches(msg.String(), v.keymap.New):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewEditor}
			}
		}
	}

	return v, nil
}

// View renders the results view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.analysis == nil {
		return v.styles.Muted.Render("No analysis yet.")
	}

	a := v.analysis
	sections := make([]string, 0, 16)

	badge := v.styles.Badge(a.Scores.Composite).Render(
		fmt.Sprintf("%.1f %s", a.Scores.Composite, a.Scores.Band()))
	sections = append(sections, v.styles.Title.Render("Analysis results")+"  "+badge, "")

	sections = append(sections,
		v.scoreLine("Language", a.Scores.Language),
		v.scoreLine("Coherence", a.Scores.Coherence),
		v.scoreLine("Reasoning", a.Scores.Reasoning),
		"",
	)

	sections = append(sections, v.styles.Subtitle.Render("Diagnostics"))
	sections = append(sections, v.renderDiagnostics(a.Features)...)
	sections = append(sections, "")

	if len(a.Flagged) > 0 {
		sections = append(sections, v.styles.Subtitle.Render("Sentences to revisit"))
		for i, sentence := range a.Flagged {
			line := fmt.Sprintf("%d. %s", i+1, truncate(sentence, v.width-6))
			sections = append(sections, v.styles.Normal.Render(line))
		}
		sections = append(sections, "")
	}

	if a.ID != "" {
		sections = append(sections, v.styles.Muted.Render("Saved as "+a.ID), "")
	}

	sections = append(sections, v.styles.Help.Render("esc edit · n new draft · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// scoreLine renders one component score with a colour matching its value.
func (v *View) scoreLine(label string, score float64) string {
	value := v.styles.Score(score).Render(fmt.Sprintf("%5.1f", score))
	return fmt.Sprintf("  %-10s %s", label, value)
}

// renderDiagnostics renders the raw feature measurements.
func (v *View) renderDiagnostics(f domain.Features) []string {
	rows := []struct {
		label string
		value string
	}{
		{"Words", fmt.Sprintf("%d", f.WordCount)},
		{"Sentences", fmt.Sprintf("%d", f.SentenceCount)},
		{"Avg sentence length", fmt.Sprintf("%.1f words", f.AvgSentenceLen)},
		{"Avg word length", fmt.Sprintf("%.1f chars", f.AvgWordLen)},
		{"Vocabulary variety", fmt.Sprintf("%.2f", f.TTR)},
		{"Lexical sophistication", fmt.Sprintf("%.2f", f.LexSoph)},
		{"Tone", fmt.Sprintf("%+.2f", f.SentimentPolarity)},
		{"Subjectivity", fmt.Sprintf("%.2f", f.SentimentSubjectivity)},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("  %-24s %s",
			row.label, v.styles.Muted.Render(row.value)))
	}
	return lines
}

// truncate shortens a sentence to fit the available width.
func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
