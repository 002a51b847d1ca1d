package results

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driving/tui/messages"
	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

func newTestView() *View {
	v := NewView(nil, nil)
	v.SetDimensions(80, 24)
	return v
}

func testAnalysis() *domain.Analysis {
	return &domain.Analysis{
		ID: "abc123",
		Scores: domain.Scorecard{
			Composite: 81.5,
			Language:  78.0,
			Coherence: 90.2,
			Reasoning: 76.4,
		},
		Features: domain.Features{
			WordCount:     120,
			SentenceCount: 6,
		},
		Flagged: []string{"This sentence rambles on for far too long without a point."},
	}
}

func TestView_RendersScorecard(t *testing.T) {
	v := newTestView()
	v.SetAnalysis(testAnalysis())

	out := v.View()

	assert.Contains(t, out, "Analysis results")
	assert.Contains(t, out, "81.5")
	assert.Contains(t, out, "Strong")
	assert.Contains(t, out, "Language")
	assert.Contains(t, out, "Sentences to revisit")
	assert.Contains(t, out, "Saved as abc123")
}

func TestView_NoAnalysis(t *testing.T) {
	v := newTestView()

	assert.Contains(t, v.View(), "No analysis yet")
}

func TestView_EscGoesBackToEditor(t *testing.T) {
	v := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewEditor, changed.View)
}

func TestView_QQuits(t *testing.T) {
	v := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "a ve...", truncate("a very long sentence", 7))
	assert.Equal(t, "one two", truncate("one\n two", 20))
}
