// Package editor provides the text entry view for the TUI.
package editor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driving/tui/keymap"
	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driving/tui/messages"
	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driving/tui/styles"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
	"github.com/paperiq-labs/paperiq-cli/internal/extractors"
)

// View is the editor view with a textarea, a file-open prompt and a
// status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	textarea  textarea.Model
	pathInput textinput.Model

	analyzer driving.AnalyzerService
	ctx      context.Context

	width     int
	height    int
	ready     bool
	analyzing bool
	opening   bool
	title     string
	err       error
}

// NewView creates a new editor view.
func NewView(s *styles.Styles, km *keymap.KeyMap, analyzer driving.AnalyzerService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ta := textarea.New()
	ta.Placeholder = "Paste or type your draft here..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "path/to/essay.docx"
	ti.CharLimit = 0

	return &View{
		styles:    s,
		keymap:    km,
		textarea:  ta,
		pathInput: ti,
		analyzer:  analyzer,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.opening {
			return v.handleOpenKey(msg)
		}

		if keymap.Matches(msg.String(), v.keymap.Analyze) {
			if v.analyzing {
				return v, nil
			}
			text := v.textarea.Value()
			v.err = nil
			v.analyzing = true
			return v, v.performAnalysis(text)
		}

		if keymap.Matches(msg.String(), v.keymap.Open) {
			v.opening = true
			v.pathInput.SetValue("")
			v.textarea.Blur()
			return v, v.pathInput.Focus()
		}

	case messages.AnalysisCompleted:
		v.analyzing = false
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil

	case messages.ErrorOccurred:
		v.analyzing = false
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	if v.opening {
		v.pathInput, cmd = v.pathInput.Update(msg)
		return v, cmd
	}
	v.textarea, cmd = v.textarea.Update(msg)
	return v, cmd
}

// handleOpenKey processes keyboard input while the file prompt is up.
func (v *View) handleOpenKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.opening = false
		return v, v.textarea.Focus()

	case tea.KeyEnter:
		path := strings.TrimSpace(v.pathInput.Value())
		v.opening = false
		if path != "" {
			v.loadFile(path)
		}
		return v, v.textarea.Focus()
	}

	var cmd tea.Cmd
	v.pathInput, cmd = v.pathInput.Update(msg)
	return v, cmd
}

// loadFile replaces the editor contents with the extracted text of the
// file at path. Failures surface in the view without losing the draft.
func (v *View) loadFile(path string) {
	extractor, err := extractors.ForPath(path)
	if err != nil {
		v.err = fmt.Errorf("opening %s: %w", path, err)
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		v.err = fmt.Errorf("reading %s: %w", path, err)
		return
	}

	text, err := extractor.Extract(raw)
	if err != nil {
		v.err = fmt.Errorf("extracting %s: %w", path, err)
		return
	}

	v.textarea.SetValue(text)
	v.title = titleFromPath(path)
	v.err = nil
}

// titleFromPath derives a history label from a file name.
func titleFromPath(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// performAnalysis scores the current text and reports the outcome.
func (v *View) performAnalysis(text string) tea.Cmd {
	return func() tea.Msg {
		analysis, err := v.analyzer.Analyze(v.ctx, text, driving.AnalyzeOptions{
			Title:  v.title,
			Source: "tui",
		})
		return messages.AnalysisCompleted{Analysis: analysis, Err: err}
	}
}

// View renders the editor view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("PaperIQ") +
		v.styles.Muted.Render("  draft editor")
	sections = append(sections, header, "")

	sections = append(sections, v.styles.InputField.Render(v.textarea.View()), "")

	if v.opening {
		prompt := v.styles.Subtitle.Render("Open file") + "\n" +
			v.styles.InputField.Render(v.pathInput.View())
		sections = append(sections, prompt, "")
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	status := fmt.Sprintf("%d characters", len(v.textarea.Value()))
	if v.analyzing {
		status = "Analyzing..."
	}
	sections = append(sections, v.styles.StatusBar.Width(v.width).Render(status))

	help := "ctrl+s analyze · ctrl+o open file · ctrl+c quit"
	if v.opening {
		help = "enter load · esc cancel"
	}
	sections = append(sections, v.styles.Help.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.textarea.SetWidth(width - 4)
	v.pathInput.Width = width - 8
	// Reserve space for header, status bar and help line
	if h := height - 8; h > 3 {
		v.textarea.SetHeight(h)
	}
}

// Value returns the current editor text.
func (v *View) Value() string {
	return v.textarea.Value()
}

// SetValue replaces the editor text.
func (v *View) SetValue(text string) {
	v.textarea.SetValue(text)
}

// Reset clears the editor for a new draft.
func (v *View) Reset() {
	v.textarea.SetValue("")
	v.textarea.Focus()
	v.title = ""
	v.err = nil
	v.analyzing = false
	v.opening = false
}

// Title returns the label set by the last file load, if any.
func (v *View) Title() string {
	return v.title
}

// Opening reports whether the file prompt is showing.
func (v *View) Opening() bool {
	return v.opening
}

// Focus gives keyboard focus to the textarea.
func (v *View) Focus() tea.Cmd {
	return v.textarea.Focus()
}

// Analyzing reports whether an analysis is in flight.
func (v *View) Analyzing() bool {
	return v.analyzing
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
