// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Analyze scores the current editor text.
	Analyze key.Binding

	// Open loads a file into the editor.
	Open key.Binding

	// Back returns to the editor from the results view.
	Back key.Binding

	// New clears the editor for a fresh draft.
	New key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Analyze: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "analyze"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open file"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "edit"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new draft"),
		),
	}
}

// EditorHelp returns keybindings shown under the editor.
func (k *KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.Analyze, k.Open, k.Quit}
}

// ResultsHelp returns keybindings shown under the results view.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Back, k.New, k.Quit}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
