package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wordmuse/internal/datamuse"
)

// SubmitMsg is sent when the user submits a non-empty query (Enter in the
// search bar).
type SubmitMsg struct {
	Query    string
	Relation datamuse.Relation
}

// SearchView is the query input plus the active lookup relation.
// Tab cycles the relation; Enter submits.
type SearchView struct {
	input    textinput.Model
	Relation datamuse.Relation
}

// Ensure SearchView implements View.
var _ View = (*SearchView)(nil)

// NewSearchView creates a focused search bar.
func NewSearchView() *SearchView {
	ti := textinput.New()
	ti.Placeholder = "type a word"
	ti.Width = 32
	ti.Focus()
	return &SearchView{input: ti}
}

// Init implements View.
func (s *SearchView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (s *SearchView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			s.Relation = s.Relation.Next()
			return s, nil
		case "enter":
			word := strings.ToLower(strings.TrimSpace(s.input.Value()))
			if word != "" {
				rel := s.Relation
				return s, func() tea.Msg { return SubmitMsg{Query: word, Relation: rel} }
			}
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// Value returns the trimmed, lowercased query.
func (s *SearchView) Value() string {
	return strings.ToLower(strings.TrimSpace(s.input.Value()))
}

// Focus gives the text input keyboard focus.
func (s *SearchView) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes keyboard focus from the text input.
func (s *SearchView) Blur() {
	s.input.Blur()
}

// Focused reports whether the text input has focus.
func (s *SearchView) Focused() bool {
	return s.input.Focused()
}

// View implements View.
func (s *SearchView) View() string {
	relation := Styles.Section.Render("[" + s.Relation.String() + "]")
	hint := Styles.Hint.Render("tab: relation")
	return s.input.View() + "  " + relation + "  " + hint
}
