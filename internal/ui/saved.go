package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SavedView is the running list of words the user has kept. Words stay in
// the order they were saved and are deduplicated. The list lives for the
// process lifetime only.
type SavedView struct {
	Words    []string
	Selected int
}

// Ensure SavedView implements View.
var _ View = (*SavedView)(nil)

// NewSavedView creates an empty saved list.
func NewSavedView() *SavedView {
	return &SavedView{}
}

// Add appends a word if it is not already saved. Returns true if added.
func (s *SavedView) Add(word string) bool {
	for _, w := range s.Words {
		if w == word {
			return false
		}
	}
	s.Words = append(s.Words, word)
	return true
}

// Remove deletes the word under the cursor.
func (s *SavedView) Remove() {
	if s.Selected < 0 || s.Selected >= len(s.Words) {
		return
	}
	s.Words = append(s.Words[:s.Selected], s.Words[s.Selected+1:]...)
	if s.Selected >= len(s.Words) && s.Selected > 0 {
		s.Selected--
	}
}

// Clear empties the list.
func (s *SavedView) Clear() {
	s.Words = nil
	s.Selected = 0
}

// Init implements View.
func (s *SavedView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (s *SavedView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if s.Selected < len(s.Words)-1 {
				s.Selected++
			}
		case "k", "up":
			if s.Selected > 0 {
				s.Selected--
			}
		case "g":
			s.Selected = 0
		case "G":
			if len(s.Words) > 0 {
				s.Selected = len(s.Words) - 1
			}
		case "x":
			s.Remove()
		}
		return s, nil
	}
	return s, nil
}

// View implements View.
func (s *SavedView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("Saved (%d)", len(s.Words))) + "\n")
	if len(s.Words) == 0 {
		b.WriteString("\n" + Styles.Empty.Render("(nothing saved yet)"))
		return b.String()
	}
	for i, w := range s.Words {
		b.WriteString("\n")
		if i == s.Selected {
			b.WriteString(Styles.Selected.Render("▸ " + w))
		} else {
			b.WriteString(Styles.Normal.Render("  " + w))
		}
	}
	return b.String()
}
