package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wordmuse/internal/datamuse"
)

// AppModel is the root model: search bar on top, results and saved panels
// below. Focus decides which region receives keys; the search input owns all
// printable keys while focused, so global single-key bindings only apply
// outside it.
type AppModel struct {
	Focus      Focus
	Search     *SearchView
	Results    *ResultsView
	Saved      *SavedView
	KeyHandler *KeyHandler
	Client     *datamuse.Client

	width int
}

// NewAppModel creates the root application model.
func NewAppModel(client *datamuse.Client) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC s", func() tea.Msg { return SaveSelectedMsg{} }, "Save word")
	reg.BindWithDesc("SPC c", func() tea.Msg { return ClearSavedMsg{} }, "Clear saved")
	return &AppModel{
		Focus:      FocusSearch,
		Search:     NewSearchView(),
		Results:    NewResultsView(),
		Saved:      NewSavedView(),
		KeyHandler: NewKeyHandler(reg),
		Client:     client,
	}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Search.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil
	case SubmitMsg:
		a.Focus = FocusResults
		a.Search.Blur()
		return a, tea.Batch(
			a.Results.BeginLookup(msg.Query, msg.Relation),
			lookupCmd(a.Client, msg.Relation, msg.Query),
		)
	case ResultsMsg:
		// A response for an older query is dropped.
		if a.Results.Loading() && msg.Query == a.Results.Query && msg.Relation == a.Results.Relation {
			a.Results.SetResults(msg.Words)
		}
		return a, nil
	case LookupErrMsg:
		if a.Results.Loading() && msg.Query == a.Results.Query && msg.Relation == a.Results.Relation {
			a.Results.SetError(msg.Err)
		}
		return a, nil
	case SaveSelectedMsg:
		if w, ok := a.Results.SelectedWord(); ok {
			a.Saved.Add(w.Word)
		}
		return a, nil
	case ClearSavedMsg:
		a.Saved.Clear()
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Non-key messages (spinner ticks, input blink) go to the views that own them.
	var cmds []tea.Cmd
	v, cmd := a.Results.Update(msg)
	if r, ok := v.(*ResultsView); ok {
		a.Results = r
	}
	cmds = append(cmds, cmd)
	v, cmd = a.Search.Update(msg)
	if s, ok := v.(*SearchView); ok {
		a.Search = s
	}
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// handleKey routes a key press by focus.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Keybind system (leader key, single-key commands). Disabled while the
	// search input is focused so typed letters reach the input.
	if a.Focus != FocusSearch && a.KeyHandler != nil {
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return a, keyCmd
		}
	}

	switch a.Focus {
	case FocusSearch:
		switch msg.String() {
		case "esc":
			return a, tea.Quit
		case "down":
			if a.Results.WordCount() > 0 {
				a.Focus = FocusResults
				a.Search.Blur()
				return a, nil
			}
		}
		v, cmd := a.Search.Update(msg)
		if s, ok := v.(*SearchView); ok {
			a.Search = s
		}
		return a, cmd
	case FocusResults:
		switch msg.String() {
		case "esc", "/", "i":
			a.Focus = FocusSearch
			return a, a.Search.Focus()
		case "tab":
			a.Focus = a.Focus.Next()
			return a, nil
		case "enter", "s":
			if w, ok := a.Results.SelectedWord(); ok {
				a.Saved.Add(w.Word)
			}
			return a, nil
		}
		v, cmd := a.Results.Update(msg)
		if r, ok := v.(*ResultsView); ok {
			a.Results = r
		}
		return a, cmd
	case FocusSaved:
		switch msg.String() {
		case "esc":
			a.Focus = FocusResults
			return a, nil
		case "tab":
			a.Focus = a.Focus.Next()
			return a, a.Search.Focus()
		}
		v, cmd := a.Saved.Update(msg)
		if s, ok := v.(*SavedView); ok {
			a.Saved = s
		}
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	width := a.width
	if width == 0 {
		width = 80 // default for tests and first render
	}
	resultsWidth := width * 2 / 3
	savedWidth := width - resultsWidth - 6

	resultsBox := Styles.Box
	savedBox := Styles.Box
	searchPrefix := "  "
	switch a.Focus {
	case FocusSearch:
		searchPrefix = Styles.Selected.Render("▸ ")
	case FocusResults:
		resultsBox = Styles.BoxFocus
	case FocusSaved:
		savedBox = Styles.BoxFocus
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("wordmuse") + "  " + Styles.Hint.Render("find rhymes and synonyms") + "\n\n")
	b.WriteString(searchPrefix + a.Search.View() + "\n")

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		resultsBox.Width(resultsWidth).Render(a.Results.View()),
		savedBox.Width(savedWidth).Render(a.Saved.View()),
	)
	b.WriteString(panels + "\n")
	b.WriteString(Styles.Hint.Render(a.footerHint()))

	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler))
	}
	return b.String()
}

// footerHint returns the static key hints for the focused region.
func (a *appModelAdapter) footerHint() string {
	switch a.Focus {
	case FocusSearch:
		return "enter: look up  tab: relation  esc: quit"
	case FocusResults:
		return "j/k: move  enter: save  tab: saved list  /: search  q: quit"
	case FocusSaved:
		return "j/k: move  x: remove  tab: search  esc: results  q: quit"
	default:
		return ""
	}
}
