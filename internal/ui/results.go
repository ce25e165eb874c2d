package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"wordmuse/internal/datamuse"
	"wordmuse/internal/grouping"
)

// resultRow is one rendered line: either a section header or a word.
type resultRow struct {
	header bool
	label  string
	word   datamuse.Word
}

// ResultsView renders lookup results. Rhymes and near rhymes are bucketed by
// syllable count (ascending) with a section header per bucket; synonyms are a
// single flat list in the API's relevance order.
type ResultsView struct {
	Query    string
	Relation datamuse.Relation
	Selected int // index into rows; always on a word row, -1 when none

	rows    []resultRow
	loading bool
	err     error
	spinner spinner.Model
}

// Ensure ResultsView implements View.
var _ View = (*ResultsView)(nil)

// NewResultsView creates an empty results view.
func NewResultsView() *ResultsView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Title
	return &ResultsView{Selected: -1, spinner: s}
}

// BeginLookup resets the view for an in-flight lookup and starts the spinner.
func (r *ResultsView) BeginLookup(query string, rel datamuse.Relation) tea.Cmd {
	r.Query = query
	r.Relation = rel
	r.rows = nil
	r.Selected = -1
	r.err = nil
	r.loading = true
	return r.spinner.Tick
}

// Loading reports whether a lookup is in flight.
func (r *ResultsView) Loading() bool {
	return r.loading
}

// Err returns the last lookup error, or nil.
func (r *ResultsView) Err() error {
	return r.err
}

// SetResults replaces the view content with a completed lookup's words.
func (r *ResultsView) SetResults(words []datamuse.Word) {
	r.loading = false
	r.err = nil
	r.rows = buildRows(r.Relation, words)
	r.Selected = -1
	for i, row := range r.rows {
		if !row.header {
			r.Selected = i
			break
		}
	}
}

// SetError replaces the view content with a lookup failure.
func (r *ResultsView) SetError(err error) {
	r.loading = false
	r.err = err
	r.rows = nil
	r.Selected = -1
}

// buildRows flattens words into display rows. Syllable buckets come from the
// grouping core; bucket order is ascending syllable count.
func buildRows(rel datamuse.Relation, words []datamuse.Word) []resultRow {
	if rel == datamuse.RelSynonym {
		rows := make([]resultRow, len(words))
		for i, w := range words {
			rows[i] = resultRow{word: w}
		}
		return rows
	}
	grouped := grouping.GroupBy(words, func(w datamuse.Word) int {
		return w.NumSyllables
	})
	var rows []resultRow
	for _, n := range grouped.Keys() {
		rows = append(rows, resultRow{header: true, label: syllableLabel(n)})
		for _, w := range grouped.Group(n) {
			rows = append(rows, resultRow{word: w})
		}
	}
	return rows
}

func syllableLabel(n int) string {
	switch n {
	case 0:
		return "unknown syllable count"
	case 1:
		return "1 syllable"
	default:
		return fmt.Sprintf("%d syllables", n)
	}
}

// SelectedWord returns the word under the cursor, or false if the cursor is
// not on a word row.
func (r *ResultsView) SelectedWord() (datamuse.Word, bool) {
	if r.Selected < 0 || r.Selected >= len(r.rows) || r.rows[r.Selected].header {
		return datamuse.Word{}, false
	}
	return r.rows[r.Selected].word, true
}

// WordCount returns the number of word rows (headers excluded).
func (r *ResultsView) WordCount() int {
	n := 0
	for _, row := range r.rows {
		if !row.header {
			n++
		}
	}
	return n
}

// Init implements View.
func (r *ResultsView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (r *ResultsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if r.loading {
			var cmd tea.Cmd
			r.spinner, cmd = r.spinner.Update(msg)
			return r, cmd
		}
		return r, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			r.moveDown()
		case "k", "up":
			r.moveUp()
		case "g":
			r.moveFirst()
		case "G":
			r.moveLast()
		}
		return r, nil
	}
	return r, nil
}

// moveDown advances the cursor to the next word row, skipping headers.
func (r *ResultsView) moveDown() {
	for i := r.Selected + 1; i < len(r.rows); i++ {
		if !r.rows[i].header {
			r.Selected = i
			return
		}
	}
}

// moveUp moves the cursor to the previous word row, skipping headers.
func (r *ResultsView) moveUp() {
	for i := r.Selected - 1; i >= 0; i-- {
		if !r.rows[i].header {
			r.Selected = i
			return
		}
	}
}

func (r *ResultsView) moveFirst() {
	for i := 0; i < len(r.rows); i++ {
		if !r.rows[i].header {
			r.Selected = i
			return
		}
	}
}

func (r *ResultsView) moveLast() {
	for i := len(r.rows) - 1; i >= 0; i-- {
		if !r.rows[i].header {
			r.Selected = i
			return
		}
	}
}

// View implements View.
func (r *ResultsView) View() string {
	var b strings.Builder

	switch {
	case r.loading:
		b.WriteString(r.spinner.View() + " " + Styles.Muted.Render(fmt.Sprintf("looking up %s for %q…", r.Relation, r.Query)))
	case r.err != nil:
		b.WriteString(Styles.Error.Render("lookup failed: "+r.err.Error()) + "\n")
		b.WriteString(Styles.Hint.Render("enter: retry"))
	case r.Query == "":
		b.WriteString(Styles.Empty.Render("type a word and press enter"))
	case len(r.rows) == 0:
		b.WriteString(Styles.Empty.Render(fmt.Sprintf("no %s found for %q", r.Relation, r.Query)))
	default:
		title := fmt.Sprintf("%s for %q (%d)", r.Relation, r.Query, r.WordCount())
		b.WriteString(Styles.Title.Render(title) + "\n")
		for i, row := range r.rows {
			b.WriteString("\n")
			if row.header {
				b.WriteString(Styles.Section.Render(row.label))
				continue
			}
			if i == r.Selected {
				b.WriteString(Styles.Selected.Render("▸ " + row.word.Word))
			} else {
				b.WriteString(Styles.Normal.Render("  " + row.word.Word))
			}
		}
	}
	return b.String()
}
