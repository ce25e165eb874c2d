package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"wordmuse/internal/datamuse"
)

// lookupCmd returns a command that fetches words for the query. The command
// runs off the Update path; the result arrives as ResultsMsg or LookupErrMsg.
func lookupCmd(c *datamuse.Client, rel datamuse.Relation, word string) tea.Cmd {
	return func() tea.Msg {
		words, err := c.Lookup(context.Background(), rel, word)
		if err != nil {
			return LookupErrMsg{Query: word, Relation: rel, Err: err}
		}
		return ResultsMsg{Query: word, Relation: rel, Words: words}
	}
}
