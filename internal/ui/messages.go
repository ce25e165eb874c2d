package ui

import "wordmuse/internal/datamuse"

// ResultsMsg is sent when a lookup completes. Query and Relation identify
// the request so a stale response can be dropped.
type ResultsMsg struct {
	Query    string
	Relation datamuse.Relation
	Words    []datamuse.Word
}

// LookupErrMsg is sent when a lookup fails. Rendered inline by the results
// view; the app keeps running.
type LookupErrMsg struct {
	Query    string
	Relation datamuse.Relation
	Err      error
}

// SaveSelectedMsg saves the word under the results cursor to the saved list.
type SaveSelectedMsg struct{}

// ClearSavedMsg empties the saved-words list.
type ClearSavedMsg struct{}
