// Package ui implements the wordmuse terminal interface with Bubble Tea.
//
// Core pieces:
//   - View: a UI region with its own model, update, view (Elm-style)
//   - SearchView: query input plus the active lookup relation
//   - ResultsView: lookup results, rhymes bucketed by syllable count
//   - SavedView: the running list of saved words
//   - KeybindRegistry/KeyHandler: single-key and SPC-leader bindings
//
// Lookups run as tea.Cmds; the Update path never blocks and never logs.
package ui
