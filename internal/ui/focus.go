package ui

// Focus identifies which region receives key input.
type Focus int

const (
	FocusSearch Focus = iota
	FocusResults
	FocusSaved
)

func (f Focus) String() string {
	switch f {
	case FocusSearch:
		return "Search"
	case FocusResults:
		return "Results"
	case FocusSaved:
		return "Saved"
	default:
		return "Unknown"
	}
}

// Next rotates focus: search, results, saved, back to search.
func (f Focus) Next() Focus {
	switch f {
	case FocusSearch:
		return FocusResults
	case FocusResults:
		return FocusSaved
	default:
		return FocusSearch
	}
}
