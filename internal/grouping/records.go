package grouping

import (
	"errors"

	"wordmuse/internal/jsonutil"
)

// Record is a dynamic, JSON-shaped record: field name to value.
type Record = map[string]any

// MissingKey is the group key assigned to records that lack the selected
// field (and to explicit nil field values). Spelled like the JSON null the
// field would have decoded from.
const MissingKey = "null"

// ErrInvalidSelector is returned when a selector cannot produce keys: a nil
// Selector, an empty field name, or a nil key function.
var ErrInvalidSelector = errors.New("grouping: invalid key selector")

// Selector derives a group key from a Record. Construct one with Field or
// KeyFunc; the zero value is invalid.
type Selector interface {
	key(Record) any
	valid() bool
}

type fieldSelector string

func (f fieldSelector) key(r Record) any { return r[string(f)] }
func (f fieldSelector) valid() bool      { return f != "" }

type funcSelector func(Record) any

func (f funcSelector) key(r Record) any { return f(r) }
func (f funcSelector) valid() bool      { return f != nil }

// Field selects the named field's value as the group key.
func Field(name string) Selector { return fieldSelector(name) }

// KeyFunc selects the group key by calling fn on each record.
func KeyFunc(fn func(Record) any) Selector { return funcSelector(fn) }

// GroupRecords buckets dynamic records by the selector. Keys are normalized
// to strings and sorted lexicographically, so heterogeneous key types group
// and order deterministically. Note the lexicographic order is over the
// string form: numeric keys of differing digit counts interleave ("10"
// sorts before "2"). A record without the selected field groups under
// MissingKey rather than failing.
func GroupRecords(records []Record, sel Selector) (*Grouped[string, Record], error) {
	if sel == nil || !sel.valid() {
		return nil, ErrInvalidSelector
	}
	return GroupBy(records, func(r Record) string {
		return keyString(sel.key(r))
	}), nil
}

// keyString normalizes a dynamic key value to its sortable representation.
func keyString(v any) string {
	if v == nil {
		return MissingKey
	}
	return jsonutil.ToString(v)
}
