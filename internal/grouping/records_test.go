package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRecords_Empty(t *testing.T) {
	g, err := GroupRecords(nil, Field("team"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Keys())
}

func TestGroupRecords_SingleRecord(t *testing.T) {
	steve := Record{"name": "Steve", "team": "blue"}
	g, err := GroupRecords([]Record{steve}, Field("team"))
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	assert.Equal(t, []Record{steve}, g.Group("blue"))
}

func TestGroupRecords_FieldSelector(t *testing.T) {
	steve := Record{"name": "Steve", "team": "blue"}
	jack := Record{"name": "Jack", "team": "red"}
	carol := Record{"name": "Carol", "team": "blue"}

	g, err := GroupRecords([]Record{steve, jack, carol}, Field("team"))
	require.NoError(t, err)

	assert.Equal(t, []string{"blue", "red"}, g.Keys())
	assert.Equal(t, []Record{steve, carol}, g.Group("blue"))
	assert.Equal(t, []Record{jack}, g.Group("red"))
}

func TestGroupRecords_FuncSelector(t *testing.T) {
	recs := []Record{{"n": 1}, {"n": 2}, {"n": 1}}
	g, err := GroupRecords(recs, KeyFunc(func(r Record) any {
		return r["n"].(int) % 2
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1"}, g.Keys())
	assert.Equal(t, []Record{{"n": 2}}, g.Group("0"))
	assert.Equal(t, []Record{{"n": 1}, {"n": 1}}, g.Group("1"))
}

func TestGroupRecords_MissingFieldGroupsUnderMissingKey(t *testing.T) {
	rec := Record{"x": 5}
	g, err := GroupRecords([]Record{rec}, Field("missing"))
	require.NoError(t, err)

	require.Equal(t, 1, g.Len())
	assert.Equal(t, []string{MissingKey}, g.Keys())
	assert.Equal(t, []Record{rec}, g.Group(MissingKey))
}

func TestGroupRecords_NilValueSameAsMissing(t *testing.T) {
	g, err := GroupRecords([]Record{
		{"team": nil, "name": "a"},
		{"name": "b"},
	}, Field("team"))
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	assert.Len(t, g.Group(MissingKey), 2)
}

func TestGroupRecords_InvalidSelector(t *testing.T) {
	recs := []Record{{"team": "blue"}}

	_, err := GroupRecords(recs, nil)
	assert.ErrorIs(t, err, ErrInvalidSelector)

	_, err = GroupRecords(recs, Field(""))
	assert.ErrorIs(t, err, ErrInvalidSelector)

	_, err = GroupRecords(recs, KeyFunc(nil))
	assert.ErrorIs(t, err, ErrInvalidSelector)
}

func TestGroupRecords_NumericKeysSortLexicographically(t *testing.T) {
	// Documented policy: dynamic keys are stringified before the sort, so
	// multi-digit numbers interleave ("10" < "2"). The typed GroupBy API is
	// the escape hatch when natural numeric order matters.
	g, err := GroupRecords([]Record{
		{"n": 2}, {"n": 10}, {"n": 1},
	}, Field("n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "10", "2"}, g.Keys())
}

func TestGroupRecords_HeterogeneousKeys(t *testing.T) {
	// Mixed key types normalize to strings and order deterministically.
	g, err := GroupRecords([]Record{
		{"k": true}, {"k": "apple"}, {"k": 3}, {"k": "apple"},
	}, Field("k"))
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "apple", "true"}, g.Keys())
	assert.Len(t, g.Group("apple"), 2)
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, MissingKey},
		{"string", "blue", "blue"},
		{"int", 7, "7"},
		{"json number", 7.0, "7"},
		{"bool", false, "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyString(tt.v))
		})
	}
}
