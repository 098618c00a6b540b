package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gridcore/column"
)

func fixtureColumns() []column.Column {
	return column.Build([][]any{
		{"Alice", 30.0, true},
		{"Bob", 25.0, false},
		{"Charlie", 35.0, true},
		{"Alice Smith", 28.0, nil},
	}, 3)
}

func identity(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i)
	}
	return out
}

func TestApplyNumericGreaterThan(t *testing.T) {
	e := NewEngine(0)
	cols := fixtureColumns()

	got := e.Apply(identity(4), cols, []ColumnFilter{
		{Column: 1, Operator: OpGreaterThan, Value: column.Float(28)},
	})

	// Alice(30) and Charlie(35), original relative order.
	assert.Equal(t, []uint32{0, 2}, got)
}

func TestApplyStringEqualityFastPath(t *testing.T) {
	e := NewEngine(0)
	cols := fixtureColumns()

	got := e.Apply(identity(4), cols, []ColumnFilter{
		{Column: 0, Operator: OpEquals, Value: column.String("Bob")},
	})
	assert.Equal(t, []uint32{1}, got)

	// Never-interned operand matches nothing.
	got = e.Apply(identity(4), cols, []ColumnFilter{
		{Column: 0, Operator: OpEquals, Value: column.String("Mallory")},
	})
	assert.Empty(t, got)
}

func TestApplyStringContains(t *testing.T) {
	e := NewEngine(0)
	cols := fixtureColumns()

	got := e.Apply(identity(4), cols, []ColumnFilter{
		{Column: 0, Operator: OpContains, Value: column.String("alice")},
	})
	assert.Equal(t, []uint32{0, 3}, got)
}

func TestApplyBoolEquality(t *testing.T) {
	e := NewEngine(0)
	cols := fixtureColumns()

	got := e.Apply(identity(4), cols, []ColumnFilter{
		{Column: 2, Operator: OpEquals, Value: column.Bool(true)},
	})
	// Row 3 has a null flag and fails regardless of operator.
	assert.Equal(t, []uint32{0, 2}, got)

	got = e.Apply(identity(4), cols, []ColumnFilter{
		{Column: 2, Operator: OpNotEquals, Value: column.Bool(true)},
	})
	assert.Equal(t, []uint32{1}, got)
}

func TestApplyMultipleFiltersIntersect(t *testing.T) {
	e := NewEngine(0)
	cols := fixtureColumns()

	got := e.Apply(identity(4), cols, []ColumnFilter{
		{Column: 0, Operator: OpContains, Value: column.String("alice")},
		{Column: 1, Operator: OpGreaterEqual, Value: column.Float(30)},
	})
	assert.Equal(t, []uint32{0}, got)
}

func TestApplyUnknownColumnFailsClosed(t *testing.T) {
	e := NewEngine(0)
	cols := fixtureColumns()

	got := e.Apply(identity(4), cols, []ColumnFilter{
		{Column: 99, Operator: OpEquals, Value: column.Float(1)},
	})
	assert.Empty(t, got)

	got = e.Apply(identity(4), cols, []ColumnFilter{
		{Column: -1, Operator: OpEquals, Value: column.Float(1)},
	})
	assert.Empty(t, got)
}

func TestApplyTypeMismatchFailsClosed(t *testing.T) {
	e := NewEngine(0)
	cols := fixtureColumns()

	// Substring operator against a numeric column.
	got := e.Apply(identity(4), cols, []ColumnFilter{
		{Column: 1, Operator: OpContains, Value: column.String("3")},
	})
	assert.Empty(t, got)

	// Numeric operand against a string column.
	got = e.Apply(identity(4), cols, []ColumnFilter{
		{Column: 0, Operator: OpEquals, Value: column.Float(30)},
	})
	assert.Empty(t, got)
}

func TestApplyNullNumericCellNeverMatches(t *testing.T) {
	e := NewEngine(0)
	cols := column.Build([][]any{{10.0}, {nil}, {5.0}}, 1)

	operators := []Operator{OpEquals, OpNotEquals, OpGreaterThan, OpLessThan, OpGreaterEqual, OpLessEqual}
	for _, op := range operators {
		got := e.Apply(identity(3), cols, []ColumnFilter{
			{Column: 0, Operator: op, Value: column.Float(7)},
		})
		assert.NotContains(t, got, uint32(1), "operator %s must exclude the null row", op)
	}
}

func TestApplyEmptyFiltersIsIdentity(t *testing.T) {
	e := NewEngine(0)
	cols := fixtureColumns()

	got := e.Apply(identity(4), cols, nil)
	assert.Equal(t, []uint32{0, 1, 2, 3}, got)
}

func TestApplyFastPathMatchesScanPath(t *testing.T) {
	e := NewEngine(0)
	cols := fixtureColumns()

	// OpEquals uses the posting-list bitmap; simulate the scan result with a
	// GreaterEqual+LessEqual sandwich which must select the same row set.
	fast := e.Apply(identity(4), cols, []ColumnFilter{
		{Column: 0, Operator: OpEquals, Value: column.String("Alice")},
	})
	scan := e.Apply(identity(4), cols, []ColumnFilter{
		{Column: 0, Operator: OpGreaterEqual, Value: column.String("Alice")},
		{Column: 0, Operator: OpLessEqual, Value: column.String("Alice")},
	})
	assert.Equal(t, scan, fast)
}

func TestApplyGlobal(t *testing.T) {
	e := NewEngine(0)
	cols := column.Build([][]any{
		{"Alice"}, {"Bob"}, {"Charlie"}, {"Dave"},
	}, 1)

	got := e.ApplyGlobal(identity(4), cols, "a")
	// Case-insensitive substring: Alice, Charlie, Dave. Not Bob.
	assert.Equal(t, []uint32{0, 2, 3}, got)
}

func TestApplyGlobalEmptyQueryIsIdentity(t *testing.T) {
	e := NewEngine(0)
	cols := fixtureColumns()

	got := e.ApplyGlobal(identity(4), cols, "")
	assert.Equal(t, []uint32{0, 1, 2, 3}, got)
}

func TestApplyGlobalNoStringColumnsPassesAll(t *testing.T) {
	e := NewEngine(0)
	cols := column.Build([][]any{{1.0, true}, {2.0, false}}, 2)

	got := e.ApplyGlobal(identity(2), cols, "anything")
	assert.Equal(t, []uint32{0, 1}, got)
}

func TestApplyGlobalORsAcrossColumns(t *testing.T) {
	e := NewEngine(0)
	cols := column.Build([][]any{
		{"apple", "red"},
		{"banana", "yellow"},
		{"cherry", "dark red"},
	}, 2)

	got := e.ApplyGlobal(identity(3), cols, "red")
	require.Equal(t, []uint32{0, 2}, got)

	got = e.ApplyGlobal(identity(3), cols, "an")
	assert.Equal(t, []uint32{1}, got)
}

func TestApplyGlobalNoMatches(t *testing.T) {
	e := NewEngine(0)
	cols := fixtureColumns()

	got := e.ApplyGlobal(identity(4), cols, "zzz")
	assert.Empty(t, got)
}

func TestNewEngineEpsilonDefault(t *testing.T) {
	assert.Equal(t, DefaultEpsilon, NewEngine(0).Epsilon())
	assert.Equal(t, 1e-6, NewEngine(1e-6).Epsilon())
}

func BenchmarkApplyNumeric(b *testing.B) {
	rows := make([][]any, 10000)
	for i := range rows {
		rows[i] = []any{float64(i % 100)}
	}
	cols := column.Build(rows, 1)
	e := NewEngine(0)
	filters := []ColumnFilter{{Column: 0, Operator: OpGreaterThan, Value: column.Float(50)}}

	scratch := make([]uint32, len(rows))
	b.ResetTimer()
	for b.Loop() {
		indices := scratch[:0]
		for i := range uint32(len(rows)) {
			indices = append(indices, i)
		}
		e.Apply(indices, cols, filters)
	}
}

func TestApplyNullFloat64CellNeverMatchesAnyOperator(t *testing.T) {
	e := NewEngine(0)
	cols := column.Build([][]any{{10.0}, {nil}, {5.0}}, 1)

	raw, ok := cols[0].Float64s()
	require.True(t, ok)
	require.True(t, math.IsNaN(raw[1]))

	for _, op := range []Operator{OpEquals, OpNotEquals, OpGreaterThan, OpLessThan, OpGreaterEqual, OpLessEqual} {
		got := e.Apply(identity(3), cols, []ColumnFilter{
			{Column: 0, Operator: op, Value: column.Float(math.NaN())},
		})
		assert.Empty(t, got, "NaN operand with %s", op)
	}
}
