package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() [][]any {
	return [][]any{
		{"Alice", 30.0, true},
		{"Bob", 25.0, false},
		{"Charlie", 35.0, true},
		{"Alice Smith", 28.0, nil},
	}
}

func TestDetectType(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, TypeString, DetectType(rows, 0))
	assert.Equal(t, TypeFloat64, DetectType(rows, 1))
	assert.Equal(t, TypeBool, DetectType(rows, 2))
}

func TestDetectTypeSkipsLeadingNulls(t *testing.T) {
	rows := [][]any{{nil}, {42.0}}
	assert.Equal(t, TypeFloat64, DetectType(rows, 0))
}

func TestDetectTypeAllNullDefaultsToString(t *testing.T) {
	rows := [][]any{{nil}, {nil}, {nil}}
	assert.Equal(t, TypeString, DetectType(rows, 0))

	assert.Equal(t, TypeString, DetectType(nil, 0))
}

func TestDetectTypeIntegerCells(t *testing.T) {
	rows := [][]any{{int64(7)}}
	assert.Equal(t, TypeFloat64, DetectType(rows, 0))
}

func TestBuildFloat64(t *testing.T) {
	cols := Build(sampleRows(), 3)

	raw, ok := cols[1].Float64s()
	require.True(t, ok)
	assert.Equal(t, []float64{30, 25, 35, 28}, raw)
}

func TestBuildBoolWithNull(t *testing.T) {
	cols := Build(sampleRows(), 3)

	raw, ok := cols[2].Float64s()
	require.True(t, ok)
	assert.Equal(t, 1.0, raw[0])
	assert.Equal(t, 0.0, raw[1])
	assert.Equal(t, 1.0, raw[2])
	assert.True(t, math.IsNaN(raw[3]))
}

func TestBuildStringInternsNullSentinel(t *testing.T) {
	cols := Build(sampleRows(), 3)

	c := cols[0]
	require.Equal(t, TypeString, c.Type())
	assert.Equal(t, "Alice", c.StringAt(0))
	assert.Equal(t, "Bob", c.StringAt(1))
	assert.Equal(t, "Charlie", c.StringAt(2))
	assert.Equal(t, "Alice Smith", c.StringAt(3))

	// Empty string sentinel holds ID 0 even when no cell is null.
	assert.Equal(t, "", c.Intern().Resolve(0))
	assert.Equal(t, 5, c.Intern().Len())
}

func TestBuildNonNumericCellBecomesNaN(t *testing.T) {
	rows := [][]any{{10.0}, {"oops"}, {20.0}}
	cols := Build(rows, 1)

	raw, ok := cols[0].Float64s()
	require.True(t, ok)
	assert.Equal(t, 10.0, raw[0])
	assert.True(t, math.IsNaN(raw[1]))
	assert.Equal(t, 20.0, raw[2])
}

func TestBuildRaggedRows(t *testing.T) {
	rows := [][]any{
		{"a", 1.0},
		{"b"}, // missing numeric cell
	}
	cols := Build(rows, 2)

	raw, ok := cols[1].Float64s()
	require.True(t, ok)
	assert.Equal(t, 1.0, raw[0])
	assert.True(t, math.IsNaN(raw[1]))

	assert.Equal(t, "b", cols[0].StringAt(1))
}

func TestBuildNonStringCellInternsEmpty(t *testing.T) {
	rows := [][]any{{"text"}, {12.5}}
	cols := Build(rows, 1)

	require.Equal(t, TypeString, cols[0].Type())
	assert.Equal(t, "text", cols[0].StringAt(0))
	assert.Equal(t, "", cols[0].StringAt(1))
	assert.Equal(t, uint32(0), cols[0].IDAt(1))
}
