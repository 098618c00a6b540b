package column

import (
	"math"

	"github.com/hupe1980/gridcore/intern"
)

// DetectType scans rows top-down and returns the type of the first non-null
// cell in the given column: numbers map to Float64, booleans to Bool,
// anything else to String. An all-null (or absent) column defaults to String.
func DetectType(rows [][]any, col int) Type {
	for _, row := range rows {
		if col >= len(row) || row[col] == nil {
			continue
		}
		if _, ok := asFloat(row[col]); ok {
			return TypeFloat64
		}
		if _, ok := row[col].(bool); ok {
			return TypeBool
		}
		return TypeString
	}
	return TypeString
}

// Build materializes colCount typed columns from row-major cells.
//
// Cells that do not fit the detected column type become null: NaN for
// Float64 and Bool, the interned empty string for String. Missing trailing
// cells are treated as null too.
func Build(rows [][]any, colCount int) []Column {
	cols := make([]Column, colCount)
	for ci := range colCount {
		switch DetectType(rows, ci) {
		case TypeFloat64:
			values := make([]float64, len(rows))
			for ri, row := range rows {
				values[ri] = cellFloat(row, ci)
			}
			cols[ci] = NewFloat64(values)
		case TypeBool:
			values := make([]float64, len(rows))
			for ri, row := range rows {
				values[ri] = cellBool(row, ci)
			}
			cols[ci] = NewBool(values)
		default:
			table := intern.New()
			table.Intern("") // null sentinel gets ID 0
			ids := make([]uint32, len(rows))
			for ri, row := range rows {
				ids[ri] = table.Intern(cellString(row, ci))
			}
			cols[ci] = NewString(table, ids)
		}
	}
	return cols
}

func cellFloat(row []any, col int) float64 {
	if col >= len(row) {
		return math.NaN()
	}
	if f, ok := asFloat(row[col]); ok {
		return f
	}
	return math.NaN()
}

func cellBool(row []any, col int) float64 {
	if col >= len(row) {
		return math.NaN()
	}
	if b, ok := row[col].(bool); ok {
		if b {
			return 1.0
		}
		return 0.0
	}
	return math.NaN()
}

func cellString(row []any, col int) string {
	if col >= len(row) {
		return ""
	}
	if s, ok := row[col].(string); ok {
		return s
	}
	return ""
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
