package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/gridcore/column"
)

func TestMatchesNumeric(t *testing.T) {
	tests := []struct {
		name     string
		cell     float64
		operator Operator
		operand  column.Value
		expected bool
	}{
		{"Equals_Match", 30, OpEquals, column.Float(30), true},
		{"Equals_NoMatch", 25, OpEquals, column.Float(30), false},
		{"Equals_WithinEpsilon", 0.1 + 0.2, OpEquals, column.Float(0.3), true},
		{"NotEquals_Match", 25, OpNotEquals, column.Float(30), true},
		{"NotEquals_NoMatch", 30, OpNotEquals, column.Float(30), false},
		{"GreaterThan", 35, OpGreaterThan, column.Float(30), true},
		{"GreaterThan_Boundary", 30, OpGreaterThan, column.Float(30), false},
		{"LessThan", 25, OpLessThan, column.Float(30), true},
		{"GreaterEqual_Boundary", 30, OpGreaterEqual, column.Float(30), true},
		{"GreaterEqual_JustBelowBoundary", 30 - 1e-12, OpGreaterEqual, column.Float(30), true},
		{"LessEqual_Boundary", 30, OpLessEqual, column.Float(30), true},
		{"LessEqual_JustAboveBoundary", 30 + 1e-12, OpLessEqual, column.Float(30), true},
		{"NaN_Equals", math.NaN(), OpEquals, column.Float(30), false},
		{"NaN_NotEquals", math.NaN(), OpNotEquals, column.Float(30), false},
		{"NaN_GreaterThan", math.NaN(), OpGreaterThan, column.Float(0), false},
		{"NaN_LessThan", math.NaN(), OpLessThan, column.Float(1e9), false},
		{"OperandKindMismatch_String", 30, OpEquals, column.String("30"), false},
		{"OperandKindMismatch_Bool", 1, OpEquals, column.Bool(true), false},
		{"Contains_FailsClosed", 30, OpContains, column.Float(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ColumnFilter{Column: 0, Operator: tt.operator, Value: tt.operand}
			assert.Equal(t, tt.expected, matchesNumeric(tt.cell, f, DefaultEpsilon))
		})
	}
}

func TestMatchesBool(t *testing.T) {
	tests := []struct {
		name     string
		cell     float64
		operator Operator
		operand  column.Value
		expected bool
	}{
		{"Equals_True", 1.0, OpEquals, column.Bool(true), true},
		{"Equals_False", 0.0, OpEquals, column.Bool(false), true},
		{"Equals_Mismatch", 0.0, OpEquals, column.Bool(true), false},
		{"NotEquals", 0.0, OpNotEquals, column.Bool(true), true},
		{"Null_AlwaysFails", math.NaN(), OpEquals, column.Bool(true), false},
		{"Null_NotEqualsFails", math.NaN(), OpNotEquals, column.Bool(true), false},
		{"Ordering_FailsClosed", 1.0, OpGreaterThan, column.Bool(false), false},
		{"OperandKindMismatch", 1.0, OpEquals, column.Float(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ColumnFilter{Column: 0, Operator: tt.operator, Value: tt.operand}
			assert.Equal(t, tt.expected, matchesBool(tt.cell, f))
		})
	}
}

func TestMatchesString(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		operator Operator
		operand  column.Value
		expected bool
	}{
		{"Equals", "Alice", OpEquals, column.String("Alice"), true},
		{"Equals_CaseSensitive", "Alice", OpEquals, column.String("alice"), false},
		{"NotEquals", "Bob", OpNotEquals, column.String("Alice"), true},
		{"Ordinal_GreaterThan", "Charlie", OpGreaterThan, column.String("Bob"), true},
		{"Ordinal_LessThan", "Alice", OpLessThan, column.String("Bob"), true},
		{"Ordinal_GreaterEqual", "Bob", OpGreaterEqual, column.String("Bob"), true},
		{"Ordinal_LessEqual", "Bob", OpLessEqual, column.String("Bob"), true},
		{"Contains_CaseInsensitive", "Alice Smith", OpContains, column.String("alice"), true},
		{"Contains_NoMatch", "Bob", OpContains, column.String("alice"), false},
		{"StartsWith", "Alice Smith", OpStartsWith, column.String("ALI"), true},
		{"StartsWith_NoMatch", "Smith Alice", OpStartsWith, column.String("ali"), false},
		{"EndsWith", "Alice Smith", OpEndsWith, column.String("SMITH"), true},
		{"EndsWith_NoMatch", "Smith Alice", OpEndsWith, column.String("smith"), false},
		{"OperandKindMismatch", "30", OpEquals, column.Float(30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ColumnFilter{Column: 0, Operator: tt.operator, Value: tt.operand}
			assert.Equal(t, tt.expected, matchesString(tt.cell, f))
		})
	}
}
