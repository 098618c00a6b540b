// Package filter evaluates typed per-column predicates and a global text
// search over the columnar storage.
//
// Filters are index-keyed and carry a typed operand. Every invalid condition
// fails closed: an unknown column index, an operand whose kind does not match
// the column, an operator the column type does not support, and a null (NaN)
// cell all evaluate to "row excluded" rather than an error.
package filter

import (
	"math"
	"strings"

	"github.com/hupe1980/gridcore/column"
)

// Operator is a comparison operator for column filters.
type Operator string

const (
	// OpEquals represents the equality operator.
	OpEquals Operator = "eq"
	// OpNotEquals represents the inequality operator.
	OpNotEquals Operator = "ne"
	// OpGreaterThan represents the greater-than operator.
	OpGreaterThan Operator = "gt"
	// OpLessThan represents the less-than operator.
	OpLessThan Operator = "lt"
	// OpGreaterEqual represents the greater-or-equal operator.
	OpGreaterEqual Operator = "gte"
	// OpLessEqual represents the less-or-equal operator.
	OpLessEqual Operator = "lte"
	// OpContains represents case-insensitive substring match (strings only).
	OpContains Operator = "contains"
	// OpStartsWith represents case-insensitive prefix match (strings only).
	OpStartsWith Operator = "startswith"
	// OpEndsWith represents case-insensitive suffix match (strings only).
	OpEndsWith Operator = "endswith"
)

// ColumnFilter is a single typed filter condition against one column.
type ColumnFilter struct {
	Column   int
	Operator Operator
	Value    column.Value
}

// DefaultEpsilon is the tolerance used for numeric comparisons to absorb
// float round-off.
const DefaultEpsilon = 1e-9

// matchesNumeric evaluates a filter against a Float64/Bool cell.
// A NaN cell never satisfies any operator.
func matchesNumeric(cell float64, f ColumnFilter, eps float64) bool {
	if math.IsNaN(cell) {
		return false
	}

	operand, ok := f.Value.AsFloat64()
	if !ok {
		return false
	}

	switch f.Operator {
	case OpEquals:
		return math.Abs(cell-operand) < eps
	case OpNotEquals:
		return math.Abs(cell-operand) >= eps
	case OpGreaterThan:
		return cell > operand
	case OpLessThan:
		return cell < operand
	case OpGreaterEqual:
		return cell >= operand-eps
	case OpLessEqual:
		return cell <= operand+eps
	default:
		return false
	}
}

// matchesBool evaluates a filter against a Bool cell encoded as 0.0/1.0/NaN.
// Boolean columns support equality and inequality only.
func matchesBool(cell float64, f ColumnFilter) bool {
	if math.IsNaN(cell) {
		return false
	}

	operand, ok := f.Value.AsBool()
	if !ok {
		return false
	}

	switch f.Operator {
	case OpEquals:
		return (cell != 0) == operand
	case OpNotEquals:
		return (cell != 0) != operand
	default:
		return false
	}
}

// matchesString evaluates a filter against a resolved string cell.
// Ordering operators compare ordinally (byte-wise); the substring family is
// case-insensitive.
func matchesString(cell string, f ColumnFilter) bool {
	operand, ok := f.Value.AsString()
	if !ok {
		return false
	}

	switch f.Operator {
	case OpEquals:
		return cell == operand
	case OpNotEquals:
		return cell != operand
	case OpGreaterThan:
		return cell > operand
	case OpLessThan:
		return cell < operand
	case OpGreaterEqual:
		return cell >= operand
	case OpLessEqual:
		return cell <= operand
	case OpContains:
		return strings.Contains(strings.ToLower(cell), strings.ToLower(operand))
	case OpStartsWith:
		return strings.HasPrefix(strings.ToLower(cell), strings.ToLower(operand))
	case OpEndsWith:
		return strings.HasSuffix(strings.ToLower(cell), strings.ToLower(operand))
	default:
		return false
	}
}
