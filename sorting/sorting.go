// Package sorting reorders row-index permutations by multi-key, type-aware
// comparison over columnar storage. Data never moves; only indices do.
package sorting

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/hupe1980/gridcore/column"
)

// Direction selects ascending or descending order for one sort key.
type Direction uint8

const (
	// Ascending sorts smallest first.
	Ascending Direction = iota
	// Descending sorts largest first.
	Descending
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// SortConfig is one key in a multi-key sort; keys form a tie-break chain in
// slice order.
type SortConfig struct {
	Column    int
	Direction Direction
}

// Sort stably reorders indices by the configured keys.
//
// Numeric columns (Float64 and Bool) compare with NaN strictly smaller than
// every real number and equal to another NaN, so nulls lead in ascending
// order. String columns compare ordinally. A key referencing a column that
// does not exist contributes Equal and the next key decides. Rows equal under
// every key keep their pre-sort relative order.
func Sort(indices []uint32, cols []column.Column, configs []SortConfig) {
	if len(configs) == 0 {
		return
	}

	slices.SortStableFunc(indices, func(a, b uint32) int {
		for _, cfg := range configs {
			c := compareAt(cols, cfg.Column, int(a), int(b))
			if cfg.Direction == Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}

// compareAt compares two rows within one column. Out-of-range columns
// compare Equal so the key fails open to the next one.
func compareAt(cols []column.Column, col, rowA, rowB int) int {
	if col < 0 || col >= len(cols) {
		return 0
	}
	c := &cols[col]

	if c.Type().IsNumeric() {
		return compareFloat(c.Num(rowA), c.Num(rowB))
	}
	return strings.Compare(c.StringAt(rowA), c.StringAt(rowB))
}

func compareFloat(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
