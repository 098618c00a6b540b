// Package column provides typed columnar storage for the table engine.
//
// A column is one of three representations sharing a single row count:
//
//   - Float64: dense []float64, NaN is the null sentinel
//   - Bool: dense []float64 holding 0.0/1.0/NaN, sharing the numeric code path
//   - String: per-row intern IDs backed by an intern.Table
//
// Bool reuses the Float64 layout so numeric iteration has one branch, but the
// type tag stays distinct so filter-operand validation can reject, say, a
// substring operator against a boolean column.
package column

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/gridcore/intern"
)

// Type tags the representation of a column.
type Type uint8

const (
	// TypeFloat64 is a dense float64 column (NaN = null).
	TypeFloat64 Type = iota
	// TypeBool is a boolean column stored as float64 0.0/1.0/NaN.
	TypeBool
	// TypeString is an interned string column.
	TypeString
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TypeFloat64:
		return "float64"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether the column shares the dense float64 layout.
func (t Type) IsNumeric() bool {
	return t == TypeFloat64 || t == TypeBool
}

// Column is a tagged variant over the three typed representations.
// The zero value is an empty Float64 column.
type Column struct {
	typ Type

	// Float64 and Bool share this backing array.
	nums []float64

	// String representation.
	ids      []uint32
	table    *intern.Table
	postings []*roaring.Bitmap // intern ID -> rows holding it
}

// NewFloat64 creates a Float64 column over values. The slice is not copied;
// the column takes ownership.
func NewFloat64(values []float64) Column {
	return Column{typ: TypeFloat64, nums: values}
}

// NullFloat64 creates an all-null Float64 column of the given length, used
// as the placeholder representation during direct ingestion.
func NullFloat64(rows int) Column {
	values := make([]float64, rows)
	nan := math.NaN()
	for i := range values {
		values[i] = nan
	}
	return Column{typ: TypeFloat64, nums: values}
}

// NewBool creates a Bool column over values encoded as 0.0/1.0/NaN.
// The slice is not copied; the column takes ownership.
func NewBool(values []float64) Column {
	return Column{typ: TypeBool, nums: values}
}

// NewString creates a String column from per-row intern IDs and the table
// that produced them. Posting lists for the filter fast path are built here,
// one bitmap per distinct interned string.
func NewString(table *intern.Table, ids []uint32) Column {
	postings := make([]*roaring.Bitmap, table.Len())
	for row, id := range ids {
		bm := postings[id]
		if bm == nil {
			bm = roaring.New()
			postings[id] = bm
		}
		bm.Add(uint32(row))
	}
	return Column{typ: TypeString, ids: ids, table: table, postings: postings}
}

// Type returns the column's type tag.
func (c *Column) Type() Type { return c.typ }

// Len returns the number of rows stored in the column.
func (c *Column) Len() int {
	if c.typ == TypeString {
		return len(c.ids)
	}
	return len(c.nums)
}

// Float64s returns the dense numeric backing slice for Float64 and Bool
// columns. The returned slice aliases internal memory and is valid only
// until the next mutation of the owning table; do not modify it.
// String columns return nil, false.
func (c *Column) Float64s() ([]float64, bool) {
	if !c.typ.IsNumeric() {
		return nil, false
	}
	return c.nums, true
}

// Num returns the numeric cell at row for Float64/Bool columns.
// NaN means null. Calling this on a String column panics.
func (c *Column) Num(row int) float64 {
	if !c.typ.IsNumeric() {
		panic("column: Num on string column")
	}
	return c.nums[row]
}

// StringAt resolves the interned string cell at row.
// Calling this on a numeric column panics.
func (c *Column) StringAt(row int) string {
	return c.table.Resolve(c.ids[row])
}

// IDAt returns the intern ID at row for String columns.
func (c *Column) IDAt(row int) uint32 {
	return c.ids[row]
}

// Intern returns the backing intern table for String columns, nil otherwise.
func (c *Column) Intern() *intern.Table { return c.table }

// Postings returns the rows holding the given intern ID, or nil when the ID
// never occurs. Only meaningful for String columns.
func (c *Column) Postings(id uint32) *roaring.Bitmap {
	if int(id) >= len(c.postings) {
		return nil
	}
	return c.postings[id]
}

// Value returns the typed cell at row, mapping NaN to null and resolving
// interned strings.
func (c *Column) Value(row int) Value {
	switch c.typ {
	case TypeFloat64:
		v := c.nums[row]
		if math.IsNaN(v) {
			return Null()
		}
		return Float(v)
	case TypeBool:
		v := c.nums[row]
		if math.IsNaN(v) {
			return Null()
		}
		return Bool(v != 0)
	default:
		return String(c.table.Resolve(c.ids[row]))
	}
}
