package filter

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/gridcore/column"
)

// Engine evaluates filter passes over a set of columns.
//
// String equality filters compile to posting-list bitmap lookups; everything
// else scans. Both paths produce identical results, so compilation is purely
// an optimization for low-cardinality category columns.
type Engine struct {
	epsilon float64
}

// NewEngine creates an Engine with the given numeric comparison tolerance.
// Pass 0 to use DefaultEpsilon.
func NewEngine(epsilon float64) *Engine {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return &Engine{epsilon: epsilon}
}

// Epsilon returns the configured numeric tolerance.
func (e *Engine) Epsilon() float64 { return e.epsilon }

// predicate tests one row against one compiled filter.
type predicate func(row uint32) bool

// Apply keeps the indices whose rows satisfy every filter (AND semantics).
// The input slice is filtered in place and the shortened slice returned;
// relative order is preserved.
func (e *Engine) Apply(indices []uint32, cols []column.Column, filters []ColumnFilter) []uint32 {
	if len(filters) == 0 {
		return indices
	}

	preds := make([]predicate, len(filters))
	for i, f := range filters {
		preds[i] = e.compile(cols, f)
	}

	out := indices[:0]
	for _, idx := range indices {
		keep := true
		for _, pred := range preds {
			if !pred(idx) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, idx)
		}
	}
	return out
}

// compile turns a filter into a row predicate, resolving the column type and
// operand kind once instead of per row.
func (e *Engine) compile(cols []column.Column, f ColumnFilter) predicate {
	if f.Column < 0 || f.Column >= len(cols) {
		return rejectAll
	}
	col := &cols[f.Column]

	switch col.Type() {
	case column.TypeFloat64:
		nums, _ := col.Float64s()
		eps := e.epsilon
		return func(row uint32) bool {
			return matchesNumeric(nums[row], f, eps)
		}
	case column.TypeBool:
		nums, _ := col.Float64s()
		return func(row uint32) bool {
			return matchesBool(nums[row], f)
		}
	default:
		return compileString(col, f)
	}
}

// compileString builds the string-column predicate. Exact equality against an
// interned value uses the column's posting bitmap; an operand that was never
// interned cannot match any row.
func compileString(col *column.Column, f ColumnFilter) predicate {
	operand, ok := f.Value.AsString()
	if !ok {
		return rejectAll
	}

	if f.Operator == OpEquals {
		id, ok := col.Intern().LookupID(operand)
		if !ok {
			return rejectAll
		}
		bm := col.Postings(id)
		if bm == nil {
			return rejectAll
		}
		return bm.Contains
	}

	return func(row uint32) bool {
		return matchesString(col.StringAt(int(row)), f)
	}
}

func rejectAll(uint32) bool { return false }

// ApplyGlobal keeps the indices whose rows contain query (case-insensitive)
// in at least one string column. An empty query is the identity; a table
// with no string columns passes every row unchanged.
//
// Matching is memoized per distinct interned string: each string column gets
// a bitmap over intern IDs, so the per-row check is a single bitmap lookup
// no matter how long the column is.
func (e *Engine) ApplyGlobal(indices []uint32, cols []column.Column, query string) []uint32 {
	if query == "" {
		return indices
	}

	lowered := strings.ToLower(query)

	type memo struct {
		col     *column.Column
		matched *roaring.Bitmap // intern IDs whose strings contain the query
	}

	var memos []memo
	hasStringColumn := false
	for i := range cols {
		col := &cols[i]
		if col.Type() != column.TypeString {
			continue
		}
		hasStringColumn = true

		tbl := col.Intern()
		matched := roaring.New()
		for id := range uint32(tbl.Len()) {
			if strings.Contains(strings.ToLower(tbl.Resolve(id)), lowered) {
				matched.Add(id)
			}
		}
		if !matched.IsEmpty() {
			memos = append(memos, memo{col: col, matched: matched})
		}
	}
	if !hasStringColumn {
		return indices
	}

	out := indices[:0]
	for _, idx := range indices {
		for _, m := range memos {
			if m.matched.Contains(m.col.IDAt(int(idx))) {
				out = append(out, idx)
				break
			}
		}
	}
	return out
}
