package gridcore

import (
	"context"
	"time"

	"github.com/hupe1980/gridcore/column"
	"github.com/hupe1980/gridcore/filter"
	"github.com/hupe1980/gridcore/sorting"
	"github.com/hupe1980/gridcore/window"
)

// Scroll geometry defaults used when no WithScrollConfig option is given.
const (
	DefaultRowHeight      = 36.0
	DefaultViewportHeight = 600.0
	DefaultOverscan       = 5
)

// ColumnDef describes one column of the grid as presented to the host:
// a stable key, a display header, an optional pixel width, and whether the
// host should offer sorting and filtering controls for it. The engine itself
// addresses columns by index; defs are carried for the host's benefit.
type ColumnDef struct {
	Key        string  `json:"key"`
	Header     string  `json:"header"`
	Width      float64 `json:"width,omitempty"`
	Sortable   bool    `json:"sortable"`
	Filterable bool    `json:"filterable"`
}

// Result is the per-frame answer of Query: the raw and filtered row counts
// plus the window to render.
type Result struct {
	TotalCount    int
	FilteredCount int
	Slice         window.VirtualSlice
}

// Table is the columnar engine behind one grid: typed columns, filter and
// sort configuration, and the cached filtered-then-sorted row permutation.
//
// A Table is not safe for concurrent use; hosts must serialize access.
type Table struct {
	defs []ColumnDef
	cols []column.Column

	rowCount   int
	generation uint64
	dirty      bool

	sortConfigs []sorting.SortConfig
	colFilters  []filter.ColumnFilter
	globalQuery string

	rowHeight      float64
	viewportHeight float64
	overscan       int
	pinnedTop      int
	pinnedBottom   int

	view   []uint32
	engine *filter.Engine

	staging *staging

	metrics MetricsCollector
	logger  *Logger
}

// New creates an empty Table.
func New(optFns ...Option) *Table {
	o := applyOptions(optFns)

	return &Table{
		rowHeight:      o.rowHeight,
		viewportHeight: o.viewportHeight,
		overscan:       o.overscan,
		pinnedTop:      o.pinnedTop,
		pinnedBottom:   o.pinnedBottom,
		engine:         filter.NewEngine(o.epsilon),
		metrics:        o.metricsCollector,
		logger:         o.logger,
	}
}

// SetSort replaces the sort key chain and marks the view dirty.
// An empty or nil slice clears sorting.
func (t *Table) SetSort(configs []sorting.SortConfig) {
	t.sortConfigs = configs
	t.dirty = true
}

// SetColumnFilters replaces the active column filters and marks the view
// dirty. An empty or nil slice clears filtering.
func (t *Table) SetColumnFilters(filters []filter.ColumnFilter) {
	t.colFilters = filters
	t.dirty = true
}

// SetGlobalFilter sets the case-insensitive substring query matched against
// every string column. The empty string clears the global filter.
func (t *Table) SetGlobalFilter(query string) {
	t.globalQuery = query
	t.dirty = true
}

// SetScrollConfig updates the scroll geometry. This affects windowing only,
// not the row permutation, so the view is NOT marked dirty.
func (t *Table) SetScrollConfig(rowHeight, viewportHeight float64, overscan int) {
	t.rowHeight = rowHeight
	t.viewportHeight = viewportHeight
	t.overscan = overscan
}

// SetPinnedRows updates the pinned row counts. Like SetScrollConfig this
// affects windowing only.
func (t *Table) SetPinnedRows(top, bottom int) {
	t.pinnedTop = top
	t.pinnedBottom = bottom
}

// RebuildView recomputes the filtered and sorted row permutation if the view
// is dirty. While clean it is a no-op, so calling it defensively every frame
// is cheap.
func (t *Table) RebuildView() {
	if !t.dirty {
		return
	}

	start := time.Now()

	indices := make([]uint32, t.rowCount)
	for i := range indices {
		indices[i] = uint32(i)
	}

	indices = t.engine.Apply(indices, t.cols, t.colFilters)
	indices = t.engine.ApplyGlobal(indices, t.cols, t.globalQuery)
	if len(t.sortConfigs) > 0 {
		sorting.Sort(indices, t.cols, t.sortConfigs)
	}

	t.view = indices
	t.dirty = false

	elapsed := time.Since(start)
	t.metrics.RecordRebuild(t.rowCount, len(indices), elapsed)
	t.logger.LogRebuild(context.Background(), t.rowCount, len(indices), elapsed)
}

// ViewIndices returns the cached permutation of row indices in filtered,
// sorted order. The slice aliases internal state and is valid until the next
// RebuildView; callers must not modify it. Before the first RebuildView it
// is empty.
func (t *Table) ViewIndices() []uint32 {
	return t.view
}

// FilteredCount returns the number of rows surviving the active filters,
// per the last RebuildView.
func (t *Table) FilteredCount() int {
	return len(t.view)
}

// RowCount returns the raw (unfiltered) row count.
func (t *Table) RowCount() int {
	return t.rowCount
}

// Generation returns the data generation counter. It increments once per
// full ingestion and never on filter/sort/scroll changes; external caches
// holding column views key off it to detect that backing buffers moved.
func (t *Table) Generation() uint64 {
	return t.generation
}

// ColumnCount returns the number of materialized columns.
func (t *Table) ColumnCount() int {
	return len(t.cols)
}

// Columns returns the column definitions passed to SetColumns.
func (t *Table) Columns() []ColumnDef {
	return t.defs
}

// ColumnType returns the type of the column at idx.
// The second return value is false if idx is out of range.
func (t *Table) ColumnType(idx int) (column.Type, bool) {
	if idx < 0 || idx >= len(t.cols) {
		return 0, false
	}
	return t.cols[idx].Type(), true
}

// Float64View returns the dense numeric backing slice of a Float64 or Bool
// column for zero-copy consumption. The slice is valid only until the next
// ingestion; consumers must re-fetch after Generation changes. String
// columns (and out-of-range indexes) return nil, false.
func (t *Table) Float64View(idx int) ([]float64, bool) {
	if idx < 0 || idx >= len(t.cols) {
		return nil, false
	}
	return t.cols[idx].Float64s()
}

// ValueAt returns the typed cell at (row, col), resolving interned strings
// and mapping NaN to null. row is a raw row index, e.g. an entry of
// ViewIndices. Out-of-range access is a programmer error and panics.
func (t *Table) ValueAt(row, col int) column.Value {
	return t.cols[col].Value(row)
}

// Window computes the render range for the given scroll offset over the
// current filtered row count. It does not rebuild the view; call RebuildView
// (or Query) first after mutations.
func (t *Table) Window(scrollTop float64) window.VirtualSlice {
	return window.Compute(window.ScrollState{
		ScrollTop:      scrollTop,
		ViewportHeight: t.viewportHeight,
		RowHeight:      t.rowHeight,
		TotalRows:      len(t.view),
		Overscan:       t.overscan,
		PinnedTop:      t.pinnedTop,
		PinnedBottom:   t.pinnedBottom,
	})
}

// Query is the per-frame entry point: it rebuilds the view if dirty, then
// computes the window for the given scroll offset.
func (t *Table) Query(scrollTop float64) Result {
	start := time.Now()

	t.RebuildView()
	slice := t.Window(scrollTop)

	t.metrics.RecordQuery(time.Since(start))
	t.logger.LogQuery(context.Background(), scrollTop, slice.StartIndex, slice.EndIndex)

	return Result{
		TotalCount:    t.rowCount,
		FilteredCount: len(t.view),
		Slice:         slice,
	}
}
