// Package gridcore provides the compute core for virtualized, interactively
// filterable and sortable data grids.
//
// Gridcore stores a table as typed columns (dense float64 with NaN as null,
// bool sharing the numeric layout, interned strings), evaluates column and
// global filters, sorts by multiple keys, and turns a scroll offset into the
// exact row range to render. It is designed to run once per scroll or input
// frame with minimal allocation.
//
// # Quick Start
//
//	tbl := gridcore.New(gridcore.WithScrollConfig(40, 400, 5))
//	tbl.SetColumns([]gridcore.ColumnDef{
//	    {Key: "name", Header: "Name", Sortable: true, Filterable: true},
//	    {Key: "age", Header: "Age", Sortable: true, Filterable: true},
//	})
//	tbl.IngestRows([][]any{
//	    {"Alice", 30.0},
//	    {"Bob", 25.0},
//	})
//
//	tbl.SetSort([]sorting.SortConfig{{Column: 1, Direction: sorting.Ascending}})
//	res := tbl.Query(scrollTop)
//	rows := tbl.ViewIndices()[res.Slice.StartIndex:res.Slice.EndIndex]
//
// # Rebuild Model
//
// The filtered and sorted row order is a cached permutation behind a dirty
// flag: config setters mark the view dirty, RebuildView recomputes it only
// when dirty, and reads never recompute implicitly. A separate generation
// counter bumps once per data ingestion so external caches holding zero-copy
// column views know when backing buffers moved.
//
// # Concurrency
//
// A Table is single-writer and provides no internal synchronization. Hosts
// calling from multiple goroutines must serialize access externally.
package gridcore
