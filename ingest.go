package gridcore

import (
	"context"
	"time"

	"github.com/goccy/go-json"

	"github.com/hupe1980/gridcore/column"
	"github.com/hupe1980/gridcore/intern"
)

// SetColumns replaces the column definitions and clears all row data.
// The next ingestion materializes columns against the new defs. Because
// existing column buffers are dropped, the generation counter bumps.
func (t *Table) SetColumns(defs []ColumnDef) {
	t.defs = defs
	t.cols = nil
	t.rowCount = 0
	t.view = nil
	t.generation++
	t.dirty = true
}

// IngestRows replaces all columns from row-major heterogeneous cells.
//
// Each column's type is detected from its first non-null cell (number,
// bool, otherwise string; all-null defaults to string); cells that do not
// fit the detected type become null. The column count comes from SetColumns,
// falling back to the widest row when no defs are set.
func (t *Table) IngestRows(rows [][]any) {
	start := time.Now()

	colCount := len(t.defs)
	if colCount == 0 {
		for _, row := range rows {
			colCount = max(colCount, len(row))
		}
	}

	t.cols = column.Build(rows, colCount)
	t.rowCount = len(rows)
	t.generation++
	t.dirty = true

	elapsed := time.Since(start)
	t.metrics.RecordIngest(len(rows), elapsed, nil)
	t.logger.LogIngest(context.Background(), len(rows), colCount, nil)
}

// IngestJSON decodes a JSON array of row arrays and ingests it via
// IngestRows. Numbers decode as float64, so numeric columns detect as
// Float64 directly.
func (t *Table) IngestJSON(data []byte) error {
	var rows [][]any
	if err := json.Unmarshal(data, &rows); err != nil {
		t.metrics.RecordIngest(0, 0, err)
		t.logger.LogIngest(context.Background(), 0, 0, err)
		return err
	}

	t.IngestRows(rows)

	return nil
}

// staging holds columns under construction by the direct ingestion path
// between Init and Finalize.
type staging struct {
	cols     []column.Column
	rowCount int
}

// Init begins a direct (pre-typed) ingestion of colCount columns and
// rowCount rows. Columns start as all-null Float64 placeholders; overwrite
// them with the SetColumn* setters, then commit with Finalize. The table's
// visible state is untouched until Finalize.
func (t *Table) Init(colCount, rowCount int) {
	cols := make([]column.Column, colCount)
	for i := range cols {
		cols[i] = column.NullFloat64(rowCount)
	}
	t.staging = &staging{cols: cols, rowCount: rowCount}
}

// SetColumnFloat64 stages a Float64 column. values must have exactly the
// row count declared to Init; the slice is not copied.
func (t *Table) SetColumnFloat64(idx int, values []float64) error {
	if err := t.checkStagedColumn(idx, len(values)); err != nil {
		return err
	}
	t.staging.cols[idx] = column.NewFloat64(values)
	return nil
}

// SetColumnBool stages a Bool column given as 0.0/1.0/NaN values.
func (t *Table) SetColumnBool(idx int, values []float64) error {
	if err := t.checkStagedColumn(idx, len(values)); err != nil {
		return err
	}
	t.staging.cols[idx] = column.NewBool(values)
	return nil
}

// SetColumnStrings stages a String column from its distinct values plus a
// per-row index into them. The strings are re-interned internally so the
// column carries its own table with the usual dense-ID invariants; ids
// referencing beyond unique are rejected.
func (t *Table) SetColumnStrings(idx int, unique []string, ids []uint32) error {
	if err := t.checkStagedColumn(idx, len(ids)); err != nil {
		return err
	}

	var arenaBytes int
	for _, s := range unique {
		arenaBytes += len(s)
	}

	table := intern.NewWithCapacity(len(unique), arenaBytes)
	remap := make([]uint32, len(unique))
	for i, s := range unique {
		remap[i] = table.Intern(s)
	}

	rowIDs := make([]uint32, len(ids))
	for row, id := range ids {
		if int(id) >= len(unique) {
			return &ErrInvalidID{ID: id, Unique: len(unique)}
		}
		rowIDs[row] = remap[id]
	}

	t.staging.cols[idx] = column.NewString(table, rowIDs)
	return nil
}

// Finalize commits a direct ingestion started by Init: the staged columns
// replace the table's data, the generation bumps, and the view is marked
// dirty. Returns ErrNoIngestion when no Init is in progress.
func (t *Table) Finalize() error {
	if t.staging == nil {
		return ErrNoIngestion
	}

	t.cols = t.staging.cols
	t.rowCount = t.staging.rowCount
	t.staging = nil
	t.generation++
	t.dirty = true

	t.metrics.RecordIngest(t.rowCount, 0, nil)
	t.logger.LogIngest(context.Background(), t.rowCount, len(t.cols), nil)

	return nil
}

func (t *Table) checkStagedColumn(idx, valueLen int) error {
	if t.staging == nil {
		return ErrNoIngestion
	}
	if idx < 0 || idx >= len(t.staging.cols) {
		return &ErrColumnOutOfRange{Column: idx, Columns: len(t.staging.cols)}
	}
	if valueLen != t.staging.rowCount {
		return &ErrLengthMismatch{Expected: t.staging.rowCount, Actual: valueLen}
	}
	return nil
}
