package gridcore

import (
	"errors"
	"fmt"
)

var (
	// ErrNoIngestion is returned when a column setter or Finalize is called
	// without a preceding Init.
	ErrNoIngestion = errors.New("no ingestion in progress")
)

// ErrLengthMismatch indicates a column payload whose length does not match
// the declared row count, or an ID slice whose values exceed the supplied
// unique strings.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrLengthMismatch) Unwrap() error { return e.cause }

// ErrColumnOutOfRange indicates a column index outside the table's schema.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrColumnOutOfRange struct {
	Column  int
	Columns int
	cause   error
}

func (e *ErrColumnOutOfRange) Error() string {
	return fmt.Sprintf("column out of range: %d (have %d columns)", e.Column, e.Columns)
}

func (e *ErrColumnOutOfRange) Unwrap() error { return e.cause }

// ErrInvalidID indicates an intern ID referencing a string that was not
// supplied during direct ingestion.
type ErrInvalidID struct {
	ID     uint32
	Unique int
}

func (e *ErrInvalidID) Error() string {
	return fmt.Sprintf("invalid intern id: %d (have %d unique strings)", e.ID, e.Unique)
}
