// Package intern provides a flat-arena string intern table.
//
// Instead of holding one heap allocation per distinct string, the table
// appends string bytes to a single growable arena and addresses them through
// a dense (offset, length) span list indexed by intern ID. IDs are assigned
// sequentially in first-seen order, starting at 0. The string→ID lookup map
// is used on the write path only; resolution never touches it.
package intern

import (
	"unsafe"

	"github.com/hupe1980/gridcore/internal/conv"
)

type span struct {
	off uint32
	len uint32
}

// Table deduplicates strings into compact integer IDs.
//
// The table grows monotonically; there is no deletion. It is not safe for
// concurrent use.
type Table struct {
	arena  []byte
	spans  []span
	lookup map[string]uint32
}

// New creates an empty intern table.
func New() *Table {
	return &Table{
		lookup: make(map[string]uint32),
	}
}

// NewWithCapacity creates an intern table pre-sized for the expected number
// of distinct strings and total arena bytes.
func NewWithCapacity(strings, bytes int) *Table {
	return &Table{
		arena:  make([]byte, 0, bytes),
		spans:  make([]span, 0, strings),
		lookup: make(map[string]uint32, strings),
	}
}

// Intern returns the ID for s, assigning the next sequential ID if s has not
// been seen before. Interning the same string twice returns the same ID.
//
// The arena is addressed with 32-bit offsets; interning more than 4 GiB of
// distinct string data panics.
func (t *Table) Intern(s string) uint32 {
	if id, ok := t.lookup[s]; ok {
		return id
	}

	id := uint32(len(t.spans))
	off, err := conv.IntToUint32(len(t.arena))
	if err != nil {
		panic(err)
	}
	t.arena = append(t.arena, s...)
	t.spans = append(t.spans, span{off: off, len: uint32(len(s))})
	t.lookup[s] = id

	return id
}

// LookupID returns the ID for s without interning it.
// The second return value is false if s has never been interned.
func (t *Table) LookupID(s string) (uint32, bool) {
	id, ok := t.lookup[s]
	return id, ok
}

// Resolve returns the string for a previously returned intern ID.
//
// The returned string aliases the arena; it stays valid because interned
// bytes are never mutated or released. Passing an ID that was not produced
// by this table's Intern is a programmer error and panics.
func (t *Table) Resolve(id uint32) string {
	sp := t.spans[id]
	if sp.len == 0 {
		return ""
	}
	// Zero-copy view into the arena. Safe: the spanned bytes are immutable
	// for the lifetime of the table, and arena growth via append leaves old
	// backing arrays intact for outstanding strings.
	return unsafe.String(&t.arena[sp.off], sp.len)
}

// Len returns the number of distinct interned strings.
func (t *Table) Len() int {
	return len(t.spans)
}

// IsEmpty reports whether no strings have been interned.
func (t *Table) IsEmpty() bool {
	return len(t.spans) == 0
}

// ArenaSize returns the number of bytes held by the arena.
func (t *Table) ArenaSize() int {
	return len(t.arena)
}
