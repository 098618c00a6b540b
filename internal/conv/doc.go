// Package conv provides safe integer type conversion utilities.
//
// Row indices and intern IDs are uint32 internally but surface as int in the
// public API; these helpers perform the bounds-checked crossings between the
// two.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
