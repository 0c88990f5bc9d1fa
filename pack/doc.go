// Package pack provides row-aligned packing buffers for curve data that is
// uploaded to the GPU as texture rows.
//
// A RowBuffer is a bump arena: data is only ever appended, its length is
// always a whole number of rows, and it grows by exactly one row whenever an
// append would run past the end. Callers receive Range handles (start and
// end offsets), never pointers, so the contents can be reallocated and
// re-uploaded freely.
//
// Up to RowWidth-1 trailing slots per buffer stay unused. This is the price
// of keeping every upload a whole rectangle of texels.
package pack
