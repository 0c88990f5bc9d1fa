package pack

import (
	"encoding/binary"
	"fmt"
)

// Scalar is the set of element types a RowBuffer can hold. Each maps to a
// single-channel texel component on the GPU.
type Scalar interface {
	~uint16 | ~uint32 | ~float32
}

// Range is a half-open range [Start, End) inside a RowBuffer.
type Range struct {
	Start, End int
}

// Len returns the number of slots in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Div converts a range of scalars into a range of n-scalar elements.
// Both ends must be multiples of n.
func (r Range) Div(n int) Range {
	return Range{Start: r.Start / n, End: r.End / n}
}

// RowBuffer is a growable, never-shrinking arena whose length is always a
// multiple of its row width.
//
// RowBuffer is not safe for concurrent use.
type RowBuffer[T Scalar] struct {
	data     []T
	used     int
	rowWidth int
}

// NewRowBuffer creates an empty buffer whose rows hold rowWidth scalars.
func NewRowBuffer[T Scalar](rowWidth int) (*RowBuffer[T], error) {
	if rowWidth <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRowWidth, rowWidth)
	}
	return &RowBuffer[T]{rowWidth: rowWidth}, nil
}

// Append writes vals after the used portion of the buffer, adding one row
// each time the buffer is full, and returns the range written.
func (b *RowBuffer[T]) Append(vals ...T) Range {
	start := b.used
	for _, v := range vals {
		if b.used == len(b.data) {
			b.grow()
		}
		b.data[b.used] = v
		b.used++
	}
	return Range{Start: start, End: b.used}
}

func (b *RowBuffer[T]) grow() {
	b.data = append(b.data, make([]T, b.rowWidth)...)
}

// RowWidth returns the number of scalars per row.
func (b *RowBuffer[T]) RowWidth() int {
	return b.rowWidth
}

// Len returns the allocated length, a multiple of RowWidth.
func (b *RowBuffer[T]) Len() int {
	return len(b.data)
}

// Used returns the number of scalars written so far.
func (b *RowBuffer[T]) Used() int {
	return b.used
}

// Rows returns the number of allocated rows.
func (b *RowBuffer[T]) Rows() int {
	return len(b.data) / b.rowWidth
}

// Data returns the whole allocated buffer, including the unused tail of the
// last row. The slice aliases the buffer and is invalidated by Append.
func (b *RowBuffer[T]) Data() []T {
	return b.data
}

// Slice returns the scalars in r. The slice aliases the buffer.
func (b *RowBuffer[T]) Slice(r Range) []T {
	return b.data[r.Start:r.End]
}

// Bytes serializes the whole allocated buffer in little-endian order, ready
// for a texture upload of RowWidth x Rows() components.
func (b *RowBuffer[T]) Bytes() []byte {
	if len(b.data) == 0 {
		return nil
	}
	buf := make([]byte, 0, binary.Size(b.data))
	buf, err := binary.Append(buf, binary.LittleEndian, b.data)
	if err != nil {
		// Scalar only admits fixed-size types.
		panic("pack: " + err.Error())
	}
	return buf
}
