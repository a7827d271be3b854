// Package itoa renders integers as minimal-digit decimal text inside a
// caller-provided scratch Buffer. Unlike the float formatter there are no
// special values and no static literals: every span returned aliases the
// Buffer it was formatted into.
package itoa

import "strconv"

// BufferSize is the scratch size used for every integer width. It covers
// the longest signed 128-bit decimal representation, so narrower widths
// share one minimum instead of carrying per-width bounds.
const BufferSize = 40

// Buffer is write-only scratch space for one formatting call.
type Buffer struct {
	bytes [BufferSize]byte
}

// AppendInt64 renders v into b and returns the aliasing span.
func (b *Buffer) AppendInt64(v int64) []byte {
	return strconv.AppendInt(b.bytes[:0], v, 10)
}

// AppendUint64 renders v into b and returns the aliasing span.
func (b *Buffer) AppendUint64(v uint64) []byte {
	return strconv.AppendUint(b.bytes[:0], v, 10)
}

// AppendInt32 renders v into b and returns the aliasing span.
func (b *Buffer) AppendInt32(v int32) []byte {
	return strconv.AppendInt(b.bytes[:0], int64(v), 10)
}

// AppendUint32 renders v into b and returns the aliasing span.
func (b *Buffer) AppendUint32(v uint32) []byte {
	return strconv.AppendUint(b.bytes[:0], uint64(v), 10)
}
