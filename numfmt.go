package numfmt

import (
	"unsafe"

	"github.com/enerqi/odin-num-format/internal/itoa"
	"github.com/enerqi/odin-num-format/internal/zmij"
)

// Minimum destination lengths for guaranteed success. The destination is
// reinterpreted as the formatter's scratch type, so the minimum is the
// scratch size itself, not the longest possible rendering.
const (
	// MinFloatBufLen covers every float64 and float32 rendering
	// including sign, 17 significant digits and exponent.
	MinFloatBufLen = zmij.BufferSize

	// MinIntBufLen covers the longest signed 128-bit decimal and is
	// used uniformly for all four integer widths.
	MinIntBufLen = itoa.BufferSize
)

// FormatFloat64 writes the shortest round-trip decimal text for v into the
// dstLen bytes at dst, handling NaN and the infinities. It returns the number
// of bytes written, or 0 if dst is nil or dstLen < MinFloatBufLen, in
// which case nothing is written.
func FormatFloat64(v float64, dst unsafe.Pointer, dstLen uintptr) uintptr {
	if dst == nil || dstLen < MinFloatBufLen {
		return 0
	}
	// Digit generation lands directly in the caller's memory: the
	// destination doubles as the formatter's scratch buffer.
	out := (*zmij.Buffer)(dst).Format(v)
	return deliver(dst, out)
}

// FormatFloat32 is FormatFloat64 for float32 values. The minimum
// destination length is the same.
func FormatFloat32(v float32, dst unsafe.Pointer, dstLen uintptr) uintptr {
	if dst == nil || dstLen < MinFloatBufLen {
		return 0
	}
	out := (*zmij.Buffer)(dst).Format32(v)
	return deliver(dst, out)
}

// FormatFiniteFloat64 is FormatFloat64 without the non-finite branch. The
// caller guarantees v is finite. Violating that precondition yields
// unspecified text but never an out-of-bounds write or a panic.
func FormatFiniteFloat64(v float64, dst unsafe.Pointer, dstLen uintptr) uintptr {
	if dst == nil || dstLen < MinFloatBufLen {
		return 0
	}
	out := (*zmij.Buffer)(dst).FormatFinite(v)
	return deliver(dst, out)
}

// FormatFiniteFloat32 is FormatFiniteFloat64 for float32 values.
func FormatFiniteFloat32(v float32, dst unsafe.Pointer, dstLen uintptr) uintptr {
	if dst == nil || dstLen < MinFloatBufLen {
		return 0
	}
	out := (*zmij.Buffer)(dst).FormatFinite32(v)
	return deliver(dst, out)
}

// FormatInt64 writes the decimal text for v into the dstLen bytes at dst.
// It returns the number of bytes written, or 0 if dst is nil or
// dstLen < MinIntBufLen, in which case nothing is written.
func FormatInt64(v int64, dst unsafe.Pointer, dstLen uintptr) uintptr {
	if dst == nil || dstLen < MinIntBufLen {
		return 0
	}
	out := (*itoa.Buffer)(dst).AppendInt64(v)
	return deliver(dst, out)
}

// FormatUint64 is FormatInt64 for unsigned values.
func FormatUint64(v uint64, dst unsafe.Pointer, dstLen uintptr) uintptr {
	if dst == nil || dstLen < MinIntBufLen {
		return 0
	}
	out := (*itoa.Buffer)(dst).AppendUint64(v)
	return deliver(dst, out)
}

// FormatInt32 is FormatInt64 for 32-bit values. The minimum destination
// length is the same.
func FormatInt32(v int32, dst unsafe.Pointer, dstLen uintptr) uintptr {
	if dst == nil || dstLen < MinIntBufLen {
		return 0
	}
	out := (*itoa.Buffer)(dst).AppendInt32(v)
	return deliver(dst, out)
}

// FormatUint32 is FormatInt32 for unsigned values.
func FormatUint32(v uint32, dst unsafe.Pointer, dstLen uintptr) uintptr {
	if dst == nil || dstLen < MinIntBufLen {
		return 0
	}
	out := (*itoa.Buffer)(dst).AppendUint32(v)
	return deliver(dst, out)
}

// deliver finishes a formatting call. The formatters write finite and
// integer results in place, so the common case is a length return with no
// copy. A span whose data pointer differs from dst is one of the static
// non-finite literals; those are copied in. Go's copy has memmove
// semantics, so a literal that ever ends up inside the destination range
// would still be copied correctly.
func deliver(dst unsafe.Pointer, out []byte) uintptr {
	if unsafe.Pointer(unsafe.SliceData(out)) != dst {
		copy(unsafe.Slice((*byte)(dst), len(out)), out)
	}
	return uintptr(len(out))
}
