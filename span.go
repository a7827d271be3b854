package numfmt

import "unsafe"

// Span variants of the pointer entry points for Go callers that already
// hold a []byte. They share the pointer core's contract: 0 means the
// destination was too short (or empty) and nothing was written. All the
// unsafety stays inside the pointer core; these adapters only translate
// the slice into a (pointer, length) pair.

// PutFloat64 formats v into dst and returns the byte count, or 0 if
// len(dst) < MinFloatBufLen.
func PutFloat64(dst []byte, v float64) int {
	if len(dst) < MinFloatBufLen {
		return 0
	}
	return int(FormatFloat64(v, unsafe.Pointer(&dst[0]), uintptr(len(dst))))
}

// PutFloat32 formats v into dst and returns the byte count, or 0 if
// len(dst) < MinFloatBufLen.
func PutFloat32(dst []byte, v float32) int {
	if len(dst) < MinFloatBufLen {
		return 0
	}
	return int(FormatFloat32(v, unsafe.Pointer(&dst[0]), uintptr(len(dst))))
}

// PutFiniteFloat64 formats a caller-guaranteed finite v into dst.
func PutFiniteFloat64(dst []byte, v float64) int {
	if len(dst) < MinFloatBufLen {
		return 0
	}
	return int(FormatFiniteFloat64(v, unsafe.Pointer(&dst[0]), uintptr(len(dst))))
}

// PutFiniteFloat32 formats a caller-guaranteed finite v into dst.
func PutFiniteFloat32(dst []byte, v float32) int {
	if len(dst) < MinFloatBufLen {
		return 0
	}
	return int(FormatFiniteFloat32(v, unsafe.Pointer(&dst[0]), uintptr(len(dst))))
}

// PutInt64 formats v into dst and returns the byte count, or 0 if
// len(dst) < MinIntBufLen.
func PutInt64(dst []byte, v int64) int {
	if len(dst) < MinIntBufLen {
		return 0
	}
	return int(FormatInt64(v, unsafe.Pointer(&dst[0]), uintptr(len(dst))))
}

// PutUint64 formats v into dst and returns the byte count, or 0 if
// len(dst) < MinIntBufLen.
func PutUint64(dst []byte, v uint64) int {
	if len(dst) < MinIntBufLen {
		return 0
	}
	return int(FormatUint64(v, unsafe.Pointer(&dst[0]), uintptr(len(dst))))
}

// PutInt32 formats v into dst and returns the byte count, or 0 if
// len(dst) < MinIntBufLen.
func PutInt32(dst []byte, v int32) int {
	if len(dst) < MinIntBufLen {
		return 0
	}
	return int(FormatInt32(v, unsafe.Pointer(&dst[0]), uintptr(len(dst))))
}

// PutUint32 formats v into dst and returns the byte count, or 0 if
// len(dst) < MinIntBufLen.
func PutUint32(dst []byte, v uint32) int {
	if len(dst) < MinIntBufLen {
		return 0
	}
	return int(FormatUint32(v, unsafe.Pointer(&dst[0]), uintptr(len(dst))))
}
