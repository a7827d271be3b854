// api_float.go provides the floating-point formatting entry points of the
// C ABI. The checked variants handle NaN and the infinities; the finite
// variants require the caller to pass finite values and in exchange skip
// that branch.
package main

/*
#include <stdint.h>
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	numfmt "github.com/enerqi/odin-num-format"
)

// -----------------------------------------------------------------------------
// Checked Float Formatting
// -----------------------------------------------------------------------------

//export numfmt_format_f64
func numfmt_format_f64(value C.double, buf *C.uint8_t, bufLen C.size_t) C.size_t {
	return C.size_t(numfmt.FormatFloat64(float64(value), unsafe.Pointer(buf), uintptr(bufLen)))
}

//export numfmt_format_f32
func numfmt_format_f32(value C.float, buf *C.uint8_t, bufLen C.size_t) C.size_t {
	return C.size_t(numfmt.FormatFloat32(float32(value), unsafe.Pointer(buf), uintptr(bufLen)))
}

// -----------------------------------------------------------------------------
// Finite-Only Float Formatting
// -----------------------------------------------------------------------------

//export numfmt_format_finite_f64
func numfmt_format_finite_f64(value C.double, buf *C.uint8_t, bufLen C.size_t) C.size_t {
	return C.size_t(numfmt.FormatFiniteFloat64(float64(value), unsafe.Pointer(buf), uintptr(bufLen)))
}

//export numfmt_format_finite_f32
func numfmt_format_finite_f32(value C.float, buf *C.uint8_t, bufLen C.size_t) C.size_t {
	return C.size_t(numfmt.FormatFiniteFloat32(float32(value), unsafe.Pointer(buf), uintptr(bufLen)))
}
