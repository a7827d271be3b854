// api_int.go provides the integer formatting entry points of the C ABI.
// All four widths share the same minimum buffer length; see
// numfmt_min_int_len.
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
// Integer Formatting
// -----------------------------------------------------------------------------

//export numfmt_itoa_i64
func numfmt_itoa_i64(value C.int64_t, buf *C.uint8_t, bufLen C.size_t) C.size_t {
	return C.size_t(numfmt.FormatInt64(int64(value), unsafe.Pointer(buf), uintptr(bufLen)))
}

//export numfmt_itoa_u64
func numfmt_itoa_u64(value C.uint64_t, buf *C.uint8_t, bufLen C.size_t) C.size_t {
	return C.size_t(numfmt.FormatUint64(uint64(value), unsafe.Pointer(buf), uintptr(bufLen)))
}

//export numfmt_itoa_i32
func numfmt_itoa_i32(value C.int32_t, buf *C.uint8_t, bufLen C.size_t) C.size_t {
	return C.size_t(numfmt.FormatInt32(int32(value), unsafe.Pointer(buf), uintptr(bufLen)))
}

//export numfmt_itoa_u32
func numfmt_itoa_u32(value C.uint32_t, buf *C.uint8_t, bufLen C.size_t) C.size_t {
	return C.size_t(numfmt.FormatUint32(uint32(value), unsafe.Pointer(buf), uintptr(bufLen)))
}
