// Package main exports the numfmt formatting operations as a C shared library.
// Build with: go build -buildmode=c-shared -o libnumfmt.so .
//
// The ABI is stateless: each call takes (value, destination pointer,
// destination length) and returns the byte count written, 0 on failure.
// Nothing persists between invocations and no errors cross the boundary.
package main

/*
#include <stdint.h>
#include <stddef.h>
*/
import "C"

import (
	numfmt "github.com/enerqi/odin-num-format"
)

// -----------------------------------------------------------------------------
// Buffer Size Constants
// -----------------------------------------------------------------------------

//export numfmt_min_float_len
func numfmt_min_float_len() C.size_t {
	return C.size_t(numfmt.MinFloatBufLen)
}

//export numfmt_min_int_len
func numfmt_min_int_len() C.size_t {
	return C.size_t(numfmt.MinIntBufLen)
}

// -----------------------------------------------------------------------------
// Main (required for c-shared build)
// -----------------------------------------------------------------------------

func main() {}
