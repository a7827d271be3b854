// Package numfmt converts numeric values to decimal text directly inside
// caller-supplied memory.
//
// # Overview
//
// numfmt is a small formatting boundary designed to be callable from
// foreign code. It provides:
//
//   - Shortest round-trip float formatting (float64 and float32)
//   - Minimal-digit decimal integer formatting (four width/signedness
//     combinations)
//   - Zero heap allocation: digits are generated in the caller's buffer
//   - A single silent failure mode: a 0 return with the buffer untouched
//
// # Buffer contract
//
// Every operation takes a destination as a (pointer, length) pair and
// returns the number of bytes written. A nil pointer, or a length below
// the per-family minimum ([MinFloatBufLen] for floats, [MinIntBufLen] for
// integers), returns 0 before anything is written. A non-zero return n
// guarantees 0 < n <= length and that the first n bytes are ASCII decimal
// text. The buffer is borrowed only for the duration of the call and is
// never written past its length.
//
// # Quick start
//
//	import numfmt "github.com/enerqi/odin-num-format"
//
//	func main() {
//	    var buf [numfmt.MinFloatBufLen]byte
//	    n := numfmt.PutFloat64(buf[:], 123456789.0)
//	    fmt.Println(string(buf[:n])) // "123456789.0"
//	}
//
// The Put functions are span adapters over the pointer-based Format
// functions; foreign callers use the latter (or the C ABI in the c/
// package, built with -buildmode=c-shared).
//
// # Float text
//
// Finite floats render with the fewest digits that parse back to the
// identical value. Integer-valued floats keep a trailing ".0" and
// negative zero renders as "-0.0". Magnitudes outside the formatter's
// fixed-notation window switch to exponential notation. The checked
// variants map NaN, positive and negative infinity to "NaN", "inf" and
// "-inf"; the finite-only variants skip that branch and require the
// caller to pass finite values.
//
// # Concurrency
//
// All operations are stateless and reentrant. Concurrent calls are safe
// as long as each call uses its own, non-aliased destination buffer.
package numfmt
