package numfmt_test

import (
	"math"
	"testing"
	"unsafe"

	numfmt "github.com/enerqi/odin-num-format"
)

func Benchmark_FormatFloat64(b *testing.B) {
	var buf [numfmt.MinFloatBufLen]byte
	p := unsafe.Pointer(&buf[0])
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = numfmt.FormatFloat64(1234.5678, p, uintptr(len(buf)))
	}
}

func Benchmark_FormatFiniteFloat64(b *testing.B) {
	var buf [numfmt.MinFloatBufLen]byte
	p := unsafe.Pointer(&buf[0])
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = numfmt.FormatFiniteFloat64(1234.5678, p, uintptr(len(buf)))
	}
}

func Benchmark_FormatInt64(b *testing.B) {
	var buf [numfmt.MinIntBufLen]byte
	p := unsafe.Pointer(&buf[0])
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = numfmt.FormatInt64(int64(i)-1<<40, p, uintptr(len(buf)))
	}
}

func Benchmark_FormatUint64(b *testing.B) {
	var buf [numfmt.MinIntBufLen]byte
	p := unsafe.Pointer(&buf[0])
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = numfmt.FormatUint64(uint64(i), p, uintptr(len(buf)))
	}
}

func Benchmark_PutFloat64(b *testing.B) {
	buf := make([]byte, numfmt.MinFloatBufLen)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = numfmt.PutFloat64(buf, 3.141592653589793)
	}
}

func Benchmark_PutFloat64_NaN(b *testing.B) {
	buf := make([]byte, numfmt.MinFloatBufLen)
	nan := math.NaN()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = numfmt.PutFloat64(buf, nan)
	}
}
