package itoa

import (
	"math"
	"strconv"
	"testing"
	"unsafe"
)

func TestAppendInt64(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-42, "-42"},
		{1000000, "1000000"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, tt := range tests {
		var b Buffer
		if got := string(b.AppendInt64(tt.in)); got != tt.want {
			t.Errorf("AppendInt64(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppendUint64(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{9999999999, "9999999999"},
		{math.MaxUint64, "18446744073709551615"},
	}
	for _, tt := range tests {
		var b Buffer
		if got := string(b.AppendUint64(tt.in)); got != tt.want {
			t.Errorf("AppendUint64(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppendInt32(t *testing.T) {
	tests := []struct {
		in   int32
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-42, "-42"},
		{math.MaxInt32, "2147483647"},
		{math.MinInt32, "-2147483648"},
	}
	for _, tt := range tests {
		var b Buffer
		if got := string(b.AppendInt32(tt.in)); got != tt.want {
			t.Errorf("AppendInt32(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppendUint32(t *testing.T) {
	tests := []struct {
		in   uint32
		want string
	}{
		{0, "0"},
		{42, "42"},
		{math.MaxUint32, "4294967295"},
	}
	for _, tt := range tests {
		var b Buffer
		if got := string(b.AppendUint32(tt.in)); got != tt.want {
			t.Errorf("AppendUint32(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 7, -7, 1 << 40, -(1 << 40), math.MaxInt64, math.MinInt64} {
		var b Buffer
		out := b.AppendInt64(v)
		parsed, err := strconv.ParseInt(string(out), 10, 64)
		if err != nil || parsed != v {
			t.Errorf("round trip: %d -> %q -> %d, %v", v, out, parsed, err)
		}
	}
}

func TestOutputAliasesBuffer(t *testing.T) {
	var b Buffer
	out := b.AppendInt64(math.MinInt64)
	if unsafe.Pointer(unsafe.SliceData(out)) != unsafe.Pointer(&b.bytes[0]) {
		t.Error("output does not alias the scratch buffer")
	}
	if len(out) > BufferSize {
		t.Errorf("output length %d exceeds BufferSize %d", len(out), BufferSize)
	}
}
