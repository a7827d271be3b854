// Package zmij renders floating-point values as the shortest decimal text
// that parses back to the exact same value.
//
// All finite values are written into a caller-provided Buffer and the
// returned span aliases that Buffer. The three non-finite tokens are
// returned as static literals instead; callers that need the text inside
// their own memory must copy those.
package zmij

import (
	"math"
	"strconv"
)

// BufferSize is the scratch size sufficient for any float64 rendering,
// including sign, 17 significant digits, decimal point and exponent.
const BufferSize = 24

// Buffer is write-only scratch space for one formatting call. The zero
// value is ready to use; no initialization pass is needed because every
// byte the result covers is written by the call itself.
type Buffer struct {
	bytes [BufferSize]byte
}

// Static results for the non-finite inputs. These are the only spans
// Format returns that do not alias the Buffer.
var (
	litNaN    = []byte("NaN")
	litInf    = []byte("inf")
	litNegInf = []byte("-inf")
)

// Format renders v, handling NaN and the infinities.
func (b *Buffer) Format(v float64) []byte {
	if math.IsNaN(v) {
		return litNaN
	}
	if math.IsInf(v, 1) {
		return litInf
	}
	if math.IsInf(v, -1) {
		return litNegInf
	}
	return b.format(v, 64)
}

// Format32 renders v, handling NaN and the infinities.
func (b *Buffer) Format32(v float32) []byte {
	f := float64(v)
	if math.IsNaN(f) {
		return litNaN
	}
	if math.IsInf(f, 1) {
		return litInf
	}
	if math.IsInf(f, -1) {
		return litNegInf
	}
	return b.format(f, 32)
}

// FormatFinite renders v without checking for NaN or infinity. The caller
// guarantees v is finite; a non-finite v yields nonsense text but never
// reads or writes outside the Buffer.
func (b *Buffer) FormatFinite(v float64) []byte {
	return b.format(v, 64)
}

// FormatFinite32 is FormatFinite for float32 values.
func (b *Buffer) FormatFinite32(v float32) []byte {
	return b.format(float64(v), 32)
}

// Fixed notation is used while the decimal exponent stays inside
// [fixedExpMin, fixedExpMax]; everything else is rendered as d[.ddd]e±NN.
// The window is sized so the widest fixed rendering, sign included, is
// exactly BufferSize bytes: "-0." plus four zeros plus 17 digits.
const (
	fixedExpMin = -5
	fixedExpMax = 15
)

// format produces the shortest round-trip digits via strconv's binary to
// decimal conversion, then lays them out in b. bitSize is 32 or 64.
func (b *Buffer) format(v float64, bitSize int) []byte {
	// Shortest digits in the unambiguous d.dddde±dd form. The temporary
	// stays on the stack; the Buffer receives the final layout only.
	var tmp [32]byte
	e := strconv.AppendFloat(tmp[:0], v, 'e', -1, bitSize)

	i := 0
	neg := false
	if e[i] == '-' {
		neg = true
		i++
	}

	// Collect mantissa digits. Shortest float64 output has at most 17.
	var dig [17]byte
	n := 0
	dig[n] = e[i]
	n++
	i++
	if i < len(e) && e[i] == '.' {
		i++
		for i < len(e) && e[i] != 'e' {
			dig[n] = e[i]
			n++
			i++
		}
	}

	// Decimal exponent of the leading digit.
	exp := 0
	if i < len(e) && e[i] == 'e' {
		i++
		expNeg := e[i] == '-'
		i++
		for ; i < len(e); i++ {
			exp = exp*10 + int(e[i]-'0')
		}
		if expNeg {
			exp = -exp
		}
	}

	out := b.bytes[:0]
	if neg {
		out = append(out, '-')
	}
	switch {
	case exp >= 0 && exp <= fixedExpMax:
		intDigits := exp + 1
		if n <= intDigits {
			// Integer-valued: pad with zeros and keep a visible
			// decimal point so the text stays a float literal.
			out = append(out, dig[:n]...)
			for j := n; j < intDigits; j++ {
				out = append(out, '0')
			}
			out = append(out, '.', '0')
		} else {
			out = append(out, dig[:intDigits]...)
			out = append(out, '.')
			out = append(out, dig[intDigits:n]...)
		}
	case exp < 0 && exp >= fixedExpMin:
		out = append(out, '0', '.')
		for j := 0; j < -exp-1; j++ {
			out = append(out, '0')
		}
		out = append(out, dig[:n]...)
	default:
		out = append(out, dig[0])
		if n > 1 {
			out = append(out, '.')
			out = append(out, dig[1:n]...)
		}
		out = append(out, 'e')
		out = strconv.AppendInt(out, int64(exp), 10)
	}
	return out
}
