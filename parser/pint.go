package parser

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/dhamidi/clex/span"
)

// PInt is a decoded integer literal. Value holds the magnitude; a negative
// literal never has a magnitude above 1<<63.
type PInt struct {
	Span     span.Span
	Negative bool
	Value    uint64
}

// Int64 returns the two's complement value. Positive values above
// math.MaxInt64 wrap.
func (v PInt) Int64() int64 {
	if v.Negative {
		return -int64(v.Value)
	}
	return int64(v.Value)
}

func (v PInt) String() string {
	if v.Negative {
		return "-" + strconv.FormatUint(v.Value, 10)
	}
	return strconv.FormatUint(v.Value, 10)
}

const maxNegative = 1 << 63

// ParseInt decodes the integer literal covered by s in src. The base comes
// from the prefix: 0x and 0X for 16, 0b and 0B for 2, a leading 0 for 8,
// otherwise 10. A trailing u, l, ul or lu suffix is ignored.
func ParseInt(src []byte, s span.Span) (PInt, error) {
	if !s.Valid(len(src)) || s.Empty() {
		return PInt{}, fmt.Errorf("%w: empty integer", ErrMalformedLiteral)
	}
	text := s.Bytes(src)
	v := PInt{Span: s}

	i := 0
	if text[0] == '-' {
		v.Negative = true
		i++
	}
	text = trimIntSuffix(text)

	base := 10
	switch {
	case i >= len(text):
		return PInt{}, malformed(s, src)
	case text[i] == '0' && i+1 == len(text):
		return v, nil
	case text[i] == '0' && (text[i+1] == 'x' || text[i+1] == 'X'):
		base, i = 16, i+2
	case text[i] == '0' && (text[i+1] == 'b' || text[i+1] == 'B'):
		base, i = 2, i+2
	case text[i] == '0':
		base, i = 8, i+1
	}
	if i >= len(text) {
		return PInt{}, malformed(s, src)
	}

	var acc uint64
	for _, c := range text[i:] {
		d, ok := digitValue(c, base)
		if !ok {
			return PInt{}, malformed(s, src)
		}
		hi, lo := bits.Mul64(acc, uint64(base))
		if hi != 0 {
			return PInt{}, overflow(s, src)
		}
		sum, carry := bits.Add64(lo, uint64(d), 0)
		if carry != 0 {
			return PInt{}, overflow(s, src)
		}
		acc = sum
	}
	if v.Negative && acc > maxNegative {
		return PInt{}, overflow(s, src)
	}
	v.Value = acc
	return v, nil
}

// ParseInt decodes an integer literal of the loaded text.
func (p *Parser) ParseInt(s span.Span) (PInt, error) {
	return ParseInt(p.Source(), s)
}

func trimIntSuffix(text []byte) []byte {
	for _, suffix := range []string{"ul", "lu", "u", "l"} {
		n := len(text) - len(suffix)
		if n > 0 && string(text[n:]) == suffix {
			return text[:n]
		}
	}
	return text
}

func malformed(s span.Span, src []byte) error {
	return fmt.Errorf("%w: %q", ErrMalformedLiteral, s.Text(src))
}

func overflow(s span.Span, src []byte) error {
	return fmt.Errorf("%w: %q", ErrOverflow, s.Text(src))
}

// digitValue returns the value of c as a digit in base.
func digitValue(c byte, base int) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}
