package parser

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/dhamidi/clex/span"
)

func TestParseInt(t *testing.T) {
	zeros := strings.Repeat
	tests := []struct {
		input    string
		negative bool
		value    uint64
		err      error
	}{
		// binary
		{"0b" + zeros("0", 64), false, 0, nil},
		{"-0b" + zeros("0", 64), true, 0, nil},
		{"-0b1" + zeros("0", 63), true, 1 << 63, nil},
		{"0b0" + zeros("1", 63), false, math.MaxInt64, nil},
		{"0b" + zeros("1", 64), false, math.MaxUint64, nil},
		{"-0b1" + zeros("0", 62) + "1", false, 0, ErrOverflow},
		{"0b1" + zeros("0", 64), false, 0, ErrOverflow},
		{"0B101", false, 5, nil},

		// octal
		{"00000000000000000000000", false, 0, nil},
		{"-00000000000000000000000", true, 0, nil},
		{"-01000000000000000000000", true, 1 << 63, nil},
		{"00777777777777777777777", false, math.MaxInt64, nil},
		{"01777777777777777777777", false, math.MaxUint64, nil},
		{"-01000000000000000000001", false, 0, ErrOverflow},
		{"02000000000000000000000", false, 0, ErrOverflow},
		{"0123", false, 0123, nil},

		// decimal
		{"0", false, 0, nil},
		{"-0", true, 0, nil},
		{"-9223372036854775808", true, 1 << 63, nil},
		{"9223372036854775807", false, math.MaxInt64, nil},
		{"18446744073709551615", false, math.MaxUint64, nil},
		{"-9223372036854775809", false, 0, ErrOverflow},
		{"18446744073709551616", false, 0, ErrOverflow},
		{"99999999999999999999999", false, 0, ErrOverflow},

		// hexadecimal
		{"0x0", false, 0, nil},
		{"-0x0", true, 0, nil},
		{"-0x8000000000000000", true, 1 << 63, nil},
		{"0x7FFFFFFFFFFFFFFF", false, math.MaxInt64, nil},
		{"0xFFFFFFFFFFFFFFFF", false, math.MaxUint64, nil},
		{"0xffffffffffffffff", false, math.MaxUint64, nil},
		{"-0x8000000000000001", false, 0, ErrOverflow},
		{"0x10000000000000000", false, 0, ErrOverflow},

		// suffixes
		{"42u", false, 42, nil},
		{"42ul", false, 42, nil},
		{"0x1Flu", false, 31, nil},
		{"0l", false, 0, nil},

		// malformed
		{"asdfasdf", false, 0, ErrMalformedLiteral},
		{"", false, 0, ErrMalformedLiteral},
		{"-", false, 0, ErrMalformedLiteral},
		{"0x", false, 0, ErrMalformedLiteral},
		{"0b2", false, 0, ErrMalformedLiteral},
		{"089", false, 0, ErrMalformedLiteral},
		{"12a", false, 0, ErrMalformedLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			src := []byte(tt.input)
			got, err := ParseInt(src, span.New(0, len(src)))
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("ParseInt(%q) error = %v, want %v", tt.input, err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInt(%q): %v", tt.input, err)
			}
			if got.Negative != tt.negative || got.Value != tt.value {
				t.Errorf("ParseInt(%q) = %v (negative %v), want %d (negative %v)", tt.input, got, got.Negative, tt.value, tt.negative)
			}
			if got.Span != span.New(0, len(src)) {
				t.Errorf("Span = %v", got.Span)
			}
		})
	}
}

func TestPIntInt64(t *testing.T) {
	tests := []struct {
		v    PInt
		want int64
		str  string
	}{
		{PInt{Negative: true, Value: 1 << 63}, math.MinInt64, "-9223372036854775808"},
		{PInt{Value: math.MaxInt64}, math.MaxInt64, "9223372036854775807"},
		{PInt{Negative: true, Value: 5}, -5, "-5"},
		{PInt{Value: math.MaxUint64}, -1, "18446744073709551615"},
		{PInt{Negative: true}, 0, "-0"},
	}
	for _, tt := range tests {
		if got := tt.v.Int64(); got != tt.want {
			t.Errorf("%v.Int64() = %d, want %d", tt.v, got, tt.want)
		}
		if got := tt.v.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
	}
}

func TestTakeIntValue(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		ok    bool
		pos   int
	}{
		{"-0x8000000000000000;", math.MinInt64, true, 19},
		{"0123 rest", 0123, true, 4},
		{"42u", 42, true, 3},
		{"18446744073709551616", 0, false, 0},
		{"123abc", 0, false, 0},
		{"0x1Fz", 0, false, 0},
		{"- 1", 0, false, 0},
		{"asdfasdf", 0, false, 0},
	}
	for _, tt := range tests {
		p := newParser(tt.input)
		v, ok := p.TakeIntValue()
		if ok != tt.ok || (ok && v.Int64() != tt.want) {
			t.Errorf("TakeIntValue(%q) = %v, %v, want %d, %v", tt.input, v, ok, tt.want, tt.ok)
		}
		if p.Pos() != tt.pos || p.Depth() != 0 {
			t.Errorf("TakeIntValue(%q): Pos() = %d, Depth() = %d, want %d, 0", tt.input, p.Pos(), p.Depth(), tt.pos)
		}
	}
}

func TestParseIntOfLoadedSpan(t *testing.T) {
	p := newParser("x = 0x10;")
	p.TakeRange(0, 4)
	s, ok := p.TakeInt()
	if !ok {
		t.Fatal("TakeInt() failed")
	}
	v, err := p.ParseInt(s)
	if err != nil || v.Value != 16 {
		t.Errorf("ParseInt(%v) = %v, %v", s, v, err)
	}
}
