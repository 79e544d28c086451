package lexer

import (
	"testing"

	"github.com/dhamidi/clex/match"
)

// matchLen runs m over input and returns the consumed length or -1.
func matchLen(m match.Matcher, input string) int {
	return match.Run(m, []byte(input))
}

type ruleCase struct {
	input string
	want  int // consumed bytes, -1 for no match, full for len(input)
}

const full = -2

func runRuleCases(t *testing.T, name string, m match.Matcher, cases []ruleCase) {
	t.Helper()
	for _, tt := range cases {
		want := tt.want
		if want == full {
			want = len(tt.input)
		}
		t.Run(name+"/"+tt.input, func(t *testing.T) {
			if got := matchLen(m, tt.input); got != want {
				t.Errorf("%s(%q) = %d, want %d", name, tt.input, got, want)
			}
		})
	}
}

func TestIdentifier(t *testing.T) {
	runRuleCases(t, "Identifier", Identifier, []ruleCase{
		{"foo", full},
		{"_private", full},
		{"SCREAMING_CASE", full},
		{"with123Numbers", full},
		{"a1_b2 rest", 5},
		{"1abc", -1},
		{"$x", -1},
		{"", -1},
	})
}

func TestInt(t *testing.T) {
	runRuleCases(t, "Int", Int, []ruleCase{
		{"A", -1},
		{"", -1},
		{"- 1", -1},
		{"0b01010101", full},
		{"0B01010101", full},
		{"-0b01010101", full},
		{"-0B01010101", full},
		{"01234567", full},
		{"-01234567", full},
		{"0123", full},
		{"1234567890", full},
		{"-1234567890", full},
		{"01234567890", 8},
		{"-01234567890", 9},
		{"0x0123456789ABCDEF", full},
		{"0x0123456789abcdef", full},
		{"0X0123456789ABCDEF", full},
		{"-0X0123456789abcdef", full},
		{"-0x1235459ABCDEFlu", full},
		{"0", full},
		{"0u", full},
		{"42ul", full},
		{"42l;", 3},
		{"0x", 1},
		{"0b2", 1},
	})
}

func TestFloat(t *testing.T) {
	runRuleCases(t, "Float", Float, []ruleCase{
		{"123.0f", full},
		{".5", full},
		{"1.5e10", full},
		{"1.5E-3L", full},
		{"1e+9", full},
		{"7e3F", full},
		{"123", -1},
		{"1.", -1},
		{"1e", -1},
		{".", -1},
		{"3.14 rest", 4},
	})
}

func TestString(t *testing.T) {
	runRuleCases(t, "String", String, []ruleCase{
		{`"asdf"`, full},
		{`"asdf"suffix`, 6},
		{`"as\"df"`, full},
		{`"as\\df\"`, -1},
		{`""`, full},
		{`"unterminated`, -1},
		{`"\q is fine here"`, full},
	})
}

// The escape table mirrors the behavior of the strict string production.
func TestStrictString(t *testing.T) {
	runRuleCases(t, "StrictString", StrictString, []ruleCase{
		{`"asdf"suffix`, 6},
		{`"\'\"\?\\\a\b\f\n\r\t\v"suffix`, 24},
		{`"\00"suffix`, -1},
		{`"\000"suffix`, 6},
		{`"\0000"suffix`, -1},
		{`"\o{}"suffix`, -1},
		{`"\o{0}"suffix`, 7},
		{`"\o{7777777777777777777777}"suffix`, 28},
		{`"\o{080}"suffix`, -1},
		{`"\xZ"suffix`, -1},
		{`"\xA"suffix`, 5},
		{`"\x0123456789ABCDEFZ"suffix`, 21},
		{`"\u012"`, -1},
		{`"\u0123"`, full},
		{`"\u01234"`, -1},
		{`"\u{}"`, -1},
		{`"\u{0}"`, full},
		{`"\u{0123456789ABCDEF}"`, full},
		{`"\u{0123456789ABCDEFZ}"`, -1},
		{`"\U0123456"`, -1},
		{`"\U01234567"`, full},
		{`"\U012Q4567"`, -1},
		{`"\U012345678"`, -1},
		{`"\N{}"`, -1},
		{`"\N{a}"suffix`, 7},
		{`"\q"`, -1},
	})
}

func TestEscape(t *testing.T) {
	runRuleCases(t, "Escape", Escape, []ruleCase{
		{`\n`, full},
		{`\'`, full},
		{`\123`, full},
		{`\x{1F}`, full},
		{`\xFF`, full},
		{`\N{LATIN SMALL LETTER A}`, full},
		{`\8`, -1},
		{`n`, -1},
	})
}

func TestCharLit(t *testing.T) {
	runRuleCases(t, "CharLit", CharLit, []ruleCase{
		{`'a'`, full},
		{`'\n'`, full},
		{`'\''`, full},
		{`'\002'`, full},
		{`'\0'`, full},
		{`'\12'`, full},
		{`'\0123'`, -1},
		{`'\8'`, -1},
		{`'ab'`, -1},
		{`''`, -1},
	})
}

func TestRawString(t *testing.T) {
	runRuleCases(t, "RawString", RawString, []ruleCase{
		{`R"(hello)"`, full},
		{`R"(a "quoted" )" word)"`, 16},
		{`R"()"`, full},
		{`R"(never closed`, -1},
		{`"(not raw)"`, -1},
	})
}

func TestPunctGreedy(t *testing.T) {
	src := []byte(">>=||...")
	var got []string
	pos := 0
	for pos < len(src) {
		end, ok := Punct.Match(src, pos)
		if !ok {
			t.Fatalf("Punct failed at %d", pos)
		}
		got = append(got, string(src[pos:end]))
		pos = end
	}
	want := []string{">>=", "||", "..."}
	if len(got) != len(want) {
		t.Fatalf("tokens = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPunct(t *testing.T) {
	runRuleCases(t, "Punct", Punct, []ruleCase{
		{"<<=", full},
		{"->*", full},
		{"->", full},
		{"::", full},
		{"+", full},
		{"++", full},
		{"+++", 2},
		{"a", -1},
		{`"`, -1},
		{"_", -1},
	})
}

func TestComments(t *testing.T) {
	runRuleCases(t, "LineComment", LineComment, []ruleCase{
		{"// hello", full},
		{"// hello\nnext", 8},
		{"//", full},
		{"/ not", -1},
	})
	runRuleCases(t, "BlockComment", BlockComment, []ruleCase{
		{"/* plain */", full},
		{"/* outer /* inner */ still outer */", full},
		{"/* a /* b /* c */ */ */ tail", 23},
		{"/* never closed", -1},
		{"/* outer /* inner */ unclosed", -1},
		{"/**/", full},
	})
	runRuleCases(t, "FlatBlockComment", FlatBlockComment, []ruleCase{
		{"/* plain */", full},
		{"/* outer /* inner */ still outer */", 20},
		{"/* never closed", -1},
	})
}

func TestPreproc(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{`#include <foo/bar/baz.h>`, "#include", true},
		{`#include<foo/bar/baz.h>`, "", false},
		{`#include "foo/bar/baz.h"`, "#include", true},
		{`#include"foo/bar/baz.h"`, "", false},
		{`include "foo/bar/baz.h"`, "", false},
		{`#define X 1`, "#define", true},
		{`#`, "", false},
	}
	for _, tt := range tests {
		got, ok := match.String(Preproc, tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Preproc(%q) = %q, %v, want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIncludePath(t *testing.T) {
	runRuleCases(t, "IncludePath", IncludePath, []ruleCase{
		{`"foo/bar/baz.txt"`, full},
		{`<foo/bar/baz.txt>`, full},
		{`<foo/bar/baz.txt<`, -1},
		{`>foo/bar/baz.txt>`, -1},
		{`""`, -1},
		{`<>`, -1},
	})
}

func TestWhitespaceRules(t *testing.T) {
	runRuleCases(t, "Space", Space, []ruleCase{{" \t x", 3}, {"x", -1}})
	runRuleCases(t, "Newline", Newline, []ruleCase{{"\r\n\nx", 3}, {" ", -1}})
	runRuleCases(t, "Splice", Splice, []ruleCase{{"\\\nx", 2}, {"\\\r\n", full}, {"\\x", -1}})
}

// A span produced by a rule is matched in full by the same rule when the
// rule runs on that span alone.
func TestRoundTrip(t *testing.T) {
	src := []byte(`#include <a.h>
int main() { /* c /* n */ */ return -0x1Fu + 1.5e3f; } // end`)
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	l := New()
	for _, tok := range tokens {
		if tok.Kind == KindPreproc {
			// Preproc looks ahead at the following space.
			continue
		}
		var m match.Matcher
		for _, r := range l.rules {
			if r.kind == tok.Kind {
				m = r.m
			}
		}
		text := tok.Text(src)
		if !match.Full(m, text) {
			t.Errorf("%s %q does not round-trip", tok.Kind, text)
		}
	}
}
