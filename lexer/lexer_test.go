package lexer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/clex/span"
)

type kt struct {
	Kind Kind
	Text string
}

func kinds(src []byte, tokens []Token) []kt {
	out := make([]kt, len(tokens))
	for i, tok := range tokens {
		out[i] = kt{tok.Kind, tok.Text(src)}
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
		want  []kt
	}{
		{
			name:  "include",
			input: "#include <stdio.h>\n",
			want: []kt{
				{KindPreproc, "#include"},
				{KindSpace, " "},
				{KindPunct, "<"},
				{KindIdentifier, "stdio"},
				{KindPunct, "."},
				{KindIdentifier, "h"},
				{KindPunct, ">"},
				{KindNewline, "\n"},
			},
		},
		{
			name:  "expression",
			input: "x = -0x1Fu + 1.5e3f;",
			want: []kt{
				{KindIdentifier, "x"},
				{KindSpace, " "},
				{KindPunct, "="},
				{KindSpace, " "},
				{KindInt, "-0x1Fu"},
				{KindSpace, " "},
				{KindPunct, "+"},
				{KindSpace, " "},
				{KindFloat, "1.5e3f"},
				{KindPunct, ";"},
			},
		},
		{
			name:  "minus binds to int",
			input: "x-1",
			want: []kt{
				{KindIdentifier, "x"},
				{KindInt, "-1"},
			},
		},
		{
			name:  "octal char constants",
			input: "char c = '\\0';\nc = '\\12';",
			want: []kt{
				{KindIdentifier, "char"},
				{KindSpace, " "},
				{KindIdentifier, "c"},
				{KindSpace, " "},
				{KindPunct, "="},
				{KindSpace, " "},
				{KindChar, `'\0'`},
				{KindPunct, ";"},
				{KindNewline, "\n"},
				{KindIdentifier, "c"},
				{KindSpace, " "},
				{KindPunct, "="},
				{KindSpace, " "},
				{KindChar, `'\12'`},
				{KindPunct, ";"},
			},
		},
		{
			name:  "longest punct",
			input: "a>>=b||c...",
			want: []kt{
				{KindIdentifier, "a"},
				{KindPunct, ">>="},
				{KindIdentifier, "b"},
				{KindPunct, "||"},
				{KindIdentifier, "c"},
				{KindPunct, "..."},
			},
		},
		{
			name:  "strings and chars",
			input: `s = "a\"b"; c = '\n'; r = R"(x)";`,
			want: []kt{
				{KindIdentifier, "s"}, {KindSpace, " "}, {KindPunct, "="}, {KindSpace, " "},
				{KindString, `"a\"b"`}, {KindPunct, ";"}, {KindSpace, " "},
				{KindIdentifier, "c"}, {KindSpace, " "}, {KindPunct, "="}, {KindSpace, " "},
				{KindChar, `'\n'`}, {KindPunct, ";"}, {KindSpace, " "},
				{KindIdentifier, "r"}, {KindSpace, " "}, {KindPunct, "="}, {KindSpace, " "},
				{KindRawString, `R"(x)"`}, {KindPunct, ";"},
			},
		},
		{
			name:  "nested comment",
			input: "a /* b /* c */ d */ e",
			want: []kt{
				{KindIdentifier, "a"},
				{KindSpace, " "},
				{KindBlockComment, "/* b /* c */ d */"},
				{KindSpace, " "},
				{KindIdentifier, "e"},
			},
		},
		{
			name:  "flat comment",
			input: "a /* b /* c */ d",
			opts:  []Option{WithFlatComments()},
			want: []kt{
				{KindIdentifier, "a"},
				{KindSpace, " "},
				{KindBlockComment, "/* b /* c */"},
				{KindSpace, " "},
				{KindIdentifier, "d"},
			},
		},
		{
			name:  "without trivia",
			input: "int x; // done\n\tx\\\n++;",
			opts:  []Option{WithoutTrivia()},
			want: []kt{
				{KindIdentifier, "int"},
				{KindIdentifier, "x"},
				{KindPunct, ";"},
				{KindIdentifier, "x"},
				{KindPunct, "++"},
				{KindPunct, ";"},
			},
		},
		{
			name:  "stops at NUL",
			input: "a\x00b",
			want:  []kt{{KindIdentifier, "a"}},
		},
		{
			name:  "empty",
			input: "",
			want:  []kt{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(tt.input)
			tokens, err := Tokenize(src, tt.opts...)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, kinds(src, tokens)); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTokenizeError(t *testing.T) {
	src := []byte("int x = 'ab';")
	tokens, err := Tokenize(src)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("error %v does not wrap ErrNoMatch", err)
	}
	var lexErr *Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("error %T is not *Error", err)
	}
	if lexErr.Offset != 8 {
		t.Errorf("Offset = %d, want 8", lexErr.Offset)
	}
	if lexErr.Near != "'ab';" {
		t.Errorf("Near = %q, want %q", lexErr.Near, "'ab';")
	}
	if len(tokens) != 6 {
		t.Errorf("got %d tokens before the error, want 6", len(tokens))
	}
}

func TestNext(t *testing.T) {
	src := []byte("foo 42")
	tests := []struct {
		pos  int
		want Token
	}{
		{0, Token{KindIdentifier, span.New(0, 3)}},
		{1, Token{KindIdentifier, span.New(1, 3)}},
		{3, Token{KindSpace, span.New(3, 4)}},
		{4, Token{KindInt, span.New(4, 6)}},
		{6, Token{KindEOF, span.New(6, 6)}},
	}
	for _, tt := range tests {
		got, ok := Next(src, tt.pos)
		if !ok {
			t.Errorf("Next(%d) failed", tt.pos)
			continue
		}
		if got != tt.want {
			t.Errorf("Next(%d) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	for _, k := range Kinds() {
		if k.String() == "Unknown" {
			t.Errorf("kind %d has no name", int(k))
		}
	}
	if got := Kind(99).String(); got != "Unknown" {
		t.Errorf("Kind(99).String() = %q, want Unknown", got)
	}
	if !KindBlockComment.IsTrivia() || KindIdentifier.IsTrivia() {
		t.Error("IsTrivia misclassifies comments or identifiers")
	}
}
