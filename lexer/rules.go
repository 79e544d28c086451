package lexer

import "github.com/dhamidi/clex/match"

var (
	binDigit = match.Range('0', '1')
	octDigit = match.Range('0', '7')
	decDigit = match.Range('0', '9')
	hexDigit = match.Oneof{match.Range('0', '9'), match.Range('a', 'f'), match.Range('A', 'F')}

	letter = match.Oneof{match.Range('a', 'z'), match.Range('A', 'Z'), match.Char("_")}
)

// Identifier matches [A-Za-z_][A-Za-z0-9_]*.
var Identifier match.Matcher = match.Seq{
	letter,
	match.Any(match.Oneof{letter, decDigit}),
}

// Int matches an integer literal: an optional '-' directly followed by a
// binary, octal, hexadecimal or decimal literal or a bare zero, then an
// optional u/l suffix. Prefixed forms are tried before the bare zero, so
// "0123" is octal.
var Int match.Matcher = match.Seq{
	match.Opt(match.Char("-")),
	match.Oneof{
		match.Seq{match.Oneof{match.Lit("0b"), match.Lit("0B")}, match.Some(binDigit)},
		match.Seq{match.Char("0"), match.Some(octDigit)},
		match.Seq{match.Oneof{match.Lit("0x"), match.Lit("0X")}, match.Some(hexDigit)},
		match.Seq{match.Range('1', '9'), match.Any(decDigit)},
		match.Char("0"),
	},
	match.Opt(intSuffix),
}

var intSuffix = match.Oneof{match.Lit("ul"), match.Lit("lu"), match.Lit("u"), match.Lit("l")}

var exponent = match.Seq{match.Char("eE"), match.Opt(match.Char("+-")), match.Some(decDigit)}

// Float matches
//
//	[0-9]* '.' [0-9]+ ([eE][+-]?[0-9]+)? [flFL]?
//	[0-9]+         [eE][+-]?[0-9]+   [flFL]?
var Float match.Matcher = match.Oneof{
	match.Seq{match.Any(decDigit), match.Char("."), match.Some(decDigit), match.Opt(exponent), match.Opt(floatSuffix)},
	match.Seq{match.Some(decDigit), exponent, match.Opt(floatSuffix)},
}

var floatSuffix = match.Char("flFL")

// String matches a double-quoted string. Any byte after a backslash is
// accepted; StrictString checks escape sequences.
var String match.Matcher = match.Seq{
	match.Char(`"`),
	match.Any(match.Oneof{
		match.Seq{match.Char(`\`), match.AnyChar},
		match.NotChar(`"`),
	}),
	match.Char(`"`),
}

// EscapeBody matches what follows the backslash of an escape sequence. The
// first alternative that matches wins.
var EscapeBody match.Matcher = match.Oneof{
	match.Char(`'"?\abfnrtv`),
	exactly(3, octDigit),
	match.Seq{match.Lit("o{"), match.Some(octDigit), match.Char("}")},
	match.Seq{match.Lit("x{"), match.Some(hexDigit), match.Char("}")},
	match.Seq{match.Char("x"), match.Some(hexDigit)},
	match.Seq{match.Lit("u{"), match.Some(hexDigit), match.Char("}")},
	match.Seq{match.Char("u"), exactly(4, hexDigit)},
	match.Seq{match.Char("U"), exactly(8, hexDigit)},
	match.Seq{match.Lit("N{"), match.Some(match.NotChar("}")), match.Char("}")},
}

// Escape matches one escape sequence including its backslash.
var Escape match.Matcher = match.Seq{match.Char(`\`), EscapeBody}

// exactly matches n occurrences of m that are not followed by another one.
func exactly(n int, m match.Matcher) match.Matcher {
	return match.Seq{match.Rep(n, m), match.Not(m)}
}

// StrictString matches a double-quoted string whose backslashes all start a
// valid Escape.
var StrictString match.Matcher = match.Seq{
	match.Char(`"`),
	match.Any(match.Oneof{Escape, match.NotChar(`"\`)}),
	match.Char(`"`),
}

// CharLit matches a character constant such as 'a', '\n' or '\0'. Octal
// escapes in character constants may be one to three digits long.
var CharLit match.Matcher = match.Seq{
	match.Char("'"),
	match.Oneof{charOctal, Escape, match.AnyChar},
	match.Char("'"),
}

var charOctal = match.Seq{match.Char(`\`), octDigit, match.Opt(octDigit), match.Opt(octDigit)}

// RawString matches R"(...)". The body ends at the first )" with no
// delimiter handling.
var RawString match.Matcher = match.Seq{
	match.Lit(`R"(`),
	match.Any(match.Seq{match.Not(match.Lit(`)"`)), match.AnyChar}),
	match.Lit(`)"`),
}

var (
	punct3 = match.Trigraphs("<<=>>=...->*<=>")
	punct2 = match.Digraphs("->++--<<>><=>===!=&&||+=-=*=/=%=&=^=|=::##.*")
	punct1 = match.Char("!#$%&()*+,-./:;<=>?@[\\]^`{|}~")
)

// Punct matches the longest operator or punctuator: three-byte forms first,
// then two-byte forms, then single bytes.
var Punct match.Matcher = match.Oneof{punct3, punct2, punct1}

// LineComment matches // up to, but not including, a newline or end of input.
var LineComment match.Matcher = match.Seq{
	match.Lit("//"),
	match.Any(match.NotChar("\n")),
	match.And(match.Oneof{match.Char("\n"), match.EOF}),
}

// BlockComment matches /* ... */ comments, which nest.
var BlockComment match.Matcher

// FlatBlockComment matches /* ... */ the way C does: the first */ closes it.
var FlatBlockComment match.Matcher = match.Seq{
	match.Lit("/*"),
	match.Any(match.Seq{match.Not(match.Lit("*/")), match.AnyChar}),
	match.Lit("*/"),
}

func init() {
	BlockComment = match.Seq{
		match.Lit("/*"),
		match.Any(match.Oneof{
			match.Ref(&BlockComment),
			match.Seq{match.Not(match.Lit("/*")), match.Not(match.Lit("*/")), match.AnyChar},
		}),
		match.Lit("*/"),
	}
}

// Preproc matches a preprocessor directive marker such as "#include" when it
// is followed by a space. The space is not consumed.
var Preproc match.Matcher = match.Seq{
	match.Char("#"),
	match.Some(match.Range('a', 'z')),
	match.And(match.Char(" ")),
}

// IncludePath matches "path" or <path>.
var IncludePath match.Matcher = match.Oneof{
	match.Seq{match.Char(`"`), match.Some(match.NotChar(`"`)), match.Char(`"`)},
	match.Seq{match.Char("<"), match.Some(match.NotChar(">")), match.Char(">")},
}

var (
	// Space matches a run of blanks and tabs.
	Space match.Matcher = match.Some(match.Char(" \t"))
	// Newline matches a run of line terminators.
	Newline match.Matcher = match.Some(match.Char("\r\n"))
	// Splice matches a backslash-newline line continuation.
	Splice match.Matcher = match.Oneof{match.Lit("\\\n"), match.Lit("\\\r\n")}
	// WhiteSpace matches any run of blanks, tabs and line terminators.
	WhiteSpace match.Matcher = match.Some(match.Char(" \t\r\n\v\f"))
)
