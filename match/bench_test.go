package match_test

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/dhamidi/clex/match"
)

var parenRun = match.Seq{
	match.Char("("),
	match.Some(match.Seq{match.Not(match.Char("(")), match.Not(match.Char(")")), match.AnyChar}),
	match.Char(")"),
}

func parenInput(size int) []byte {
	const alphabet = "()abcdef"
	r := rand.New(rand.NewSource(1))
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = alphabet[r.Intn(len(alphabet))]
	}
	return buf
}

func countRuns(m match.Matcher, src []byte) int {
	n := 0
	for pos := 0; pos < len(src); {
		if end, ok := m.Match(src, pos); ok {
			n++
			pos = end
			continue
		}
		pos++
	}
	return n
}

func BenchmarkParenRunMatcher(b *testing.B) {
	src := parenInput(1 << 16)
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		countRuns(parenRun, src)
	}
}

func BenchmarkParenRunNotChar(b *testing.B) {
	m := match.Seq{match.Char("("), match.Some(match.NotChar("()")), match.Char(")")}
	src := parenInput(1 << 16)
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		countRuns(m, src)
	}
}

func BenchmarkParenRunRegexp(b *testing.B) {
	re := regexp.MustCompile(`\([^()]+\)`)
	src := parenInput(1 << 16)
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		re.FindAllIndex(src, -1)
	}
}
