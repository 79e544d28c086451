// Package grammar compiles EBNF grammars, in the notation read by
// golang.org/x/exp/ebnf, into match.Matcher values.
//
// Alternatives are ordered: the first alternative that matches wins, as with
// match.Oneof. Repetitions are greedy and never backtrack. A name is resolved
// when the match runs, so productions may refer to each other recursively.
// Left recursion cannot terminate under these rules and is rejected by
// Compile.
package grammar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/clex/match"
)

var (
	// ErrLeftRecursion reports a production that can reach itself without
	// consuming input.
	ErrLeftRecursion = errors.New("left recursive production")

	// ErrUnsupported reports an expression that has no matcher equivalent,
	// such as a range over multi-byte characters.
	ErrUnsupported = errors.New("unsupported expression")
)

// Grammar is a compiled EBNF grammar.
type Grammar struct {
	start  string
	source ebnf.Grammar
	rules  match.Grammar
}

// Load reads, verifies and compiles the grammar in filename.
func Load(filename, start string) (*Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Parse(filename, f, start)
}

// Parse reads, verifies and compiles a grammar.
func Parse(filename string, r io.Reader, start string) (*Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return Compile(g, start)
}

// Compile verifies g from the start production and compiles every
// production.
func Compile(g ebnf.Grammar, start string) (*Grammar, error) {
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	if err := checkLeftRecursion(g); err != nil {
		return nil, err
	}

	rules := make(match.Grammar, len(g))
	for name, prod := range g {
		m, err := compile(rules, prod.Expr)
		if err != nil {
			return nil, fmt.Errorf("production %s: %w", name, err)
		}
		rules[name] = m
	}
	return &Grammar{start: start, source: g, rules: rules}, nil
}

func compile(rules match.Grammar, x ebnf.Expression) (match.Matcher, error) {
	switch x := x.(type) {
	case nil:
		return match.Seq{}, nil
	case *ebnf.Token:
		if x.String == "" {
			return match.Seq{}, nil
		}
		return match.Lit(x.String), nil
	case *ebnf.Range:
		lo, hi, err := byteRange(x)
		if err != nil {
			return nil, err
		}
		return match.Range(lo, hi), nil
	case ebnf.Sequence:
		seq := make(match.Seq, 0, len(x))
		for _, item := range x {
			m, err := compile(rules, item)
			if err != nil {
				return nil, err
			}
			seq = append(seq, m)
		}
		return seq, nil
	case ebnf.Alternative:
		alt := make(match.Oneof, 0, len(x))
		for _, item := range x {
			m, err := compile(rules, item)
			if err != nil {
				return nil, err
			}
			alt = append(alt, m)
		}
		return alt, nil
	case *ebnf.Group:
		return compile(rules, x.Body)
	case *ebnf.Option:
		body, err := compile(rules, x.Body)
		if err != nil {
			return nil, err
		}
		return match.Opt(body), nil
	case *ebnf.Repetition:
		body, err := compile(rules, x.Body)
		if err != nil {
			return nil, err
		}
		return match.Any(body), nil
	case *ebnf.Name:
		return rules.Ref(x.String), nil
	}
	return nil, fmt.Errorf("%w: %T at %s", ErrUnsupported, x, x.Pos())
}

func byteRange(r *ebnf.Range) (byte, byte, error) {
	lo, hi := r.Begin.String, r.End.String
	if len(lo) != 1 || len(hi) != 1 || lo[0] >= utf8.RuneSelf || hi[0] >= utf8.RuneSelf {
		return 0, 0, fmt.Errorf("%w: range %q … %q at %s is not ASCII", ErrUnsupported, lo, hi, r.Pos())
	}
	return lo[0], hi[0], nil
}

// Start returns the name of the start production.
func (g *Grammar) Start() string {
	return g.start
}

// Names returns the production names in sorted order.
func (g *Grammar) Names() []string {
	names := make([]string, 0, len(g.rules))
	for name := range g.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rule returns the matcher of the named production.
func (g *Grammar) Rule(name string) (match.Matcher, bool) {
	m, ok := g.rules[name]
	return m, ok
}

// Matcher returns the matcher of the start production.
func (g *Grammar) Matcher() match.Matcher {
	return g.rules.Ref(g.start)
}

// Match runs the named production at the start of src and returns the end
// offset. Unknown names never match.
func (g *Grammar) Match(rule string, src []byte) (int, bool) {
	return g.rules.Match(rule, src, 0)
}

// IsLexical reports whether name is a lexical production, that is, one
// whose name does not start with an upper case letter.
func IsLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(r)
}

// checkLeftRecursion rejects productions that can reach themselves through
// leftmost references, looking through nullable prefixes.
func checkLeftRecursion(g ebnf.Grammar) error {
	nullable := nullableSet(g)
	edges := make(map[string][]string, len(g))
	for name, prod := range g {
		seen := map[string]bool{}
		leftNames(prod.Expr, nullable, seen)
		for n := range seen {
			edges[name] = append(edges[name], n)
		}
		sort.Strings(edges[name])
	}

	const (
		unvisited = iota
		active
		done
	)
	state := make(map[string]int, len(g))
	var path []string
	var visit func(string) error
	visit = func(name string) error {
		switch state[name] {
		case active:
			return fmt.Errorf("%w: %s -> %s", ErrLeftRecursion, strings.Join(path, " -> "), name)
		case done:
			return nil
		}
		state[name] = active
		path = append(path, name)
		for _, next := range edges[name] {
			if err := visit(next); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}

	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

// nullableSet returns the productions that can match the empty string.
func nullableSet(g ebnf.Grammar) map[string]bool {
	nullable := map[string]bool{}
	for changed := true; changed; {
		changed = false
		for name, prod := range g {
			if !nullable[name] && isNullable(prod.Expr, nullable) {
				nullable[name] = true
				changed = true
			}
		}
	}
	return nullable
}

func isNullable(x ebnf.Expression, nullable map[string]bool) bool {
	switch x := x.(type) {
	case nil:
		return true
	case *ebnf.Token:
		return x.String == ""
	case ebnf.Sequence:
		for _, item := range x {
			if !isNullable(item, nullable) {
				return false
			}
		}
		return true
	case ebnf.Alternative:
		for _, item := range x {
			if isNullable(item, nullable) {
				return true
			}
		}
		return false
	case *ebnf.Group:
		return isNullable(x.Body, nullable)
	case *ebnf.Option, *ebnf.Repetition:
		return true
	case *ebnf.Name:
		return nullable[x.String]
	}
	return false
}

func leftNames(x ebnf.Expression, nullable map[string]bool, out map[string]bool) {
	switch x := x.(type) {
	case *ebnf.Name:
		out[x.String] = true
	case ebnf.Sequence:
		for _, item := range x {
			leftNames(item, nullable, out)
			if !isNullable(item, nullable) {
				return
			}
		}
	case ebnf.Alternative:
		for _, item := range x {
			leftNames(item, nullable, out)
		}
	case *ebnf.Group:
		leftNames(x.Body, nullable, out)
	case *ebnf.Option:
		leftNames(x.Body, nullable, out)
	case *ebnf.Repetition:
		leftNames(x.Body, nullable, out)
	}
}
