package match

// Seq matches each element in order. The first failure fails the sequence.
// Seq does not roll anything back; callers that track consumption themselves
// must bookmark before running it.
type Seq []Matcher

func (s Seq) Match(src []byte, pos int) (int, bool) {
	if !valid(src, pos) {
		return pos, false
	}
	cur := pos
	for _, m := range s {
		end, ok := m.Match(src, cur)
		if !ok {
			return pos, false
		}
		cur = end
	}
	return cur, true
}

// Oneof returns the first alternative that matches. Order matters: list the
// longest or most specific alternative first to get longest-match behavior.
type Oneof []Matcher

func (o Oneof) Match(src []byte, pos int) (int, bool) {
	for _, m := range o {
		if end, ok := m.Match(src, pos); ok {
			return end, true
		}
	}
	return pos, false
}

type zeroOrMore struct {
	m Matcher
}

// Any matches m zero or more times. A match that does not advance ends the
// repetition, so Any terminates even when m accepts the empty string.
func Any(m Matcher) Matcher {
	return zeroOrMore{m}
}

func (z zeroOrMore) Match(src []byte, pos int) (int, bool) {
	if !valid(src, pos) {
		return pos, false
	}
	cur := pos
	for {
		end, ok := z.m.Match(src, cur)
		if !ok {
			return cur, true
		}
		if end == cur {
			return cur, true
		}
		cur = end
	}
}

type oneOrMore struct {
	m Matcher
}

// Some matches m one or more times.
func Some(m Matcher) Matcher {
	return oneOrMore{m}
}

func (o oneOrMore) Match(src []byte, pos int) (int, bool) {
	end, ok := o.m.Match(src, pos)
	if !ok {
		return pos, false
	}
	return zeroOrMore(o).Match(src, end)
}

type optional struct {
	m Matcher
}

// Opt matches m at most once and always succeeds on a valid offset.
func Opt(m Matcher) Matcher {
	return optional{m}
}

func (o optional) Match(src []byte, pos int) (int, bool) {
	if !valid(src, pos) {
		return pos, false
	}
	if end, ok := o.m.Match(src, pos); ok {
		return end, true
	}
	return pos, true
}

type and struct {
	m Matcher
}

// And succeeds without consuming input if m matches at pos.
func And(m Matcher) Matcher {
	return and{m}
}

func (a and) Match(src []byte, pos int) (int, bool) {
	if _, ok := a.m.Match(src, pos); ok {
		return pos, true
	}
	return pos, false
}

type not struct {
	m Matcher
}

// Not succeeds without consuming input if m does not match at pos.
func Not(m Matcher) Matcher {
	return not{m}
}

func (n not) Match(src []byte, pos int) (int, bool) {
	if !valid(src, pos) {
		return pos, false
	}
	if _, ok := n.m.Match(src, pos); ok {
		return pos, false
	}
	return pos, true
}

type repeat struct {
	n int
	m Matcher
}

// Rep matches exactly n consecutive occurrences of m. It does not look at
// what follows; combine with Not to forbid an (n+1)th occurrence.
func Rep(n int, m Matcher) Matcher {
	return repeat{n, m}
}

func (r repeat) Match(src []byte, pos int) (int, bool) {
	if !valid(src, pos) {
		return pos, false
	}
	cur := pos
	for i := 0; i < r.n; i++ {
		end, ok := r.m.Match(src, cur)
		if !ok {
			return pos, false
		}
		cur = end
	}
	return cur, true
}

type ref struct {
	target *Matcher
}

// Ref returns a matcher that runs whatever *target holds at match time. It is
// the way to write a rule that refers to itself:
//
//	var list match.Matcher
//	func init() {
//		list = match.Seq{match.Char("("), match.Any(match.Ref(&list)), match.Char(")")}
//	}
//
// An unset target never matches.
func Ref(target *Matcher) Matcher {
	return ref{target}
}

func (r ref) Match(src []byte, pos int) (int, bool) {
	if r.target == nil || *r.target == nil {
		return pos, false
	}
	return (*r.target).Match(src, pos)
}

// Grammar is a set of named rules. Rules refer to each other with Ref, which
// looks the name up when the match runs, so rules may be added in any order
// and may be recursive.
type Grammar map[string]Matcher

type nameRef struct {
	g    Grammar
	name string
}

// Ref returns a matcher for the rule called name.
func (g Grammar) Ref(name string) Matcher {
	return nameRef{g, name}
}

func (r nameRef) Match(src []byte, pos int) (int, bool) {
	m, ok := r.g[r.name]
	if !ok || m == nil {
		return pos, false
	}
	return m.Match(src, pos)
}

// Match runs the named rule at pos.
func (g Grammar) Match(name string, src []byte, pos int) (int, bool) {
	return g.Ref(name).Match(src, pos)
}
