package parsekit

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/kalopsian/parsekit/perr"
)

// CharMatcher is the sum type behind CharacterParser: a single code
// point, an inclusive range, a sorted set, an alternation, or a
// negation of another matcher. Grounded on oleiade/gomme's
// characters.go (Digit/Alpha/Space/Tab/CR/LF), generalized into a
// reusable matcher algebra per spec.md §4.2.
type CharMatcher interface {
	Accepts(r rune) bool
	Describe() string
	// Equal reports scalar-configuration equality of two matchers of
	// the same concrete kind (used by CharacterParser.Match).
	Equal(other CharMatcher) bool
}

// Or composes two matchers into an alternation.
func Or(a, b CharMatcher) CharMatcher { return altMatcher{a, b} }

// Negate wraps a matcher so it accepts exactly the code points the
// original rejects.
func Negate(m CharMatcher) CharMatcher { return negateMatcher{m} }

type singleMatcher rune

func (m singleMatcher) Accepts(r rune) bool   { return rune(m) == r }
func (m singleMatcher) Describe() string      { return fmt.Sprintf("%q", rune(m)) }
func (m singleMatcher) Equal(o CharMatcher) bool {
	om, ok := o.(singleMatcher)
	return ok && om == m
}

type rangeMatcher struct{ lo, hi rune }

func (m rangeMatcher) Accepts(r rune) bool { return r >= m.lo && r <= m.hi }
func (m rangeMatcher) Describe() string    { return fmt.Sprintf("%q-%q", m.lo, m.hi) }
func (m rangeMatcher) Equal(o CharMatcher) bool {
	om, ok := o.(rangeMatcher)
	return ok && om.lo == m.lo && om.hi == m.hi
}

type altMatcher struct{ a, b CharMatcher }

func (m altMatcher) Accepts(r rune) bool { return m.a.Accepts(r) || m.b.Accepts(r) }
func (m altMatcher) Describe() string    { return m.a.Describe() + "|" + m.b.Describe() }
func (m altMatcher) Equal(o CharMatcher) bool {
	om, ok := o.(altMatcher)
	return ok && om.a.Equal(m.a) && om.b.Equal(m.b)
}

type negateMatcher struct{ inner CharMatcher }

func (m negateMatcher) Accepts(r rune) bool { return !m.inner.Accepts(r) }
func (m negateMatcher) Describe() string    { return "^" + m.inner.Describe() }
func (m negateMatcher) Equal(o CharMatcher) bool {
	om, ok := o.(negateMatcher)
	return ok && om.inner.Equal(m.inner)
}

// setMatcher is the "sorted code point set with binary-search
// membership" spec.md §4.2 calls for. It is backed by
// github.com/emirpasic/gods's treeset (a red-black tree, carried by
// the gorgo example repo), which gives O(log n) membership without a
// hand-rolled sort.Search over a plain slice.
type setMatcher struct {
	tree  *treeset.Set
	runes []rune // kept sorted, for Describe/Equal only
}

// NewSet builds a matcher accepting exactly the given code points. It
// panics with a *perr.ArgumentError if runes is empty, per spec.md §7's
// invalid-constructor-argument channel: a set that can accept nothing
// is a programming error, not a parser that should be built and fail
// every time it runs.
func NewSet(runes ...rune) CharMatcher {
	if len(runes) == 0 {
		panic(perr.NewArgumentError("NewSet", "at least one code point required"))
	}
	sorted := append([]rune(nil), runes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	cmp := func(a, b interface{}) int { return utils.IntComparator(int(a.(rune)), int(b.(rune))) }
	t := treeset.NewWith(cmp)
	for _, r := range sorted {
		t.Add(r)
	}
	return &setMatcher{tree: t, runes: sorted}
}

func (m *setMatcher) Accepts(r rune) bool { return m.tree.Contains(r) }
func (m *setMatcher) Describe() string    { return fmt.Sprintf("set(%d code points)", m.tree.Size()) }
func (m *setMatcher) Equal(o CharMatcher) bool {
	om, ok := o.(*setMatcher)
	if !ok || len(om.runes) != len(m.runes) {
		return false
	}
	for i, r := range m.runes {
		if om.runes[i] != r {
			return false
		}
	}
	return true
}

// CharacterParser recognizes a single rune accepted by Matcher.
type CharacterParser struct {
	base
	Matcher CharMatcher
	Message string
}

func newCharacter(m CharMatcher, msg string) Parser {
	p := &CharacterParser{Matcher: m, Message: msg}
	p.base.self = p
	return p
}

func (p *CharacterParser) ParseOn(ctx *Context) Result {
	if ctx.AtEnd() || !p.Matcher.Accepts(ctx.Buffer[ctx.Position]) {
		return Failure(ctx, p.Message)
	}
	return SuccessAt(ctx, ctx.Buffer[ctx.Position], ctx.Position+1)
}

func (p *CharacterParser) Children() []Parser           { return nil }
func (p *CharacterParser) Replace(source, target Parser) {}
func (p *CharacterParser) Copy() Parser {
	cp := &CharacterParser{Matcher: p.Matcher, Message: p.Message}
	cp.base.self = cp
	return cp
}
func (p *CharacterParser) Match(other Parser, seen map[NodePair]bool) bool {
	o, ok := other.(*CharacterParser)
	return ok && o.Message == p.Message && o.Matcher.Equal(p.Matcher)
}
func (p *CharacterParser) String() string {
	return fmt.Sprintf("char(%s)", p.Matcher.Describe())
}

// Char builds a parser matching exactly character c.
func Char(c rune) Parser {
	return newCharacter(singleMatcher(c), fmt.Sprintf("%q expected", c))
}

// Range builds a parser matching any character in [lo, hi]. It panics
// with a *perr.ArgumentError if lo > hi: an inverted range can never
// accept anything, which is an invalid argument per spec.md §7, not a
// parser that should be silently built to always fail.
func Range(lo, hi rune) Parser {
	if lo > hi {
		panic(perr.NewArgumentError("Range", fmt.Sprintf("inverted range %q-%q", lo, hi)))
	}
	return newCharacter(rangeMatcher{lo, hi}, fmt.Sprintf("%q-%q expected", lo, hi))
}

// AnyIn builds a parser matching any of the given characters. It
// panics with a *perr.ArgumentError if elements is empty.
func AnyIn(elements string) Parser {
	if elements == "" {
		panic(perr.NewArgumentError("AnyIn", "at least one character required"))
	}
	return newCharacter(NewSet([]rune(elements)...), fmt.Sprintf("one of %q expected", elements))
}

// Digit matches a single decimal digit 0-9.
func Digit() Parser { return newCharacter(rangeMatcher{'0', '9'}, "digit expected") }

// Letter matches a single ASCII letter, a-z or A-Z.
//
// Grounded on oleiade/gomme's characters.go Alpha.
func Letter() Parser {
	return newCharacter(Or(rangeMatcher{'a', 'z'}, rangeMatcher{'A', 'Z'}), "letter expected")
}

// Lowercase matches a single lowercase ASCII letter.
func Lowercase() Parser { return newCharacter(rangeMatcher{'a', 'z'}, "lowercase letter expected") }

// Uppercase matches a single uppercase ASCII letter.
func Uppercase() Parser { return newCharacter(rangeMatcher{'A', 'Z'}, "uppercase letter expected") }

// Word matches a single letter, digit, or underscore.
func Word() Parser {
	m := Or(Or(rangeMatcher{'a', 'z'}, rangeMatcher{'A', 'Z'}), Or(rangeMatcher{'0', '9'}, singleMatcher('_')))
	return newCharacter(m, "letter, digit or underscore expected")
}

// whitespaceCodePoints enumerates the Unicode whitespace code points
// per spec.md §4.2, rather than delegating to unicode.IsSpace (whose
// exact boundary set differs slightly from the spec's enumerated
// list — this keeps the matcher's accept set exactly what the spec
// names).
var whitespaceCodePoints = []rune{
	'\t', '\n', '\v', '\f', '\r', ' ',
	0x0085, 0x00A0, 0x1680, 0x180E,
	0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
	0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF,
}

// Whitespace matches a single whitespace code point.
func Whitespace() Parser { return newCharacter(NewSet(whitespaceCodePoints...), "whitespace expected") }
