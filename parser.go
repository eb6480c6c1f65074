package parsekit

import "math"

// MaxRepeat is the sentinel used for "effectively unbounded" repeat
// ranges (Star, Plus, StarGreedy, ...). spec.md §9 Open Question 3
// notes the historical 65536 literal found in some implementations;
// this library treats it purely as an artifact and uses a much larger
// bound instead, per the REDESIGN FLAG in spec.md §4.1.
const MaxRepeat = math.MaxInt32

// NodePair is the seen-set key used by Match to terminate on cyclic
// graphs: once a given (self, other) pair has been visited, later
// visits to the same pair are optimistically treated as equal (they
// are being compared against each other right now).
type NodePair [2]Parser

// Parser is a node in the parser graph. Every concrete parser
// implements the five graph-node protocol methods (ParseOn, Children,
// Replace, Copy, Match) plus the full fluent combinator surface
// from spec.md §4.1, which every concrete type gets for free by
// embedding base and registering itself as base.self.
type Parser interface {
	// ParseOn applies this parser to ctx and returns a Result.
	ParseOn(ctx *Context) Result

	// Children returns this node's direct sub-parsers, in order.
	// Leaves return nil.
	Children() []Parser

	// Replace substitutes target for every child reference that is
	// identity-equal to source. Leaves no-op.
	Replace(source, target Parser)

	// Copy returns a shallow clone: same configuration, same child
	// references (not copied).
	Copy() Parser

	// Match reports structural equality: same concrete kind, same
	// scalar configuration, and pairwise structurally-equal children.
	// seen terminates cycles per NodePair above.
	Match(other Parser, seen map[NodePair]bool) bool

	// String returns a short, stable, human-readable label (kind plus
	// scalar configuration) for debugging and reports.
	String() string

	// --- combinator builder surface (spec.md §4.1) ---

	Seq(q Parser) Parser
	Or(q Parser) Parser
	Optional(otherwise any) Parser
	And() Parser
	Not(msg string) Parser
	Neg(msg string) Parser
	End(msg ...string) Parser
	Flatten() Parser
	Token() Parser
	Trim(trimmer ...Parser) Parser
	Map(f func(any) any) Parser
	Pick(i int) Parser
	Permute(ixs []int) Parser
	Repeat(min, max int) Parser
	Star() Parser
	Plus() Parser
	Times(n int) Parser
	StarGreedy(limit Parser) Parser
	PlusGreedy(limit Parser) Parser
	RepeatGreedy(min, max int, limit Parser) Parser
	StarLazy(limit Parser) Parser
	PlusLazy(limit Parser) Parser
	RepeatLazy(min, max int, limit Parser) Parser
	SeparatedBy(sep Parser, includeSeparators, optionalSepAtEnd bool) Parser
	Setable() Parser

	Parse(input string) Result
	Accept(input string) bool
	Matches(input string) []any
	MatchesSkipping(input string) []any
}

// base is embedded by every concrete parser type to provide the
// fluent combinator surface without repeating ~25 method bodies per
// type. self must be set to the embedding concrete value by its
// constructor (p := &FooParser{...}; p.base.self = p; return p) so
// that dynamic dispatch into ParseOn/Children/... reaches the real
// node rather than an incomplete base.
type base struct {
	self Parser
}

func (b *base) Seq(q Parser) Parser {
	if s, ok := b.self.(*SequenceParser); ok {
		parsers := make([]Parser, len(s.parsers), len(s.parsers)+1)
		copy(parsers, s.parsers)
		return newSequence(append(parsers, q)...)
	}
	return newSequence(b.self, q)
}

func (b *base) Or(q Parser) Parser {
	if c, ok := b.self.(*ChoiceParser); ok {
		parsers := make([]Parser, len(c.parsers), len(c.parsers)+1)
		copy(parsers, c.parsers)
		return newChoice(append(parsers, q)...)
	}
	return newChoice(b.self, q)
}

func (b *base) Optional(otherwise any) Parser { return newOptional(b.self, otherwise) }

func (b *base) And() Parser { return newAnd(b.self) }

func (b *base) Not(msg string) Parser { return newNot(b.self, msg) }

func (b *base) Neg(msg string) Parser {
	return newSequence(newNot(b.self, msg), Any("any character")).Pick(-1)
}

func (b *base) End(msg ...string) Parser {
	m := "end of input expected"
	if len(msg) > 0 {
		m = msg[0]
	}
	return newEnd(b.self, m)
}

func (b *base) Flatten() Parser { return newFlatten(b.self) }

func (b *base) Token() Parser { return newTokenParser(b.self) }

func (b *base) Trim(trimmer ...Parser) Parser {
	t := Whitespace()
	if len(trimmer) > 0 {
		t = trimmer[0]
	}
	return newTrim(b.self, t)
}

func (b *base) Map(f func(any) any) Parser { return newAction(b.self, f) }

func (b *base) Pick(i int) Parser {
	return newAction(b.self, func(v any) any {
		list, ok := v.([]any)
		if !ok {
			return v
		}
		idx := i
		if idx < 0 {
			idx += len(list)
		}
		if idx < 0 || idx >= len(list) {
			return nil
		}
		return list[idx]
	})
}

func (b *base) Permute(ixs []int) Parser {
	return newAction(b.self, func(v any) any {
		list, ok := v.([]any)
		if !ok {
			return v
		}
		out := make([]any, len(ixs))
		for j, idx := range ixs {
			k := idx
			if k < 0 {
				k += len(list)
			}
			if k >= 0 && k < len(list) {
				out[j] = list[k]
			}
		}
		return out
	})
}

func (b *base) Repeat(min, max int) Parser { return newPossessiveRepeat(b.self, min, max) }

func (b *base) Star() Parser { return b.self.Repeat(0, MaxRepeat) }

func (b *base) Plus() Parser { return b.self.Repeat(1, MaxRepeat) }

func (b *base) Times(n int) Parser { return b.self.Repeat(n, n) }

func (b *base) StarGreedy(limit Parser) Parser { return b.self.RepeatGreedy(0, MaxRepeat, limit) }

func (b *base) PlusGreedy(limit Parser) Parser { return b.self.RepeatGreedy(1, MaxRepeat, limit) }

func (b *base) RepeatGreedy(min, max int, limit Parser) Parser {
	return newGreedyRepeat(b.self, min, max, limit)
}

func (b *base) StarLazy(limit Parser) Parser { return b.self.RepeatLazy(0, MaxRepeat, limit) }

func (b *base) PlusLazy(limit Parser) Parser { return b.self.RepeatLazy(1, MaxRepeat, limit) }

func (b *base) RepeatLazy(min, max int, limit Parser) Parser {
	return newLazyRepeat(b.self, min, max, limit)
}

func (b *base) SeparatedBy(sep Parser, includeSeparators, optionalSepAtEnd bool) Parser {
	return newSeparatedBy(b.self, sep, includeSeparators, optionalSepAtEnd)
}

func (b *base) Setable() Parser { return NewSetable(b.self) }

func (b *base) Parse(input string) Result { return b.self.ParseOn(NewContext(input)) }

func (b *base) Accept(input string) bool { return b.self.Parse(input).IsSuccess() }

// Matches returns the value of self at every position in input where
// it would succeed, overlapping. Built exactly per spec.md §4.1:
// and().map(push).seq(any()).or(any()).star() — at each position,
// self is tried as a non-consuming lookahead (and()); if it matches,
// its value is recorded (map(push)); either way exactly one character
// is then consumed, so the scan advances one position at a time
// regardless of how long self's own match was.
func (b *base) Matches(input string) []any {
	var results []any
	push := func(v any) any { results = append(results, v); return v }

	lookaheadPush := newAction(newAnd(b.self), push)
	consumeOne := newSequence(lookaheadPush, Any("any character"))
	step := newChoice(consumeOne, Any("any character"))

	step.Star().ParseOn(NewContext(input))
	return results
}

// MatchesSkipping returns the value of self at every non-overlapping
// position in input where it succeeds. Built per spec.md §4.1:
// map(push).or(any()).star() — self is tried consuming; on success its
// value is recorded and the match is consumed whole (no re-scanning
// inside it); on failure exactly one character is skipped.
func (b *base) MatchesSkipping(input string) []any {
	var results []any
	push := func(v any) any { results = append(results, v); return v }

	matched := newAction(b.self, push)
	step := newChoice(matched, Any("any character"))

	step.Star().ParseOn(NewContext(input))
	return results
}

// matchChildren compares two nodes' children pairwise, in order. It
// assumes the caller has already confirmed a and b share concrete
// kind and scalar configuration.
func matchChildren(a, b Parser, seen map[NodePair]bool) bool {
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !ac[i].Match(bc[i], seen) {
			return false
		}
	}
	return true
}

// replaceIn rewrites slot (a child-holding *Parser field) from source
// to target if it currently points at source. Composite node types
// use this for their Replace implementation.
func replaceIn(slot *Parser, source, target Parser) {
	if *slot == source {
		*slot = target
	}
}

// replaceInSlice rewrites every element of slots that is
// identity-equal to source, in place.
func replaceInSlice(slots []Parser, source, target Parser) {
	for i, s := range slots {
		if s == source {
			slots[i] = target
		}
	}
}
