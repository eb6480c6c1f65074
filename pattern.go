package parsekit

import (
	"fmt"
	"sync"

	"github.com/kalopsian/parsekit/perr"
)

// patternItem is one compiled bracket-expression item. The
// mini-parser producing it (patternCompiler) is built from the
// library's own combinators, per spec.md §4.2's
// self-bootstrap requirement: a negation flag, then one or more items
// that are each either a single character or an a-b range, folded into
// a CharMatcher.
//
// Grounded on the bracket-class handling in oleiade/gomme's
// characters.go, generalized into a standalone compiled grammar rather
// than a fixed set of constructors.
type patternItem struct {
	lo, hi rune
}

var (
	patternGrammarOnce sync.Once
	patternGrammarRoot Parser
)

func patternCompiler() Parser {
	patternGrammarOnce.Do(func() {
		any1 := Any("pattern character expected")

		rangeItem := newSequence(any1, Char('-'), any1).Map(func(v any) any {
			pair := v.([]any)
			lo, hi := pair[0].(rune), pair[2].(rune)
			if lo > hi {
				panic(perr.NewArgumentError("Pattern", fmt.Sprintf("inverted range %q-%q", lo, hi)))
			}
			return patternItem{lo: lo, hi: hi}
		})

		singleItem := any1.Map(func(v any) any {
			r := v.(rune)
			return patternItem{lo: r, hi: r}
		})

		item := newChoice(rangeItem, singleItem)

		negation := Char('^').Optional(nil).Map(func(v any) any { return v != nil })

		patternGrammarRoot = newSequence(negation, item.Plus()).Map(func(v any) any {
			parts := v.([]any)
			negated := parts[0].(bool)
			items := parts[1].([]any)

			var m CharMatcher
			for _, it := range items {
				pi := it.(patternItem)
				var next CharMatcher
				if pi.lo == pi.hi {
					next = singleMatcher(pi.lo)
				} else {
					next = rangeMatcher{lo: pi.lo, hi: pi.hi}
				}
				if m == nil {
					m = next
				} else {
					m = Or(m, next)
				}
			}
			if negated {
				m = Negate(m)
			}
			return m
		}).End()
	})
	return patternGrammarRoot
}

// Pattern compiles a bracket-expression string (e.g. "a-z0-9", "^a-z")
// into a Parser matching a single character against the resulting
// CharMatcher. The underlying grammar is compiled once and reused
// across every call, per spec.md §4.2's memoization requirement.
//
// A malformed expr (including an inverted range such as "z-a") is an
// invalid constructor argument per spec.md §7: Pattern panics with a
// *perr.ArgumentError rather than handing back a parser that is
// silently guaranteed to fail on every input.
func Pattern(expr, msg string) Parser {
	res := patternCompiler().Parse(expr)
	if !res.IsSuccess() {
		panic(perr.NewArgumentError("Pattern", fmt.Sprintf("malformed pattern %q: %s", expr, res.Message())))
	}
	return newCharacter(res.Value().(CharMatcher), msg)
}
