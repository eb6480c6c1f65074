package parsekit

import "fmt"

// PossessiveRepeatParser consumes its delegate greedily, min..max
// times, without ever backtracking: once min successes are banked, it
// keeps consuming until max is reached or the delegate fails, and
// always succeeds with whatever it has accumulated.
//
// Grounded on oleiade/gomme's multi.go Many0/Many1/Count, generalized
// to a single min/max node and given the spec's "possessive" name.
type PossessiveRepeatParser struct {
	base
	inner    Parser
	min, max int
}

func newPossessiveRepeat(inner Parser, min, max int) *PossessiveRepeatParser {
	p := &PossessiveRepeatParser{inner: inner, min: min, max: max}
	p.base.self = p
	return p
}

func (p *PossessiveRepeatParser) ParseOn(ctx *Context) Result {
	values := make([]any, 0, p.min)
	cur := ctx
	for i := 0; i < p.min; i++ {
		res := p.inner.ParseOn(cur)
		if !res.IsSuccess() {
			return FailureAt(ctx, res.Message(), res.Position())
		}
		values = append(values, res.Value())
		cur = res.Context()
	}

	for len(values) < p.max {
		res := p.inner.ParseOn(cur)
		if !res.IsSuccess() || res.Position() == cur.Position {
			break
		}
		values = append(values, res.Value())
		cur = res.Context()
	}

	return SuccessAt(ctx, values, cur.Position)
}

func (p *PossessiveRepeatParser) Children() []Parser { return []Parser{p.inner} }
func (p *PossessiveRepeatParser) Replace(source, target Parser) {
	replaceIn(&p.inner, source, target)
}
func (p *PossessiveRepeatParser) Copy() Parser {
	cp := &PossessiveRepeatParser{inner: p.inner, min: p.min, max: p.max}
	cp.base.self = cp
	return cp
}
func (p *PossessiveRepeatParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*PossessiveRepeatParser)
	return ok && o.min == p.min && o.max == p.max && matchChildren(p, o, seen)
}
func (p *PossessiveRepeatParser) String() string {
	return fmt.Sprintf("repeat(%d,%d)", p.min, p.max)
}

// GreedyRepeatParser consumes its delegate as many times as possible
// (min..max), then backtracks one step at a time until limit accepts
// at the resulting position. limit is never consumed.
type GreedyRepeatParser struct {
	base
	inner, limit Parser
	min, max     int
}

func newGreedyRepeat(inner Parser, min, max int, limit Parser) *GreedyRepeatParser {
	p := &GreedyRepeatParser{inner: inner, limit: limit, min: min, max: max}
	p.base.self = p
	return p
}

func (p *GreedyRepeatParser) ParseOn(ctx *Context) Result {
	values := make([]any, 0, p.min)
	contexts := make([]*Context, 0, p.min)
	cur := ctx
	for i := 0; i < p.min; i++ {
		res := p.inner.ParseOn(cur)
		if !res.IsSuccess() {
			return FailureAt(ctx, res.Message(), res.Position())
		}
		values = append(values, res.Value())
		cur = res.Context()
		contexts = append(contexts, cur)
	}

	for len(values) < p.max {
		res := p.inner.ParseOn(cur)
		if !res.IsSuccess() || res.Position() == cur.Position {
			break
		}
		values = append(values, res.Value())
		cur = res.Context()
		contexts = append(contexts, cur)
	}

	for {
		at := ctx
		if len(contexts) > 0 {
			at = contexts[len(contexts)-1]
		}
		limitRes := p.limit.ParseOn(at)
		if limitRes.IsSuccess() {
			return SuccessAt(ctx, append([]any(nil), values...), at.Position)
		}
		if len(values) <= p.min {
			return FailureAt(ctx, limitRes.Message(), limitRes.Position())
		}
		values = values[:len(values)-1]
		contexts = contexts[:len(contexts)-1]
	}
}

func (p *GreedyRepeatParser) Children() []Parser { return []Parser{p.inner, p.limit} }
func (p *GreedyRepeatParser) Replace(source, target Parser) {
	replaceIn(&p.inner, source, target)
	replaceIn(&p.limit, source, target)
}
func (p *GreedyRepeatParser) Copy() Parser {
	cp := &GreedyRepeatParser{inner: p.inner, limit: p.limit, min: p.min, max: p.max}
	cp.base.self = cp
	return cp
}
func (p *GreedyRepeatParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*GreedyRepeatParser)
	return ok && o.min == p.min && o.max == p.max && matchChildren(p, o, seen)
}
func (p *GreedyRepeatParser) String() string {
	return fmt.Sprintf("repeatGreedy(%d,%d)", p.min, p.max)
}

// LazyRepeatParser consumes its delegate only as much as needed:
// after min mandatory steps, it tries limit before every further
// step and stops as soon as limit accepts. limit is never consumed.
type LazyRepeatParser struct {
	base
	inner, limit Parser
	min, max     int
}

func newLazyRepeat(inner Parser, min, max int, limit Parser) *LazyRepeatParser {
	p := &LazyRepeatParser{inner: inner, limit: limit, min: min, max: max}
	p.base.self = p
	return p
}

func (p *LazyRepeatParser) ParseOn(ctx *Context) Result {
	values := make([]any, 0, p.min)
	cur := ctx
	for i := 0; i < p.min; i++ {
		res := p.inner.ParseOn(cur)
		if !res.IsSuccess() {
			return FailureAt(ctx, res.Message(), res.Position())
		}
		values = append(values, res.Value())
		cur = res.Context()
	}

	for {
		limitRes := p.limit.ParseOn(cur)
		if limitRes.IsSuccess() {
			return SuccessAt(ctx, append([]any{}, values...), cur.Position)
		}
		if len(values) >= p.max {
			return FailureAt(ctx, limitRes.Message(), limitRes.Position())
		}
		res := p.inner.ParseOn(cur)
		if !res.IsSuccess() || res.Position() == cur.Position {
			return FailureAt(ctx, limitRes.Message(), limitRes.Position())
		}
		values = append(values, res.Value())
		cur = res.Context()
	}
}

func (p *LazyRepeatParser) Children() []Parser { return []Parser{p.inner, p.limit} }
func (p *LazyRepeatParser) Replace(source, target Parser) {
	replaceIn(&p.inner, source, target)
	replaceIn(&p.limit, source, target)
}
func (p *LazyRepeatParser) Copy() Parser {
	cp := &LazyRepeatParser{inner: p.inner, limit: p.limit, min: p.min, max: p.max}
	cp.base.self = cp
	return cp
}
func (p *LazyRepeatParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*LazyRepeatParser)
	return ok && o.min == p.min && o.max == p.max && matchChildren(p, o, seen)
}
func (p *LazyRepeatParser) String() string {
	return fmt.Sprintf("repeatLazy(%d,%d)", p.min, p.max)
}

// SeparatedByParser parses item (sep item)*, optionally followed by a
// trailing sep, returning a flat list.
//
// Grounded on oleiade/gomme's multi.go SeparatedList0/SeparatedList1,
// generalized with the includeSeparators/optionalSepAtEnd flags per
// spec.md §4.1 and Open Question 4's resolution: a trailing separator
// is only ever consumed when optionalSepAtEnd is set, and only ever
// appears in the output when includeSeparators is also set.
type SeparatedByParser struct {
	base
	item, sep                         Parser
	includeSeparators, optionalSepEnd bool
}

func newSeparatedBy(item, sep Parser, includeSeparators, optionalSepAtEnd bool) *SeparatedByParser {
	p := &SeparatedByParser{item: item, sep: sep, includeSeparators: includeSeparators, optionalSepEnd: optionalSepAtEnd}
	p.base.self = p
	return p
}

func (p *SeparatedByParser) ParseOn(ctx *Context) Result {
	first := p.item.ParseOn(ctx)
	if !first.IsSuccess() {
		return FailureAt(ctx, first.Message(), first.Position())
	}

	values := []any{first.Value()}
	cur := first.Context()

	for {
		sepRes := p.sep.ParseOn(cur)
		if !sepRes.IsSuccess() {
			break
		}

		itemRes := p.item.ParseOn(sepRes.Context())
		if !itemRes.IsSuccess() {
			if p.optionalSepEnd {
				if p.includeSeparators {
					values = append(values, sepRes.Value())
				}
				cur = sepRes.Context()
			}
			break
		}

		if p.includeSeparators {
			values = append(values, sepRes.Value())
		}
		values = append(values, itemRes.Value())
		cur = itemRes.Context()
	}

	return SuccessAt(ctx, values, cur.Position)
}

func (p *SeparatedByParser) Children() []Parser { return []Parser{p.item, p.sep} }
func (p *SeparatedByParser) Replace(source, target Parser) {
	replaceIn(&p.item, source, target)
	replaceIn(&p.sep, source, target)
}
func (p *SeparatedByParser) Copy() Parser {
	cp := &SeparatedByParser{item: p.item, sep: p.sep, includeSeparators: p.includeSeparators, optionalSepEnd: p.optionalSepEnd}
	cp.base.self = cp
	return cp
}
func (p *SeparatedByParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*SeparatedByParser)
	return ok && o.includeSeparators == p.includeSeparators && o.optionalSepEnd == p.optionalSepEnd && matchChildren(p, o, seen)
}
func (p *SeparatedByParser) String() string { return "separatedBy()" }
