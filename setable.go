package parsekit

// SetableParser is a mutable single-slot delegator used to close
// recursive knots: construct one, use it anywhere a Parser is
// expected, then call Set once the real parser graph exists.
//
// Grounded on spec.md §3's "Setable" node and the grammar.Composite
// forward-reference mechanism it backs; oleiade/gomme has no
// equivalent since its closures can recurse directly by capturing a
// *Parser[I,O] func variable, which the interface-based graph here
// cannot do without an explicit indirection node.
type SetableParser struct {
	base
	target Parser
}

// NewSetable wraps target (which may be nil) in a Setable node.
func NewSetable(target Parser) *SetableParser {
	p := &SetableParser{target: target}
	p.base.self = p
	return p
}

// Undefined builds an empty Setable with no target installed yet,
// named after spec.md §6's factory function (`undefined_`) for the
// cyclic-grammar idiom: `p := Undefined(); p.Set(...)`. Equivalent to
// NewSetable(nil).
func Undefined() *SetableParser { return NewSetable(nil) }

// Set installs target as the parser this node delegates to.
func (p *SetableParser) Set(target Parser) { p.target = target }

// Target returns the currently installed delegate, or nil.
func (p *SetableParser) Target() Parser { return p.target }

func (p *SetableParser) ParseOn(ctx *Context) Result {
	if p.target == nil {
		return Failure(ctx, "setable: no target installed")
	}
	return p.target.ParseOn(ctx)
}

func (p *SetableParser) Children() []Parser {
	if p.target == nil {
		return nil
	}
	return []Parser{p.target}
}

func (p *SetableParser) Replace(source, target Parser) {
	if p.target == source {
		p.target = target
	}
}

func (p *SetableParser) Copy() Parser {
	cp := &SetableParser{target: p.target}
	cp.base.self = cp
	return cp
}

// Match treats two Setables as equal whenever they are the same node
// (by identity) or both currently delegate to matching targets. Since
// Setables are how cycles enter the graph, the seen-set in matchChildren
// is what keeps this from looping forever.
func (p *SetableParser) Match(other Parser, seen map[NodePair]bool) bool {
	if p == other {
		return true
	}
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*SetableParser)
	if !ok {
		return false
	}
	if p.target == nil || o.target == nil {
		return p.target == nil && o.target == nil
	}
	return p.target.Match(o.target, seen)
}

func (p *SetableParser) String() string { return "setable()" }
