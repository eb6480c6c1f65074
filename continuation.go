package parsekit

// Continuation is what a ContinuationParser's handler receives as its
// second argument: calling it runs the wrapped delegate exactly as it
// would have run unwrapped.
type Continuation func(ctx *Context) Result

// ContinuationParser delegates to inner through a user handler, giving
// the handler a chance to observe (or wrap) every invocation. This is
// the node debug/progress/profile transforms splice in around every
// reachable parser.
type ContinuationParser struct {
	base
	inner   Parser
	handler func(ctx *Context, next Continuation) Result
}

// NewContinuation wraps inner so every ParseOn call goes through
// handler instead of straight to inner.
func NewContinuation(inner Parser, handler func(ctx *Context, next Continuation) Result) *ContinuationParser {
	p := &ContinuationParser{inner: inner, handler: handler}
	p.base.self = p
	return p
}

func (p *ContinuationParser) ParseOn(ctx *Context) Result {
	return p.handler(ctx, p.inner.ParseOn)
}

func (p *ContinuationParser) Children() []Parser { return []Parser{p.inner} }
func (p *ContinuationParser) Replace(source, target Parser) {
	replaceIn(&p.inner, source, target)
}
func (p *ContinuationParser) Copy() Parser {
	cp := &ContinuationParser{inner: p.inner, handler: p.handler}
	cp.base.self = cp
	return cp
}
func (p *ContinuationParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*ContinuationParser)
	return ok && funcIdentity(o.handler) == funcIdentity(p.handler) && matchChildren(p, o, seen)
}
func (p *ContinuationParser) String() string { return "continuation(" + p.inner.String() + ")" }
