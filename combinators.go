package parsekit

import (
	"fmt"

	tok "github.com/kalopsian/parsekit/token"
)

// SequenceParser runs its children left to right, succeeding with an
// ordered []any of their values, failing at (and surfacing) the first
// child failure.
//
// Grounded on oleiade/gomme's sequence.go Sequence, lifted from a
// variadic closure combinator to a graph node so Seq() can flatten
// nested sequences per spec.md §4.1.
type SequenceParser struct {
	base
	parsers []Parser
}

func newSequence(parsers ...Parser) *SequenceParser {
	p := &SequenceParser{parsers: parsers}
	p.base.self = p
	return p
}

func (p *SequenceParser) ParseOn(ctx *Context) Result {
	values := make([]any, 0, len(p.parsers))
	cur := ctx
	for _, child := range p.parsers {
		res := child.ParseOn(cur)
		if !res.IsSuccess() {
			return FailureAt(ctx, res.Message(), res.Position())
		}
		values = append(values, res.Value())
		cur = res.Context()
	}
	return SuccessAt(ctx, values, cur.Position)
}

func (p *SequenceParser) Children() []Parser { return p.parsers }
func (p *SequenceParser) Replace(source, target Parser) {
	replaceInSlice(p.parsers, source, target)
}
func (p *SequenceParser) Copy() Parser {
	cp := &SequenceParser{parsers: append([]Parser(nil), p.parsers...)}
	cp.base.self = cp
	return cp
}
func (p *SequenceParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*SequenceParser)
	return ok && matchChildren(p, o, seen)
}
func (p *SequenceParser) String() string { return fmt.Sprintf("seq(%d)", len(p.parsers)) }

// ChoiceParser tries its children in declared order, returning the
// first success, or the last attempted failure if all fail.
//
// Grounded on oleiade/gomme's branch.go Alternative.
type ChoiceParser struct {
	base
	parsers []Parser
}

func newChoice(parsers ...Parser) *ChoiceParser {
	p := &ChoiceParser{parsers: parsers}
	p.base.self = p
	return p
}

func (p *ChoiceParser) ParseOn(ctx *Context) Result {
	var last Result
	for _, child := range p.parsers {
		res := child.ParseOn(ctx)
		if res.IsSuccess() {
			return res
		}
		last = res
	}
	return last
}

func (p *ChoiceParser) Children() []Parser { return p.parsers }
func (p *ChoiceParser) Replace(source, target Parser) {
	replaceInSlice(p.parsers, source, target)
}
func (p *ChoiceParser) Copy() Parser {
	cp := &ChoiceParser{parsers: append([]Parser(nil), p.parsers...)}
	cp.base.self = cp
	return cp
}
func (p *ChoiceParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*ChoiceParser)
	return ok && matchChildren(p, o, seen)
}
func (p *ChoiceParser) String() string { return fmt.Sprintf("or(%d)", len(p.parsers)) }

// Alternative is sugar for chaining Or across more than two parsers at
// once, exactly mirroring oleiade/gomme's Alternative(parsers...).
func Alternative(parsers ...Parser) Parser {
	if len(parsers) == 0 {
		return FailureOf("alternative expected at least one parser")
	}
	return newChoice(parsers...)
}

// Sequence is sugar for chaining Seq across more than two parsers at
// once, mirroring oleiade/gomme's Sequence(parsers...).
func Sequence(parsers ...Parser) Parser {
	return newSequence(parsers...)
}

// OptionalParser succeeds with self's value, or with otherwise
// consuming nothing, if self fails.
type OptionalParser struct {
	base
	inner     Parser
	otherwise any
}

func newOptional(inner Parser, otherwise any) *OptionalParser {
	p := &OptionalParser{inner: inner, otherwise: otherwise}
	p.base.self = p
	return p
}

func (p *OptionalParser) ParseOn(ctx *Context) Result {
	res := p.inner.ParseOn(ctx)
	if res.IsSuccess() {
		return res
	}
	return Success(ctx, p.otherwise)
}

func (p *OptionalParser) Children() []Parser { return []Parser{p.inner} }
func (p *OptionalParser) Replace(source, target Parser) {
	replaceIn(&p.inner, source, target)
}
func (p *OptionalParser) Copy() Parser {
	cp := &OptionalParser{inner: p.inner, otherwise: p.otherwise}
	cp.base.self = cp
	return cp
}
func (p *OptionalParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*OptionalParser)
	return ok && o.otherwise == p.otherwise && matchChildren(p, o, seen)
}
func (p *OptionalParser) String() string { return "optional()" }

// AndParser is a positive lookahead: runs inner for acceptance, but
// succeeds with inner's value at the original position.
type AndParser struct {
	base
	inner Parser
}

func newAnd(inner Parser) *AndParser {
	p := &AndParser{inner: inner}
	p.base.self = p
	return p
}

func (p *AndParser) ParseOn(ctx *Context) Result {
	res := p.inner.ParseOn(ctx)
	if !res.IsSuccess() {
		return FailureAt(ctx, res.Message(), res.Position())
	}
	return Success(ctx, res.Value())
}

func (p *AndParser) Children() []Parser { return []Parser{p.inner} }
func (p *AndParser) Replace(source, target Parser) {
	replaceIn(&p.inner, source, target)
}
func (p *AndParser) Copy() Parser {
	cp := &AndParser{inner: p.inner}
	cp.base.self = cp
	return cp
}
func (p *AndParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*AndParser)
	return ok && matchChildren(p, o, seen)
}
func (p *AndParser) String() string { return "and()" }

// NotParser is a negative lookahead: succeeds (consuming nothing, with
// a nil value) iff inner fails; otherwise fails with msg.
type NotParser struct {
	base
	inner   Parser
	Message string
}

func newNot(inner Parser, msg string) *NotParser {
	p := &NotParser{inner: inner, Message: msg}
	p.base.self = p
	return p
}

func (p *NotParser) ParseOn(ctx *Context) Result {
	res := p.inner.ParseOn(ctx)
	if res.IsSuccess() {
		return Failure(ctx, p.Message)
	}
	return Success(ctx, nil)
}

func (p *NotParser) Children() []Parser { return []Parser{p.inner} }
func (p *NotParser) Replace(source, target Parser) {
	replaceIn(&p.inner, source, target)
}
func (p *NotParser) Copy() Parser {
	cp := &NotParser{inner: p.inner, Message: p.Message}
	cp.base.self = cp
	return cp
}
func (p *NotParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*NotParser)
	return ok && o.Message == p.Message && matchChildren(p, o, seen)
}
func (p *NotParser) String() string { return fmt.Sprintf("not(%q)", p.Message) }

// EndParser succeeds iff inner succeeds AND the new position is the
// end of the buffer.
type EndParser struct {
	base
	inner   Parser
	Message string
}

func newEnd(inner Parser, msg string) *EndParser {
	p := &EndParser{inner: inner, Message: msg}
	p.base.self = p
	return p
}

func (p *EndParser) ParseOn(ctx *Context) Result {
	res := p.inner.ParseOn(ctx)
	if !res.IsSuccess() {
		return res
	}
	if !res.Context().AtEnd() {
		return FailureAt(ctx, p.Message, res.Position())
	}
	return res
}

func (p *EndParser) Children() []Parser { return []Parser{p.inner} }
func (p *EndParser) Replace(source, target Parser) {
	replaceIn(&p.inner, source, target)
}
func (p *EndParser) Copy() Parser {
	cp := &EndParser{inner: p.inner, Message: p.Message}
	cp.base.self = cp
	return cp
}
func (p *EndParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*EndParser)
	return ok && o.Message == p.Message && matchChildren(p, o, seen)
}
func (p *EndParser) String() string { return "end()" }

// ActionParser applies fn to inner's value on success. This is also
// what Map, Pick, and Permute are built from.
type ActionParser struct {
	base
	inner Parser
	fn    func(any) any
}

func newAction(inner Parser, fn func(any) any) *ActionParser {
	p := &ActionParser{inner: inner, fn: fn}
	p.base.self = p
	return p
}

func (p *ActionParser) ParseOn(ctx *Context) Result {
	res := p.inner.ParseOn(ctx)
	if !res.IsSuccess() {
		return res
	}
	return SuccessAt(ctx, p.fn(res.Value()), res.Position())
}

func (p *ActionParser) Children() []Parser { return []Parser{p.inner} }
func (p *ActionParser) Replace(source, target Parser) {
	replaceIn(&p.inner, source, target)
}
func (p *ActionParser) Copy() Parser {
	cp := &ActionParser{inner: p.inner, fn: p.fn}
	cp.base.self = cp
	return cp
}
func (p *ActionParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*ActionParser)
	return ok && funcIdentity(o.fn) == funcIdentity(p.fn) && matchChildren(p, o, seen)
}
func (p *ActionParser) String() string { return "map()" }

// TrimParser consumes zero-or-more trimmer runs before and after
// inner, returning inner's value.
type TrimParser struct {
	base
	inner   Parser
	trimmer Parser
}

func newTrim(inner, trimmer Parser) *TrimParser {
	p := &TrimParser{inner: inner, trimmer: trimmer}
	p.base.self = p
	return p
}

func (p *TrimParser) ParseOn(ctx *Context) Result {
	cur := ctx
	for {
		res := p.trimmer.ParseOn(cur)
		if !res.IsSuccess() || res.Position() == cur.Position {
			break
		}
		cur = res.Context()
	}

	inner := p.inner.ParseOn(cur)
	if !inner.IsSuccess() {
		return FailureAt(ctx, inner.Message(), inner.Position())
	}
	cur = inner.Context()

	for {
		res := p.trimmer.ParseOn(cur)
		if !res.IsSuccess() || res.Position() == cur.Position {
			break
		}
		cur = res.Context()
	}

	return SuccessAt(ctx, inner.Value(), cur.Position)
}

func (p *TrimParser) Children() []Parser { return []Parser{p.inner, p.trimmer} }
func (p *TrimParser) Replace(source, target Parser) {
	replaceIn(&p.inner, source, target)
	replaceIn(&p.trimmer, source, target)
}
func (p *TrimParser) Copy() Parser {
	cp := &TrimParser{inner: p.inner, trimmer: p.trimmer}
	cp.base.self = cp
	return cp
}
func (p *TrimParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*TrimParser)
	return ok && matchChildren(p, o, seen)
}
func (p *TrimParser) String() string { return "trim()" }

// FlattenParser replaces inner's value with the substring it
// consumed.
type FlattenParser struct {
	base
	inner Parser
}

func newFlatten(inner Parser) *FlattenParser {
	p := &FlattenParser{inner: inner}
	p.base.self = p
	return p
}

func (p *FlattenParser) ParseOn(ctx *Context) Result {
	res := p.inner.ParseOn(ctx)
	if !res.IsSuccess() {
		return res
	}
	slice := string(ctx.Buffer[ctx.Position:res.Position()])
	return SuccessAt(ctx, slice, res.Position())
}

func (p *FlattenParser) Children() []Parser { return []Parser{p.inner} }
func (p *FlattenParser) Replace(source, target Parser) {
	replaceIn(&p.inner, source, target)
}
func (p *FlattenParser) Copy() Parser {
	cp := &FlattenParser{inner: p.inner}
	cp.base.self = cp
	return cp
}
func (p *FlattenParser) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*FlattenParser)
	return ok && matchChildren(p, o, seen)
}
func (p *FlattenParser) String() string { return "flatten()" }

// TokenParserNode wraps inner's value into a token.Token capturing the
// matched span and the buffer it came from.
type TokenParserNode struct {
	base
	inner Parser
}

func newTokenParser(inner Parser) *TokenParserNode {
	p := &TokenParserNode{inner: inner}
	p.base.self = p
	return p
}

func (p *TokenParserNode) ParseOn(ctx *Context) Result {
	res := p.inner.ParseOn(ctx)
	if !res.IsSuccess() {
		return res
	}
	t := tok.New(res.Value(), string(ctx.Buffer), ctx.Position, res.Position())
	return SuccessAt(ctx, t, res.Position())
}

func (p *TokenParserNode) Children() []Parser { return []Parser{p.inner} }
func (p *TokenParserNode) Replace(source, target Parser) {
	replaceIn(&p.inner, source, target)
}
func (p *TokenParserNode) Copy() Parser {
	cp := &TokenParserNode{inner: p.inner}
	cp.base.self = cp
	return cp
}
func (p *TokenParserNode) Match(other Parser, seen map[NodePair]bool) bool {
	key := NodePair{p, other}
	if seen[key] {
		return true
	}
	seen[key] = true
	o, ok := other.(*TokenParserNode)
	return ok && matchChildren(p, o, seen)
}
func (p *TokenParserNode) String() string { return "token()" }
