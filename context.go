// Package parsekit implements a parser-combinator library: small
// primitive recognizers composed through algebraic combinators into a
// parser graph that can be evaluated, introspected, and rewritten
// after construction.
//
// N.B.: the evaluation model (Context/Result, success/failure as a
// single threaded value) follows the same shape as oleiade/gomme's
// Result type, generalized here from gomme's generic
// Parser[I,O] func(I) Result[O,I] closures to an interface-based graph
// so that nodes can be enumerated, copied, and rewired in place.
package parsekit

import "github.com/kalopsian/parsekit/perr"

// Context is the immutable (buffer, position) pair every parser reads
// from. Position is a rune offset into Buffer, 0 <= Position <=
// len([]rune(Buffer)).
type Context struct {
	Buffer   []rune
	Position int
}

// NewContext builds a Context at position 0 over the given input.
func NewContext(input string) *Context {
	return &Context{Buffer: []rune(input), Position: 0}
}

// Len returns the number of runes remaining in the buffer from the
// current position onward.
func (c *Context) Len() int {
	return len(c.Buffer) - c.Position
}

// AtEnd reports whether the context's position is at the end of the
// buffer.
func (c *Context) AtEnd() bool {
	return c.Position >= len(c.Buffer)
}

// success builds a Result at the given position (or, if pos is nil,
// at the context's own position) carrying value.
//
// This resolves spec.md §9 Open Question 2: the original OR-expression
// picks whichever position is "truthy", which silently breaks on a
// valid position of 0. The documented intent — caller-supplied
// position if provided, else the current position — is what's
// implemented here via an explicit *int.
func (c *Context) success(value any, pos *int) Result {
	p := c.Position
	if pos != nil {
		p = *pos
	}
	return Result{
		ctx:     &Context{Buffer: c.Buffer, Position: p},
		ok:      true,
		value:   value,
		message: "",
	}
}

// failure builds a Result carrying a failure message at the given
// position (or, if pos is nil, at the context's own position).
func (c *Context) failure(message string, pos *int) Result {
	p := c.Position
	if pos != nil {
		p = *pos
	}
	return Result{
		ctx:     &Context{Buffer: c.Buffer, Position: p},
		ok:      false,
		message: message,
	}
}

// Success builds a successful Result at the context's current
// position.
func Success(ctx *Context, value any) Result {
	return ctx.success(value, nil)
}

// SuccessAt builds a successful Result at an explicit position.
func SuccessAt(ctx *Context, value any, position int) Result {
	return ctx.success(value, &position)
}

// Failure builds a failing Result at the context's current position.
func Failure(ctx *Context, message string) Result {
	return ctx.failure(message, nil)
}

// FailureAt builds a failing Result at an explicit position.
func FailureAt(ctx *Context, message string, position int) Result {
	return ctx.failure(message, &position)
}

// Result is the outcome of applying a Parser to a Context: either a
// Success carrying a value, or a Failure carrying a message. Per
// spec.md §3, a Result inherits the Context contract (Buffer/Position)
// so any combinator can feed a Result straight back in as the next
// parser's input Context.
type Result struct {
	ctx     *Context
	ok      bool
	value   any
	message string
}

// IsSuccess reports whether the result is a Success.
//
// This resolves spec.md §9 Open Question 1: callers (and this library
// internally) always invoke IsSuccess() as a method call, never treat
// the unevaluated method value as truthy.
func (r Result) IsSuccess() bool {
	return r.ok
}

// Context returns the Result's own (buffer, position) pair, letting a
// combinator thread a Result directly into the next parser call.
func (r Result) Context() *Context {
	return r.ctx
}

// Position returns the position the result carries.
func (r Result) Position() int {
	return r.ctx.Position
}

// Value returns the success value. If the Result is a Failure, Value
// panics with a *perr.ParserError — this is the one in-band-to-exception
// promotion the spec allows (spec.md §7).
func (r Result) Value() any {
	if !r.ok {
		panic(perr.NewParserError(r.ctx.Position, r.message))
	}
	return r.value
}

// Message returns the failure message. Calling Message on a Success
// returns the empty string.
func (r Result) Message() string {
	return r.message
}

// Input returns the remaining (unconsumed) input as a string.
func (r Result) Input() string {
	return string(r.ctx.Buffer[r.ctx.Position:])
}
