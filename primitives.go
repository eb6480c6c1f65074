package parsekit

import (
	"fmt"

	"golang.org/x/text/cases"
)

// AnyParser consumes a single rune if available, else fails.
//
// Grounded on oleiade/gomme's bytes.go AnyChar, lifted from a bare
// closure to a graph leaf.
type AnyParser struct {
	base
	Message string
}

// Any builds a parser consuming one rune, regardless of its value.
func Any(msg string) Parser {
	p := &AnyParser{Message: msg}
	p.base.self = p
	return p
}

func (p *AnyParser) ParseOn(ctx *Context) Result {
	if ctx.AtEnd() {
		return Failure(ctx, p.Message)
	}
	return SuccessAt(ctx, ctx.Buffer[ctx.Position], ctx.Position+1)
}

func (p *AnyParser) Children() []Parser                       { return nil }
func (p *AnyParser) Replace(source, target Parser)             {}
func (p *AnyParser) Copy() Parser {
	cp := &AnyParser{Message: p.Message}
	cp.base.self = cp
	return cp
}
func (p *AnyParser) Match(other Parser, seen map[NodePair]bool) bool {
	o, ok := other.(*AnyParser)
	return ok && o.Message == p.Message
}
func (p *AnyParser) String() string { return "any()" }

// EpsilonParser consumes nothing and always succeeds with result.
type EpsilonParser struct {
	base
	Result any
}

// Epsilon builds a parser that consumes nothing and succeeds with
// result (nil by default).
func Epsilon(result any) Parser {
	p := &EpsilonParser{Result: result}
	p.base.self = p
	return p
}

func (p *EpsilonParser) ParseOn(ctx *Context) Result { return Success(ctx, p.Result) }
func (p *EpsilonParser) Children() []Parser           { return nil }
func (p *EpsilonParser) Replace(source, target Parser) {}
func (p *EpsilonParser) Copy() Parser {
	cp := &EpsilonParser{Result: p.Result}
	cp.base.self = cp
	return cp
}
func (p *EpsilonParser) Match(other Parser, seen map[NodePair]bool) bool {
	o, ok := other.(*EpsilonParser)
	return ok && o.Result == p.Result
}
func (p *EpsilonParser) String() string { return "epsilon()" }

// FailureParser always fails with msg. Used as a placeholder for
// uninitialized productions (see grammar.Composite and Setable).
type FailureParser struct {
	base
	Message string
}

// FailureOf builds a parser that always fails with msg.
func FailureOf(msg string) Parser {
	p := &FailureParser{Message: msg}
	p.base.self = p
	return p
}

func (p *FailureParser) ParseOn(ctx *Context) Result { return Failure(ctx, p.Message) }
func (p *FailureParser) Children() []Parser           { return nil }
func (p *FailureParser) Replace(source, target Parser) {}
func (p *FailureParser) Copy() Parser {
	cp := &FailureParser{Message: p.Message}
	cp.base.self = cp
	return cp
}
func (p *FailureParser) Match(other Parser, seen map[NodePair]bool) bool {
	o, ok := other.(*FailureParser)
	return ok && o.Message == p.Message
}
func (p *FailureParser) String() string { return fmt.Sprintf("failure(%q)", p.Message) }

// PredicateParser reads length runes starting at the current position
// and, if pred accepts the slice, succeeds with it and advances by
// length.
type PredicateParser struct {
	base
	Length  int
	Pred    func(string) bool
	Message string
	label   string
}

// Predicate builds a fixed-length predicate parser.
func Predicate(length int, pred func(string) bool, msg string) Parser {
	p := &PredicateParser{Length: length, Pred: pred, Message: msg, label: msg}
	p.base.self = p
	return p
}

func (p *PredicateParser) ParseOn(ctx *Context) Result {
	if ctx.Len() < p.Length {
		return Failure(ctx, p.Message)
	}
	slice := string(ctx.Buffer[ctx.Position : ctx.Position+p.Length])
	if !p.Pred(slice) {
		return Failure(ctx, p.Message)
	}
	return SuccessAt(ctx, slice, ctx.Position+p.Length)
}

func (p *PredicateParser) Children() []Parser           { return nil }
func (p *PredicateParser) Replace(source, target Parser) {}
func (p *PredicateParser) Copy() Parser {
	cp := &PredicateParser{Length: p.Length, Pred: p.Pred, Message: p.Message, label: p.label}
	cp.base.self = cp
	return cp
}
func (p *PredicateParser) Match(other Parser, seen map[NodePair]bool) bool {
	o, ok := other.(*PredicateParser)
	// Function-valued config compares by identity, per spec.md §9
	// "Action callbacks": two predicate/action parsers are structurally
	// equal only if they share the exact same underlying func value.
	if !ok || o.Length != p.Length || o.Message != p.Message {
		return false
	}
	return funcIdentity(o.Pred) == funcIdentity(p.Pred)
}
func (p *PredicateParser) String() string { return fmt.Sprintf("predicate(%s)", p.label) }

// String builds a parser matching the exact literal s.
//
// Grounded on oleiade/gomme's bytes.go Tag, rebuilt on Predicate.
func String(s string) Parser {
	runes := []rune(s)
	p := Predicate(len(runes), func(slice string) bool { return slice == s }, fmt.Sprintf("%q", s))
	p.(*PredicateParser).label = fmt.Sprintf("string(%q)", s)
	return p
}

// StringIgnoreCase builds a parser matching s up to Unicode case
// folding, using golang.org/x/text/cases for full case folding (rather
// than strings.EqualFold) — the same x/text dependency go-dws carries
// transitively, promoted here to direct use.
func StringIgnoreCase(s string) Parser {
	runes := []rune(s)
	folder := cases.Fold()
	folded := folder.String(s)
	p := Predicate(len(runes), func(slice string) bool {
		return folder.String(slice) == folded
	}, fmt.Sprintf("%q (case-insensitive)", s))
	p.(*PredicateParser).label = fmt.Sprintf("stringIgnoreCase(%q)", s)
	return p
}

// funcIdentity returns an opaque comparable key for a function value,
// used by parsers whose scalar configuration includes a callback
// (Predicate, Action) so Match can require identity equality of the
// function per spec.md §9.
func funcIdentity(f any) uintptr {
	return reflectFuncPointer(f)
}
