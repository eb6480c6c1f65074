// Package grammar implements the composite grammar builder described
// in spec.md §4.4: a user embeds Composite, overrides Initialize, and
// wires productions together with Def/Ref/Redef/Action before a
// completion pass closes every forward reference into a real graph.
package grammar

import (
	"sort"
	"sync"

	"github.com/maruel/natural"

	parsekit "github.com/kalopsian/parsekit"
	"github.com/kalopsian/parsekit/perr"
)

// Builder is the interface a concrete grammar satisfies so Build can
// drive it generically: Initialize should Def/Ref/Redef/Action the
// productions needed to reach a "start" production.
type Builder interface {
	Initialize(c *Composite)
}

// Composite is itself a parsekit.Parser (delegating to the "start"
// production) so it composes with any other combinator once built.
//
// Grounded on spec.md §4.4; oleiade/gomme has no analogous forward-
// reference/completion mechanism since its closures are built bottom-up
// in a single Go expression, so this is new machinery written in the
// teacher's constructor/error style (explicit error returns; the only
// panics are NewComposite's on a failed completion, Ref's on an
// undefined name after completion, and a failed Result's Value()).
type Composite struct {
	productions map[string]parsekit.Parser
	placeholders map[string]*parsekit.SetableParser
	order       []string
	completed   bool

	start parsekit.Parser

	mu sync.Mutex
}

// NewComposite builds and completes a grammar from b's Initialize
// method. It panics if completion fails, since an inconsistent grammar
// is a programming error the caller should fix, not a runtime
// condition to recover from; construct with Build directly for a
// recoverable error instead.
func NewComposite(b Builder) *Composite {
	c, err := Build(b)
	if err != nil {
		panic(err)
	}
	return c
}

// Build runs b.Initialize against a fresh Composite, then runs the
// completion pass, returning any error encountered.
func Build(b Builder) (*Composite, error) {
	c := &Composite{
		productions:  map[string]parsekit.Parser{},
		placeholders: map[string]*parsekit.SetableParser{},
	}
	b.Initialize(c)
	if err := c.complete(); err != nil {
		return nil, err
	}
	return c, nil
}

// Def registers a new production. Calling Def for a name already
// defined raises RedefinedProductionError; calling it after
// completion raises CompletedParserError.
func (c *Composite) Def(name string, p parsekit.Parser) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return &perr.CompletedParserError{Name: name}
	}
	if _, exists := c.productions[name]; exists {
		return &perr.RedefinedProductionError{Name: name}
	}

	c.productions[name] = p
	c.order = append(c.order, name)
	return nil
}

// Ref returns a parser usable as a forward reference to name, before
// (or after) it is defined. Before completion this is always the same
// Setable placeholder identity for a given name, so cycles close
// correctly; after completion it returns the final definition
// directly, and panics with a *perr.UndefinedProductionError for a
// name that was never defined.
func (c *Composite) Ref(name string) parsekit.Parser {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		if p, ok := c.productions[name]; ok {
			return p
		}
		panic(&perr.UndefinedProductionError{Name: name})
	}

	if s, ok := c.placeholders[name]; ok {
		return s
	}
	s := parsekit.NewSetable(parsekit.FailureOf("Uninitialized production: " + name))
	c.placeholders[name] = s
	return s
}

// Redef replaces an existing production's parser with p. Only a Parser
// is accepted; a function of the current definition is not (Action
// covers the case of mapping the current definition's value).
func (c *Composite) Redef(name string, p parsekit.Parser) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return &perr.CompletedParserError{Name: name}
	}
	if _, exists := c.productions[name]; !exists {
		return &perr.UndefinedProductionError{Name: name}
	}
	c.productions[name] = p
	return nil
}

// Action replaces production name with its current definition mapped
// through fn; equivalent to Redef(name, Ref(name)-but-already-defined.Map(fn)).
func (c *Composite) Action(name string, fn func(any) any) error {
	c.mu.Lock()
	current, exists := c.productions[name]
	completed := c.completed
	c.mu.Unlock()

	if completed {
		return &perr.CompletedParserError{Name: name}
	}
	if !exists {
		return &perr.UndefinedProductionError{Name: name}
	}
	return c.Redef(name, current.Map(fn))
}

// complete runs the completion pass described in spec.md §4.4: bind
// start, resolve every outstanding placeholder against its named
// definition (or fail), mark completed. The remaining step, Ref
// returning definitions directly once completed, lives in Ref.
func (c *Composite) complete() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	start, ok := c.productions["start"]
	if !ok {
		return &perr.UndefinedProductionError{Name: "start"}
	}
	c.start = start

	for name, placeholder := range c.placeholders {
		def, ok := c.productions[name]
		if !ok {
			return &perr.UndefinedProductionError{Name: name}
		}
		placeholder.Set(def)
	}

	c.completed = true
	return nil
}

// Productions returns every defined production name, naturally sorted
// (so item2 precedes item10) via github.com/maruel/natural — a small
// introspection addition for callers listing a grammar's productions.
func (c *Composite) Productions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := append([]string(nil), c.order...)
	sort.Sort(natural.StringSlice(names))
	return names
}

// --- parsekit.Parser surface: Composite delegates to start ---

func (c *Composite) ParseOn(ctx *parsekit.Context) parsekit.Result {
	return c.start.ParseOn(ctx)
}

func (c *Composite) Children() []parsekit.Parser { return []parsekit.Parser{c.start} }

func (c *Composite) Replace(source, target parsekit.Parser) {
	if c.start == source {
		c.start = target
	}
}

func (c *Composite) Copy() parsekit.Parser {
	return &Composite{
		productions:  c.productions,
		placeholders: c.placeholders,
		order:        c.order,
		completed:    c.completed,
		start:        c.start,
	}
}

func (c *Composite) Match(other parsekit.Parser, seen map[parsekit.NodePair]bool) bool {
	o, ok := other.(*Composite)
	return ok && c.start.Match(o.start, seen)
}

func (c *Composite) String() string { return "composite()" }

func (c *Composite) Seq(q parsekit.Parser) parsekit.Parser             { return c.start.Seq(q) }
func (c *Composite) Or(q parsekit.Parser) parsekit.Parser              { return c.start.Or(q) }
func (c *Composite) Optional(otherwise any) parsekit.Parser            { return c.start.Optional(otherwise) }
func (c *Composite) And() parsekit.Parser                              { return c.start.And() }
func (c *Composite) Not(msg string) parsekit.Parser                    { return c.start.Not(msg) }
func (c *Composite) Neg(msg string) parsekit.Parser                    { return c.start.Neg(msg) }
func (c *Composite) End(msg ...string) parsekit.Parser                 { return c.start.End(msg...) }
func (c *Composite) Flatten() parsekit.Parser                          { return c.start.Flatten() }
func (c *Composite) Token() parsekit.Parser                            { return c.start.Token() }
func (c *Composite) Trim(trimmer ...parsekit.Parser) parsekit.Parser   { return c.start.Trim(trimmer...) }
func (c *Composite) Map(f func(any) any) parsekit.Parser               { return c.start.Map(f) }
func (c *Composite) Pick(i int) parsekit.Parser                        { return c.start.Pick(i) }
func (c *Composite) Permute(ixs []int) parsekit.Parser                 { return c.start.Permute(ixs) }
func (c *Composite) Repeat(min, max int) parsekit.Parser               { return c.start.Repeat(min, max) }
func (c *Composite) Star() parsekit.Parser                             { return c.start.Star() }
func (c *Composite) Plus() parsekit.Parser                             { return c.start.Plus() }
func (c *Composite) Times(n int) parsekit.Parser                       { return c.start.Times(n) }
func (c *Composite) StarGreedy(limit parsekit.Parser) parsekit.Parser  { return c.start.StarGreedy(limit) }
func (c *Composite) PlusGreedy(limit parsekit.Parser) parsekit.Parser  { return c.start.PlusGreedy(limit) }
func (c *Composite) RepeatGreedy(min, max int, limit parsekit.Parser) parsekit.Parser {
	return c.start.RepeatGreedy(min, max, limit)
}
func (c *Composite) StarLazy(limit parsekit.Parser) parsekit.Parser { return c.start.StarLazy(limit) }
func (c *Composite) PlusLazy(limit parsekit.Parser) parsekit.Parser { return c.start.PlusLazy(limit) }
func (c *Composite) RepeatLazy(min, max int, limit parsekit.Parser) parsekit.Parser {
	return c.start.RepeatLazy(min, max, limit)
}
func (c *Composite) SeparatedBy(sep parsekit.Parser, includeSeparators, optionalSepAtEnd bool) parsekit.Parser {
	return c.start.SeparatedBy(sep, includeSeparators, optionalSepAtEnd)
}
func (c *Composite) Setable() parsekit.Parser { return c.start.Setable() }

func (c *Composite) Parse(input string) parsekit.Result    { return c.start.Parse(input) }
func (c *Composite) Accept(input string) bool               { return c.start.Accept(input) }
func (c *Composite) Matches(input string) []any             { return c.start.Matches(input) }
func (c *Composite) MatchesSkipping(input string) []any      { return c.start.MatchesSkipping(input) }
