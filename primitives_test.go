package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAny(t *testing.T) {
	t.Parallel()

	p := Any("any character expected")

	got := p.Parse("x")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, 'x', got.Value())

	fail := p.Parse("")
	assert.False(t, fail.IsSuccess())
}

func TestEpsilon(t *testing.T) {
	t.Parallel()

	got := Epsilon("default").Parse("anything")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, "default", got.Value())
	assert.Equal(t, 0, got.Position())
}

func TestFailureOf(t *testing.T) {
	t.Parallel()

	got := FailureOf("nope").Parse("anything")
	assert.False(t, got.IsSuccess())
	assert.Equal(t, "nope", got.Message())
}

func TestPredicate(t *testing.T) {
	t.Parallel()

	p := Predicate(3, func(s string) bool { return s == "abc" }, "abc expected")

	ok := p.Parse("abcdef")
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "abc", ok.Value())
	assert.Equal(t, 3, ok.Position())

	fail := p.Parse("xyz")
	assert.False(t, fail.IsSuccess())

	short := p.Parse("ab")
	assert.False(t, short.IsSuccess())
}

func TestString(t *testing.T) {
	t.Parallel()

	p := String("hello")

	assert.True(t, p.Parse("hello world").IsSuccess())
	assert.False(t, p.Parse("Hello world").IsSuccess())
}

func TestStringIgnoreCase(t *testing.T) {
	t.Parallel()

	p := StringIgnoreCase("hello")

	assert.True(t, p.Parse("HELLO world").IsSuccess())
	assert.True(t, p.Parse("HeLLo world").IsSuccess())
	assert.False(t, p.Parse("goodbye").IsSuccess())
}

func TestPredicateMatchIdentity(t *testing.T) {
	t.Parallel()

	pred := func(s string) bool { return true }
	p1 := Predicate(1, pred, "x")
	p2 := Predicate(1, pred, "x")
	p3 := Predicate(1, func(s string) bool { return true }, "x")

	assert.True(t, p1.Match(p2, map[NodePair]bool{}))
	assert.False(t, p1.Match(p3, map[NodePair]bool{}))
}
