package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPair(t *testing.T) {
	t.Parallel()

	p := Pair(Letter(), Digit())
	got := p.Parse("a1")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, PairContainer{Left: 'a', Right: '1'}, got.Value())
}

func TestSeparatedPair(t *testing.T) {
	t.Parallel()

	p := SeparatedPair(Letter(), Char('='), Digit())
	got := p.Parse("a=1")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, PairContainer{Left: 'a', Right: '1'}, got.Value())
}

func TestPrecededTerminatedDelimited(t *testing.T) {
	t.Parallel()

	preceded := Preceded(Char('('), Digit())
	got := preceded.Parse("(5")
	assert.Equal(t, '5', got.Value())

	terminated := Terminated(Digit(), Char(')'))
	got2 := terminated.Parse("5)")
	assert.Equal(t, '5', got2.Value())

	delimited := Delimited(Char('('), Digit(), Char(')'))
	got3 := delimited.Parse("(5)")
	assert.Equal(t, '5', got3.Value())
}
