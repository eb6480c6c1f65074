package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kalopsian/parsekit/perr"
)

func TestCharMatchers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		p       Parser
		input   string
		wantErr bool
		want    rune
	}{
		{name: "char matches", p: Char('x'), input: "x", want: 'x'},
		{name: "char rejects", p: Char('x'), input: "y", wantErr: true},
		{name: "range matches", p: Range('a', 'f'), input: "c", want: 'c'},
		{name: "range rejects", p: Range('a', 'f'), input: "z", wantErr: true},
		{name: "digit matches", p: Digit(), input: "7", want: '7'},
		{name: "letter matches uppercase", p: Letter(), input: "Q", want: 'Q'},
		{name: "lowercase rejects uppercase", p: Lowercase(), input: "Q", wantErr: true},
		{name: "word matches underscore", p: Word(), input: "_", want: '_'},
		{name: "whitespace matches nbsp", p: Whitespace(), input: " ", want: ' '},
		{name: "anyIn matches member", p: AnyIn("xyz"), input: "y", want: 'y'},
		{name: "anyIn rejects non-member", p: AnyIn("xyz"), input: "a", wantErr: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := tc.p.Parse(tc.input)
			assert.Equal(t, !tc.wantErr, got.IsSuccess())
			if !tc.wantErr {
				assert.Equal(t, tc.want, got.Value())
			}
		})
	}
}

func TestOrAndNegate(t *testing.T) {
	t.Parallel()

	vowels := NewSet('a', 'e', 'i', 'o', 'u')
	consonantish := Negate(vowels)

	assert.True(t, vowels.Accepts('a'))
	assert.False(t, vowels.Accepts('b'))
	assert.True(t, consonantish.Accepts('b'))
	assert.False(t, consonantish.Accepts('a'))

	either := Or(vowels, rangeMatcher{'0', '9'})
	assert.True(t, either.Accepts('e'))
	assert.True(t, either.Accepts('5'))
	assert.False(t, either.Accepts('x'))
}

func TestRangePanicsOnInvertedRange(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if assert.NotNil(t, r) {
			assert.ErrorAs(t, r.(error), new(*perr.ArgumentError))
		}
	}()
	Range('z', 'a')
}

func TestNewSetPanicsOnEmpty(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if assert.NotNil(t, r) {
			assert.ErrorAs(t, r.(error), new(*perr.ArgumentError))
		}
	}()
	NewSet()
}

func TestAnyInPanicsOnEmpty(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if assert.NotNil(t, r) {
			assert.ErrorAs(t, r.(error), new(*perr.ArgumentError))
		}
	}()
	AnyIn("")
}

func TestCharacterParserMatch(t *testing.T) {
	t.Parallel()

	a1 := Char('a')
	a2 := Char('a')
	b := Char('b')

	assert.True(t, a1.Match(a2, map[NodePair]bool{}))
	assert.False(t, a1.Match(b, map[NodePair]bool{}))
}
