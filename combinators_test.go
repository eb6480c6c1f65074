package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		p          Parser
		input      string
		wantErr    bool
		wantOutput []any
	}{
		{
			name:       "all children match",
			p:          Sequence(Char('a'), Char('b'), Char('c')),
			input:      "abc",
			wantOutput: []any{'a', 'b', 'c'},
		},
		{
			name:    "second child fails",
			p:       Sequence(Char('a'), Char('b')),
			input:   "ac",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := tc.p.Parse(tc.input)
			assert.Equal(t, !tc.wantErr, got.IsSuccess())
			if !tc.wantErr {
				assert.Equal(t, tc.wantOutput, got.Value())
			}
		})
	}
}

func TestSeqFlattensNestedSequences(t *testing.T) {
	t.Parallel()

	p := Char('a').Seq(Char('b')).Seq(Char('c'))
	seq, ok := p.(*SequenceParser)
	assert.True(t, ok)
	assert.Len(t, seq.parsers, 3)
}

func TestChoice(t *testing.T) {
	t.Parallel()

	p := Alternative(Digit(), Letter())

	okDigit := p.Parse("1")
	assert.True(t, okDigit.IsSuccess())
	assert.Equal(t, '1', okDigit.Value())

	okLetter := p.Parse("a")
	assert.True(t, okLetter.IsSuccess())

	fail := p.Parse("%")
	assert.False(t, fail.IsSuccess())
}

func TestOrFlattensNestedChoices(t *testing.T) {
	t.Parallel()

	p := Digit().Or(Letter()).Or(Whitespace())
	choice, ok := p.(*ChoiceParser)
	assert.True(t, ok)
	assert.Len(t, choice.parsers, 3)
}

func TestOptional(t *testing.T) {
	t.Parallel()

	p := Char('a').Optional("none")

	got := p.Parse("b")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, "none", got.Value())
	assert.Equal(t, 0, got.Position())
}

func TestAnd(t *testing.T) {
	t.Parallel()

	p := Char('a').And()
	got := p.Parse("abc")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, 0, got.Position(), "lookahead must not consume")
}

func TestNot(t *testing.T) {
	t.Parallel()

	p := Char('a').Not("unexpected a")

	ok := p.Parse("bcd")
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, 0, ok.Position())

	fail := p.Parse("abc")
	assert.False(t, fail.IsSuccess())
}

func TestEnd(t *testing.T) {
	t.Parallel()

	p := String("ab").End()

	assert.True(t, p.Parse("ab").IsSuccess())
	assert.False(t, p.Parse("abc").IsSuccess())
}

func TestMapPickPermute(t *testing.T) {
	t.Parallel()

	upper := Letter().Map(func(v any) any { return string(v.(rune)) + "!" })
	got := upper.Parse("a")
	assert.Equal(t, "a!", got.Value())

	picked := Sequence(Char('a'), Char('b'), Char('c')).Pick(1)
	assert.Equal(t, 'b', picked.Parse("abc").Value())

	lastPicked := Sequence(Char('a'), Char('b'), Char('c')).Pick(-1)
	assert.Equal(t, 'c', lastPicked.Parse("abc").Value())

	permuted := Sequence(Char('a'), Char('b'), Char('c')).Permute([]int{2, 0})
	assert.Equal(t, []any{'c', 'a'}, permuted.Parse("abc").Value())
}

func TestTrim(t *testing.T) {
	t.Parallel()

	p := String("abc").Trim()
	got := p.Parse("  abc  ")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, "abc", got.Value())
	assert.Equal(t, 7, got.Position())
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	p := Sequence(Letter(), Digit()).Flatten()
	got := p.Parse("a1")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, "a1", got.Value())
}

func TestToken(t *testing.T) {
	t.Parallel()

	p := String("ab").Token()
	got := p.Parse("ab")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, `ab[0:2]="ab"`, got.Value().(interface{ String() string }).String())
}

func TestMatchesAndMatchesSkipping(t *testing.T) {
	t.Parallel()

	digits := Digit().Plus().Flatten()

	overlapping := digits.Matches("a12b3")
	assert.Equal(t, []any{"12", "2", "3"}, overlapping)

	skipping := digits.MatchesSkipping("a12b3")
	assert.Equal(t, []any{"12", "3"}, skipping)
}
