package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	parsekit "github.com/kalopsian/parsekit"
)

func TestDebugPreservesParseResult(t *testing.T) {
	t.Parallel()

	grammar := parsekit.Sequence(parsekit.Char('a'), parsekit.Char('b'))
	wrapped := Debug(grammar)

	got := wrapped.Parse("ab")
	assert.True(t, got.IsSuccess())

	failed := wrapped.Parse("ax")
	assert.False(t, failed.IsSuccess())
}

func TestDebugDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	grammar := parsekit.Char('a')
	wrapped := Debug(grammar)

	assert.NotSame(t, grammar, wrapped)
	assert.True(t, grammar.Parse("a").IsSuccess())
}

func TestProgressPreservesParseResult(t *testing.T) {
	t.Parallel()

	grammar := parsekit.Digit().Plus()
	wrapped := Progress(grammar)

	got := wrapped.Parse("123")
	assert.True(t, got.IsSuccess())
}

func TestProfileCountsEveryInvocation(t *testing.T) {
	t.Parallel()

	grammar := parsekit.Sequence(parsekit.Char('a'), parsekit.Char('b'), parsekit.Char('c'))
	wrapped, stats := Profile(grammar)

	got := wrapped.Parse("abc")
	assert.True(t, got.IsSuccess())

	assert.Len(t, stats.order, len(stats.byLabel))
	assert.NotEmpty(t, stats.order)

	total := 0
	for _, st := range stats.byLabel {
		total += st.Calls
	}
	assert.Equal(t, 4, total) // 3 chars + the enclosing sequence
}

func TestProfileJSONReportsAllNodes(t *testing.T) {
	t.Parallel()

	grammar := parsekit.Char('a')
	wrapped, stats := Profile(grammar)
	wrapped.Parse("a")

	doc, err := stats.JSON()
	assert.NoError(t, err)
	assert.Contains(t, doc, `"calls"`)
	assert.Contains(t, doc, `"totalNanos"`)
}
