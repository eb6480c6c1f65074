package parsekit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// parserComparer lets cmp.Diff/cmp.Equal treat two parser graphs as equal
// when they are structurally equivalent, per Parser.Match, rather than
// comparing unexported closures and pointer identity field by field.
var parserComparer = cmp.Comparer(func(a, b Parser) bool {
	return a.Match(b, map[NodePair]bool{})
})

func TestAllParsersVisitsEachNodeOnce(t *testing.T) {
	t.Parallel()

	shared := Char('x')
	root := Sequence(shared, shared, Char('y'))

	nodes := AllParsers(root)

	count := 0
	for _, n := range nodes {
		if n == shared {
			count++
		}
	}
	assert.Equal(t, 1, count, "shared node must be visited exactly once")
	assert.Contains(t, nodes, root)
}

func TestAllParsersHandlesCycles(t *testing.T) {
	t.Parallel()

	s := NewSetable(nil)
	s.Set(Sequence(Char('('), s, Char(')')).Or(Epsilon(nil)))

	nodes := AllParsers(s)
	assert.NotEmpty(t, nodes)
	assert.Contains(t, nodes, Parser(s))
}

func TestTransformProducesDisjointGraph(t *testing.T) {
	t.Parallel()

	root := Sequence(Char('a'), Char('b'))

	renamed := Transform(root, func(p Parser) Parser {
		if cp, ok := p.(*CharacterParser); ok {
			cp.Message = "transformed"
		}
		return p
	})

	assert.NotSame(t, root, renamed)

	for _, n := range AllParsers(renamed) {
		if cp, ok := n.(*CharacterParser); ok {
			assert.Equal(t, "transformed", cp.Message)
		}
	}
	for _, n := range AllParsers(root) {
		if cp, ok := n.(*CharacterParser); ok {
			assert.NotEqual(t, "transformed", cp.Message)
		}
	}
}

func TestRemoveSetablesCollapsesIndirection(t *testing.T) {
	t.Parallel()

	inner := Char('a')
	s := NewSetable(inner)
	root := Sequence(s, Char('b'))

	collapsed := RemoveSetables(root)

	for _, n := range AllParsers(collapsed) {
		_, isSetable := n.(*SetableParser)
		assert.False(t, isSetable)
	}
}

func TestRemoveDuplicatesCollapsesStructurallyEqualChildren(t *testing.T) {
	t.Parallel()

	root := Sequence(Char('a'), Char('a'), Char('b'))

	deduped := RemoveDuplicates(root)

	seq, ok := deduped.(*SequenceParser)
	assert.True(t, ok)
	assert.Same(t, seq.parsers[0], seq.parsers[1])
}

func TestRemoveDuplicatesPreservesStructuralShape(t *testing.T) {
	t.Parallel()

	root := Sequence(Char('a'), Char('a'), Char('b'))
	want := Sequence(Char('a'), Char('a'), Char('b'))

	deduped := RemoveDuplicates(root)

	if diff := cmp.Diff(want, deduped, parserComparer); diff != "" {
		t.Fatalf("deduped graph diverged from expected shape (-want +got):\n%s", diff)
	}
}
