package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextBasics(t *testing.T) {
	t.Parallel()

	ctx := NewContext("hello")
	assert.Equal(t, 5, ctx.Len())
	assert.False(t, ctx.AtEnd())

	end := &Context{Buffer: ctx.Buffer, Position: 5}
	assert.True(t, end.AtEnd())
}

func TestSuccessAtZeroPosition(t *testing.T) {
	t.Parallel()

	// Regression for the OR-expression bug spec.md §9 flags: a result
	// explicitly positioned at 0 must not be confused with "no position
	// given".
	ctx := NewContext("x")
	res := SuccessAt(ctx, "v", 0)
	assert.Equal(t, 0, res.Position())
	assert.Equal(t, "v", res.Value())
}

func TestResultValuePanicsOnFailure(t *testing.T) {
	t.Parallel()

	ctx := NewContext("x")
	res := Failure(ctx, "boom")

	assert.Panics(t, func() { res.Value() })
}

func TestResultInput(t *testing.T) {
	t.Parallel()

	ctx := NewContext("hello")
	res := SuccessAt(ctx, nil, 2)
	assert.Equal(t, "llo", res.Input())
}
