package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAndInput(t *testing.T) {
	t.Parallel()

	tok := New("hi", "hello world", 0, 2)
	assert.Equal(t, "he", tok.Input())
	assert.Equal(t, "hi", tok.Value)
}

func TestInputOutOfRange(t *testing.T) {
	t.Parallel()

	tok := New(nil, "abc", 1, 10)
	assert.Equal(t, "", tok.Input())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := New("v", "buffer one", 0, 1)
	b := New("v", "buffer two", 0, 1)
	c := New("v", "buffer one", 0, 2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestString(t *testing.T) {
	t.Parallel()

	tok := New(42, "hello", 0, 5)
	assert.Equal(t, `42[0:5]="hello"`, tok.String())
}

func TestLineAndColumnOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		buffer     string
		position   int
		wantLine   int
		wantColumn int
	}{
		{name: "start of buffer", buffer: "abc", position: 0, wantLine: 1, wantColumn: 1},
		{name: "same line", buffer: "abc", position: 2, wantLine: 1, wantColumn: 3},
		{name: "after newline", buffer: "ab\ncd", position: 4, wantLine: 2, wantColumn: 2},
		{name: "after bare cr", buffer: "ab\rcd", position: 4, wantLine: 2, wantColumn: 2},
		{name: "after crlf", buffer: "ab\r\ncd", position: 5, wantLine: 2, wantColumn: 2},
		{name: "negative position", buffer: "abc", position: -1, wantLine: 1, wantColumn: 1},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			line, column := LineAndColumnOf(tc.buffer, tc.position)
			assert.Equal(t, tc.wantLine, line)
			assert.Equal(t, tc.wantColumn, column)
		})
	}
}
