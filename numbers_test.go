package parsekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "positive", input: "123", want: 123},
		{name: "negative", input: "-42", want: -42},
		{name: "single digit", input: "0", want: 0},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Integer().Parse(tc.input)
			assert.True(t, got.IsSuccess())
			assert.Equal(t, tc.want, got.Value())
		})
	}

	fail := Integer().Parse("abc")
	assert.False(t, fail.IsSuccess())
}

func TestNumber(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "integer", input: "123", want: 123},
		{name: "fraction", input: "3.14", want: 3.14},
		{name: "negative fraction", input: "-0.5", want: -0.5},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Number().Parse(tc.input)
			assert.True(t, got.IsSuccess())
			assert.Equal(t, tc.want, got.Value())
		})
	}
}
