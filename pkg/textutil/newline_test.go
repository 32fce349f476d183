package textutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/charstream/pkg/textutil"
)

func TestNormalizeNewlines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "mixed endings",
			input:    "a\r\nb\rc\nd",
			expected: "a\nb\nc\nd",
		},
		{
			name:     "no carriage returns",
			input:    "a\nb\nc",
			expected: "a\nb\nc",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only lone carriage returns",
			input:    "a\rb\rc",
			expected: "a\nb\nc",
		},
		{
			name:     "only crlf pairs",
			input:    "a\r\nb\r\n",
			expected: "a\nb\n",
		},
		{
			name:     "trailing lone cr",
			input:    "abc\r",
			expected: "abc\n",
		},
		{
			name:     "leading crlf",
			input:    "\r\nabc",
			expected: "\nabc",
		},
		{
			name:     "consecutive carriage returns",
			input:    "\r\r\n\r",
			expected: "\n\n\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := textutil.NormalizeNewlines(testCase.input)
			assert.Equal(t, testCase.expected, got)

			// Normalizing is idempotent.
			assert.Equal(t, got, textutil.NormalizeNewlines(got))

			// Output shrinks by exactly the number of "\r\n" pairs.
			crlf := strings.Count(testCase.input, "\r\n")
			assert.Len(t, got, len(testCase.input)-crlf)
		})
	}
}
