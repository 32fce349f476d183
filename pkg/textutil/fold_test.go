package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/charstream/pkg/textutil"
)

func TestFoldCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ascii",
			input:    "Hello, World!",
			expected: "hello, world!",
		},
		{
			name:     "already folded",
			input:    "hello",
			expected: "hello",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "no foldable characters",
			input:    "123 !@# \n",
			expected: "123 !@# \n",
		},
		{
			name:     "greek sigma forms collapse",
			input:    "ΣίσυφοΣ",
			expected: "σίσυφοσ",
		},
		{
			name:     "final sigma folds like medial sigma",
			input:    "ς",
			expected: "σ",
		},
		{
			name:     "kelvin sign folds to k",
			input:    "K",
			expected: "k",
		},
		{
			name:     "non-bmp runes pass through",
			input:    "a\U0001D400b",
			expected: "a\U0001D400b",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, textutil.FoldCase(testCase.input))
		})
	}
}

func TestFoldCase_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Hello", "ΣίσυφοΣ", "ς", "K", "GRÜSSE ß", "MiXeD 123"}
	for _, input := range inputs {
		once := textutil.FoldCase(input)
		assert.Equal(t, once, textutil.FoldCase(once), "input %q", input)
	}
}

func TestFoldRune(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    rune
		expected rune
	}{
		{name: "uppercase ascii", input: 'A', expected: 'a'},
		{name: "lowercase ascii", input: 'a', expected: 'a'},
		{name: "digit", input: '7', expected: '7'},
		{name: "capital sigma", input: 'Σ', expected: 'σ'},
		{name: "final sigma", input: 'ς', expected: 'σ'},
		{name: "outside bmp", input: '\U0001D400', expected: '\U0001D400'},
		{name: "negative rune", input: -1, expected: -1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, textutil.FoldRune(testCase.input))
		})
	}
}

func TestFoldRunes(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, textutil.FoldRunes(nil))
	})

	t.Run("unchanged input returns the same slice", func(t *testing.T) {
		t.Parallel()

		input := []rune("already folded")
		out := textutil.FoldRunes(input)
		require.NotEmpty(t, out)
		assert.Same(t, &input[0], &out[0])
	})

	t.Run("folding copies", func(t *testing.T) {
		t.Parallel()

		input := []rune("ABC")
		out := textutil.FoldRunes(input)
		assert.Equal(t, []rune("abc"), out)
		assert.Equal(t, []rune("ABC"), input, "input must not be mutated")
	})
}
