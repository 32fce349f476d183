package charstream_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/charstream/pkg/charstream"
	"github.com/yaklabco/charstream/pkg/textutil"
)

func TestIterator_Match(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "abc")

	assert.True(t, s.Begin().Match('a'))
	assert.False(t, s.Begin().Match('b'))
	assert.False(t, s.End().Match('a'))

	// The end-of-stream character never matches at end-of-stream.
	assert.False(t, s.End().Match(charstream.EOSChar))
}

func TestIterator_MatchString(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "hello world")

	tests := []struct {
		name     string
		skip     int
		literal  string
		expected bool
	}{
		{name: "prefix", skip: 0, literal: "hello", expected: true},
		{name: "full content", skip: 0, literal: "hello world", expected: true},
		{name: "mid stream", skip: 6, literal: "world", expected: true},
		{name: "mismatch", skip: 0, literal: "help", expected: false},
		{name: "too long is a non-match", skip: 6, literal: "worlds", expected: false},
		{name: "empty literal", skip: 0, literal: "", expected: true},
		{name: "empty literal at end", skip: 11, literal: "", expected: true},
		{name: "non-empty at end", skip: 11, literal: "x", expected: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			it, err := s.Begin().Advance(testCase.skip)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, it.MatchString(testCase.literal))
		})
	}
}

func TestIterator_MatchStringPart(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "hello")

	t.Run("valid sub-range", func(t *testing.T) {
		t.Parallel()

		// "ell" out of "yellow" against "hello"[1:].
		it, err := s.Begin().Advance(1)
		require.NoError(t, err)

		ok, err := it.MatchStringPart("yellow", 1, 3)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("insufficient stream is a non-match not an error", func(t *testing.T) {
		t.Parallel()

		it, err := s.Begin().Advance(3)
		require.NoError(t, err)

		ok, err := it.MatchStringPart("lolly", 0, 5)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty sub-range matches", func(t *testing.T) {
		t.Parallel()

		ok, err := s.End().MatchStringPart("anything", 3, 0)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("bad literal sub-ranges fail", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name   string
			index  int
			length int
		}{
			{name: "negative index", index: -1, length: 1},
			{name: "negative length", index: 0, length: -1},
			{name: "past literal end", index: 3, length: 4},
			{name: "index past literal", index: 6, length: 1},
		}
		for _, c := range cases {
			_, err := s.Begin().MatchStringPart("hello", c.index, c.length)
			assert.ErrorIs(t, err, charstream.ErrInvalidArgument, c.name)
		}
	})
}

func TestIterator_MatchFolded(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "Hello WORLD")

	assert.True(t, s.Begin().MatchFolded("hello"))
	assert.True(t, s.Begin().MatchFolded(textutil.FoldCase("HeLLo wOrLd")))
	assert.False(t, s.Begin().MatchFolded("help"))
	assert.True(t, s.End().MatchFolded(""))
	assert.False(t, s.End().MatchFolded("h"))
}

func TestIterator_MatchFolded_RoundTrip(t *testing.T) {
	t.Parallel()

	// Folding a string always matches a stream built from that string.
	inputs := []string{"Hello", "ΣίσυφοΣ ς", "K kelvin", "MiXeD 123", ""}
	for _, input := range inputs {
		s := mustStream(t, input)
		assert.True(t, s.Begin().MatchFolded(textutil.FoldCase(input)), "input %q", input)
	}
}

func TestIterator_MatchRegexp(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "abc123")

	t.Run("anchored match", func(t *testing.T) {
		t.Parallel()

		got, ok := s.Begin().MatchRegexp(regexp.MustCompile(`[a-z]+`))
		require.True(t, ok)
		assert.Equal(t, "abc", got)
	})

	t.Run("match further in is a non-match", func(t *testing.T) {
		t.Parallel()

		_, ok := s.Begin().MatchRegexp(regexp.MustCompile(`[0-9]+`))
		assert.False(t, ok)
	})

	t.Run("from mid stream", func(t *testing.T) {
		t.Parallel()

		it, err := s.Begin().Advance(3)
		require.NoError(t, err)

		got, ok := it.MatchRegexp(regexp.MustCompile(`[0-9]+`))
		require.True(t, ok)
		assert.Equal(t, "123", got)
	})

	t.Run("at end matches against empty input", func(t *testing.T) {
		t.Parallel()

		got, ok := s.End().MatchRegexp(regexp.MustCompile(`[a-z]*`))
		require.True(t, ok)
		assert.Empty(t, got)

		_, ok = s.End().MatchRegexp(regexp.MustCompile(`[a-z]+`))
		assert.False(t, ok)
	})

	t.Run("multibyte runes count as one position", func(t *testing.T) {
		t.Parallel()

		ms := mustStream(t, "héllo")
		got, ok := ms.Begin().MatchRegexp(regexp.MustCompile(`h.l`))
		require.True(t, ok)
		assert.Equal(t, "hél", got)
	})
}
