package charstream_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/charstream/pkg/charstream"
)

func mustStream(t *testing.T, content string) *charstream.Stream {
	t.Helper()
	s, err := charstream.NewString(content, 0)
	require.NoError(t, err)
	return s
}

func TestIterator_Next(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "ab")

	it := s.Begin()
	assert.Equal(t, 'a', it.Read())

	it = it.Next()
	assert.Equal(t, 'b', it.Read())

	it = it.Next()
	assert.True(t, it.IsEnd())
	assert.Equal(t, charstream.EOSChar, it.Read())

	// Next at end-of-stream stays put.
	assert.True(t, it.Next().IsEnd())
}

func TestIterator_LiteralNoncharacter(t *testing.T) {
	t.Parallel()

	// Content carrying a literal U+FFFF reads back as EOSChar mid-stream;
	// IsEnd is what distinguishes it from the end-of-stream position.
	s := mustStream(t, "a\uFFFFb")

	it := s.Begin().Next()
	assert.Equal(t, charstream.EOSChar, it.Read())
	assert.False(t, it.IsEnd())

	assert.Equal(t, charstream.EOSChar, s.End().Read())
	assert.True(t, s.End().IsEnd())
}

func TestIterator_AdvanceForward(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "abcdef")

	t.Run("by remaining reaches end", func(t *testing.T) {
		t.Parallel()

		it, err := s.Begin().Advance(s.Len())
		require.NoError(t, err)
		assert.True(t, it.IsEnd())
	})

	t.Run("overshoot clamps to end", func(t *testing.T) {
		t.Parallel()

		it, err := s.Begin().Advance(s.Len() + 1)
		require.NoError(t, err)
		assert.True(t, it.IsEnd())
	})

	t.Run("in range", func(t *testing.T) {
		t.Parallel()

		it, err := s.Begin().Advance(3)
		require.NoError(t, err)
		assert.Equal(t, 'd', it.Read())
	})
}

func TestIterator_AdvanceBackward(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "abcdef")

	t.Run("past start fails", func(t *testing.T) {
		t.Parallel()

		_, err := s.Begin().Advance(-1)
		assert.ErrorIs(t, err, charstream.ErrInvalidArgument)
	})

	t.Run("from end by stream length reaches begin", func(t *testing.T) {
		t.Parallel()

		it, err := s.End().Advance(-s.Len())
		require.NoError(t, err)
		assert.Equal(t, 'a', it.Read())
		assert.Equal(t, int64(0), it.Index())
	})

	t.Run("from end past start fails", func(t *testing.T) {
		t.Parallel()

		_, err := s.End().Advance(-s.Len() - 1)
		assert.ErrorIs(t, err, charstream.ErrInvalidArgument)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		forward, err := s.Begin().Advance(4)
		require.NoError(t, err)
		back, err := forward.Advance(-2)
		require.NoError(t, err)
		assert.Equal(t, 'c', back.Read())
	})
}

func TestIterator_AdvanceInt64(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "abc")

	it, err := s.Begin().AdvanceInt64(math.MaxInt64)
	require.NoError(t, err)
	assert.True(t, it.IsEnd())

	_, err = s.Begin().AdvanceInt64(math.MinInt64)
	assert.ErrorIs(t, err, charstream.ErrInvalidArgument)

	_, err = s.End().AdvanceInt64(math.MinInt64)
	assert.ErrorIs(t, err, charstream.ErrInvalidArgument)
}

func TestIterator_PeekMatchesAdvanceRead(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "abcdef")
	it, err := s.Begin().Advance(2)
	require.NoError(t, err)

	// Peek(n) agrees with Advance(n).Read() wherever Advance succeeds, and
	// returns EOSChar where Advance would fail.
	for n := -5; n <= s.Len()+3; n++ {
		peeked := it.PeekAt(n)
		advanced, err := it.Advance(n)
		if err != nil {
			assert.Equal(t, charstream.EOSChar, peeked, "n=%d", n)
			continue
		}
		assert.Equal(t, advanced.Read(), peeked, "n=%d", n)
	}
}

func TestIterator_SkipAndRead(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "abcdef")

	t.Run("matches advance then read", func(t *testing.T) {
		t.Parallel()

		for n := 0; n <= s.Len()+2; n++ {
			pure, err := s.Begin().Advance(n)
			require.NoError(t, err)

			it := s.Begin()
			got, err := it.SkipAndRead(n)
			require.NoError(t, err)
			assert.Equal(t, pure.Read(), got, "n=%d", n)
			assert.Equal(t, pure.Index(), it.Index(), "n=%d", n)
		}
	})

	t.Run("overshoot parks at end", func(t *testing.T) {
		t.Parallel()

		it := s.Begin()
		got, err := it.SkipAndRead(100)
		require.NoError(t, err)
		assert.Equal(t, charstream.EOSChar, got)
		assert.True(t, it.IsEnd())
	})

	t.Run("underflow fails without moving", func(t *testing.T) {
		t.Parallel()

		it, err := s.Begin().Advance(2)
		require.NoError(t, err)

		_, serr := it.SkipAndRead(-3)
		assert.ErrorIs(t, serr, charstream.ErrInvalidArgument)
		assert.Equal(t, 'c', it.Read(), "iterator must not move on error")
	})

	t.Run("backward from end", func(t *testing.T) {
		t.Parallel()

		it := s.End()
		got, err := it.SkipAndRead(-1)
		require.NoError(t, err)
		assert.Equal(t, 'f', got)
	})
}

func TestIterator_ReadString(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "abcdef")

	t.Run("truncates to remainder", func(t *testing.T) {
		t.Parallel()

		it, err := s.Begin().Advance(4)
		require.NoError(t, err)

		got, err := it.ReadString(10)
		require.NoError(t, err)
		assert.Equal(t, "ef", got)
	})

	t.Run("negative length fails", func(t *testing.T) {
		t.Parallel()

		_, err := s.Begin().ReadString(-1)
		assert.ErrorIs(t, err, charstream.ErrInvalidArgument)
	})

	t.Run("exact returns empty when short", func(t *testing.T) {
		t.Parallel()

		it, err := s.Begin().Advance(4)
		require.NoError(t, err)

		got, err := it.ReadStringExact(10)
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = it.ReadStringExact(2)
		require.NoError(t, err)
		assert.Equal(t, "ef", got)
	})

	t.Run("at end", func(t *testing.T) {
		t.Parallel()

		got, err := s.End().ReadString(3)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestIterator_ReadRunes(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "abc")

	dst := make([]rune, 5)
	n := s.Begin().ReadRunes(dst)
	assert.Equal(t, 3, n)
	assert.Equal(t, []rune("abc"), dst[:n])

	assert.Zero(t, s.End().ReadRunes(dst))

	short := make([]rune, 2)
	n = s.Begin().ReadRunes(short)
	assert.Equal(t, 2, n)
	assert.Equal(t, []rune("ab"), short)
}

func TestIterator_ReadUntil(t *testing.T) {
	t.Parallel()

	s := mustStream(t, "abcdef")

	p, err := s.Begin().Advance(1)
	require.NoError(t, err)
	q, err := s.Begin().Advance(4)
	require.NoError(t, err)

	t.Run("ordered positions", func(t *testing.T) {
		t.Parallel()

		got, err := p.ReadUntil(q)
		require.NoError(t, err)
		assert.Equal(t, "bcd", got)
	})

	t.Run("other not after yields empty", func(t *testing.T) {
		t.Parallel()

		got, err := q.ReadUntil(p)
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = p.ReadUntil(p)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("until end yields remainder", func(t *testing.T) {
		t.Parallel()

		got, err := p.ReadUntil(s.End())
		require.NoError(t, err)
		assert.Equal(t, "bcdef", got)
	})

	t.Run("concatenation property", func(t *testing.T) {
		t.Parallel()

		pq, err := p.ReadUntil(q)
		require.NoError(t, err)
		qe, err := q.ReadUntil(s.End())
		require.NoError(t, err)
		pe, err := p.ReadUntil(s.End())
		require.NoError(t, err)
		assert.Equal(t, pe, pq+qe)
	})

	t.Run("cross stream fails", func(t *testing.T) {
		t.Parallel()

		other := mustStream(t, "abcdef")
		_, err := p.ReadUntil(other.Begin())
		assert.ErrorIs(t, err, charstream.ErrInvalidArgument)
		assert.ErrorIs(t, err, charstream.ErrStreamMismatch)
	})
}
