package question

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticSourceFetch(t *testing.T) {
	ctx := context.Background()
	src := NewStaticSource()

	t.Run("InvalidCount", func(t *testing.T) {
		_, err := src.Fetch(ctx, 0, DifficultyAny)
		require.ErrorIs(t, err, ErrInvalidCount)
	})

	t.Run("Truncates", func(t *testing.T) {
		qs, err := src.Fetch(ctx, 3, DifficultyAny)
		require.NoError(t, err)
		require.Len(t, qs, 3)
	})

	t.Run("FiltersByDifficulty", func(t *testing.T) {
		qs, err := src.Fetch(ctx, len(Bank), DifficultyHard)
		require.NoError(t, err)
		require.NotEmpty(t, qs)
		for _, q := range qs {
			require.Equal(t, DifficultyHard, q.Difficulty)
		}
	})

	t.Run("CountLargerThanBank", func(t *testing.T) {
		qs, err := src.Fetch(ctx, 1000, DifficultyAny)
		require.NoError(t, err)
		require.Len(t, qs, len(Bank))
	})
}

func TestBankIsPlayable(t *testing.T) {
	for _, q := range Bank {
		require.NoError(t, q.Validate(), "bank question %d", q.ID)
	}
	for _, q := range FallbackSet {
		require.NoError(t, q.Validate(), "fallback question %d", q.ID)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, valid := range []string{"", "easy", "medium", "hard"} {
		_, err := ParseDifficulty(valid)
		require.NoError(t, err, valid)
	}

	_, err := ParseDifficulty("extreme")
	require.ErrorIs(t, err, ErrInvalidDifficulty)
}
