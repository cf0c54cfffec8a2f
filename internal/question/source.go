package question

import (
	"context"
	"errors"
	"math/rand"
)

// Source supplies an ordered batch of questions for a new quiz session.
type Source interface {
	Fetch(ctx context.Context, count int, difficulty Difficulty) ([]Question, error)
}

var ErrInvalidCount = errors.New("count must be positive")

// StaticSource serves the fixed local bank: filter by difficulty, shuffle,
// truncate. Unseeded shuffle on purpose, two identical requests may return
// different subsets.
type StaticSource struct {
	bank []Question
}

func NewStaticSource() *StaticSource {
	return &StaticSource{bank: Bank}
}

func (s *StaticSource) Fetch(_ context.Context, count int, difficulty Difficulty) ([]Question, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	var pool []Question
	for _, q := range s.bank {
		if difficulty == DifficultyAny || q.Difficulty == difficulty {
			pool = append(pool, q)
		}
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count], nil
}
