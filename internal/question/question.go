package question

import (
	"errors"
	"fmt"
)

// Difficulty is the closed set of question difficulty tags.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	// DifficultyAny means "no filter" when fetching from a source.
	DifficultyAny Difficulty = ""
)

var ErrInvalidDifficulty = errors.New("invalid difficulty")

// ParseDifficulty validates a client-supplied difficulty. The empty string
// is accepted and means "any".
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyAny:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Question is a single multiple-choice quiz item. Immutable once fetched.
type Question struct {
	ID            int64      `json:"id"`
	Text          string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correctAnswer"`
	Difficulty    Difficulty `json:"difficulty"`
	Explanation   string     `json:"explanation"`
}

// Validate rejects questions that cannot be played: no text, no options, or
// a correct-answer index out of bounds. Generative output goes through this
// before it is trusted.
func (q Question) Validate() error {
	if q.Text == "" {
		return errors.New("question text is empty")
	}
	if len(q.Options) == 0 {
		return errors.New("question has no options")
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("correct answer index %d out of range for %d options", q.CorrectAnswer, len(q.Options))
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, q.Difficulty)
	}
	return nil
}
