package session

import (
	"errors"

	"github.com/yeonjeyeong/economy-lingo/internal/question"
)

// State is the phase of a quiz session. Transitions are strictly
// Active -> AnswerShown -> (Active | Complete); every other move is rejected.
type State string

const (
	StateActive      State = "active"
	StateAnswerShown State = "answer_shown"
	StateComplete    State = "complete"
)

// Scoring holds the per-answer score deltas. Kept configurable because the
// reward/penalty asymmetry is a product decision, not a derived value.
type Scoring struct {
	Reward  int
	Penalty int
}

var DefaultScoring = Scoring{Reward: 100, Penalty: 50}

var (
	ErrEmptySession    = errors.New("cannot start a session without questions")
	ErrInvalidOption   = errors.New("option index out of range")
	ErrNoSelection     = errors.New("no option selected")
	ErrAnswerShown     = errors.New("answer already shown for this question")
	ErrNotSubmitted    = errors.New("current question has not been submitted")
	ErrSessionComplete = errors.New("session is complete")
)

// Session is one run-through of a fixed ordered question batch. It is a pure
// state machine: persistence and side effects live in the Manager.
type Session struct {
	questions    []question.Question
	position     int
	selection    *int
	state        State
	score        int
	correctCount int
	missed       []question.Question
	scoring      Scoring
}

// New starts a session over the given questions at position 0, score 0.
func New(questions []question.Question, scoring Scoring) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptySession
	}
	return &Session{
		questions: questions,
		state:     StateActive,
		scoring:   scoring,
	}, nil
}

// SelectOption records the player's pick for the current question. Valid only
// while the answer has not been revealed; selecting after reveal is rejected
// so a question can never be scored twice.
func (s *Session) SelectOption(index int) error {
	switch s.state {
	case StateComplete:
		return ErrSessionComplete
	case StateAnswerShown:
		return ErrAnswerShown
	}
	if index < 0 || index >= len(s.questions[s.position].Options) {
		return ErrInvalidOption
	}
	s.selection = &index
	return nil
}

// SubmitResult reveals the outcome of one answered question.
type SubmitResult struct {
	Correct       bool              `json:"correct"`
	CorrectAnswer int               `json:"correctAnswer"`
	Explanation   string            `json:"explanation"`
	Score         int               `json:"score"`
	Question      question.Question `json:"-"`
}

// Submit scores the current selection and transitions to AnswerShown.
// A second submit at the same position is rejected.
func (s *Session) Submit() (*SubmitResult, error) {
	switch s.state {
	case StateComplete:
		return nil, ErrSessionComplete
	case StateAnswerShown:
		return nil, ErrAnswerShown
	}
	if s.selection == nil {
		return nil, ErrNoSelection
	}

	current := s.questions[s.position]
	correct := *s.selection == current.CorrectAnswer
	if correct {
		s.score += s.scoring.Reward
		s.correctCount++
	} else {
		s.score -= s.scoring.Penalty
		s.missed = append(s.missed, current)
	}
	s.state = StateAnswerShown

	return &SubmitResult{
		Correct:       correct,
		CorrectAnswer: current.CorrectAnswer,
		Explanation:   current.Explanation,
		Score:         s.score,
		Question:      current,
	}, nil
}

// Advance moves past a revealed answer. On the last question it transitions
// to Complete and reports complete=true exactly once; the caller fires the
// score accrual on that signal.
func (s *Session) Advance() (complete bool, err error) {
	switch s.state {
	case StateComplete:
		return false, ErrSessionComplete
	case StateActive:
		return false, ErrNotSubmitted
	}

	if s.position == len(s.questions)-1 {
		s.state = StateComplete
		s.selection = nil
		return true, nil
	}

	s.position++
	s.selection = nil
	s.state = StateActive
	return false, nil
}

func (s *Session) State() State        { return s.state }
func (s *Session) Position() int       { return s.position }
func (s *Session) Score() int          { return s.score }
func (s *Session) CorrectCount() int   { return s.correctCount }
func (s *Session) Length() int         { return len(s.questions) }
func (s *Session) Questions() []question.Question { return s.questions }

// Selection returns the currently selected option index, or -1 when nothing
// is selected.
func (s *Session) Selection() int {
	if s.selection == nil {
		return -1
	}
	return *s.selection
}

// Missed returns the questions answered incorrectly so far, in order.
func (s *Session) Missed() []question.Question {
	out := make([]question.Question, len(s.missed))
	copy(out, s.missed)
	return out
}

// Current returns the question at the session's position. Calling it on a
// complete session returns the last question.
func (s *Session) Current() question.Question {
	return s.questions[s.position]
}
