package session

import (
	"context"
	"errors"
	"sync"

	"github.com/yeonjeyeong/economy-lingo/internal/config"
	"github.com/yeonjeyeong/economy-lingo/internal/question"
)

var ErrNoSession = errors.New("no active session for user")

// Ledger receives questions the player missed. Deduplication happens there.
type Ledger interface {
	Append(ctx context.Context, userID string, q question.Question) error
}

// Accruer merges a completed session's score into the player's durable
// record. Invoked at most once per session.
type Accruer interface {
	Accrue(ctx context.Context, userID string, sessionScore int) error
}

// Summary is what a completed session leaves behind.
type Summary struct {
	Score          int
	CorrectCount   int
	TotalQuestions int
	Questions      []question.Question
}

// Recorder persists a completed session summary for the player's history.
type Recorder interface {
	Record(ctx context.Context, userID string, sum Summary) error
}

type activeSession struct {
	sess       *Session
	count      int
	difficulty question.Difficulty
}

// Manager owns the per-user sessions. Each user's flow is sequential, the
// mutex only guards the map against concurrent HTTP requests.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*activeSession

	source   question.Source
	ledger   Ledger
	accruer  Accruer
	recorder Recorder
	scoring  Scoring
}

func NewManager(source question.Source, ledger Ledger, accruer Accruer, recorder Recorder, scoring Scoring) *Manager {
	return &Manager{
		sessions: make(map[string]*activeSession),
		source:   source,
		ledger:   ledger,
		accruer:  accruer,
		recorder: recorder,
		scoring:  scoring,
	}
}

// Start fetches a fresh question batch and replaces any session the user
// already had.
func (m *Manager) Start(ctx context.Context, userID string, count int, difficulty question.Difficulty) (*Snapshot, error) {
	questions, err := m.source.Fetch(ctx, count, difficulty)
	if err != nil {
		return nil, err
	}

	sess, err := New(questions, m.scoring)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[userID] = &activeSession{sess: sess, count: count, difficulty: difficulty}
	m.mu.Unlock()

	return snapshot(sess), nil
}

// Restart discards the user's session entirely and builds a new one with the
// same fetch parameters.
func (m *Manager) Restart(ctx context.Context, userID string) (*Snapshot, error) {
	m.mu.Lock()
	active, ok := m.sessions[userID]
	m.mu.Unlock()
	if !ok {
		return nil, ErrNoSession
	}
	return m.Start(ctx, userID, active.count, active.difficulty)
}

func (m *Manager) Current(userID string) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	active, ok := m.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}
	return snapshot(active.sess), nil
}

func (m *Manager) Select(userID string, index int) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	active, ok := m.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}
	if err := active.sess.SelectOption(index); err != nil {
		return nil, err
	}
	return snapshot(active.sess), nil
}

// Submit scores the current selection. Missed questions are forwarded to the
// wrong-answer ledger; a ledger failure is logged and never blocks the quiz.
func (m *Manager) Submit(ctx context.Context, userID string) (*SubmitResult, error) {
	m.mu.Lock()
	active, ok := m.sessions[userID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrNoSession
	}
	result, err := active.sess.Submit()
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if !result.Correct {
		if err := m.ledger.Append(ctx, userID, result.Question); err != nil {
			config.WithContext(ctx).WithError(err).Error("failed to save missed question to ledger")
		}
	}
	return result, nil
}

// Advance moves to the next question. On the final question the session
// completes and the final score is accrued exactly once; accrual and history
// failures are logged but the completion flow proceeds regardless.
func (m *Manager) Advance(ctx context.Context, userID string) (*Snapshot, error) {
	m.mu.Lock()
	active, ok := m.sessions[userID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrNoSession
	}

	complete, err := active.sess.Advance()
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}

	snap := snapshot(active.sess)
	var sum Summary
	if complete {
		sum = Summary{
			Score:          active.sess.Score(),
			CorrectCount:   active.sess.CorrectCount(),
			TotalQuestions: active.sess.Length(),
			Questions:      active.sess.Questions(),
		}
	}
	m.mu.Unlock()

	if complete {
		log := config.WithContext(ctx)
		if err := m.accruer.Accrue(ctx, userID, sum.Score); err != nil {
			log.WithError(err).Error("failed to accrue session score")
		}
		if err := m.recorder.Record(ctx, userID, sum); err != nil {
			log.WithError(err).Error("failed to record quiz history")
		}
	}
	return snap, nil
}
