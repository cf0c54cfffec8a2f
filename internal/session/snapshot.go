package session

import "github.com/yeonjeyeong/economy-lingo/internal/question"

// ActiveQuestion is the client view of the current question. The correct
// answer and explanation stay server-side until the answer is submitted.
type ActiveQuestion struct {
	ID         int64               `json:"id"`
	Text       string              `json:"question"`
	Options    []string            `json:"options"`
	Difficulty question.Difficulty `json:"difficulty"`
}

// Snapshot is the client view of a session after any transition.
type Snapshot struct {
	State        State           `json:"state"`
	Position     int             `json:"position"`
	Total        int             `json:"total"`
	Score        int             `json:"score"`
	CorrectCount int             `json:"correctCount"`
	Selection    int             `json:"selection"`
	MissedCount  int             `json:"missedCount"`
	Question     *ActiveQuestion `json:"currentQuestion,omitempty"`
}

func snapshot(s *Session) *Snapshot {
	snap := &Snapshot{
		State:        s.State(),
		Position:     s.Position(),
		Total:        s.Length(),
		Score:        s.Score(),
		CorrectCount: s.CorrectCount(),
		Selection:    s.Selection(),
		MissedCount:  len(s.Missed()),
	}
	if s.State() != StateComplete {
		q := s.Current()
		snap.Question = &ActiveQuestion{
			ID:         q.ID,
			Text:       q.Text,
			Options:    q.Options,
			Difficulty: q.Difficulty,
		}
	}
	return snap
}
