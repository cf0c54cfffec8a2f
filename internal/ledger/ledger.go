package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yeonjeyeong/economy-lingo/internal/question"
)

// Store is the key-value persistence behind the ledger. Redis in production,
// an in-memory map in tests. Get returns ("", nil) for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

const keyPrefix = "wrong_answers:"

// Service keeps each user's missed questions, deduplicated by exact question
// text. Append is a read-modify-write of the whole list: last writer wins,
// which is fine for a single client driving its own ledger.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Append(ctx context.Context, userID string, q question.Question) error {
	entries, err := s.List(ctx, userID)
	if err != nil {
		return err
	}

	for _, existing := range entries {
		if existing.Text == q.Text {
			return nil
		}
	}
	entries = append(entries, q)

	encoded, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	return s.store.Set(ctx, keyPrefix+userID, string(encoded))
}

func (s *Service) List(ctx context.Context, userID string) ([]question.Question, error) {
	raw, err := s.store.Get(ctx, keyPrefix+userID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var entries []question.Question
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode ledger: %w", err)
	}
	return entries, nil
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.store.Del(ctx, keyPrefix+userID)
}
