package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yeonjeyeong/economy-lingo/internal/config"
	"google.golang.org/genai"
)

// Generator produces raw text for a prompt. The Gemini client satisfies it;
// tests substitute a stub.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

const geminiModel = "gemini-2.0-flash-lite"

type geminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(ctx context.Context, apiKey string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiGenerator{client: client}, nil
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

// AISource fetches questions from the generative API, validating each item
// before it enters the Question type. Any failure on the primary path falls
// back to the fixed local set, so Fetch never returns an error.
type AISource struct {
	gen      Generator
	fallback []Question
	now      func() time.Time
}

func NewAISource(gen Generator) *AISource {
	return &AISource{gen: gen, fallback: FallbackSet, now: time.Now}
}

func (s *AISource) Fetch(ctx context.Context, count int, difficulty Difficulty) ([]Question, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	log := config.WithContext(ctx)

	raw, err := s.gen.GenerateText(ctx, BuildPrompt(count, difficulty))
	if err != nil {
		log.WithError(err).Warn("generative question source failed, serving fallback set")
		return s.fallbackQuestions(count), nil
	}

	questions, err := s.parse(raw, count, difficulty)
	if err != nil {
		log.WithError(err).Warn("could not parse generative output, serving fallback set")
		return s.fallbackQuestions(count), nil
	}

	log.Infof("generated %d questions", len(questions))
	return questions, nil
}

// parse decodes the model output as a strict array of question objects.
// Items that fail validation are dropped silently, there is no partial-item
// repair.
func (s *AISource) parse(raw string, count int, difficulty Difficulty) ([]Question, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	clean = strings.TrimSpace(clean)

	var items []struct {
		Text          string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		return nil, fmt.Errorf("failed to decode question JSON: %w", err)
	}

	stamped := difficulty
	if stamped == DifficultyAny {
		stamped = DifficultyMedium
	}

	base := s.now().UnixMilli()
	questions := make([]Question, 0, len(items))
	for i, item := range items {
		q := Question{
			ID:            base + int64(i),
			Text:          item.Text,
			Options:       item.Options,
			CorrectAnswer: item.CorrectAnswer,
			Difficulty:    stamped,
			Explanation:   item.Explanation,
		}
		if err := q.Validate(); err != nil {
			continue
		}
		questions = append(questions, q)
		if len(questions) == count {
			break
		}
	}

	if len(questions) == 0 {
		return nil, errors.New("no valid questions in generative output")
	}
	return questions, nil
}

func (s *AISource) fallbackQuestions(count int) []Question {
	if count > len(s.fallback) {
		count = len(s.fallback)
	}
	out := make([]Question, count)
	copy(out, s.fallback[:count])
	return out
}
