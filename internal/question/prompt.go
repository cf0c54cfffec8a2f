package question

import "fmt"

// BuildPrompt asks Gemini for a pure JSON array of economy-terms questions.
// The response contract mirrors the Question JSON shape exactly, anything
// outside it is rejected by the parser.
func BuildPrompt(count int, difficulty Difficulty) string {
	if difficulty == DifficultyAny {
		difficulty = DifficultyMedium
	}
	return fmt.Sprintf(
		`경제 용어 퀴즈 %d개를 JSON 배열로만 반환하세요. 난이도: %s. 형식: [{"question":"질문","options":["1","2","3","4"],"correctAnswer":0,"explanation":"설명"}]`,
		count, difficulty,
	)
}
