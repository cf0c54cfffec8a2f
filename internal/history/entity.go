package history

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizResult is the durable record of one completed session.
type QuizResult struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Score          int            `gorm:"not null" json:"score"`
	CorrectCount   int            `gorm:"not null" json:"correct_count"`
	TotalQuestions int            `gorm:"not null" json:"total_questions"`
	Questions      datatypes.JSON `gorm:"type:jsonb" json:"questions,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
