package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	GoogleID     string    `gorm:"index" json:"-"`
	Username     string    `gorm:"not null" json:"username"`
	Email        string    `gorm:"index" json:"email"`
	Avatar       string    `json:"avatar"`
	Score        int       `gorm:"not null;default:0" json:"score"`
	QuizzesTaken int       `gorm:"not null;default:0" json:"quizzes_taken"`
	// RefreshToken holds the AES-GCM encrypted Google refresh token.
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastActive   time.Time `json:"last_active"`
}
