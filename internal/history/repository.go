package history

import "gorm.io/gorm"

type Repository interface {
	Create(result *QuizResult) error
	ListByUser(userID string, limit int) ([]*QuizResult, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(result *QuizResult) error {
	return r.db.Create(result).Error
}

func (r *repository) ListByUser(userID string, limit int) ([]*QuizResult, error) {
	var results []*QuizResult
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
