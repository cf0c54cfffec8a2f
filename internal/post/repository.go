package post

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(p *Post) error
	Save(p *Post) error
	FindByID(id string) (*Post, error)
	List(limit int, includeDeleted bool) ([]*Post, error)
	IncrementCounter(id, column string, delta int) error
	HardDelete(id string) error

	CreateComment(c *Comment) error
	FindCommentByID(id string) (*Comment, error)
	ListComments(postID string) ([]*Comment, error)
	DeleteComment(id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(p *Post) error {
	return r.db.Create(p).Error
}

func (r *repository) Save(p *Post) error {
	return r.db.Save(p).Error
}

func (r *repository) FindByID(id string) (*Post, error) {
	var p Post
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(limit int, includeDeleted bool) ([]*Post, error) {
	q := r.db.Order("created_at DESC").Limit(limit)
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}

	var posts []*Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// IncrementCounter bumps one of the post counters atomically in SQL so that
// concurrent requests never lose an update.
func (r *repository) IncrementCounter(id, column string, delta int) error {
	return r.db.Model(&Post{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

func (r *repository) HardDelete(id string) error {
	return r.db.Delete(&Post{}, "id = ?", id).Error
}

func (r *repository) CreateComment(c *Comment) error {
	return r.db.Create(c).Error
}

func (r *repository) FindCommentByID(id string) (*Comment, error) {
	var c Comment
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListComments(postID string) ([]*Comment, error) {
	var comments []*Comment
	if err := r.db.
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *repository) DeleteComment(id string) error {
	return r.db.Delete(&Comment{}, "id = ?", id).Error
}
