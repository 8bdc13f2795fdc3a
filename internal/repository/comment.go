package repository

import (
	"context"
	"time"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
	"gorm.io/gorm"
)

// CommentWithAuthor is a comment row joined with the commenter's display
// fields.
type CommentWithAuthor struct {
	ID        string
	PostID    string
	Content   string
	CreatedAt time.Time
	UserID    string
	Username  string
	Name      string
}

type CommentRepository interface {
	Create(ctx context.Context, data *entity.Comment) error
	GetListByPostID(ctx context.Context, postID string) ([]CommentWithAuthor, error)
	DeleteByOwner(ctx context.Context, id, userID string) error
}

type commentRepository struct{}

func NewCommentRepository() *commentRepository {
	return &commentRepository{}
}

func (r *commentRepository) Create(ctx context.Context, data *entity.Comment) error {
	return xcontext.DB(ctx).Create(data).Error
}

// GetListByPostID returns the full comment list oldest-first.
func (r *commentRepository) GetListByPostID(ctx context.Context, postID string) ([]CommentWithAuthor, error) {
	var result []CommentWithAuthor
	err := xcontext.DB(ctx).Model(&entity.Comment{}).
		Select("comments.id, comments.post_id, comments.content, comments.created_at, "+
			"users.id AS user_id, users.username, users.name").
		Joins("JOIN users ON users.id=comments.user_id").
		Where("comments.post_id=?", postID).
		Order("comments.created_at ASC").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *commentRepository) DeleteByOwner(ctx context.Context, id, userID string) error {
	tx := xcontext.DB(ctx).
		Where("id=? AND user_id=?", id, userID).
		Delete(&entity.Comment{})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
