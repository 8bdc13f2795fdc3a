package repository

import (
	"context"
	"time"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
	"gorm.io/gorm"
)

// PostWithAuthor is a post row joined with its author's display fields.
type PostWithAuthor struct {
	ID        string
	Content   string
	ImageURL  string
	Likes     int
	CreatedAt time.Time
	UserID    string
	Username  string
	Name      string
}

type PostRepository interface {
	Create(ctx context.Context, data *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetWithAuthor(ctx context.Context, id string) (*PostWithAuthor, error)
	GetList(ctx context.Context, offset, limit int) ([]PostWithAuthor, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.Post, error)
	Count(ctx context.Context, userID string) (int64, error)
	UpdateContentByOwner(ctx context.Context, id, userID, content string) error
	DeleteByOwner(ctx context.Context, id, userID string) error
	IncreaseLikes(ctx context.Context, id string) error
	DecreaseLikes(ctx context.Context, id string) error
}

type postRepository struct{}

func NewPostRepository() *postRepository {
	return &postRepository{}
}

func (r *postRepository) Create(ctx context.Context, data *entity.Post) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var result entity.Post
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *postRepository) GetWithAuthor(ctx context.Context, id string) (*PostWithAuthor, error) {
	var result PostWithAuthor
	err := xcontext.DB(ctx).Model(&entity.Post{}).
		Select("posts.id, posts.content, posts.image_url, posts.likes, posts.created_at, "+
			"users.id AS user_id, users.username, users.name").
		Joins("JOIN users ON users.id=posts.user_id").
		Where("posts.id=?", id).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *postRepository) GetList(ctx context.Context, offset, limit int) ([]PostWithAuthor, error) {
	var result []PostWithAuthor
	err := xcontext.DB(ctx).Model(&entity.Post{}).
		Select("posts.id, posts.content, posts.image_url, posts.likes, posts.created_at, " +
			"users.id AS user_id, users.username, users.name").
		Joins("JOIN users ON users.id=posts.user_id").
		Order("posts.created_at DESC").
		Offset(offset).Limit(limit).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.Post, error) {
	var result []entity.Post
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) Count(ctx context.Context, userID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).Model(&entity.Post{}).
		Where("user_id=?", userID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

// UpdateContentByOwner updates the content only when userID owns the post.
// A missing post and a foreign post are indistinguishable here, both return
// gorm.ErrRecordNotFound.
func (r *postRepository) UpdateContentByOwner(ctx context.Context, id, userID, content string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=? AND user_id=?", id, userID).
		Update("content", content)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *postRepository) DeleteByOwner(ctx context.Context, id, userID string) error {
	tx := xcontext.DB(ctx).
		Where("id=? AND user_id=?", id, userID).
		Delete(&entity.Post{})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *postRepository) IncreaseLikes(ctx context.Context, id string) error {
	return xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=?", id).
		UpdateColumn("likes", gorm.Expr("likes+1")).Error
}

// DecreaseLikes floors the counter at zero.
func (r *postRepository) DecreaseLikes(ctx context.Context, id string) error {
	return xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=?", id).
		UpdateColumn("likes", gorm.Expr("CASE WHEN likes > 0 THEN likes-1 ELSE 0 END")).Error
}
