package repository

import (
	"context"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
	"gorm.io/gorm"
)

type PostLikeRepository interface {
	Get(ctx context.Context, userID, postID string) (*entity.PostLike, error)
	Create(ctx context.Context, data *entity.PostLike) error
	Delete(ctx context.Context, userID, postID string) error
}

type postLikeRepository struct{}

func NewPostLikeRepository() *postLikeRepository {
	return &postLikeRepository{}
}

func (r *postLikeRepository) Get(ctx context.Context, userID, postID string) (*entity.PostLike, error) {
	var result entity.PostLike
	err := xcontext.DB(ctx).Take(&result, "user_id=? AND post_id=?", userID, postID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *postLikeRepository) Create(ctx context.Context, data *entity.PostLike) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *postLikeRepository) Delete(ctx context.Context, userID, postID string) error {
	tx := xcontext.DB(ctx).
		Where("user_id=? AND post_id=?", userID, postID).
		Delete(&entity.PostLike{})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
