package repository

import (
	"context"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowUser is one side of a follow edge with display fields attached.
type FollowUser struct {
	ID       string
	Username string
	Name     string
}

type FollowRepository interface {
	Get(ctx context.Context, followerID, followingID string) (*entity.Follow, error)
	Create(ctx context.Context, data *entity.Follow) error
	Delete(ctx context.Context, followerID, followingID string) error
	GetFollowing(ctx context.Context, userID string) ([]FollowUser, error)
	GetFollowers(ctx context.Context, userID string) ([]FollowUser, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
}

type followRepository struct{}

func NewFollowRepository() *followRepository {
	return &followRepository{}
}

func (r *followRepository) Get(ctx context.Context, followerID, followingID string) (*entity.Follow, error) {
	var result entity.Follow
	err := xcontext.DB(ctx).Take(&result, "follower_id=? AND following_id=?", followerID, followingID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Create inserts the edge idempotently; a duplicate insert is a silent no-op.
func (r *followRepository) Create(ctx context.Context, data *entity.Follow) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(data).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID string) error {
	tx := xcontext.DB(ctx).
		Where("follower_id=? AND following_id=?", followerID, followingID).
		Delete(&entity.Follow{})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *followRepository) GetFollowing(ctx context.Context, userID string) ([]FollowUser, error) {
	var result []FollowUser
	err := xcontext.DB(ctx).Model(&entity.Follow{}).
		Select("users.id, users.username, users.name").
		Joins("JOIN users ON users.id=follows.following_id").
		Where("follows.follower_id=?", userID).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, userID string) ([]FollowUser, error) {
	var result []FollowUser
	err := xcontext.DB(ctx).Model(&entity.Follow{}).
		Select("users.id, users.username, users.name").
		Joins("JOIN users ON users.id=follows.follower_id").
		Where("follows.following_id=?", userID).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).Model(&entity.Follow{}).
		Where("following_id=?", userID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).Model(&entity.Follow{}).
		Where("follower_id=?", userID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}
