package domain

import (
	"context"
	"errors"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/internal/model"
	"github.com/Pratyush-Px/Gatherly/internal/repository"
	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
	"gorm.io/gorm"
)

type FollowDomain interface {
	Follow(ctx context.Context, req *model.FollowRequest) (*model.FollowResponse, error)
	Unfollow(ctx context.Context, req *model.UnfollowRequest) (*model.UnfollowResponse, error)
	GetFollowing(ctx context.Context, req *model.GetFollowingRequest) (*model.GetFollowingResponse, error)
	GetFollowers(ctx context.Context, req *model.GetFollowersRequest) (*model.GetFollowersResponse, error)
}

type followDomain struct {
	followRepo       repository.FollowRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

func NewFollowDomain(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) *followDomain {
	return &followDomain{
		followRepo:       followRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// Follow is idempotent on the edge itself, but the notification is recorded
// unconditionally, so re-following someone pings them again.
func (d *followDomain) Follow(
	ctx context.Context, req *model.FollowRequest,
) (*model.FollowResponse, error) {
	followerID := xcontext.RequestUserID(ctx)
	if followerID == req.UserID {
		return nil, errorx.New(errorx.BadRequest, "Cannot follow self")
	}

	if _, err := d.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get followed user: %v", err)
		return nil, errorx.Unknown
	}

	err := d.followRepo.Create(ctx, &entity.Follow{
		FollowerID:  followerID,
		FollowingID: req.UserID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create follow: %v", err)
		return nil, errorx.Unknown
	}

	err = d.notificationRepo.Create(ctx, &entity.Notification{
		RecipientID: req.UserID,
		SenderID:    followerID,
		Type:        entity.FollowNotification,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create follow notification: %v", err)
		return nil, errorx.Unknown
	}

	return &model.FollowResponse{Message: "Followed"}, nil
}

func (d *followDomain) Unfollow(
	ctx context.Context, req *model.UnfollowRequest,
) (*model.UnfollowResponse, error) {
	err := d.followRepo.Delete(ctx, xcontext.RequestUserID(ctx), req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Follow relationship not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete follow: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UnfollowResponse{Message: "Unfollowed"}, nil
}

func (d *followDomain) GetFollowing(
	ctx context.Context, req *model.GetFollowingRequest,
) (*model.GetFollowingResponse, error) {
	users, err := d.followRepo.GetFollowing(ctx, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get following list: %v", err)
		return nil, errorx.Unknown
	}

	following := []model.ShortUser{}
	for _, u := range users {
		following = append(following, model.ShortUser{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
		})
	}

	return &model.GetFollowingResponse{Following: following}, nil
}

func (d *followDomain) GetFollowers(
	ctx context.Context, req *model.GetFollowersRequest,
) (*model.GetFollowersResponse, error) {
	users, err := d.followRepo.GetFollowers(ctx, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followers list: %v", err)
		return nil, errorx.Unknown
	}

	followers := []model.ShortUser{}
	for _, u := range users {
		followers = append(followers, model.ShortUser{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
		})
	}

	return &model.GetFollowersResponse{Followers: followers}, nil
}
