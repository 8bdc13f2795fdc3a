package domain

import (
	"context"
	"errors"

	"github.com/Pratyush-Px/Gatherly/internal/model"
	"github.com/Pratyush-Px/Gatherly/internal/repository"
	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
	"gorm.io/gorm"
)

const maxSearchResults = 5

type UserDomain interface {
	Search(ctx context.Context, req *model.SearchUsersRequest) (*model.SearchUsersResponse, error)
	GetProfile(ctx context.Context, req *model.GetProfileRequest) (*model.GetProfileResponse, error)
}

type userDomain struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
) *userDomain {
	return &userDomain{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

func (d *userDomain) Search(
	ctx context.Context, req *model.SearchUsersRequest,
) (*model.SearchUsersResponse, error) {
	resp := model.SearchUsersResponse{}
	if req.Query == "" {
		return &resp, nil
	}

	users, err := d.userRepo.Search(ctx, req.Query, maxSearchResults)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot search users: %v", err)
		return nil, errorx.Unknown
	}

	for i := range users {
		resp = append(resp, model.ConvertShortUser(&users[i]))
	}

	return &resp, nil
}

// GetProfile composes five independent reads with no transactional snapshot;
// concurrent mutation between them can yield a transiently inconsistent view.
func (d *userDomain) GetProfile(
	ctx context.Context, req *model.GetProfileRequest,
) (*model.GetProfileResponse, error) {
	user, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by username: %v", err)
		return nil, errorx.Unknown
	}

	postCount, err := d.postRepo.Count(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count posts: %v", err)
		return nil, errorx.Unknown
	}

	followers, err := d.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count followers: %v", err)
		return nil, errorx.Unknown
	}

	following, err := d.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count following: %v", err)
		return nil, errorx.Unknown
	}

	isFollowing := false
	if _, err := d.followRepo.Get(ctx, xcontext.RequestUserID(ctx), user.ID); err == nil {
		isFollowing = true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get follow edge: %v", err)
		return nil, errorx.Unknown
	}

	posts, err := d.postRepo.GetListByUserID(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get posts of user: %v", err)
		return nil, errorx.Unknown
	}

	clientPosts := []model.Post{}
	for i := range posts {
		clientPosts = append(clientPosts, model.ConvertPost(&posts[i]))
	}

	return &model.GetProfileResponse{
		User: model.ConvertShortUser(user),
		Stats: model.ProfileStats{
			Posts:     postCount,
			Followers: followers,
			Following: following,
		},
		IsFollowing: isFollowing,
		Posts:       clientPosts,
	}, nil
}
