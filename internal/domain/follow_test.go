package domain

import (
	"testing"

	"github.com/Pratyush-Px/Gatherly/internal/model"
	"github.com/Pratyush-Px/Gatherly/internal/repository"
	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/testutil"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"

	"github.com/stretchr/testify/require"
)

func newFollowDomain() (*followDomain, repository.NotificationRepository) {
	notificationRepo := repository.NewNotificationRepository()
	return NewFollowDomain(
		repository.NewFollowRepository(),
		repository.NewUserRepository(),
		notificationRepo,
	), notificationRepo
}

func Test_followDomain_Follow(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain, notificationRepo := newFollowDomain()
	followRepo := repository.NewFollowRepository()

	resp, err := domain.Follow(ctx, &model.FollowRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)
	require.Equal(t, "Followed", resp.Message)

	_, err = followRepo.Get(ctx, testutil.User1.ID, testutil.User2.ID)
	require.NoError(t, err)

	count, err := notificationRepo.Count(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// Following again keeps a single edge but records a second notification.
	_, err = domain.Follow(ctx, &model.FollowRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)

	following, err := followRepo.GetFollowing(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)

	count, err = notificationRepo.Count(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func Test_followDomain_Follow_self(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain, _ := newFollowDomain()

	_, err := domain.Follow(ctx, &model.FollowRequest{UserID: testutil.User1.ID})
	require.Equal(t, errorx.New(errorx.BadRequest, "Cannot follow self"), err)
}

func Test_followDomain_Follow_missingUser(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain, _ := newFollowDomain()

	_, err := domain.Follow(ctx, &model.FollowRequest{UserID: "no-such-user"})
	require.Equal(t, errorx.New(errorx.NotFound, "User not found"), err)
}

func Test_followDomain_Unfollow(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain, _ := newFollowDomain()

	_, err := domain.Unfollow(ctx, &model.UnfollowRequest{UserID: testutil.User2.ID})
	require.Equal(t, errorx.New(errorx.NotFound, "Follow relationship not found"), err)

	_, err = domain.Follow(ctx, &model.FollowRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)

	resp, err := domain.Unfollow(ctx, &model.UnfollowRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)
	require.Equal(t, "Unfollowed", resp.Message)

	// Refollowing after an unfollow works.
	_, err = domain.Follow(ctx, &model.FollowRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)
}

func Test_followDomain_Lists(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain, _ := newFollowDomain()

	_, err := domain.Follow(ctx, &model.FollowRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)

	user3Ctx := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err = domain.Follow(user3Ctx, &model.FollowRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)

	following, err := domain.GetFollowing(ctx, &model.GetFollowingRequest{UserID: testutil.User1.ID})
	require.NoError(t, err)
	require.Len(t, following.Following, 1)
	require.Equal(t, testutil.User2.Username, following.Following[0].Username)

	followers, err := domain.GetFollowers(ctx, &model.GetFollowersRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)
	require.Len(t, followers.Followers, 2)

	// A user with no edges gets empty lists.
	empty, err := domain.GetFollowers(ctx, &model.GetFollowersRequest{UserID: testutil.User3.ID})
	require.NoError(t, err)
	require.Empty(t, empty.Followers)
}
