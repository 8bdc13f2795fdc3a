package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/internal/model"
	"github.com/Pratyush-Px/Gatherly/internal/repository"
	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func newPostDomain() (*postDomain, repository.NotificationRepository) {
	notificationRepo := repository.NewNotificationRepository()
	return NewPostDomain(
		repository.NewPostRepository(),
		repository.NewPostLikeRepository(),
		repository.NewCommentRepository(),
		notificationRepo,
	), notificationRepo
}

func Test_postDomain_ToggleLike(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain, notificationRepo := newPostDomain()

	// Post1 belongs to User1, so liking it notifies User1.
	resp, err := domain.ToggleLike(ctx, &model.ToggleLikeRequest{PostID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, "Liked", resp.Message)
	require.Equal(t, 1, resp.Likes)

	notifications, err := notificationRepo.GetRecent(ctx, testutil.User1.ID, 20)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, entity.LikeNotification, notifications[0].Type)
	require.Equal(t, testutil.User2.ID, notifications[0].SenderID)
	require.Equal(t, testutil.Post1.ID, notifications[0].PostID.String)

	resp, err = domain.ToggleLike(ctx, &model.ToggleLikeRequest{PostID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, "Unliked", resp.Message)
	require.Equal(t, 0, resp.Likes)

	// The like notification stays after unliking.
	count, err := notificationRepo.Count(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func Test_postDomain_ToggleLike_ownPost(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain, notificationRepo := newPostDomain()

	resp, err := domain.ToggleLike(ctx, &model.ToggleLikeRequest{PostID: testutil.Post2.ID})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Likes)

	count, err := notificationRepo.Count(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func Test_postDomain_Delete(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain, _ := newPostDomain()
	postRepo := repository.NewPostRepository()

	// User2 cannot delete User1's post, and the row survives.
	_, err := domain.Delete(ctx, &model.DeletePostRequest{PostID: testutil.Post1.ID})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Cannot delete this post"), err)

	_, err = postRepo.GetByID(ctx, testutil.Post1.ID)
	require.NoError(t, err)

	// A missing post fails the same way.
	_, err = domain.Delete(ctx, &model.DeletePostRequest{PostID: "no-such-post"})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Cannot delete this post"), err)

	resp, err := domain.Delete(ctx, &model.DeletePostRequest{PostID: testutil.Post2.ID})
	require.NoError(t, err)
	require.Equal(t, "Post deleted!", resp.Message)

	_, err = postRepo.GetByID(ctx, testutil.Post2.ID)
	require.Error(t, err)
}

func Test_postDomain_Update(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain, _ := newPostDomain()

	_, err := domain.Update(ctx, &model.UpdatePostRequest{
		PostID:  testutil.Post1.ID,
		Content: "hijacked",
	})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Cannot edit this post"), err)

	resp, err := domain.Update(ctx, &model.UpdatePostRequest{
		PostID:  testutil.Post2.ID,
		Content: "edited content",
	})
	require.NoError(t, err)
	require.Equal(t, "Post updated", resp.Message)
	require.Equal(t, "edited content", resp.Post.Content)
}

func Test_postDomain_Get(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain, _ := newPostDomain()
	commentRepo := repository.NewCommentRepository()

	err := commentRepo.Create(ctx, &entity.Comment{
		Base:    entity.Base{ID: "comment1"},
		PostID:  testutil.Post1.ID,
		UserID:  testutil.User2.ID,
		Content: "nice post",
	})
	require.NoError(t, err)

	resp, err := domain.Get(ctx, &model.GetPostRequest{PostID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.Post1.Content, resp.Post.Content)
	require.Equal(t, testutil.User1.Username, resp.Post.Username)
	require.Len(t, resp.Comments, 1)
	require.Equal(t, "nice post", resp.Comments[0].Content)
	require.Equal(t, testutil.User2.Username, resp.Comments[0].Username)

	_, err = domain.Get(ctx, &model.GetPostRequest{PostID: "no-such-post"})
	require.Equal(t, errorx.New(errorx.NotFound, "Post not found"), err)
}

func Test_postDomain_GetFeed(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain, _ := newPostDomain()
	postRepo := repository.NewPostRepository()
	commentRepo := repository.NewCommentRepository()

	// 25 extra posts with spaced timestamps on top of the 2 fixture posts.
	base := time.Now().Add(time.Hour)
	for i := 0; i < 25; i++ {
		err := postRepo.Create(ctx, &entity.Post{
			Base: entity.Base{
				ID:        fmt.Sprintf("feed-post-%d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			},
			UserID:  testutil.User1.ID,
			Content: fmt.Sprintf("post %d", i),
		})
		require.NoError(t, err)
	}

	err := commentRepo.Create(ctx, &entity.Comment{
		Base:    entity.Base{ID: "feed-comment"},
		PostID:  "feed-post-24",
		UserID:  testutil.User2.ID,
		Content: "first!",
	})
	require.NoError(t, err)

	page1, err := domain.GetFeed(ctx, &model.GetFeedRequest{Page: 1})
	require.NoError(t, err)
	require.Len(t, page1.Posts, 20)
	require.Equal(t, "feed-post-24", page1.Posts[0].ID)
	require.Equal(t, testutil.User1.Username, page1.Posts[0].Username)
	require.Len(t, page1.Posts[0].Comments, 1)
	require.Equal(t, "first!", page1.Posts[0].Comments[0].Content)
	require.Equal(t, testutil.User2.Username, page1.Posts[0].Comments[0].Username)

	page2, err := domain.GetFeed(ctx, &model.GetFeedRequest{Page: 2})
	require.NoError(t, err)
	require.Len(t, page2.Posts, 7)

	// Past the end of the feed comes back empty, not an error.
	page3, err := domain.GetFeed(ctx, &model.GetFeedRequest{Page: 3})
	require.NoError(t, err)
	require.Empty(t, page3.Posts)

	// Page zero is treated as the first page.
	page0, err := domain.GetFeed(ctx, &model.GetFeedRequest{Page: 0})
	require.NoError(t, err)
	require.Equal(t, page1.Posts[0].ID, page0.Posts[0].ID)
}
