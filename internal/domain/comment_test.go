package domain

import (
	"testing"
	"time"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/internal/model"
	"github.com/Pratyush-Px/Gatherly/internal/repository"
	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/testutil"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"

	"github.com/stretchr/testify/require"
)

func newCommentDomain() (*commentDomain, repository.NotificationRepository) {
	notificationRepo := repository.NewNotificationRepository()
	return NewCommentDomain(
		repository.NewCommentRepository(),
		repository.NewPostRepository(),
		repository.NewUserRepository(),
		notificationRepo,
	), notificationRepo
}

func Test_commentDomain_Add(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain, notificationRepo := newCommentDomain()

	resp, err := domain.Add(ctx, &model.AddCommentRequest{
		PostID:  testutil.Post1.ID,
		Content: "great post",
	})
	require.NoError(t, err)
	require.Equal(t, "Comment added!", resp.Message)
	require.Equal(t, "great post", resp.Comment.Content)
	require.Equal(t, testutil.User2.Username, resp.Comment.Username)

	// The post author gets a comment notification carrying the post id.
	notifications, err := notificationRepo.GetRecent(ctx, testutil.User1.ID, 20)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, entity.CommentNotification, notifications[0].Type)
	require.Equal(t, testutil.User2.ID, notifications[0].SenderID)
	require.Equal(t, testutil.Post1.ID, notifications[0].PostID.String)
}

func Test_commentDomain_Add_ownPost(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain, notificationRepo := newCommentDomain()

	_, err := domain.Add(ctx, &model.AddCommentRequest{
		PostID:  testutil.Post2.ID,
		Content: "replying to myself",
	})
	require.NoError(t, err)

	count, err := notificationRepo.Count(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func Test_commentDomain_Add_missingPost(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain, _ := newCommentDomain()

	_, err := domain.Add(ctx, &model.AddCommentRequest{
		PostID:  "no-such-post",
		Content: "into the void",
	})
	require.Equal(t, errorx.New(errorx.NotFound, "Post not found"), err)
}

func Test_commentDomain_GetList(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain, _ := newCommentDomain()
	commentRepo := repository.NewCommentRepository()

	// Oldest-first, so spaced timestamps make the order deterministic.
	now := time.Now()
	for i, content := range []string{"first", "second", "third"} {
		err := commentRepo.Create(ctx, &entity.Comment{
			Base: entity.Base{
				ID:        content,
				CreatedAt: now.Add(time.Duration(i) * time.Minute),
			},
			PostID:  testutil.Post1.ID,
			UserID:  testutil.User2.ID,
			Content: content,
		})
		require.NoError(t, err)
	}

	resp, err := domain.GetList(ctx, &model.ListCommentsRequest{PostID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Len(t, resp.Comments, 3)
	require.Equal(t, "first", resp.Comments[0].Content)
	require.Equal(t, "third", resp.Comments[2].Content)
	require.Equal(t, testutil.User2.Username, resp.Comments[0].Username)
}

func Test_commentDomain_Delete(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain, _ := newCommentDomain()

	resp, err := domain.Add(ctx, &model.AddCommentRequest{
		PostID:  testutil.Post1.ID,
		Content: "to be deleted",
	})
	require.NoError(t, err)

	// Another user cannot delete it.
	user1Ctx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err = domain.Delete(user1Ctx, &model.DeleteCommentRequest{CommentID: resp.Comment.ID})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Cannot delete this comment"), err)

	deleted, err := domain.Delete(ctx, &model.DeleteCommentRequest{CommentID: resp.Comment.ID})
	require.NoError(t, err)
	require.Equal(t, "Comment deleted", deleted.Message)

	list, err := domain.GetList(ctx, &model.ListCommentsRequest{PostID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Empty(t, list.Comments)
}
