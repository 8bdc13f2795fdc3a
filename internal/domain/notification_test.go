package domain

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/internal/model"
	"github.com/Pratyush-Px/Gatherly/internal/repository"
	"github.com/Pratyush-Px/Gatherly/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func Test_notificationDomain_GetList(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	notificationRepo := repository.NewNotificationRepository()
	domain := NewNotificationDomain(notificationRepo)

	err := notificationRepo.Create(ctx, &entity.Notification{
		RecipientID: testutil.User1.ID,
		SenderID:    testutil.User2.ID,
		Type:        entity.FollowNotification,
	})
	require.NoError(t, err)

	err = notificationRepo.Create(ctx, &entity.Notification{
		RecipientID: testutil.User1.ID,
		SenderID:    testutil.User2.ID,
		Type:        entity.LikeNotification,
		PostID:      sql.NullString{String: testutil.Post1.ID, Valid: true},
	})
	require.NoError(t, err)

	// A notification for someone else must not show up.
	err = notificationRepo.Create(ctx, &entity.Notification{
		RecipientID: testutil.User2.ID,
		SenderID:    testutil.User1.ID,
		Type:        entity.FollowNotification,
	})
	require.NoError(t, err)

	resp, err := domain.GetList(ctx, &model.ListNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, *resp, 2)

	// Newest first; the like notification was recorded last.
	newest := (*resp)[0]
	require.Equal(t, string(entity.LikeNotification), newest.Type)
	require.Equal(t, testutil.User2.ID, newest.SenderID)
	require.Equal(t, testutil.User2.Username, newest.SenderName)
	require.NotNil(t, newest.PostID)
	require.Equal(t, testutil.Post1.ID, *newest.PostID)

	oldest := (*resp)[1]
	require.Equal(t, string(entity.FollowNotification), oldest.Type)
	require.Nil(t, oldest.PostID)
	require.Nil(t, oldest.PostImage)
}

func Test_notificationDomain_GetList_cap(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	notificationRepo := repository.NewNotificationRepository()
	domain := NewNotificationDomain(notificationRepo)

	now := time.Now()
	for i := 0; i < 30; i++ {
		err := notificationRepo.Create(ctx, &entity.Notification{
			CreatedAt:   now.Add(time.Duration(i) * time.Minute),
			RecipientID: testutil.User1.ID,
			SenderID:    testutil.User2.ID,
			Type:        entity.FollowNotification,
		})
		require.NoError(t, err)
	}

	resp, err := domain.GetList(ctx, &model.ListNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, *resp, 20)

	// The 20 newest of the 30, newest first.
	for i, n := range *resp {
		expected := now.Add(time.Duration(29-i) * time.Minute)
		require.Equal(t, expected.Unix(), n.CreatedAt.Unix(), fmt.Sprintf("index %d", i))
	}
}
