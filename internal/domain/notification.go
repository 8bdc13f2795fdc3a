package domain

import (
	"context"

	"github.com/Pratyush-Px/Gatherly/internal/model"
	"github.com/Pratyush-Px/Gatherly/internal/repository"
	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
)

const maxRecentNotifications = 20

type NotificationDomain interface {
	GetList(ctx context.Context, req *model.ListNotificationsRequest) (*model.ListNotificationsResponse, error)
}

type notificationDomain struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationDomain(notificationRepo repository.NotificationRepository) *notificationDomain {
	return &notificationDomain{notificationRepo: notificationRepo}
}

func (d *notificationDomain) GetList(
	ctx context.Context, _ *model.ListNotificationsRequest,
) (*model.ListNotificationsResponse, error) {
	notifications, err := d.notificationRepo.GetRecent(
		ctx, xcontext.RequestUserID(ctx), maxRecentNotifications)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get notifications: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.ListNotificationsResponse{}
	for _, n := range notifications {
		clientNotification := model.Notification{
			ID:         n.ID,
			Type:       string(n.Type),
			SenderID:   n.SenderID,
			SenderName: n.SenderName,
			CreatedAt:  n.CreatedAt,
		}

		if n.PostID.Valid {
			postID := n.PostID.String
			clientNotification.PostID = &postID
		}

		if n.PostImage.Valid {
			postImage := n.PostImage.String
			clientNotification.PostImage = &postImage
		}

		resp = append(resp, clientNotification)
	}

	return &resp, nil
}
