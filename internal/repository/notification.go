package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
	"github.com/bwmarrin/snowflake"
)

// NotificationWithSender is a notification row joined with the sender's
// display fields and, when a post is referenced, its image for previews.
type NotificationWithSender struct {
	ID         int64
	Type       entity.NotificationType
	SenderID   string
	SenderName string
	PostID     sql.NullString
	PostImage  sql.NullString
	CreatedAt  time.Time
}

type NotificationRepository interface {
	Create(ctx context.Context, data *entity.Notification) error
	GetRecent(ctx context.Context, recipientID string, limit int) ([]NotificationWithSender, error)
	Count(ctx context.Context, recipientID string) (int64, error)
}

type notificationRepository struct {
	idGenerator *snowflake.Node
}

func NewNotificationRepository() *notificationRepository {
	node, err := snowflake.NewNode(0)
	if err != nil {
		panic(err)
	}

	return &notificationRepository{idGenerator: node}
}

func (r *notificationRepository) Create(ctx context.Context, data *entity.Notification) error {
	if !data.Type.IsValid() {
		return fmt.Errorf("invalid notification type %q", data.Type)
	}

	if data.ID == 0 {
		data.ID = r.idGenerator.Generate().Int64()
	}

	return xcontext.DB(ctx).Create(data).Error
}

func (r *notificationRepository) GetRecent(
	ctx context.Context, recipientID string, limit int,
) ([]NotificationWithSender, error) {
	var result []NotificationWithSender
	err := xcontext.DB(ctx).Model(&entity.Notification{}).
		Select("notifications.id, notifications.type, notifications.post_id, notifications.created_at, "+
			"users.id AS sender_id, users.username AS sender_name, "+
			"posts.image_url AS post_image").
		Joins("JOIN users ON users.id=notifications.sender_id").
		Joins("LEFT JOIN posts ON posts.id=notifications.post_id").
		Where("notifications.recipient_id=?", recipientID).
		Order("notifications.created_at DESC, notifications.id DESC").
		Limit(limit).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *notificationRepository) Count(ctx context.Context, recipientID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).Model(&entity.Notification{}).
		Where("recipient_id=?", recipientID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}
