package entity

import (
	"database/sql"
	"time"
)

type NotificationType string

const (
	LikeNotification    NotificationType = "like"
	CommentNotification NotificationType = "comment"
	FollowNotification  NotificationType = "follow"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case LikeNotification, CommentNotification, FollowNotification:
		return true
	}

	return false
}

// Notification ids are snowflakes, so ordering by id is ordering by time.
type Notification struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time

	RecipientID string `gorm:"index"`
	Recipient   User   `gorm:"foreignKey:RecipientID"`

	SenderID string
	Sender   User `gorm:"foreignKey:SenderID"`

	Type NotificationType

	PostID sql.NullString
}
