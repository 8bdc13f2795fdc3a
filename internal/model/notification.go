package model

import "time"

type Notification struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	PostID     *string   `json:"post_id"`
	PostImage  *string   `json:"post_image"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListNotificationsRequest struct{}

type ListNotificationsResponse []Notification
