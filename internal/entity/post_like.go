package entity

import "time"

// PostLike rows are hard-deleted on unlike so a re-like can reinsert the same
// composite key.
type PostLike struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	PostID string `gorm:"primaryKey"`
	Post   Post   `gorm:"foreignKey:PostID"`

	CreatedAt time.Time
}
