package entity

type Post struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Content  string `gorm:"size:2048"`
	ImageURL string

	// Denormalized counter, kept in step with PostLike rows by paired
	// increment/decrement statements. Not recomputed.
	Likes int `gorm:"default:0"`
}
