package entity

type Comment struct {
	Base

	PostID string `gorm:"index"`

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Content string `gorm:"size:2048"`
}
