package entity

type File struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Name string
	Mime string
	Url  string
}
