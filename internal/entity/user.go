package entity

type User struct {
	Base
	Name     string
	Username string `gorm:"unique"`
	Email    string `gorm:"unique"`
	Password string
}
