package models

import "time"

// Default profile images used when signup does not provide any.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User represents a user in the database
type User struct {
	ID             uint   `gorm:"primaryKey;column:user_id"`
	Username       string `gorm:"uniqueIndex;size:30;not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	PwHash         string `gorm:"column:pw_hash;not null" json:"-"`
	ImageURL       string `gorm:"column:image_url"`
	HeaderImageURL string `gorm:"column:header_image_url"`
	Bio            string
	Location       string
	CreatedAt      time.Time
}

// TableName overrides the table name used by User to `user`
func (User) TableName() string {
	return "user"
}
