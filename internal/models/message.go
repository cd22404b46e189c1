package models

import "time"

// MaxMessageLength bounds the text of a single message.
const MaxMessageLength = 140

// Message represents a message in the system
type Message struct {
	ID        uint      `gorm:"primaryKey;column:message_id"`
	Text      string    `gorm:"size:140;not null"`
	Timestamp time.Time `gorm:"column:timestamp;autoCreateTime"`
	UserID    uint      `gorm:"column:user_id;not null;index"`
	User      User      `gorm:"foreignKey:UserID"`
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "message"
}
