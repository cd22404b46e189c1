package models

// Like marks a message as liked by a user. The composite primary key
// makes a second like of the same message a conflict, not a new row.
type Like struct {
	UserID    uint `gorm:"primaryKey;column:user_id"`
	MessageID uint `gorm:"primaryKey;column:msg_id"`
}

// TableName overrides the table name used by GORM
func (Like) TableName() string {
	return "likes"
}
