package models

// Follow is a directed edge: the follower's home timeline includes
// the followed user's messages. The composite primary key keeps the
// pair unique.
type Follow struct {
	FollowerID uint `gorm:"primaryKey;column:follower_id"`
	FollowedID uint `gorm:"primaryKey;column:followed_id"`
}

// TableName overrides the table name used by GORM
func (Follow) TableName() string {
	return "follows"
}
