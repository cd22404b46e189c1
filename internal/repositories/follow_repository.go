package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dtkhuong/warbler/internal/models"
)

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow inserts an edge from follower to followed. Following someone
// twice is a no-op; following yourself is rejected.
func (r *followRepository) Follow(followerID, followedID uint) error {
	if followerID == followedID {
		return ErrSelfFollow
	}
	var count int64
	if err := r.db.Model(&models.User{}).Where("user_id = ?", followedID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	edge := models.Follow{FollowerID: followerID, FollowedID: followedID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
}

// Unfollow removes the edge if present; removing a missing edge is a no-op.
func (r *followRepository) Unfollow(followerID, followedID uint) error {
	return r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
}

func (r *followRepository) Following(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Table("\"user\"").
		Joins("INNER JOIN follows ON follows.followed_id = \"user\".user_id").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (r *followRepository) Followers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Table("\"user\"").
		Joins("INNER JOIN follows ON follows.follower_id = \"user\".user_id").
		Where("follows.followed_id = ?", userID).
		Find(&users).Error
	return users, err
}

// FollowingIDs returns just the followed user ids, for timeline assembly.
func (r *followRepository) FollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followed_id", &ids).Error
	return ids, err
}

func (r *followRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) IsFollowedBy(userID, followerID uint) (bool, error) {
	return r.IsFollowing(followerID, userID)
}
