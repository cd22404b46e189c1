package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dtkhuong/warbler/internal/models"
)

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Like inserts the edge for (userID, messageID). Liking the same message
// twice leaves a single edge. The message must exist.
func (r *likeRepository) Like(userID, messageID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var message models.Message
		err := tx.Select("message_id").First(&message, messageID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		edge := models.Like{UserID: userID, MessageID: messageID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
	})
}

// Unlike removes the edge if present; removing a missing edge is a no-op.
func (r *likeRepository) Unlike(userID, messageID uint) error {
	return r.db.Where("user_id = ? AND msg_id = ?", userID, messageID).
		Delete(&models.Like{}).Error
}

func (r *likeRepository) ForUser(userID uint) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Where("user_id = ?", userID).Find(&likes).Error
	return likes, err
}

// All returns every like edge, used for aggregate counts on feeds.
func (r *likeRepository) All() ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Find(&likes).Error
	return likes, err
}
