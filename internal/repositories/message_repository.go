package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dtkhuong/warbler/internal/models"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) FindByID(id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.Preload("User").First(&message, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// FindByIDs loads the given messages with their authors, newest first.
func (r *messageRepository) FindByIDs(ids []uint) ([]models.Message, error) {
	if len(ids) == 0 {
		return []models.Message{}, nil
	}
	var messages []models.Message
	err := r.db.Preload("User").
		Where("message_id IN ?", ids).
		Order("timestamp DESC").
		Find(&messages).Error
	return messages, err
}

// DeleteByAuthor deletes a message only when authorID wrote it. A message
// owned by someone else looks the same as a missing one to the caller.
// Likes on the message go away in the same transaction.
func (r *messageRepository) DeleteByAuthor(authorID, messageID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var message models.Message
		err := tx.First(&message, messageID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if message.UserID != authorID {
			return ErrNotFound
		}
		if err := tx.Where("msg_id = ?", messageID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Message{}, messageID).Error
	})
}

func (r *messageRepository) RecentByAuthor(userID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("User").
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) RecentByAuthors(userIDs []uint, limit int) ([]models.Message, error) {
	if len(userIDs) == 0 {
		return []models.Message{}, nil
	}
	var messages []models.Message
	err := r.db.Preload("User").
		Where("user_id IN ?", userIDs).
		Order("timestamp DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}
