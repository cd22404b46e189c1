package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/dtkhuong/warbler/internal/models"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. A duplicate username or email is reported
// as ErrConflict so the signup form can be re-presented.
func (r *userRepository) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Search returns users whose username contains query, case-insensitively.
// An empty query lists everyone.
func (r *userRepository) Search(query string) ([]models.User, error) {
	var users []models.User
	tx := r.db.Order("username ASC")
	if query != "" {
		tx = tx.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	err := tx.Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	err := r.db.Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

// Delete removes the user and everything that references them: likes on
// their messages, their own likes, follow edges in both directions, and
// their messages. The cascade is an explicit transaction, not a mapper
// default, so a failure anywhere rolls the whole thing back.
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var messageIDs []uint
		if err := tx.Model(&models.Message{}).Where("user_id = ?", id).Pluck("message_id", &messageIDs).Error; err != nil {
			return err
		}
		if len(messageIDs) > 0 {
			if err := tx.Where("msg_id IN ?", messageIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
