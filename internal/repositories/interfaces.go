package repositories

import "github.com/dtkhuong/warbler/internal/models"

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Search(query string) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}

type FollowRepository interface {
	Follow(followerID, followedID uint) error
	Unfollow(followerID, followedID uint) error
	Following(userID uint) ([]models.User, error)
	Followers(userID uint) ([]models.User, error)
	FollowingIDs(userID uint) ([]uint, error)
	IsFollowing(followerID, followedID uint) (bool, error)
	IsFollowedBy(userID, followerID uint) (bool, error)
}

type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id uint) (*models.Message, error)
	FindByIDs(ids []uint) ([]models.Message, error)
	DeleteByAuthor(authorID, messageID uint) error
	RecentByAuthor(userID uint, limit int) ([]models.Message, error)
	RecentByAuthors(userIDs []uint, limit int) ([]models.Message, error)
}

type LikeRepository interface {
	Like(userID, messageID uint) error
	Unlike(userID, messageID uint) error
	ForUser(userID uint) ([]models.Like, error)
	All() ([]models.Like, error)
}
