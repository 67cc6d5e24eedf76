package repositories

import (
	"errors"

	"github.com/warblr-social/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	LikeMessage(userID, messageID uint) error
	UnlikeMessage(userID, messageID uint) error
	HasLiked(userID, messageID uint) (bool, error)
	ListLikedMessages(userID uint) ([]models.Message, error)
	GetLikesCount(messageID uint) (int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// LikeMessage records that userID likes messageID. Users cannot like their
// own messages, and the composite key rejects a second like of the same
// message with ErrAlreadyLiked.
func (r *PostgresLikeRepository) LikeMessage(userID, messageID uint) error {
	var message models.Message
	if err := r.db.First(&message, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return err
	}
	if message.UserID == userID {
		return ErrOwnMessageLike
	}

	like := &models.Like{UserID: userID, MessageID: messageID}
	if err := r.db.Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyLiked
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// UnlikeMessage removes the like if present. Removing an absent like is a no-op.
func (r *PostgresLikeRepository) UnlikeMessage(userID, messageID uint) error {
	return r.db.Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{}).Error
}

// HasLiked reports whether userID has liked messageID.
func (r *PostgresLikeRepository) HasLiked(userID, messageID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListLikedMessages returns the messages userID has liked, newest first.
func (r *PostgresLikeRepository) ListLikedMessages(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("id IN (?)",
		r.db.Table("likes").Select("message_id").Where("user_id = ?", userID),
	).Order("timestamp DESC").Find(&messages).Error
	return messages, err
}

// GetLikesCount returns how many users have liked messageID.
func (r *PostgresLikeRepository) GetLikesCount(messageID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("message_id = ?", messageID).Count(&count).Error
	return count, err
}
