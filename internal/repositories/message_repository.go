package repositories

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/warblr-social/backend/internal/models"
	"gorm.io/gorm"
)

// feedLimit caps the home feed at the 100 most recent warbles.
const feedLimit = 100

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	CreateMessage(message *models.Message) error
	GetMessageByID(id uint) (*models.Message, error)
	ListMessagesByUserID(userID uint) ([]models.Message, error)
	DeleteMessage(id, ownerID uint) error
	ListFeed(userID uint) ([]models.Message, error)
}

// PostgresMessageRepository implements MessageRepository for PostgreSQL
type PostgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// CreateMessage persists a message. Blank text fails with
// ErrMessageTextRequired and over-length text with ErrMessageTooLong; both
// are integrity failures of the persistence call, so rows committed earlier
// are untouched. A zero timestamp resolves to the current time before the
// insert, so the caller always observes a non-zero timestamp.
func (r *PostgresMessageRepository) CreateMessage(message *models.Message) error {
	if strings.TrimSpace(message.Text) == "" {
		return ErrMessageTextRequired
	}
	if utf8.RuneCountInString(message.Text) > models.MaxMessageLength {
		return ErrMessageTooLong
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	if err := r.db.Create(message).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// GetMessageByID retrieves a message by ID from PostgreSQL
func (r *PostgresMessageRepository) GetMessageByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// ListMessagesByUserID returns the user's messages, newest first.
func (r *PostgresMessageRepository) ListMessagesByUserID(userID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("user_id = ?", userID).Order("timestamp DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteMessage removes a message on behalf of its owner. Deleting someone
// else's message fails with ErrNotMessageOwner even when invoked directly.
func (r *PostgresMessageRepository) DeleteMessage(id, ownerID uint) error {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return err
	}
	if message.UserID != ownerID {
		return ErrNotMessageOwner
	}
	return r.db.Delete(&message).Error
}

// ListFeed returns the newest messages from the users userID follows plus
// userID's own, capped at feedLimit.
func (r *PostgresMessageRepository) ListFeed(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("user_id = ? OR user_id IN (?)", userID,
		r.db.Table("follows").Select("following_id").Where("follower_id = ?", userID),
	).Order("timestamp DESC").Limit(feedLimit).Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
