package repositories

import (
	"errors"
	"time"

	"homepro_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	FindByID(db *gorm.DB, id string) (*models.Message, error)
	FindConversation(db *gorm.DB, userA, userB string, limit, offset int) ([]models.Message, error)
	MarkConversationRead(db *gorm.DB, readerID, senderID string) error
	CountUnread(db *gorm.DB, userID string) (int64, error)
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Message, error) {
	var message models.Message
	err := db.First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// FindConversation возвращает переписку двух пользователей, новые сверху
func (r *MessageRepositoryImpl) FindConversation(db *gorm.DB, userA, userB string, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userA, userB, userB, userA,
	).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&messages).Error
	return messages, err
}

// MarkConversationRead помечает прочитанными все входящие от senderID
func (r *MessageRepositoryImpl) MarkConversationRead(db *gorm.DB, readerID, senderID string) error {
	return db.Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND read = ?", readerID, senderID, false).
		Updates(map[string]interface{}{
			"read":       true,
			"updated_at": time.Now(),
		}).Error
}

func (r *MessageRepositoryImpl) CountUnread(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Message{}).
		Where("receiver_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}
