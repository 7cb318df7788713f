package repositories

import (
	"errors"
	"time"

	"flohmarkt_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	FindByID(db *gorm.DB, id string) (*models.Message, error)
	Update(db *gorm.DB, message *models.Message) error

	// FindReplies returns direct replies of a root message, oldest first.
	FindReplies(db *gorm.DB, parentID string) ([]models.Message, error)

	// Inbox: root messages newest first. ownerID == "" means all sellers
	// (admin view).
	FindInbox(db *gorm.DB, ownerID string, limit, offset int) ([]models.Message, int64, error)

	CountUnread(db *gorm.DB) (int64, error)
	CountUnreadByOwner(db *gorm.DB, ownerID string) (int64, error)

	MarkEmailSent(db *gorm.DB, id string, sentAt time.Time) error
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
	err := db.Preload("Product").First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) Update(db *gorm.DB, message *models.Message) error {
	return db.Save(message).Error
}

func (r *MessageRepositoryImpl) FindReplies(db *gorm.DB, parentID string) ([]models.Message, error) {
	var replies []models.Message
	err := db.Where("parent_message_id = ?", parentID).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

func (r *MessageRepositoryImpl) FindInbox(db *gorm.DB, ownerID string, limit, offset int) ([]models.Message, int64, error) {
	query := db.Model(&models.Message{}).
		Joins("JOIN products ON products.id = messages.product_id").
		Where("messages.is_reply = ?", false)
	if ownerID != "" {
		query = query.Where("products.user_id = ?", ownerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	query = query.Preload("Product").Order("messages.created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (r *MessageRepositoryImpl) CountUnread(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Message{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

// CountUnreadByOwner counts unread messages across products the user owns.
func (r *MessageRepositoryImpl) CountUnreadByOwner(db *gorm.DB, ownerID string) (int64, error) {
	var count int64
	err := db.Model(&models.Message{}).
		Joins("JOIN products ON products.id = messages.product_id").
		Where("products.user_id = ? AND messages.is_read = ?", ownerID, false).
		Count(&count).Error
	return count, err
}

func (r *MessageRepositoryImpl) MarkEmailSent(db *gorm.DB, id string, sentAt time.Time) error {
	return db.Model(&models.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"email_sent": true, "email_sent_at": sentAt}).Error
}
