package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "atelier/internal/errors"
	"atelier/internal/models"
)

// chatService handles the internal direct-message chat.
type chatService struct {
	db *gorm.DB
}

// NewChatService creates a new ChatServicer.
func NewChatService(db *gorm.DB) ChatServicer {
	return &chatService{db: db}
}

// ListPartners returns every other active user with the count of messages
// they sent the caller that the caller has not read yet.
func (s *chatService) ListPartners(userID string) ([]ChatPartner, error) {
	var users []models.User
	if err := s.db.Where("id <> ? AND is_active = ?", userID, true).
		Order("name").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	partners := make([]ChatPartner, 0, len(users))
	for _, u := range users {
		var unread int64
		if err := s.db.Model(&models.ChatMessage{}).
			Where("sender_id = ? AND recipient_id = ? AND read = ?", u.ID, userID, false).
			Count(&unread).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		partners = append(partners, ChatPartner{
			UserID:      u.ID,
			Name:        u.Name,
			Email:       u.Email,
			Role:        u.Role,
			UnreadCount: unread,
		})
	}
	return partners, nil
}

// Conversation returns the full message history between two users in
// chronological order.
func (s *chatService) Conversation(userID, withID string) ([]models.ChatMessage, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", withID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	var messages []models.ChatMessage
	if err := s.db.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, withID, withID, userID).
		Order("created_at").Find(&messages).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return messages, nil
}

// SendMessage stores a new unread message from sender to recipient.
func (s *chatService) SendMessage(senderID, recipientID, body string) (*models.ChatMessage, error) {
	if body == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "message body is required")
	}
	if senderID == recipientID {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cannot message yourself")
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("id = ? AND is_active = ?", recipientID, true).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	message := &models.ChatMessage{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return message, nil
}

// MarkRead flags a message as read. Only the recipient may do so.
func (s *chatService) MarkRead(userID, messageID string) error {
	var message models.ChatMessage
	if err := s.db.Where("id = ?", messageID).First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if message.RecipientID != userID {
		return apperrors.ErrForbidden
	}

	if err := s.db.Model(&message).Update("read", true).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
