package services

import (
	"homepro_backend/internal/models"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MessageService interface {
	SendMessage(db *gorm.DB, senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	GetConversation(db *gorm.DB, userID, otherUserID string, limit, offset int) ([]dto.MessageResponse, error)
	MarkConversationRead(db *gorm.DB, readerID, senderID string) error
	CountUnread(db *gorm.DB, userID string) (int64, error)
}

// MessageNotifier получает уведомление о новом сообщении.
// Реализация - WebSocket-менеджер; nil допустим.
type MessageNotifier interface {
	NotifyNewMessage(receiverID string, message *dto.MessageResponse)
}

type MessageServiceImpl struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
	notifier    MessageNotifier
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notifier MessageNotifier,
) MessageService {
	return &MessageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

func (s *MessageServiceImpl) SendMessage(db *gorm.DB, senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if senderID == req.ReceiverID {
		return nil, apperrors.ErrInvalidOperation("messages", "Cannot message yourself")
	}

	if _, err := s.userRepo.FindByID(db, req.ReceiverID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	message := &models.Message{
		SenderID:         senderID,
		ReceiverID:       req.ReceiverID,
		Text:             req.Text,
		OriginalLanguage: language,
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := dto.NewMessageResponse(message)

	// Push-уведомление best-effort: получатель может быть оффлайн
	if s.notifier != nil {
		s.notifier.NotifyNewMessage(req.ReceiverID, &resp)
	}

	return &resp, nil
}

func (s *MessageServiceImpl) GetConversation(db *gorm.DB, userID, otherUserID string, limit, offset int) ([]dto.MessageResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	messages, err := s.messageRepo.FindConversation(db, userID, otherUserID, limit, offset)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, dto.NewMessageResponse(&messages[i]))
	}
	return responses, nil
}

func (s *MessageServiceImpl) MarkConversationRead(db *gorm.DB, readerID, senderID string) error {
	if err := s.messageRepo.MarkConversationRead(db, readerID, senderID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *MessageServiceImpl) CountUnread(db *gorm.DB, userID string) (int64, error) {
	count, err := s.messageRepo.CountUnread(db, userID)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}
