package dto

import (
	"time"

	"homepro_backend/internal/models"
)

type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	Text       string `json:"text" validate:"required,max=5000"`
	Language   string `json:"language" validate:"omitempty,len=2"`
}

type MessageResponse struct {
	ID               string    `json:"id"`
	SenderID         string    `json:"senderId"`
	ReceiverID       string    `json:"receiverId"`
	Text             string    `json:"text"`
	OriginalLanguage string    `json:"originalLanguage"`
	TranslatedText   *string   `json:"translatedText,omitempty"`
	Read             bool      `json:"read"`
	CreatedAt        time.Time `json:"createdAt"`
}

func NewMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:               m.ID,
		SenderID:         m.SenderID,
		ReceiverID:       m.ReceiverID,
		Text:             m.Text,
		OriginalLanguage: m.OriginalLanguage,
		TranslatedText:   m.TranslatedText,
		Read:             m.Read,
		CreatedAt:        m.CreatedAt,
	}
}
