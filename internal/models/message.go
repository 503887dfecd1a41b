package models

// Message - прямое сообщение пользователь -> пользователь
type Message struct {
	BaseModel
	SenderID         string  `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID       string  `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Text             string  `gorm:"not null" json:"text"`
	OriginalLanguage string  `gorm:"not null;default:'en'" json:"original_language"`
	TranslatedText   *string `json:"translated_text,omitempty"`
	Read             bool    `gorm:"default:false" json:"read"`

	// Relations
	Sender   User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"-"`
}
