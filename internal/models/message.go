package models

import (
	"fmt"
	"time"
)

// MaxMessageLength bounds a warble the same way the messages.text column does.
const MaxMessageLength = 140

// Message is a short text post owned by exactly one user.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"size:140;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// String renders the diagnostic form used in logs and test output.
func (m *Message) String() string {
	return fmt.Sprintf("<Message #%d: %d, %s>", m.ID, m.UserID, m.Timestamp)
}

type CreateMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=140"`
}
