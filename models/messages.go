package models

import (
	"time"

	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	Body       string `gorm:"size:1000"`
	SenderID   uint   `gorm:"index:idx_message_sender"`
	Sender     *User
	ReceiverID uint `gorm:"index:idx_message_receiver"`
	Receiver   *User
	SentAt     time.Time
}

func (m *Message) MapToJsonStruct() interface{} {
	return struct {
		Id         uint      `json:"id"`
		Body       string    `json:"body"`
		SenderID   uint      `json:"sender_id"`
		ReceiverID uint      `json:"receiver_id"`
		SentAt     time.Time `json:"sent_at"`
	}{
		Id:         m.ID,
		Body:       m.Body,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		SentAt:     m.SentAt,
	}
}

type MessagePatch struct {
	Body       *string
	ReceiverID *uint
}
