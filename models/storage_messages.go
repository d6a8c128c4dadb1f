package models

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

func (db *Database) GetMessage(messageId uint) (*Message, error) {
	var message Message
	err := db.GormDB.First(&message, messageId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("error fetching message", "messageId", messageId, "error", err)
		return nil, err
	}
	return &message, nil
}

func (db *Database) CreateMessage(body string, senderId uint, receiverId uint) (*Message, error) {
	message := &Message{
		Body:       body,
		SenderID:   senderId,
		ReceiverID: receiverId,
		SentAt:     time.Now(),
	}
	err := db.GormDB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&User{}).Where("id = ?", receiverId).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return NewReferentialError(fmt.Sprintf("receiver %v does not exist", receiverId))
		}
		return translateStoreError(tx.Create(message).Error,
			"message already exists",
			"invalid sender or receiver id")
	})
	if err != nil {
		slog.Error("error creating message", "error", err)
		return nil, err
	}
	return message, nil
}

func (db *Database) UpdateMessage(messageId uint, patch MessagePatch) (*Message, error) {
	var message *Message
	err := db.GormDB.Transaction(func(tx *gorm.DB) error {
		message = &Message{}
		err := tx.First(message, messageId).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				message = nil
				return nil
			}
			return err
		}
		if patch.Body != nil {
			message.Body = *patch.Body
		}
		if patch.ReceiverID != nil {
			var count int64
			if err := tx.Model(&User{}).Where("id = ?", *patch.ReceiverID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return NewReferentialError(fmt.Sprintf("receiver %v does not exist", *patch.ReceiverID))
			}
			message.ReceiverID = *patch.ReceiverID
		}
		return tx.Save(message).Error
	})
	if err != nil {
		slog.Error("error updating message", "messageId", messageId, "error", err)
		return nil, err
	}
	return message, nil
}

func (db *Database) DeleteMessage(messageId uint) (bool, error) {
	result := db.GormDB.Delete(&Message{}, messageId)
	if result.Error != nil {
		slog.Error("error deleting message", "messageId", messageId, "error", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (db *Database) GetMessagesBySender(senderId uint, skip int, limit int) ([]Message, error) {
	var messages []Message
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	err := db.GormDB.Where("sender_id = ?", senderId).Offset(skip).Limit(limit).Find(&messages).Error
	if err != nil {
		slog.Error("error fetching sent messages", "senderId", senderId, "error", err)
		return nil, err
	}
	return messages, nil
}

func (db *Database) GetMessagesByReceiver(receiverId uint, skip int, limit int) ([]Message, error) {
	var messages []Message
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	err := db.GormDB.Where("receiver_id = ?", receiverId).Offset(skip).Limit(limit).Find(&messages).Error
	if err != nil {
		slog.Error("error fetching received messages", "receiverId", receiverId, "error", err)
		return nil, err
	}
	return messages, nil
}
