package services

import (
	"time"

	"portfolio/models"

	"gorm.io/gorm"
)

// ChatStore định nghĩa các thao tác lưu trữ phiên chat mà gateway sử dụng.
// Thời điểm hiện tại được truyền vào tường minh để test kiểm soát được timestamp.
type ChatStore interface {
	EnsureSession(sessionID string, now time.Time) error
	RecordMessage(sessionID string, message string, isBot bool, now time.Time) error
	History(sessionID string) ([]models.ChatMessage, error)
	Sessions() ([]models.ChatSession, error)
}

// GormChatStore implement ChatStore trên Postgres qua GORM
type GormChatStore struct {
	db *gorm.DB
}

// NewGormChatStore tạo một instance mới của GormChatStore
func NewGormChatStore(db *gorm.DB) *GormChatStore {
	return &GormChatStore{db: db}
}

// EnsureSession tạo phiên chat nếu chưa tồn tại, không ghi đè phiên đã có
func (s *GormChatStore) EnsureSession(sessionID string, now time.Time) error {
	session := models.ChatSession{
		SessionID:    sessionID,
		CreatedAt:    now,
		LastActivity: now,
	}
	return s.db.Where(models.ChatSession{SessionID: sessionID}).FirstOrCreate(&session).Error
}

// RecordMessage ghi một tin nhắn rồi cập nhật last_activity của phiên.
// Hai lệnh ghi chạy tuần tự, gateway của phiên là writer duy nhất.
func (s *GormChatStore) RecordMessage(sessionID string, message string, isBot bool, now time.Time) error {
	chatMessage := models.ChatMessage{
		SessionID: sessionID,
		Message:   message,
		IsBot:     isBot,
		Timestamp: now,
	}
	if err := s.db.Create(&chatMessage).Error; err != nil {
		return err
	}

	return s.db.Model(&models.ChatSession{}).
		Where("session_id = ?", sessionID).
		Update("last_activity", now).Error
}

// History trả về tin nhắn của một phiên theo thứ tự thời gian tăng dần
func (s *GormChatStore) History(sessionID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := s.db.Where("session_id = ?", sessionID).
		Order("timestamp asc").
		Find(&messages).Error
	return messages, err
}

// Sessions trả về các phiên chat, phiên hoạt động gần nhất trước
func (s *GormChatStore) Sessions() ([]models.ChatSession, error) {
	var sessions []models.ChatSession
	err := s.db.Order("last_activity desc").Find(&sessions).Error
	return sessions, err
}
