package models

import "time"

type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"session_id" gorm:"size:100;index"`
	Message   string    `json:"message" gorm:"type:text"`
	IsBot     bool      `json:"is_bot" gorm:"default:false"`
	Timestamp time.Time `json:"timestamp"`
}
