package models

import "time"

type ChatSession struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	SessionID    string    `json:"session_id" gorm:"size:100;uniqueIndex"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	LastActivity time.Time `json:"last_activity"`
}
