package models

import "time"

type Subscriber struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:254;uniqueIndex"`
	SubscribedAt time.Time `json:"subscribed_at" gorm:"autoCreateTime"`
}
