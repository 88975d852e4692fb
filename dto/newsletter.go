package dto

import "time"

// SubscribeRequest định nghĩa request đăng ký nhận bản tin
type SubscribeRequest struct {
	Email string `json:"email"`
}

// SubscriberResponse định nghĩa response cho một người đăng ký
type SubscriberResponse struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
