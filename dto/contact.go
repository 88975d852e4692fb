package dto

import "time"

// ContactRequest định nghĩa request gửi form liên hệ
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse định nghĩa response cho một liên hệ
type ContactResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoredContact là liên hệ kèm điểm phù hợp khi tìm kiếm
type ScoredContact struct {
	Contact ContactResponse `json:"contact"`
	Score   int             `json:"score"`
}
