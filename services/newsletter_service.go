package services

import (
	"time"

	"portfolio/models"

	"gorm.io/gorm"
)

// SubscriberStore định nghĩa các thao tác lưu trữ người đăng ký bản tin
type SubscriberStore interface {
	// Subscribe đăng ký một email, trả về created=false nếu email đã tồn tại
	Subscribe(email string, now time.Time) (*models.Subscriber, bool, error)
	All() ([]models.Subscriber, error)
}

// GormSubscriberStore implement SubscriberStore trên Postgres qua GORM
type GormSubscriberStore struct {
	db *gorm.DB
}

// NewGormSubscriberStore tạo một instance mới của GormSubscriberStore
func NewGormSubscriberStore(db *gorm.DB) *GormSubscriberStore {
	return &GormSubscriberStore{db: db}
}

// Subscribe tạo người đăng ký nếu email chưa tồn tại.
// Đăng ký lại cùng một email không tạo thêm bản ghi.
func (s *GormSubscriberStore) Subscribe(email string, now time.Time) (*models.Subscriber, bool, error) {
	var existing models.Subscriber
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	subscriber := models.Subscriber{
		Email:        email,
		SubscribedAt: now,
	}
	if err := s.db.Create(&subscriber).Error; err != nil {
		return nil, false, err
	}
	return &subscriber, true, nil
}

// All trả về toàn bộ người đăng ký, mới nhất trước
func (s *GormSubscriberStore) All() ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	err := s.db.Order("subscribed_at desc").Find(&subscribers).Error
	return subscribers, err
}
