package services

import (
	"portfolio/models"

	"gorm.io/gorm"
)

// ContactStore định nghĩa các thao tác lưu trữ liên hệ
type ContactStore interface {
	Create(contact *models.Contact) error
	All() ([]models.Contact, error)
}

// GormContactStore implement ContactStore trên Postgres qua GORM
type GormContactStore struct {
	db *gorm.DB
}

// NewGormContactStore tạo một instance mới của GormContactStore
func NewGormContactStore(db *gorm.DB) *GormContactStore {
	return &GormContactStore{db: db}
}

// Create lưu một liên hệ mới
func (s *GormContactStore) Create(contact *models.Contact) error {
	return s.db.Create(contact).Error
}

// All trả về toàn bộ liên hệ, mới nhất trước
func (s *GormContactStore) All() ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.db.Order("created_at desc").Find(&contacts).Error
	return contacts, err
}
