package broadcast

import (
	"fmt"
	"sync"

	"github.com/olahol/melody"
)

// Service đăng ký connection theo group key và publish tới một group.
// Chat hiện tại là 1-1 nên mỗi group chỉ có một connection, nhưng interface
// giữ nguyên khả năng fan-out cho chat nhiều người sau này.
type Service interface {
	Register(key string, session *melody.Session)
	Deregister(key string, session *melody.Session)
	Publish(key string, payload []byte) error
}

// MelodyService implement Service trên một melody instance
type MelodyService struct {
	m      *melody.Melody
	mu     sync.RWMutex
	groups map[string]map[*melody.Session]struct{}
}

// NewMelodyService tạo một instance mới của MelodyService
func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{
		m:      m,
		groups: make(map[string]map[*melody.Session]struct{}),
	}
}

// Register thêm connection vào group theo key
func (s *MelodyService) Register(key string, session *melody.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[key]
	if !ok {
		group = make(map[*melody.Session]struct{})
		s.groups[key] = group
	}
	group[session] = struct{}{}
}

// Deregister gỡ connection khỏi group, xóa group khi rỗng
func (s *MelodyService) Deregister(key string, session *melody.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[key]
	if !ok {
		return
	}
	delete(group, session)
	if len(group) == 0 {
		delete(s.groups, key)
	}
}

// Publish gửi payload tới mọi connection trong group
func (s *MelodyService) Publish(key string, payload []byte) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}

	s.mu.RLock()
	members := make(map[*melody.Session]struct{}, len(s.groups[key]))
	for session := range s.groups[key] {
		members[session] = struct{}{}
	}
	s.mu.RUnlock()

	if len(members) == 0 {
		return nil
	}

	return s.m.BroadcastFilter(payload, func(session *melody.Session) bool {
		_, ok := members[session]
		return ok
	})
}

// Members trả về số connection đang thuộc group
func (s *MelodyService) Members(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.groups[key])
}
