package services

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"portfolio/dto"
	apperrors "portfolio/errors"
	"portfolio/models"
	"portfolio/services/broadcast"
)

type fakeChatStore struct {
	ensured      []string
	lastActivity map[string]time.Time
	messages     []models.ChatMessage
	failUser     bool
	failBot      bool
}

func newFakeChatStore() *fakeChatStore {
	return &fakeChatStore{lastActivity: make(map[string]time.Time)}
}

func (s *fakeChatStore) EnsureSession(sessionID string, now time.Time) error {
	if _, ok := s.lastActivity[sessionID]; !ok {
		s.lastActivity[sessionID] = now
		s.ensured = append(s.ensured, sessionID)
	}
	return nil
}

func (s *fakeChatStore) RecordMessage(sessionID string, message string, isBot bool, now time.Time) error {
	if isBot && s.failBot {
		return fmt.Errorf("insert failed")
	}
	if !isBot && s.failUser {
		return fmt.Errorf("insert failed")
	}
	s.messages = append(s.messages, models.ChatMessage{
		SessionID: sessionID,
		Message:   message,
		IsBot:     isBot,
		Timestamp: now,
	})
	s.lastActivity[sessionID] = now
	return nil
}

func (s *fakeChatStore) History(sessionID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	for _, m := range s.messages {
		if m.SessionID == sessionID {
			messages = append(messages, m)
		}
	}
	return messages, nil
}

func (s *fakeChatStore) Sessions() ([]models.ChatSession, error) {
	var sessions []models.ChatSession
	for sessionID, lastActivity := range s.lastActivity {
		sessions = append(sessions, models.ChatSession{SessionID: sessionID, LastActivity: lastActivity})
	}
	return sessions, nil
}

// testClock trả về thời điểm tăng dần mỗi lần được gọi
func testClock() func() time.Time {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
}

func newTestGateway(store ChatStore) *ChatGateway {
	return NewChatGateway(ChatGatewayOptions{
		Store:     store,
		Bot:       NewChatbotService(ChatbotServiceOptions{Selector: fixedSelector(0)}),
		Broadcast: broadcast.NewMelodyService(nil),
		Clock:     testClock(),
	})
}

func TestExchangeRecordsUserThenBot(t *testing.T) {
	store := newFakeChatStore()
	gateway := newTestGateway(store)

	frameData, err := gateway.Exchange("session-1", []byte(`{"message":"hello"}`))
	if err != nil {
		t.Fatalf("Exchange err: %v", err)
	}

	if len(store.messages) != 2 {
		t.Fatalf("expected 2 stored messages, got %d", len(store.messages))
	}
	user, bot := store.messages[0], store.messages[1]
	if user.IsBot || user.Message != "hello" {
		t.Fatalf("first stored message should be the user message, got %+v", user)
	}
	if !bot.IsBot {
		t.Fatalf("second stored message should be the bot message, got %+v", bot)
	}
	if !bot.Timestamp.After(user.Timestamp) {
		t.Fatalf("bot timestamp %v not after user timestamp %v", bot.Timestamp, user.Timestamp)
	}
	if store.lastActivity["session-1"] != bot.Timestamp {
		t.Fatalf("last activity %v, want %v", store.lastActivity["session-1"], bot.Timestamp)
	}

	var frame dto.BotFrame
	if err := json.Unmarshal(frameData, &frame); err != nil {
		t.Fatalf("unmarshal frame: %v", err)
	}
	if frame.Type != "bot_message" {
		t.Fatalf("frame type = %q, want bot_message", frame.Type)
	}
	if frame.Message != bot.Message {
		t.Fatalf("frame message %q differs from stored bot message %q", frame.Message, bot.Message)
	}
	if frame.Timestamp != bot.Timestamp.UTC().Format(time.RFC3339) {
		t.Fatalf("frame timestamp %q, want %q", frame.Timestamp, bot.Timestamp.UTC().Format(time.RFC3339))
	}
}

func TestExchangeAlternation(t *testing.T) {
	store := newFakeChatStore()
	gateway := newTestGateway(store)

	n := 3
	for i := 0; i < n; i++ {
		payload := fmt.Sprintf(`{"message":"message %d"}`, i)
		if _, err := gateway.Exchange("session-1", []byte(payload)); err != nil {
			t.Fatalf("Exchange %d err: %v", i, err)
		}
	}

	if len(store.messages) != 2*n {
		t.Fatalf("expected %d stored messages, got %d", 2*n, len(store.messages))
	}

	previous := time.Time{}
	for i, m := range store.messages {
		wantBot := i%2 == 1
		if m.IsBot != wantBot {
			t.Fatalf("message %d: is_bot = %v, want %v", i, m.IsBot, wantBot)
		}
		if !m.Timestamp.After(previous) {
			t.Fatalf("message %d: timestamp %v not after %v", i, m.Timestamp, previous)
		}
		previous = m.Timestamp
	}

	if store.lastActivity["session-1"] != previous {
		t.Fatalf("last activity %v, want last message timestamp %v", store.lastActivity["session-1"], previous)
	}
}

func TestExchangeRejectsMalformedFrames(t *testing.T) {
	store := newFakeChatStore()
	gateway := newTestGateway(store)

	for _, payload := range []string{"not json", `{"text":"hi"}`, `{}`} {
		frame, err := gateway.Exchange("session-1", []byte(payload))
		if err == nil {
			t.Fatalf("Exchange(%q) expected error", payload)
		}
		if frame != nil {
			t.Fatalf("Exchange(%q) returned a frame alongside an error", payload)
		}
		appErr, ok := apperrors.IsAppError(err)
		if !ok {
			t.Fatalf("Exchange(%q) error is not an AppError: %v", payload, err)
		}
		if appErr.Code == apperrors.ErrCodeDBError {
			t.Fatalf("Exchange(%q) classified as storage failure", payload)
		}
	}

	if len(store.messages) != 0 {
		t.Fatalf("malformed frames must not be persisted, got %d messages", len(store.messages))
	}
}

func TestExchangeWithholdsReplyWhenBotPersistFails(t *testing.T) {
	store := newFakeChatStore()
	store.failBot = true
	gateway := newTestGateway(store)

	frame, err := gateway.Exchange("session-1", []byte(`{"message":"hello"}`))
	if err == nil {
		t.Fatal("expected error when bot message cannot be stored")
	}
	if frame != nil {
		t.Fatal("reply frame must not be produced when its persistence failed")
	}

	// tin nhắn user đã lưu là trạng thái kết thúc hợp lệ, không rollback
	if len(store.messages) != 1 || store.messages[0].IsBot {
		t.Fatalf("expected only the user message to be stored, got %+v", store.messages)
	}
}

func TestExchangeFailsWhenUserPersistFails(t *testing.T) {
	store := newFakeChatStore()
	store.failUser = true
	gateway := newTestGateway(store)

	if _, err := gateway.Exchange("session-1", []byte(`{"message":"hello"}`)); err == nil {
		t.Fatal("expected error when user message cannot be stored")
	}
	if len(store.messages) != 0 {
		t.Fatalf("expected no stored messages, got %d", len(store.messages))
	}
}

func TestDefaultSessionIDsAreUnique(t *testing.T) {
	gateway := newTestGateway(newFakeChatStore())

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sessionID := gateway.newSessionID()
		if sessionID == "" {
			t.Fatal("empty session id")
		}
		if seen[sessionID] {
			t.Fatalf("duplicate session id %s", sessionID)
		}
		seen[sessionID] = true
	}
}
