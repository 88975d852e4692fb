package services

import (
	"encoding/json"
	"time"

	"portfolio/dto"
	"portfolio/errors"
	"portfolio/services/broadcast"
	"portfolio/services/logger"

	"github.com/google/uuid"
	"github.com/olahol/melody"
)

const (
	sessionIDKey = "sessionID"
	lastSeenKey  = "lastSeen"

	frameTypeBotMessage = "bot_message"
	frameTypeError      = "error"

	welcomeMessage = "Hi! I'm Amit's AI assistant. I can help you learn about his skills, projects, and experience. What would you like to know?"
)

// ChatGatewayOptions chứa các phụ thuộc của ChatGateway
type ChatGatewayOptions struct {
	Store     ChatStore
	Bot       *ChatbotService
	Broadcast broadcast.Service
	Logger    logger.Logger
	// Clock và NewSessionID có default cho production, test inject giá trị cố định
	Clock        func() time.Time
	NewSessionID func() string
}

// ChatGateway quản lý vòng đời websocket của khách: mỗi connection một phiên,
// mỗi tin nhắn vào sinh đúng một tin nhắn trả lời, cả hai đều được lưu lại.
type ChatGateway struct {
	store        ChatStore
	bot          *ChatbotService
	broadcast    broadcast.Service
	logger       logger.Logger
	clock        func() time.Time
	newSessionID func() string
}

// NewChatGateway tạo một instance mới của ChatGateway
func NewChatGateway(opts ChatGatewayOptions) *ChatGateway {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	newSessionID := opts.NewSessionID
	if newSessionID == nil {
		newSessionID = uuid.NewString
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ChatGateway{
		store:        opts.Store,
		bot:          opts.Bot,
		broadcast:    opts.Broadcast,
		logger:       log,
		clock:        clock,
		newSessionID: newSessionID,
	}
}

// Attach gắn gateway vào một melody instance.
// Melody gọi handler tuần tự trên từng connection nên chuỗi
// lưu user -> trả lời -> lưu bot -> gửi luôn hoàn tất trước frame kế tiếp.
func (g *ChatGateway) Attach(m *melody.Melody) {
	m.HandleConnect(g.handleConnect)
	m.HandleMessage(g.handleMessage)
	m.HandleDisconnect(g.handleDisconnect)
}

func (g *ChatGateway) handleConnect(s *melody.Session) {
	sessionID := g.newSessionID()
	now := g.clock()

	s.Set(sessionIDKey, sessionID)
	s.Set(lastSeenKey, now)
	g.broadcast.Register(sessionID, s)

	if err := g.store.EnsureSession(sessionID, now); err != nil {
		g.logger.Error("tạo phiên chat %s thất bại: %v", sessionID, err)
		_ = s.Write(g.frame(frameTypeError, "could not start chat session", now))
		_ = s.Close()
		return
	}

	// Welcome chỉ là lời chào ở mức protocol, không lưu vào lịch sử
	if err := s.Write(g.frame(frameTypeBotMessage, welcomeMessage, now)); err != nil {
		g.logger.Error("gửi welcome cho phiên %s thất bại: %v", sessionID, err)
	}
}

func (g *ChatGateway) handleMessage(s *melody.Session, data []byte) {
	sessionID := g.sessionID(s)
	if sessionID == "" {
		g.logger.Error("nhận frame từ connection chưa có sessionID")
		return
	}
	s.Set(lastSeenKey, g.clock())

	reply, err := g.Exchange(sessionID, data)
	if err != nil {
		g.logger.Error("phiên %s xử lý tin nhắn thất bại: %v", sessionID, err)
		message := "message could not be processed"
		if appErr, ok := errors.IsAppError(err); ok && appErr.Code != errors.ErrCodeDBError {
			message = appErr.Message
		}
		_ = s.Write(g.frame(frameTypeError, message, g.clock()))
		return
	}

	if err := g.broadcast.Publish(sessionID, reply); err != nil {
		g.logger.Error("phiên %s gửi trả lời thất bại: %v", sessionID, err)
	}
}

func (g *ChatGateway) handleDisconnect(s *melody.Session) {
	sessionID := g.sessionID(s)
	if sessionID == "" {
		return
	}
	g.broadcast.Deregister(sessionID, s)
	g.logger.Debug("phiên %s đã ngắt kết nối", sessionID)
}

// Exchange xử lý một frame inbound và trả về frame trả lời.
// Thứ tự bắt buộc: lưu tin nhắn user, sinh trả lời, lưu trả lời, rồi mới
// trả frame về; trả lời chưa được lưu thì không bao giờ được gửi.
func (g *ChatGateway) Exchange(sessionID string, data []byte) ([]byte, error) {
	var incoming dto.IncomingMessage
	if err := json.Unmarshal(data, &incoming); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFrame, "frame must be a JSON object with a message field", err)
	}
	if incoming.Message == "" {
		return nil, errors.NewAppError(errors.ErrCodeMissingMessage, "message is required", nil)
	}

	if err := g.store.RecordMessage(sessionID, incoming.Message, false, g.clock()); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "could not store message", err)
	}

	botResponse := g.bot.Respond(incoming.Message)

	now := g.clock()
	if err := g.store.RecordMessage(sessionID, botResponse, true, now); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "could not store reply", err)
	}

	return g.frame(frameTypeBotMessage, botResponse, now), nil
}

// CloseIdle đóng các connection không gửi tin nhắn trong khoảng maxIdle
func (g *ChatGateway) CloseIdle(m *melody.Melody, maxIdle time.Duration) {
	sessions, err := m.Sessions()
	if err != nil {
		g.logger.Error("lấy danh sách connection thất bại: %v", err)
		return
	}

	cutoff := g.clock().Add(-maxIdle)
	for _, s := range sessions {
		value, ok := s.Get(lastSeenKey)
		if !ok {
			continue
		}
		lastSeen, ok := value.(time.Time)
		if ok && lastSeen.Before(cutoff) {
			g.logger.Info("đóng connection nhàn rỗi của phiên %s", g.sessionID(s))
			_ = s.Close()
		}
	}
}

func (g *ChatGateway) sessionID(s *melody.Session) string {
	value, ok := s.Get(sessionIDKey)
	if !ok {
		return ""
	}
	sessionID, _ := value.(string)
	return sessionID
}

func (g *ChatGateway) frame(frameType, message string, now time.Time) []byte {
	payload, err := json.Marshal(dto.BotFrame{
		Type:      frameType,
		Message:   message,
		Timestamp: now.UTC().Format(time.RFC3339),
	})
	if err != nil {
		g.logger.Error("marshal frame thất bại: %v", err)
		return nil
	}
	return payload
}
