package controllers

import (
	"portfolio/dto"
	"portfolio/response"
	"portfolio/services"
	"portfolio/services/logger"

	"github.com/gin-gonic/gin"
)

// ChatController phục vụ các view quản trị cho phiên chat đã lưu
type ChatController struct {
	store  services.ChatStore
	logger logger.Logger
}

// ChatControllerOptions chứa các phụ thuộc của ChatController
type ChatControllerOptions struct {
	Store  services.ChatStore
	Logger logger.Logger
}

// NewChatController tạo một instance mới của ChatController
func NewChatController(opts ChatControllerOptions) *ChatController {
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ChatController{
		store:  opts.Store,
		logger: log,
	}
}

// GetChatSessions trả về các phiên chat, hoạt động gần nhất trước
func (ctl *ChatController) GetChatSessions(c *gin.Context) {
	sessions, err := ctl.store.Sessions()
	if err != nil {
		ctl.logger.Error("truy vấn phiên chat thất bại: %v", err)
		response.ServerError(c)
		return
	}

	sessionsResponse := make([]dto.ChatSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		sessionsResponse = append(sessionsResponse, dto.ChatSessionResponse{
			ID:           session.ID,
			SessionID:    session.SessionID,
			CreatedAt:    session.CreatedAt,
			LastActivity: session.LastActivity,
		})
	}

	response.Success(c, sessionsResponse)
}

// GetChatHistory trả về tin nhắn của một phiên theo thứ tự thời gian.
// Welcome không được lưu nên lịch sử không chứa lời chào đầu tiên.
func (ctl *ChatController) GetChatHistory(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		response.BadRequest(c, "sessionID is required")
		return
	}

	messages, err := ctl.store.History(sessionID)
	if err != nil {
		ctl.logger.Error("truy vấn lịch sử phiên %s thất bại: %v", sessionID, err)
		response.ServerError(c)
		return
	}

	messagesResponse := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, message := range messages {
		messagesResponse = append(messagesResponse, dto.ChatMessageResponse{
			ID:        message.ID,
			SessionID: message.SessionID,
			Message:   message.Message,
			IsBot:     message.IsBot,
			Timestamp: message.Timestamp,
		})
	}

	response.Success(c, messagesResponse)
}
