package controllers

import (
	"time"

	"portfolio/dto"
	"portfolio/errors"
	"portfolio/response"
	"portfolio/services"
	"portfolio/services/logger"
	"portfolio/validator"

	"github.com/gin-gonic/gin"
)

// NewsletterController xử lý đăng ký nhận bản tin
type NewsletterController struct {
	store  services.SubscriberStore
	logger logger.Logger
}

// NewsletterControllerOptions chứa các phụ thuộc của NewsletterController
type NewsletterControllerOptions struct {
	Store  services.SubscriberStore
	Logger logger.Logger
}

// NewNewsletterController tạo một instance mới của NewsletterController
func NewNewsletterController(opts NewsletterControllerOptions) *NewsletterController {
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &NewsletterController{
		store:  opts.Store,
		logger: log,
	}
}

// Subscribe đăng ký một email nhận bản tin.
// Đăng ký lại cùng email trả về "Already subscribed!" thay vì lỗi.
func (ctl *NewsletterController) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email required")
		return
	}

	if err := validator.ValidateSubscriber(&req); err != nil {
		if appErr, ok := errors.IsAppError(err); ok {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	subscriber, created, err := ctl.store.Subscribe(req.Email, time.Now())
	if err != nil {
		ctl.logger.Error("đăng ký bản tin thất bại: %v", err)
		response.ServerError(c)
		return
	}

	if created {
		response.Created(c, "Subscribed successfully!", gin.H{"id": subscriber.ID})
		return
	}
	response.SuccessWithMessage(c, "Already subscribed!", gin.H{"id": subscriber.ID})
}

// GetSubscribers trả về danh sách người đăng ký, mới nhất trước
func (ctl *NewsletterController) GetSubscribers(c *gin.Context) {
	subscribers, err := ctl.store.All()
	if err != nil {
		ctl.logger.Error("truy vấn người đăng ký thất bại: %v", err)
		response.ServerError(c)
		return
	}

	subscribersResponse := make([]dto.SubscriberResponse, 0, len(subscribers))
	for _, subscriber := range subscribers {
		subscribersResponse = append(subscribersResponse, dto.SubscriberResponse{
			ID:           subscriber.ID,
			Email:        subscriber.Email,
			SubscribedAt: subscriber.SubscribedAt,
		})
	}

	response.Success(c, subscribersResponse)
}
