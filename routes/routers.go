package routes

import (
	"time"

	"portfolio/controllers"
	middlewares "portfolio/middleware"
	"portfolio/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes đăng ký toàn bộ route HTTP của backend portfolio
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	contactController := controllers.NewContactController(controllers.ContactControllerOptions{
		Store: services.NewGormContactStore(db),
		Redis: redisCli,
	})
	newsletterController := controllers.NewNewsletterController(controllers.NewsletterControllerOptions{
		Store: services.NewGormSubscriberStore(db),
	})
	chatController := controllers.NewChatController(controllers.ChatControllerOptions{
		Store: services.NewGormChatStore(db),
	})

	formLimiter := middlewares.RateLimitMiddleware(redisCli, 10, time.Minute)

	v1 := router.Group("/api/v1")
	v1.POST("/contact", formLimiter, contactController.CreateContact)
	v1.GET("/contacts", contactController.GetContacts)
	v1.GET("/contacts/search", contactController.SearchContacts)

	v1.POST("/newsletter/subscribe", formLimiter, newsletterController.Subscribe)
	v1.GET("/subscribers", newsletterController.GetSubscribers)

	v1.GET("/chat/sessions", chatController.GetChatSessions)
	v1.GET("/chat/history/:sessionID", chatController.GetChatHistory)
}
