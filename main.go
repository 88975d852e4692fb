package main

import (
	"log"
	"net/http"
	"os"

	"portfolio/config"
	"portfolio/jobs"
	"portfolio/routes"
	"portfolio/services"
	"portfolio/services/broadcast"
	"portfolio/services/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	gateway := services.NewChatGateway(services.ChatGatewayOptions{
		Store:     services.NewGormChatStore(config.DB),
		Bot:       services.NewChatbotService(services.ChatbotServiceOptions{}),
		Broadcast: broadcast.NewMelodyService(m),
		Logger:    logger.NewPrefixedLogger(logger.InfoLevel, "[chat]"),
	})
	gateway.Attach(m)
	jobs.SetIdleSweeper(gateway)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
