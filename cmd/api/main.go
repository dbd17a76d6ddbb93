package main

import (
	"context"
	"os"

	"clinic-backend/internal/config"
	"clinic-backend/internal/handlers"
	"clinic-backend/internal/logger"
	"clinic-backend/internal/reminder"
	"clinic-backend/internal/routes"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found")
	}

	config.ConnectDB()
	handlers.SetLogger(log)
	utils.InitFCM(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reminder.Start(ctx, log)

	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK", nil)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("server starting")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
