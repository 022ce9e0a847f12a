package main

import (
	"log"
	"os"
	"strconv"

	"debatecoach/config"
	"debatecoach/routes"
	"debatecoach/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const defaultConfigPath = "./config/config.prod.yml"

func main() {
	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := services.InitCoachService(cfg); err != nil {
		log.Fatalf("Failed to initialize coach service: %v", err)
	}
	log.Printf("Using model: %s", cfg.Gemini.Model)

	if err := services.InitSpeechService(cfg); err != nil {
		log.Fatalf("Failed to initialize speech service: %v", err)
	}

	// Create uploads directory
	os.MkdirAll("uploads", os.ModePerm)

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return defaultConfigPath
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	routes.SetupCoachRoutes(router)

	return router
}
