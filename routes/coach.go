package routes

import (
	"net/http"

	"debatecoach/controllers"
	"debatecoach/websocket"

	"github.com/gin-gonic/gin"
)

// SetupCoachRoutes registers the coaching endpoints on the router
func SetupCoachRoutes(router *gin.Engine) {
	router.GET("/", HomeRouteHandler)
	router.POST("/speech-to-text", controllers.SpeechToText)
	router.POST("/evaluate-argument", controllers.EvaluateArgument)
	router.GET("/ws/practice", websocket.PracticeHandler)
}

// HomeRouteHandler serves the welcome banner
func HomeRouteHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Welcome to the AI Debate Coach Backend</h1>"))
}
