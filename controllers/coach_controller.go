package controllers

import (
	"errors"
	"log"
	"net/http"

	"debatecoach/models"
	"debatecoach/services"

	"github.com/gin-gonic/gin"
)

// EvaluateArgument analyzes the rationality of the user's argument,
// provides feedback, and generates an improved version
func EvaluateArgument(c *gin.Context) {
	var req models.EvaluateArgumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text or topic provided"})
		return
	}

	feedback, err := services.EvaluateArgument(c.Request.Context(), req.Topic, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrContentBlocked) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "AI could not generate a response due to content restrictions. Please rephrase your argument."})
			return
		}
		log.Printf("Failed to evaluate argument: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to evaluate argument"})
		return
	}

	c.JSON(http.StatusOK, feedback)
}
