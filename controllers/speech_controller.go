package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"debatecoach/models"
	"debatecoach/services"

	"github.com/gin-gonic/gin"
)

// SpeechToText converts an uploaded audio recording to text
func SpeechToText(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	path := filepath.Join("uploads", "input.wav")
	if err := c.SaveUploadedFile(file, path); err != nil {
		log.Printf("Failed to save uploaded audio: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save audio file"})
		return
	}

	audio, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read uploaded audio: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audio file"})
		return
	}

	text, err := services.Transcribe(c.Request.Context(), audio)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnrecognizedSpeech):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not understand audio"})
		case errors.Is(err, services.ErrServiceUnavailable):
			log.Printf("Speech recognition unavailable: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Speech Recognition API unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, models.Transcription{Transcription: text})
}
