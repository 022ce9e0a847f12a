package websocket

import (
	"errors"
	"log"
	"net/http"

	"debatecoach/models"
	"debatecoach/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// In production, adjust the CheckOrigin function to allow only trusted origins.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the frame exchanged over the practice socket. The client
// sends {type:"argument", topic, text}; the server replies with
// {type:"evaluation", evaluation} or {type:"error", error}.
type Message struct {
	Type       string                     `json:"type"`
	Topic      string                     `json:"topic,omitempty"`
	Text       string                     `json:"text,omitempty"`
	Error      string                     `json:"error,omitempty"`
	Evaluation *models.StructuredFeedback `json:"evaluation,omitempty"`
}

// PracticeHandler runs a live practice session over a WebSocket. Each
// argument message gets one evaluation; there are no rooms and no
// state shared between connections.
func PracticeHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade practice connection: %v", err)
		return
	}
	defer conn.Close()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Practice connection closed unexpectedly: %v", err)
			}
			return
		}

		reply := handlePracticeMessage(c, msg)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("Failed to write practice reply: %v", err)
			return
		}
	}
}

func handlePracticeMessage(c *gin.Context, msg Message) Message {
	if msg.Type != "argument" {
		return Message{Type: "error", Error: "Unknown message type: " + msg.Type}
	}
	if msg.Topic == "" || msg.Text == "" {
		return Message{Type: "error", Error: "Both topic and text are required"}
	}

	feedback, err := services.EvaluateArgument(c.Request.Context(), msg.Topic, msg.Text)
	if err != nil {
		if errors.Is(err, services.ErrContentBlocked) {
			return Message{Type: "error", Error: "AI could not generate a response due to content restrictions. Please rephrase your argument."}
		}
		log.Printf("Failed to evaluate practice argument: %v", err)
		return Message{Type: "error", Error: "Failed to evaluate argument"}
	}

	return Message{Type: "evaluation", Evaluation: &feedback}
}
