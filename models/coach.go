package models

// StructuredFeedback is the fixed-shape evaluation record extracted
// from the model's free-text reply. All four fields are always
// populated; absent sections fall back to defaults.
type StructuredFeedback struct {
	RationalityScore float64 `json:"rationality_score"`
	ReasonForScore   string  `json:"reason_for_score"`
	Feedback         string  `json:"feedback"`
	ImprovedArgument string  `json:"improved_argument"`
}

// EvaluateArgumentRequest is the payload sent by the frontend to evaluate an argument
type EvaluateArgumentRequest struct {
	Text  string `json:"text" binding:"required"`
	Topic string `json:"topic" binding:"required"`
}

// Transcription is the response of the speech-to-text endpoint
type Transcription struct {
	Transcription string `json:"transcription"`
}
