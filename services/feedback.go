package services

import (
	"regexp"
	"strconv"
	"strings"

	"debatecoach/models"
)

// Section markers the coaching prompt instructs the model to emit.
// Matching is exact, bold styling included; replies that drift from
// this format degrade to the per-field defaults instead of erroring.
const (
	scoreMarker    = "**Rationality Score:**"
	reasonMarker   = "**Reasoning for Score:**"
	feedbackMarker = "**Feedback:**"
	improvedMarker = "**Improved Argument:**"
)

const (
	defaultScore    = 0.5
	defaultReason   = "No reasoning provided."
	defaultFeedback = "No feedback provided."
	defaultImproved = "No improved argument provided."
)

var scorePattern = regexp.MustCompile(`\*\*Rationality Score:\*\*\s*(\d+(?:\.\d+)?)`)

// ExtractStructuredFeedback segments the model's free-text reply into
// the fixed four-field evaluation record. It never fails: each field
// falls back to its default when its marker is absent or the score
// does not parse as a decimal number. The score is not clamped to
// [0, 1]; the prompt constrains the range, not the extractor.
func ExtractStructuredFeedback(reply string) models.StructuredFeedback {
	fb := models.StructuredFeedback{
		RationalityScore: defaultScore,
		ReasonForScore:   defaultReason,
		Feedback:         defaultFeedback,
		ImprovedArgument: defaultImproved,
	}

	if m := scorePattern.FindStringSubmatch(reply); m != nil {
		if score, err := strconv.ParseFloat(m[1], 64); err == nil {
			fb.RationalityScore = score
		}
	}

	if text, ok := sectionBetween(reply, reasonMarker, feedbackMarker); ok {
		fb.ReasonForScore = text
	}
	if text, ok := sectionBetween(reply, feedbackMarker, improvedMarker); ok {
		fb.Feedback = text
	}
	if text, ok := sectionBetween(reply, improvedMarker, ""); ok {
		fb.ImprovedArgument = text
	}

	return fb
}

// sectionBetween returns the trimmed text after the first occurrence
// of start, up to the next occurrence of end searched forward from
// there, or to the end of the input when end is empty or not found.
func sectionBetween(s, start, end string) (string, bool) {
	i := strings.Index(s, start)
	if i < 0 {
		return "", false
	}
	rest := s[i+len(start):]
	if end != "" {
		if j := strings.Index(rest, end); j >= 0 {
			rest = rest[:j]
		}
	}
	return strings.TrimSpace(rest), true
}
