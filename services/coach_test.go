package services

import (
	"strings"
	"testing"
)

func TestBuildCoachPrompt(t *testing.T) {
	topic := "Should voting be mandatory?"
	argument := "Everyone should vote because democracy depends on it."

	prompt := buildCoachPrompt(topic, argument)

	if !strings.Contains(prompt, topic) {
		t.Errorf("Prompt missing topic %q", topic)
	}
	if !strings.Contains(prompt, argument) {
		t.Errorf("Prompt missing argument %q", argument)
	}

	// The required output format must carry the exact markers the
	// extractor segments on.
	for _, marker := range []string{scoreMarker, reasonMarker, feedbackMarker, improvedMarker} {
		if !strings.Contains(prompt, marker) {
			t.Errorf("Prompt missing marker %q", marker)
		}
	}
}
