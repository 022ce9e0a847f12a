package services

import "testing"

func TestExtractWellFormedReply(t *testing.T) {
	reply := `---
**Rationality Score:** 0.9

**Reasoning for Score:** The argument cites evidence and follows a clear progression.

**Feedback:**
- **Logical Structure:** Well organized.
- **Supporting Evidence:** Could use a second source.

**Improved Argument:**
A refined version of the argument with stronger framing.`

	fb := ExtractStructuredFeedback(reply)

	if fb.RationalityScore != 0.9 {
		t.Errorf("Expected score 0.9, got %v", fb.RationalityScore)
	}
	if fb.ReasonForScore != "The argument cites evidence and follows a clear progression." {
		t.Errorf("Unexpected reasoning: %q", fb.ReasonForScore)
	}
	if fb.Feedback != "- **Logical Structure:** Well organized.\n- **Supporting Evidence:** Could use a second source." {
		t.Errorf("Unexpected feedback: %q", fb.Feedback)
	}
	if fb.ImprovedArgument != "A refined version of the argument with stronger framing." {
		t.Errorf("Unexpected improved argument: %q", fb.ImprovedArgument)
	}
}

func TestExtractSingleLineReply(t *testing.T) {
	reply := "**Rationality Score:** 0.9  **Reasoning for Score:** Good logic **Feedback:** Add evidence **Improved Argument:** Refined text."

	fb := ExtractStructuredFeedback(reply)

	if fb.RationalityScore != 0.9 {
		t.Errorf("Expected score 0.9, got %v", fb.RationalityScore)
	}
	if fb.ReasonForScore != "Good logic" {
		t.Errorf("Expected reasoning %q, got %q", "Good logic", fb.ReasonForScore)
	}
	if fb.Feedback != "Add evidence" {
		t.Errorf("Expected feedback %q, got %q", "Add evidence", fb.Feedback)
	}
	if fb.ImprovedArgument != "Refined text." {
		t.Errorf("Expected improved argument %q, got %q", "Refined text.", fb.ImprovedArgument)
	}
}

func TestExtractEmptyInputFallsBackToDefaults(t *testing.T) {
	fb := ExtractStructuredFeedback("")

	if fb.RationalityScore != 0.5 {
		t.Errorf("Expected default score 0.5, got %v", fb.RationalityScore)
	}
	if fb.ReasonForScore != "No reasoning provided." {
		t.Errorf("Expected default reasoning, got %q", fb.ReasonForScore)
	}
	if fb.Feedback != "No feedback provided." {
		t.Errorf("Expected default feedback, got %q", fb.Feedback)
	}
	if fb.ImprovedArgument != "No improved argument provided." {
		t.Errorf("Expected default improved argument, got %q", fb.ImprovedArgument)
	}
}

func TestExtractScoreOnly(t *testing.T) {
	fb := ExtractStructuredFeedback("**Rationality Score:** 0.8")

	if fb.RationalityScore != 0.8 {
		t.Errorf("Expected score 0.8, got %v", fb.RationalityScore)
	}
	if fb.ReasonForScore != "No reasoning provided." {
		t.Errorf("Expected default reasoning, got %q", fb.ReasonForScore)
	}
	if fb.Feedback != "No feedback provided." {
		t.Errorf("Expected default feedback, got %q", fb.Feedback)
	}
	if fb.ImprovedArgument != "No improved argument provided." {
		t.Errorf("Expected default improved argument, got %q", fb.ImprovedArgument)
	}
}

func TestExtractIntegerScore(t *testing.T) {
	fb := ExtractStructuredFeedback("**Rationality Score:** 1")
	if fb.RationalityScore != 1.0 {
		t.Errorf("Expected score 1.0, got %v", fb.RationalityScore)
	}
}

func TestExtractUnparsableScoreFallsBack(t *testing.T) {
	fb := ExtractStructuredFeedback("**Rationality Score:** high")
	if fb.RationalityScore != 0.5 {
		t.Errorf("Expected default score 0.5, got %v", fb.RationalityScore)
	}
}

func TestExtractMissingTerminatorRunsToEnd(t *testing.T) {
	fb := ExtractStructuredFeedback("**Feedback:** Tighten the opening claim.")
	if fb.Feedback != "Tighten the opening claim." {
		t.Errorf("Expected feedback to run to end of input, got %q", fb.Feedback)
	}
	if fb.ImprovedArgument != "No improved argument provided." {
		t.Errorf("Expected default improved argument, got %q", fb.ImprovedArgument)
	}
}

func TestExtractOutOfOrderMarkers(t *testing.T) {
	// The improved-argument section always runs to end of input, so
	// when it appears first it swallows the later sections; each other
	// field still resolves to its own forward span.
	reply := "**Improved Argument:** X **Feedback:** Y"

	fb := ExtractStructuredFeedback(reply)

	if fb.Feedback != "Y" {
		t.Errorf("Expected feedback %q, got %q", "Y", fb.Feedback)
	}
	if fb.ImprovedArgument != "X **Feedback:** Y" {
		t.Errorf("Expected improved argument to span to end, got %q", fb.ImprovedArgument)
	}
	if fb.ReasonForScore != "No reasoning provided." {
		t.Errorf("Expected default reasoning, got %q", fb.ReasonForScore)
	}
}

func TestExtractDriftedStylingFallsBack(t *testing.T) {
	// Markers without the bold styling are not recognized.
	fb := ExtractStructuredFeedback("Rationality Score: 0.7\nFeedback: solid argument")

	if fb.RationalityScore != 0.5 {
		t.Errorf("Expected default score 0.5, got %v", fb.RationalityScore)
	}
	if fb.Feedback != "No feedback provided." {
		t.Errorf("Expected default feedback, got %q", fb.Feedback)
	}
}
