package services

import (
	"context"
	"fmt"

	"debatecoach/models"
)

// debate coach evaluation prompt; the required output format is what
// ExtractStructuredFeedback segments on, so the two must stay in sync.
const coachPromptFormat = `You are an AI debate coach. The topic of the debate is: "%s".

1. Evaluate the argument based on the following criteria:
- **Logical Structure:** Is the argument well-organized? Does it follow a clear progression? If it's already structured well, state that no improvements are necessary.
- **Clarity & Coherence:** Is the argument clear and easy to understand? Are there ambiguous or vague points? If it's already clear, explicitly mention that.
- **Supporting Evidence:** Does the argument provide strong evidence? If it lacks evidence, suggest improvements. If it's well-supported, state that it's sufficient.
- **Potential Counterarguments:**
  - Identify specific counterarguments that an opposing debater might use.
  - Provide at least one concrete example of a counterpoint phrased as a debate challenge (e.g., "If we allow X, then what stops Y?").

2. Assess the rationality of the argument:
- Provide a rationality score from 0 (highly emotional) to 1 (highly rational).
- Explain why the argument was scored that way.

3. Generate an improved version of the argument that:
- Incorporates the feedback above.
- Fixes weaknesses while keeping the argument's core ideas.
- Uses better structure, clarity, and stronger reasoning if necessary.

User's Argument:
%s

Format your response as follows:
---
**Rationality Score:** X.X
**Reasoning for Score:** (explanation)

**Feedback:**
- **Logical Structure:** (comment)
- **Clarity & Coherence:** (comment)
- **Supporting Evidence:** (comment)
- **Potential Counterarguments:**
  - (general explanation of weaknesses in counterarguments)
  - **Example Counterpoint:** "If we allow X, then what stops Y?"

**Improved Argument:**
(Provide the improved version of the argument)`

// EvaluateArgument asks the model to coach the user's argument on the
// given topic and reshapes the free-text reply into a structured
// record. The extraction never fails; upstream errors are the model
// call's own (including ErrContentBlocked).
func EvaluateArgument(ctx context.Context, topic, argument string) (models.StructuredFeedback, error) {
	prompt := buildCoachPrompt(topic, argument)

	reply, err := generateModelText(ctx, prompt)
	if err != nil {
		return models.StructuredFeedback{}, err
	}

	return ExtractStructuredFeedback(reply), nil
}

func buildCoachPrompt(topic, argument string) string {
	return fmt.Sprintf(coachPromptFormat, topic, argument)
}
