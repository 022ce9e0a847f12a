package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"debatecoach/config"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Global Gemini client instance
var geminiClient *genai.Client
var geminiModelName string

// ErrContentBlocked indicates the model refused to reply because of
// content restrictions rather than a transport failure.
var ErrContentBlocked = errors.New("generation blocked by content restrictions")

// InitCoachService initializes the Gemini client using the API key and
// model name from the config
func InitCoachService(cfg *config.Config) error {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	geminiClient = client
	geminiModelName = cfg.Gemini.Model
	return nil
}

// generateModelText sends a prompt to the configured model and returns
// the reply text. Blocked generations surface as ErrContentBlocked.
func generateModelText(ctx context.Context, prompt string) (string, error) {
	if geminiClient == nil {
		return "", errors.New("gemini client not initialized")
	}

	model := geminiClient.GenerativeModel(geminiModelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", ErrContentBlocked
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrContentBlocked
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	reply := cleanModelOutput(sb.String())
	if reply == "" {
		return "", ErrContentBlocked
	}
	return reply, nil
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```markdown")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// ListModelNames returns the names of all models available to the API key
func ListModelNames(ctx context.Context) ([]string, error) {
	if geminiClient == nil {
		return nil, errors.New("gemini client not initialized")
	}

	var names []string
	it := geminiClient.ListModels(ctx)
	for {
		info, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		names = append(names, info.Name)
	}
	return names, nil
}

// PickPreferredModel returns the first Gemini model from names that is
// neither a flash nor a vision variant, with any "models/" prefix
// stripped. It returns an empty string when no model qualifies.
func PickPreferredModel(names []string) string {
	for _, name := range names {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "gemini") && !strings.Contains(lower, "flash") && !strings.Contains(lower, "vision") {
			return strings.TrimPrefix(name, "models/")
		}
	}
	return ""
}
