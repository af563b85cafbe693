package utils

import (
	"context"
	"fmt"
	"strings"
)

// TextGeneratorInterface produces free text from a system and user prompt.
type TextGeneratorInterface interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Close() error
}

// NewTextGenerator creates the client for provider. "none" gives a generator
// that always fails with ErrGeneratorUnavailable.
func NewTextGenerator(ctx context.Context, provider, apiKey, model string) (TextGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "", "none":
		return DisabledGenerator{}, nil
	case "openai":
		return NewOpenAITextClient(apiKey, model, ""), nil
	case "gemini":
		return NewGeminiTextClient(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// DisabledGenerator is used when no provider is configured.
type DisabledGenerator struct{}

func (DisabledGenerator) Generate(context.Context, string, string) (string, error) {
	return "", ErrGeneratorUnavailable
}

func (DisabledGenerator) Close() error { return nil }

var replyPrefixes = []string{
	"Here's your itinerary:",
	"Here is your itinerary:",
	"Here's the travel plan:",
	"Here is the travel plan:",
	"İşte planınız:",
	"İşte seyahat planınız:",
}

// CleanPlanResponse removes code fences and chatty lead-ins that models put
// around a Markdown plan.
func CleanPlanResponse(response string) string {
	response = strings.TrimSpace(response)
	for _, fence := range []string{"```markdown", "```md", "```text", "```"} {
		response = strings.ReplaceAll(response, fence, "")
	}
	response = strings.TrimSpace(response)

	for _, prefix := range replyPrefixes {
		if strings.HasPrefix(response, prefix) {
			response = strings.TrimPrefix(response, prefix)
			break
		}
	}
	return strings.TrimSpace(response)
}
