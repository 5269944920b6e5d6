package ai

import (
	"context"
)

// Client is the chat completion seam used by the plan generator.
// One call carries a persona system instruction plus the user message and
// returns the model reply as plain text. Implementations exist for OpenAI
// and Gemini so the provider can be swapped through configuration.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
