package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultOpenAIModel balances cost and quality for short plan generations.
const DefaultOpenAIModel = "gpt-4o-mini"

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OpenAIClient implements Client against the OpenAI chat completions endpoint
// over plain HTTP.
type OpenAIClient struct {
	apiKey      string
	model       string
	temperature float32
	endpoint    string

	// httpClient carries a 30s ceiling for stalled connections; per-request
	// deadlines come from the caller's context.
	httpClient *http.Client
}

// NewOpenAIClient builds a client for the given key, model, and sampling
// temperature. A missing key is not an error here; it surfaces when the first
// completion is attempted, so the page can come up without credentials.
func NewOpenAIClient(apiKey, model string, temperature float32) *OpenAIClient {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIClient{
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		endpoint:    openAIEndpoint,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// WithEndpoint points the client at an alternate completions URL, for tests
// and OpenAI-compatible gateways.
func (c *OpenAIClient) WithEndpoint(url string) *OpenAIClient {
	c.endpoint = url
	return c
}

// Complete sends the system instruction and user message as one two-message
// conversation and returns the reply text.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", fmt.Errorf("openai: missing api key")
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("openai: unmarshal response: %w", err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("openai: api error: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("openai: API returned empty choices array (raw: %s)", body)
	}
	if strings.TrimSpace(cr.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("openai: API returned empty message content")
	}
	return cr.Choices[0].Message.Content, nil
}
