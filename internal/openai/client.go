// Package openai is a minimal client for the chat-completions endpoint of
// the external advice provider. It forwards a system prompt plus one user
// message and returns the first choice verbatim.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultAPIURL = "https://api.openai.com/v1"

// Client calls the provider's HTTP API.
type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// NewClient builds a provider client for the given model. The key and model
// come from configuration, read once at startup.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Model returns the configured model name, echoed back in API responses.
func (c *Client) Model() string {
	return c.model
}

// Complete sends systemPrompt and userMessage to the chat-completions
// endpoint and returns the text of the first choice. Any transport or
// provider failure is returned as-is for the caller to surface as an
// upstream error; there are no retries.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	const op = "openai.Complete"

	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: 0.5,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat/completions", &buf)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("%s: %s: %s", op, resp.Status, apiErr.Error.Message)
		}
		return "", fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%s: empty choices in response", op)
	}
	return completion.Choices[0].Message.Content, nil
}
