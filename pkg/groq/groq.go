package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type groqImpl struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// newGroqImpl creates a new Groq implementation
func newGroqImpl(cfg Config) *groqImpl {
	return &groqImpl{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		baseURL:     cfg.BaseURL,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  cfg.HTTPClient,
	}
}

// GenerateReply sends a chat completions request to the Groq API
func (g *groqImpl) GenerateReply(ctx context.Context, system, user string) (string, error) {
	chatReq := chatRequest{
		Model:       g.model,
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return "", fmt.Errorf("groq: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("groq: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("groq: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if jsonErr := json.Unmarshal(bodyBytes, &errResp); jsonErr == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("groq: API error %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		return "", fmt.Errorf("groq: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("groq: failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// Model returns the model being used
func (g *groqImpl) Model() string {
	return g.model
}
