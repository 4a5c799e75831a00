// Package ai provides the optional OpenAI-backed generation and embedding
// client. The whole package is a capability: when no API key is configured
// NewClient returns nil and every dependent feature degrades.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/config"
)

// Client calls the OpenAI chat-completion and embedding APIs.
type Client struct {
	apiKey     string
	baseURL    string
	chatModel  string
	embedModel string
	client     *http.Client
}

// NewClient creates a Client from configuration. It returns nil when no API
// key is set; callers must treat a nil client as "provider unavailable".
func NewClient(cfg config.OpenAIConfig) *Client {
	if cfg.APIKey == "" {
		return nil
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = "gpt-4o-mini"
	}
	embedModel := cfg.EmbedModel
	if embedModel == "" {
		embedModel = "text-embedding-3-small"
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		chatModel:  chatModel,
		embedModel: embedModel,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type embeddingRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

type embeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Chat sends a single-user-message completion request and returns the
// model's text response.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model:    c.chatModel,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}
	var resp chatResponse
	if err := c.doRequest(ctx, "/chat/completions", reqBody, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("openai chat: %s", resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// Embed generates embeddings for multiple texts, in input order.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	reqBody := embeddingRequest{Input: texts, Model: c.embedModel}
	var resp embeddingResponse
	if err := c.doRequest(ctx, "/embeddings", reqBody, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("openai embeddings: %s", resp.Error.Message)
	}
	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index >= 0 && d.Index < len(vectors) {
			vectors[d.Index] = d.Embedding
		}
	}
	return vectors, nil
}

func (c *Client) doRequest(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiResp struct {
			Error *apiError `json:"error"`
		}
		if json.Unmarshal(data, &apiResp) == nil && apiResp.Error != nil {
			return fmt.Errorf("openai status %d: %s", resp.StatusCode, apiResp.Error.Message)
		}
		return fmt.Errorf("openai status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
