package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"carrosusados/internal/config"
	"carrosusados/internal/model"
)

// GatewayClient talks to an OpenAI-compatible chat-completion API behind
// bearer-token authentication.
type GatewayClient struct {
	cfg        *config.AIConfig
	httpClient *http.Client
}

// NewGatewayClient creates a client for the configured AI gateway.
func NewGatewayClient(cfg *config.AIConfig) *GatewayClient {
	return &GatewayClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled reports whether the client is configured and ready.
func (c *GatewayClient) IsEnabled() bool {
	return c.cfg.Enabled
}

type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []model.ChatMessage `json:"messages"`
	Temperature float64             `json:"temperature,omitempty"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Index        int               `json:"index"`
		Message      model.ChatMessage `json:"message"`
		FinishReason string            `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete performs a chat completion request and returns the assistant's
// text content.
func (c *GatewayClient) Complete(ctx context.Context, messages []model.ChatMessage, opts CompleteOptions) (string, error) {
	if !c.cfg.Enabled {
		return "", fmt.Errorf("AI gateway is not enabled (missing API key)")
	}

	req := chatCompletionRequest{
		Model:       c.cfg.ChatModel,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	body, err := c.post(ctx, "/chat/completions", req)
	if err != nil {
		return "", err
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from AI gateway")
	}

	return result.Choices[0].Message.Content, nil
}

type embeddingRequest struct {
	Model          string   `json:"model"`
	Input          []string `json:"input"`
	EncodingFormat string   `json:"encoding_format,omitempty"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

// CreateEmbeddings generates embedding vectors for the given texts.
func (c *GatewayClient) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if !c.cfg.Enabled {
		return nil, fmt.Errorf("AI gateway is not enabled (missing API key)")
	}
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	req := embeddingRequest{
		Model:          c.cfg.EmbeddingModel,
		Input:          texts,
		EncodingFormat: "float",
	}

	body, err := c.post(ctx, "/embeddings", req)
	if err != nil {
		return nil, err
	}

	var result embeddingResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	embeddings := make([][]float32, len(texts))
	for _, item := range result.Data {
		if item.Index < len(embeddings) {
			embeddings[item.Index] = item.Embedding
		}
	}
	return embeddings, nil
}

func (c *GatewayClient) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.cfg.APIBase + path
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// Ensure GatewayClient implements ChatClient
var _ ChatClient = (*GatewayClient)(nil)
