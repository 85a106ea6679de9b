package service

import (
	"context"

	"carrosusados/internal/model"
)

// CompleteOptions tunes a single chat completion call.
type CompleteOptions struct {
	MaxTokens   int
	Temperature float64
}

// ChatClient is the capability the pipelines use to talk to the hosted
// chat-completion gateway. Tests substitute deterministic stubs; the
// network call is never made inline.
type ChatClient interface {
	// Complete sends an ordered message sequence and returns the
	// assistant's text content.
	Complete(ctx context.Context, messages []model.ChatMessage, opts CompleteOptions) (string, error)

	// CreateEmbeddings generates embedding vectors for the given texts.
	CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)

	// IsEnabled reports whether the client is configured and ready.
	IsEnabled() bool
}

// PageFetcher retrieves the raw markup of a third-party listing page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
