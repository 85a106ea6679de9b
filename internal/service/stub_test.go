package service

import (
	"context"
	"errors"

	"carrosusados/internal/model"
)

// stubChatClient returns canned completions in order and records the
// message sequences it was called with.
type stubChatClient struct {
	replies  []string
	err      error
	disabled bool
	calls    [][]model.ChatMessage
}

func (s *stubChatClient) Complete(_ context.Context, messages []model.ChatMessage, _ CompleteOptions) (string, error) {
	s.calls = append(s.calls, messages)
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "", errors.New("stub: no replies left")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func (s *stubChatClient) CreateEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2, 0.3}
	}
	return out, nil
}

func (s *stubChatClient) IsEnabled() bool { return !s.disabled }

// stubCarStore returns a fixed result set and counts queries.
type stubCarStore struct {
	cars    []model.Car
	err     error
	calls   int
	filters *model.CarFilters
	limit   int
}

func (s *stubCarStore) SearchPublic(_ context.Context, filters *model.CarFilters, limit int) ([]model.Car, error) {
	s.calls++
	s.filters = filters
	s.limit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.cars, nil
}

// stubFetcher returns a fixed page and counts fetches.
type stubFetcher struct {
	page  string
	err   error
	calls int
	urls  []string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	s.calls++
	s.urls = append(s.urls, url)
	if s.err != nil {
		return "", s.err
	}
	return s.page, nil
}
