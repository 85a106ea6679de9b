package service

import (
	"context"
	"errors"
	"testing"
)

func TestFilterExtractorExtract(t *testing.T) {
	tests := []struct {
		name         string
		reply        string
		wantSearch   bool
		wantBrand    string
		wantMaxPrice int
		wantFuel     string
	}{
		{
			name:         "plain filters",
			reply:        `{"brand": "Toyota", "maxPrice": 15000}`,
			wantSearch:   true,
			wantBrand:    "Toyota",
			wantMaxPrice: 15000,
		},
		{
			name:       "fenced filters",
			reply:      "```json\n{\"brand\": \"BMW\"}\n```",
			wantSearch: true,
			wantBrand:  "BMW",
		},
		{
			name:       "not a search",
			reply:      `{"isSearch": false}`,
			wantSearch: false,
		},
		{
			name:       "english fuel type canonicalized",
			reply:      `{"fuelType": "Diesel"}`,
			wantSearch: true,
			wantFuel:   "Gasóleo",
		},
		{
			name:       "unparseable reply fails open",
			reply:      "I cannot produce JSON today.",
			wantSearch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &stubChatClient{replies: []string{tt.reply}}
			extractor := NewFilterExtractor(ai, 200)

			filters, isSearch := extractor.Extract(context.Background(), "quero um carro")
			if isSearch != tt.wantSearch {
				t.Fatalf("isSearch = %v, want %v", isSearch, tt.wantSearch)
			}
			if !tt.wantSearch {
				if !filters.IsEmpty() {
					t.Errorf("non-search returned filters: %+v", filters)
				}
				return
			}

			if tt.wantBrand != "" {
				if filters.Brand == nil || *filters.Brand != tt.wantBrand {
					t.Errorf("brand = %v, want %q", filters.Brand, tt.wantBrand)
				}
			}
			if tt.wantMaxPrice != 0 {
				if filters.MaxPrice == nil || *filters.MaxPrice != tt.wantMaxPrice {
					t.Errorf("maxPrice = %v, want %d", filters.MaxPrice, tt.wantMaxPrice)
				}
			}
			if tt.wantFuel != "" {
				if filters.FuelType == nil || *filters.FuelType != tt.wantFuel {
					t.Errorf("fuelType = %v, want %q", filters.FuelType, tt.wantFuel)
				}
			}
		})
	}
}

func TestFilterExtractorFailsOpenOnModelError(t *testing.T) {
	ai := &stubChatClient{err: errors.New("gateway timeout")}
	extractor := NewFilterExtractor(ai, 200)

	filters, isSearch := extractor.Extract(context.Background(), "carros até 10000")
	if isSearch {
		t.Error("model error should not count as a search")
	}
	if !filters.IsEmpty() {
		t.Errorf("model error returned filters: %+v", filters)
	}
}

func TestFilterExtractorDisabledGateway(t *testing.T) {
	ai := &stubChatClient{disabled: true}
	extractor := NewFilterExtractor(ai, 200)

	_, isSearch := extractor.Extract(context.Background(), "carros baratos")
	if isSearch {
		t.Error("disabled gateway should not count as a search")
	}
	if len(ai.calls) != 0 {
		t.Errorf("disabled gateway was called %d times", len(ai.calls))
	}
}

func TestFilterExtractorSendsUserMessage(t *testing.T) {
	ai := &stubChatClient{replies: []string{`{"brand": "Opel"}`}}
	extractor := NewFilterExtractor(ai, 200)

	extractor.Extract(context.Background(), "procuro um Opel")
	if len(ai.calls) != 1 {
		t.Fatalf("expected 1 model call, got %d", len(ai.calls))
	}
	msgs := ai.calls[0]
	if len(msgs) != 2 || msgs[0].Role != "system" || msgs[1].Role != "user" {
		t.Fatalf("unexpected message roles: %+v", msgs)
	}
	if msgs[1].Content != "procuro um Opel" {
		t.Errorf("user message = %q", msgs[1].Content)
	}
}
