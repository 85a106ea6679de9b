package utils

import "testing"

type extractPayload struct {
	Brand    string `json:"brand"`
	MaxPrice int    `json:"maxPrice"`
	IsSearch bool   `json:"isSearch"`
}

func TestParseModelJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		brand     string
		maxPrice  int
	}{
		{
			name:     "plain JSON",
			input:    `{"brand": "Toyota", "maxPrice": 15000, "isSearch": true}`,
			brand:    "Toyota",
			maxPrice: 15000,
		},
		{
			name:     "fenced JSON",
			input:    "```json\n{\"brand\": \"BMW\", \"maxPrice\": 20000}\n```",
			brand:    "BMW",
			maxPrice: 20000,
		},
		{
			name:     "fence without language tag",
			input:    "```\n{\"brand\": \"Audi\"}\n```",
			brand:    "Audi",
		},
		{
			name:     "JSON embedded in prose",
			input:    `Here is what I found: {"brand": "Renault", "maxPrice": 9000} hope it helps`,
			brand:    "Renault",
			maxPrice: 9000,
		},
		{
			name:     "brace inside string literal",
			input:    `{"brand": "Fiat {500}", "maxPrice": 7000}`,
			brand:    "Fiat {500}",
			maxPrice: 7000,
		},
		{
			name:      "no JSON at all",
			input:     "Sorry, I could not help with that.",
			expectErr: true,
		},
		{
			name:      "unbalanced braces",
			input:     `{"brand": "Seat"`,
			expectErr: true,
		},
		{
			name:      "empty input",
			input:     "   ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out extractPayload
			err := ParseModelJSON(tt.input, &out)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("ParseModelJSON(%q) expected error, got %+v", tt.input, out)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseModelJSON(%q) unexpected error: %v", tt.input, err)
			}
			if out.Brand != tt.brand {
				t.Errorf("brand = %q, want %q", out.Brand, tt.brand)
			}
			if out.MaxPrice != tt.maxPrice {
				t.Errorf("maxPrice = %d, want %d", out.MaxPrice, tt.maxPrice)
			}
		})
	}
}

func TestParseModelJSONArray(t *testing.T) {
	var out []string
	input := "The fields are: [\"title\", \"price\"] as requested"
	if err := ParseModelJSON(input, &out); err != nil {
		t.Fatalf("ParseModelJSON array: %v", err)
	}
	if len(out) != 2 || out[0] != "title" || out[1] != "price" {
		t.Errorf("parsed array = %v, want [title price]", out)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"text around fence", "intro\n```json\n{\"a\": 1}\n```\noutro", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFences(tt.input); got != tt.expected {
				t.Errorf("StripCodeFences(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
