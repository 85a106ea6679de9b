package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseModelJSON parses JSON out of a language-model response. The model is
// asked for JSON only, but in practice replies arrive as pure JSON, JSON
// wrapped in markdown code fences, or JSON embedded in prose. Unknown keys
// are ignored; anything that does not yield valid JSON is an error for the
// caller to handle.
func ParseModelJSON(input string, target interface{}) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("empty model response")
	}

	if err := json.Unmarshal([]byte(input), target); err == nil {
		return nil
	}

	if fenced := StripCodeFences(input); fenced != input {
		if err := json.Unmarshal([]byte(fenced), target); err == nil {
			return nil
		}
	}

	if extracted := firstJSONValue(input); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no valid JSON in model response: %s", truncate(input, 120))
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// StripCodeFences removes a markdown code fence wrapper if present,
// returning the input unchanged otherwise.
func StripCodeFences(input string) string {
	if matches := fenceRe.FindStringSubmatch(input); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return input
}

// firstJSONValue returns the first balanced JSON object or array found in
// the text, or "".
func firstJSONValue(input string) string {
	objStart := strings.Index(input, "{")
	arrStart := strings.Index(input, "[")

	if objStart >= 0 && (arrStart < 0 || objStart < arrStart) {
		return balancedFrom(input[objStart:], '{', '}')
	}
	if arrStart >= 0 {
		return balancedFrom(input[arrStart:], '[', ']')
	}
	return ""
}

// balancedFrom scans input, which starts at an opening bracket, and returns
// the substring up to the matching close bracket, honoring string literals
// and escapes.
func balancedFrom(input string, open, close rune) string {
	depth := 0
	inString := false
	escape := false

	for i, ch := range input {
		if escape {
			escape = false
			continue
		}
		switch {
		case ch == '\\':
			escape = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == open:
			depth++
		case ch == close:
			depth--
			if depth == 0 {
				return input[:i+1]
			}
		}
	}
	return ""
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
