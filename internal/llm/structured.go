package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validator checks a decoded value for semantic correctness.
type Validator[T any] func(T) error

// ExtractJSON parses a model response into T. Models often wrap JSON in
// code fences or surround it with prose, so the first balanced object
// in the text is extracted before decoding. A non-nil validator runs on
// the decoded value.
func ExtractJSON[T any](text string, validate Validator[T]) (T, error) {
	var zero T

	cleaned := stripCodeFences(text)
	block := extractJSONObject(cleaned)
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON object found", ErrInvalidOutput)
	}

	var out T
	if err := json.Unmarshal([]byte(block), &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validate != nil {
		if err := validate(out); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	}

	return out, nil
}

// stripCodeFences removes markdown code fences (``` or ```json) that
// models commonly wrap structured output in.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return trimmed
	}

	// Drop the opening fence line and a trailing fence line if present.
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// extractJSONObject returns the first balanced top-level JSON object in
// the text, or "" if none exists. String contents are skipped so braces
// inside values do not confuse the scan.
func extractJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return ""
}
