// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrDisabled is returned when no API key is configured; callers fall back
// to the deterministic option set.
var ErrDisabled = errors.New("ai completions disabled: no API key configured")

// Client calls an OpenAI-style chat completions endpoint to generate poll
// option suggestions. The service is treated as unreliable: every call is
// bounded by the configured timeout and guarded by a circuit breaker, and
// callers must be prepared for an error on any call.
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]Suggestion]
	apiKey     string
	baseURL    string
	model      string
}

func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	settings := gobreaker.Settings{
		Name:    "ai-completions",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("ai breaker state change", "name", name, "from", from.String(), "to", to.String())
		},
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		breaker:    gobreaker.NewCircuitBreaker[[]Suggestion](settings),
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
	}
}

// SuggestOptions asks the completion service for exactly four poll options.
// Any failure (disabled, breaker open, transport error, timeout, unparseable
// output) is returned as an error; the caller substitutes fallback options.
func (c *Client) SuggestOptions(ctx context.Context, req SuggestionRequest) ([]Suggestion, error) {
	if c.apiKey == "" {
		return nil, ErrDisabled
	}

	return c.breaker.Execute(func() ([]Suggestion, error) {
		return c.complete(ctx, req)
	})
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
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, req SuggestionRequest) ([]Suggestion, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(req)},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("completion service returned %d: %s", resp.StatusCode, snippet)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("completion response had no choices")
	}

	return ParseSuggestions(parsed.Choices[0].Message.Content)
}

// ParseSuggestions extracts the first well-formed JSON array literal from
// free-form completion output and parses it.
func ParseSuggestions(content string) ([]Suggestion, error) {
	raw, ok := extractJSONArray(content)
	if !ok {
		return nil, errors.New("no JSON array found in completion output")
	}

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion array: %w", err)
	}
	return suggestions, nil
}

// extractJSONArray scans content for the first balanced '[' ... ']' literal,
// tracking string boundaries and escapes so brackets inside strings do not
// terminate the scan.
func extractJSONArray(content string) (string, bool) {
	for start := 0; start < len(content); start++ {
		if content[start] != '[' {
			continue
		}

		depth := 0
		inString := false
		escaped := false
		for i := start; i < len(content); i++ {
			ch := content[i]
			if escaped {
				escaped = false
				continue
			}
			switch {
			case inString && ch == '\\':
				escaped = true
			case ch == '"':
				inString = !inString
			case !inString && ch == '[':
				depth++
			case !inString && ch == ']':
				depth--
				if depth == 0 {
					candidate := content[start : i+1]
					if json.Valid([]byte(candidate)) {
						return candidate, true
					}
					// Malformed; resume scanning past this opener.
					i = len(content)
				}
			}
		}
	}
	return "", false
}
