// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ai

// RatedItem is one of a member's highest-rated items in a category.
type RatedItem struct {
	Title string
	Score float64
}

// MemberContext carries one group member's taste inputs for the prompt.
type MemberContext struct {
	Name         string
	TasteProfile string
	TopRated     []RatedItem
}

// SuggestionRequest describes the poll the completion service should
// propose options for.
type SuggestionRequest struct {
	PollTitle string
	Category  string
	Members   []MemberContext
}

// Suggestion is one proposed poll option parsed from the completion output.
// The score is kept raw here; models vary between snake_case and camelCase
// keys, so both are accepted and reconciled by ScoreOrDefault.
type Suggestion struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RawScore    *float64 `json:"personalized_score"`
	RawScoreAlt *float64 `json:"personalizedScore"`
}

// ScoreOrDefault returns the suggestion's score clamped to [0, 100],
// or 50 when the model omitted it.
func (s Suggestion) ScoreOrDefault() int {
	raw := s.RawScore
	if raw == nil {
		raw = s.RawScoreAlt
	}
	if raw == nil {
		return 50
	}
	score := int(*raw)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
