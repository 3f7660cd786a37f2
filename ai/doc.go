// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ai proxies the external completion service that proposes poll
options.

The service is optional and unreliable by contract: calls are bounded by a
configured timeout, wrapped in a circuit breaker (sony/gobreaker), and any
failure surfaces as an error the poll engine swallows in favor of the
deterministic fallback set.

# Output handling

The completion output is free text expected to contain a JSON array of

	{"title": ..., "description": ..., "personalized_score": 0-100}

objects. ParseSuggestions extracts the first balanced, well-formed array
literal from the text; extraction or parse failure is treated the same as a
transport failure. Scores are reconciled via Suggestion.ScoreOrDefault
(clamped to [0, 100], defaulting to 50 when omitted).

# Fallback

FallbackSuggestions returns four category-flavored options with descending
scores 75/70/65/60. It is deterministic so poll creation is reproducible
when the service is down or disabled (empty API key).
*/
package ai
