// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ai

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are LMK AI, a group decision assistant. Respond ONLY with JSON.

RULES:
1. Propose exactly 4 options for the group's poll.
2. Score each option 0-100 by how well it matches the whole group's tastes.
3. Use the provided taste profiles and rated items - never invent member data.

OUTPUT FORMAT (a JSON array, nothing else):
[{"title":"Option name","description":"1-2 sentences connecting the option to the group's tastes.","personalized_score":85}]`

func buildPrompt(req SuggestionRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Poll: %s\nCategory: %s\n\nGroup members:\n", req.PollTitle, req.Category)

	for _, m := range req.Members {
		name := m.Name
		if name == "" {
			name = "Member"
		}
		fmt.Fprintf(&b, "- %s\n", name)
		if m.TasteProfile != "" {
			fmt.Fprintf(&b, "  Taste profile: %s\n", m.TasteProfile)
		}
		for _, item := range m.TopRated {
			fmt.Fprintf(&b, "  Rated %.1f/10: %s\n", item.Score, item.Title)
		}
	}

	b.WriteString("\nPropose 4 options the whole group would enjoy, in the requested JSON format.")
	return b.String()
}
