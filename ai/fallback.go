// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ai

// FallbackScores are assigned to fallback options in order, so poll creation
// yields a stable, deterministic option set whenever the completion service
// is unavailable.
var FallbackScores = [4]int{75, 70, 65, 60}

// FallbackSuggestions returns the deterministic four-option set for a
// category. Poll creation never blocks on AI availability; this set is the
// substitute for any completion failure.
func FallbackSuggestions(category string) []Suggestion {
	titles := fallbackTitles(category)

	suggestions := make([]Suggestion, 4)
	for i := range suggestions {
		score := float64(FallbackScores[i])
		suggestions[i] = Suggestion{
			Title:       titles[i],
			Description: "A solid pick while personalized suggestions are unavailable.",
			RawScore:    &score,
		}
	}
	return suggestions
}

func fallbackTitles(category string) [4]string {
	switch category {
	case "restaurants":
		return [4]string{"Neighborhood favorite", "Something new to try", "Casual crowd-pleaser", "Old reliable"}
	case "movies":
		return [4]string{"Recent hit", "Critically acclaimed pick", "Comfort rewatch", "Hidden gem"}
	case "tv_shows":
		return [4]string{"Trending series", "Binge-worthy classic", "Light comedy", "Gripping drama"}
	case "reading":
		return [4]string{"Bestseller pick", "Book club favorite", "Quick read", "Modern classic"}
	case "activities":
		return [4]string{"Outdoor outing", "Game night", "Local event", "Low-key hangout"}
	default:
		return [4]string{"Option A", "Option B", "Option C", "Option D"}
	}
}
