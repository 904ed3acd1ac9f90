package matching

import (
	"fmt"
	"math/rand"
	"time"
)

// suggestionTemplates holds 2-3 phrasings per slot category for tokens
// missing from a description. %s is replaced with the token.
var suggestionTemplates = map[string][]string{
	"Subject": {
		"Make %q more prominent in the image",
		"The subject %q was not detected; consider emphasizing it",
		"Try describing %q with more specific visual detail",
	},
	"Context": {
		"The setting %q is not visible; describe the environment more explicitly",
		"Add more detail about the %q surroundings",
	},
	"Style": {
		"The style %q did not come through; name a concrete medium or artist reference",
		"Reinforce the %q style with supporting descriptors",
		"Consider pairing %q with a related style keyword",
	},
	"Composition": {
		"The framing %q was not reflected; specify camera angle or shot type",
		"Restate %q using standard composition vocabulary",
	},
	"Lighting": {
		"The lighting %q is missing; describe light direction and quality",
		"Strengthen %q with a time-of-day or light-source cue",
	},
	"Atmosphere": {
		"The mood %q did not register; add emotional or weather descriptors",
		"Pair %q with color or texture cues that carry the mood",
	},
	"Quality": {
		"Add %q alongside other quality boosters like 'highly detailed'",
		"The quality cue %q had no visible effect; try stronger modifiers",
	},
}

var genericSuggestions = []string{
	"Consider making %q more explicit in the prompt",
	"%q was not found in the image; rephrase or emphasize it",
}

// SuggestionSource picks miss suggestions from the per-category
// phrasing sets. The random source is injectable so tests can assert
// structural properties against a fixed seed.
type SuggestionSource struct {
	rng *rand.Rand
}

// NewSuggestionSource creates a suggestion source. A nil rng gets a
// time-seeded default.
func NewSuggestionSource(rng *rand.Rand) *SuggestionSource {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SuggestionSource{rng: rng}
}

// ForCategory returns a suggestion for a token missing from the
// description, phrased for the given slot category.
func (s *SuggestionSource) ForCategory(category, token string) string {
	templates, ok := suggestionTemplates[category]
	if !ok || len(templates) == 0 {
		templates = genericSuggestions
	}
	tmpl := templates[s.rng.Intn(len(templates))]
	return fmt.Sprintf(tmpl, token)
}
