package matching

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/kravitexx/promptforge/internal/domain"
)

// Confidence levels per match path, strongest first.
const (
	ConfidenceExact       = 0.9
	ConfidenceSynonym     = 0.7
	ConfidenceEditSim     = 0.6
	ConfidenceTokenInWord = 0.5
	ConfidenceWordInToken = 0.4
)

// editSimilarityThreshold is the minimum normalized edit similarity
// (1 - distance/maxlen) for a fuzzy word match.
const editSimilarityThreshold = 0.7

// TokenComparison is the ephemeral result of matching one extracted
// token against an image description.
type TokenComparison struct {
	Token      string  `json:"token"`
	Present    bool    `json:"present"`
	Confidence float64 `json:"confidence"`
	Suggestion string  `json:"suggestion,omitempty"`
	Category   string  `json:"category,omitempty"`
}

// Engine matches scaffold tokens against free-text descriptions. The
// suggestion source is injectable so tests can pin the random draw.
type Engine struct {
	suggestions *SuggestionSource
}

// NewEngine creates a matching engine with the given suggestion source.
// A nil source falls back to the default time-seeded one.
func NewEngine(suggestions *SuggestionSource) *Engine {
	if suggestions == nil {
		suggestions = NewSuggestionSource(nil)
	}
	return &Engine{suggestions: suggestions}
}

// MatchToken matches one token against a description. Both sides are
// lowercased before comparison. Category is the slot name the token
// came from, used for miss suggestions.
func (e *Engine) MatchToken(token, description, category string) TokenComparison {
	token = strings.ToLower(strings.TrimSpace(token))
	description = strings.ToLower(description)

	comparison := TokenComparison{Token: token, Category: category}
	if token == "" || strings.TrimSpace(description) == "" {
		comparison.Suggestion = e.suggestions.ForCategory(category, token)
		return comparison
	}

	// 1. Exact substring match.
	if strings.Contains(description, token) {
		comparison.Present = true
		comparison.Confidence = ConfidenceExact
		return comparison
	}

	// 2. Synonym match against the fixed concept table.
	for _, syn := range synonymsOf(token) {
		if strings.Contains(description, syn) {
			comparison.Present = true
			comparison.Confidence = ConfidenceSynonym
			comparison.Suggestion = fmt.Sprintf("matched via synonym %q", syn)
			return comparison
		}
	}

	// 3. Partial and fuzzy matching per description word.
	for _, word := range descriptionWords(description) {
		if strings.Contains(word, token) {
			comparison.Present = true
			comparison.Confidence = ConfidenceTokenInWord
			return comparison
		}
		if len(word) > 3 && strings.Contains(token, word) {
			comparison.Present = true
			comparison.Confidence = ConfidenceWordInToken
			return comparison
		}
		if len(word) > 3 && editSimilarity(token, word) > editSimilarityThreshold {
			comparison.Present = true
			comparison.Confidence = ConfidenceEditSim
			return comparison
		}
	}

	// 4. No match: synthesize a category-appropriate suggestion.
	comparison.Suggestion = e.suggestions.ForCategory(category, token)
	return comparison
}

// CompareScaffold extracts tokens from every filled slot and matches
// each against the description. An empty scaffold yields an empty
// result, not an error.
func (e *Engine) CompareScaffold(sc domain.Scaffold, description string) []TokenComparison {
	var comparisons []TokenComparison
	for _, slot := range sc.FilledSlots() {
		for _, token := range ExtractTokens(slot.Content) {
			comparisons = append(comparisons, e.MatchToken(token, description, slot.Name))
		}
	}
	return comparisons
}

// editSimilarity returns 1 - levenshtein/maxlen, the normalized edit
// similarity between two strings.
func editSimilarity(a, b string) float64 {
	longer := len([]rune(a))
	if l := len([]rune(b)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longer)
}

// descriptionWords splits a lowercased description into words with
// surrounding punctuation stripped.
func descriptionWords(description string) []string {
	fields := strings.Fields(description)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		word := strings.Trim(f, ".,;:!?\"'()[]")
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}
