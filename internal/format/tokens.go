package format

import (
	"regexp"

	"github.com/kravitexx/promptforge/internal/domain"
)

// placeholderPattern matches every brace-delimited token in a template,
// recognized or not.
var placeholderPattern = regexp.MustCompile(`\{([^{}]*)\}`)

// shortTokens maps the short placeholder form (as written inside
// braces) to its slot key.
var shortTokens = map[string]domain.SlotKey{
	"S":  domain.SlotSubject,
	"C":  domain.SlotContext,
	"St": domain.SlotStyle,
	"Co": domain.SlotComposition,
	"L":  domain.SlotLighting,
	"A":  domain.SlotAtmosphere,
	"Q":  domain.SlotQuality,
}

// longTokens maps the lowercase long placeholder form to its slot key.
var longTokens = map[string]domain.SlotKey{
	"subject":     domain.SlotSubject,
	"context":     domain.SlotContext,
	"style":       domain.SlotStyle,
	"composition": domain.SlotComposition,
	"lighting":    domain.SlotLighting,
	"atmosphere":  domain.SlotAtmosphere,
	"quality":     domain.SlotQuality,
}

// longTokenFor returns the long placeholder form for a slot key.
func longTokenFor(key domain.SlotKey) string {
	for long, k := range longTokens {
		if k == key {
			return long
		}
	}
	return ""
}

// SlotsIn returns the slot keys a template references, in canonical
// order. Unrecognized tokens are ignored.
func SlotsIn(template string) []domain.SlotKey {
	seen := make(map[domain.SlotKey]bool)
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if key, ok := resolveToken(match[1]); ok {
			seen[key] = true
		}
	}
	var out []domain.SlotKey
	for _, key := range domain.SlotOrder {
		if seen[key] {
			out = append(out, key)
		}
	}
	return out
}

// resolveToken classifies a brace token body as a slot key. The second
// return is false for unrecognized tokens.
func resolveToken(body string) (domain.SlotKey, bool) {
	if key, ok := shortTokens[body]; ok {
		return key, true
	}
	if key, ok := longTokens[body]; ok {
		return key, true
	}
	return "", false
}
