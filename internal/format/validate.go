package format

import (
	"fmt"
	"strings"

	"github.com/kravitexx/promptforge/internal/domain"
)

// ValidationResult is the structured outcome of template validation.
// Validation failures are data, not errors: they originate from user
// input and the caller presents them.
type ValidationResult struct {
	IsValid       bool     `json:"is_valid"`
	Errors        []string `json:"errors"`
	MissingTokens []string `json:"missing_tokens"`
	InvalidTokens []string `json:"invalid_tokens"`
}

// Validate checks a custom format template string. A valid template
// references every scaffold slot (in short or long form) and contains
// no unrecognized placeholders. Missing tokens are reported in
// canonical short form, e.g. "{Co}".
func Validate(template string) ValidationResult {
	result := ValidationResult{}

	if strings.TrimSpace(template) == "" {
		result.Errors = append(result.Errors, "template is empty")
		return result
	}

	seen := make(map[domain.SlotKey]bool)
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		body := match[1]
		key, ok := resolveToken(body)
		if !ok {
			result.InvalidTokens = append(result.InvalidTokens, "{"+body+"}")
			continue
		}
		seen[key] = true
	}

	for _, key := range domain.SlotOrder {
		if !seen[key] {
			result.MissingTokens = append(result.MissingTokens, "{"+string(key)+"}")
		}
	}

	if len(result.InvalidTokens) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("unrecognized tokens: %s", strings.Join(result.InvalidTokens, ", ")))
	}
	if len(result.MissingTokens) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("missing required tokens: %s", strings.Join(result.MissingTokens, ", ")))
	}

	result.IsValid = len(result.InvalidTokens) == 0 && len(result.MissingTokens) == 0
	return result
}
