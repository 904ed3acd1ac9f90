package matching

import "strings"

// tokenSeparators are the characters slot content is split on, in
// addition to whitespace.
const tokenSeparators = ",;|&+"

// ExtractTokens splits slot content into comparable tokens: split on
// separators and whitespace, trim, drop tokens shorter than 3
// characters, drop stop-words. Non-empty input never yields zero
// tokens; when filtering removes everything, the whole trimmed content
// is returned as a single token.
func ExtractTokens(content string) []string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil
	}

	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return strings.ContainsRune(tokenSeparators, r) || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	var tokens []string
	for _, f := range fields {
		token := strings.ToLower(strings.TrimSpace(f))
		if len(token) < 3 {
			continue
		}
		if isStopWord(token) {
			continue
		}
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		return []string{strings.ToLower(trimmed)}
	}
	return tokens
}
