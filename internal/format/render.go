package format

import (
	"strings"

	"github.com/kravitexx/promptforge/internal/domain"
)

// Render substitutes every recognized placeholder (short and long form)
// with the corresponding slot content, then cleans up separator runs
// left behind by empty slots. Unrecognized placeholders are left
// untouched; validation rejects them before rendering.
func Render(template string, values map[domain.SlotKey]string) string {
	out := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		body := strings.TrimSuffix(strings.TrimPrefix(match, "{"), "}")
		key, ok := resolveToken(body)
		if !ok {
			return match
		}
		return values[key]
	})
	return CleanupSeparators(out)
}

// RenderScaffold renders a template against a scaffold.
func RenderScaffold(template string, sc domain.Scaffold) string {
	return Render(template, sc.ToMap())
}

// CleanupSeparators removes the comma-separator debris that empty slots
// leave in comma-joined templates: runs of ", " collapse to one, and
// leading or trailing separators are stripped. The function is
// idempotent; running it on already-clean output is a no-op.
func CleanupSeparators(s string) string {
	// Collapse separator runs until fixpoint.
	for {
		collapsed := strings.ReplaceAll(s, ", ,", ",")
		collapsed = strings.ReplaceAll(collapsed, ",,", ",")
		if collapsed == s {
			break
		}
		s = collapsed
	}

	s = strings.TrimSpace(s)
	for strings.HasPrefix(s, ",") {
		s = strings.TrimSpace(strings.TrimPrefix(s, ","))
	}
	for strings.HasSuffix(s, ",") {
		s = strings.TrimSpace(strings.TrimSuffix(s, ","))
	}
	return s
}
