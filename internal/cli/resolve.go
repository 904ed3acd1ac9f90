package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/kravitexx/promptforge/internal/builder"
	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/sahilm/fuzzy"
)

// resolvePromptID resolves a prompt identifier: exact UUID, then UUID
// prefix. Prefixes must be unambiguous.
func resolvePromptID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("prompt ID is required")
	}

	prompts, err := app.Prompts.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range prompts {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range prompts {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("prompt not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("prompt ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveFormat resolves a custom format by ID, exact name
// (case-insensitive), ID prefix, then fuzzy name match.
func resolveFormat(ctx context.Context, app *App, input string) (*domain.CustomFormat, error) {
	if input == "" {
		return nil, fmt.Errorf("format ID or name is required")
	}

	formats, err := app.Formats.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, f := range formats {
		if f.ID == input || strings.EqualFold(f.Name, input) {
			return f, nil
		}
	}

	var prefixed []*domain.CustomFormat
	for _, f := range formats {
		if strings.HasPrefix(f.ID, input) {
			prefixed = append(prefixed, f)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0], nil
	}
	if len(prefixed) > 1 {
		return nil, fmt.Errorf("format ID prefix %q is ambiguous (%d matches)", input, len(prefixed))
	}

	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.Name
	}
	if fuzzed := fuzzy.Find(input, names); len(fuzzed) > 0 {
		return formats[fuzzed[0].Index], nil
	}

	return nil, fmt.Errorf("format not found: %q", input)
}

// resolveModelTemplate resolves a model template by ID or name
// (case-insensitive), then fuzzy match over IDs and names.
func resolveModelTemplate(input string) (builder.ModelTemplate, error) {
	if input == "" {
		return builder.ModelTemplate{}, fmt.Errorf("model template is required")
	}

	templates := builder.Templates()
	for _, t := range templates {
		if strings.EqualFold(t.ID, input) || strings.EqualFold(t.Name, input) {
			return t, nil
		}
	}

	labels := make([]string, len(templates))
	for i, t := range templates {
		labels[i] = t.ID + " " + t.Name
	}
	if fuzzed := fuzzy.Find(input, labels); len(fuzzed) > 0 {
		return templates[fuzzed[0].Index], nil
	}

	return builder.ModelTemplate{}, fmt.Errorf("model template not found: %q (known: %s)",
		input, strings.Join(builder.TemplateIDs(), ", "))
}
