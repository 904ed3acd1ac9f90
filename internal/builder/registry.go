package builder

// ModelTemplate is a built-in rendering format for one external
// image-generation system. Templates are read-only registry data.
type ModelTemplate struct {
	ID               string
	Name             string
	Template         string
	NegativeTemplate string
	Parameters       map[string]string
	SupportsNegative bool
}

// builtinTemplates is the static registry of model formats, in display
// order. IDs are stable; formatted-output maps key on them.
var builtinTemplates = []ModelTemplate{
	{
		ID:               "stable-diffusion",
		Name:             "Stable Diffusion",
		Template:         "{S}, {C}, {St}, {Co}, {L}, {A}, {Q}",
		NegativeTemplate: "Negative prompt: %s",
		Parameters:       map[string]string{"steps": "30", "cfg_scale": "7"},
		SupportsNegative: true,
	},
	{
		ID:         "midjourney",
		Name:       "Midjourney",
		Template:   "{S}, {C}, {St}, {Co}, {L}, {A} --q 2 --v 6",
		Parameters: map[string]string{"version": "6"},
	},
	{
		ID:       "dall-e",
		Name:     "DALL-E",
		Template: "{S} in {C}, {St} style, {Co}, {L}, {A}, {Q}",
	},
	{
		ID:               "flux",
		Name:             "Flux",
		Template:         "{S}, {C}, {St}, {Co}, {L}, {A}, {Q}",
		NegativeTemplate: "Avoid: %s",
		SupportsNegative: true,
	},
	{
		ID:       "leonardo",
		Name:     "Leonardo AI",
		Template: "{St} of {S}, {C}, {Co}, {L}, {A}, {Q}",
		Parameters: map[string]string{
			"alchemy": "true",
		},
	},
}

// templateIndex maps template IDs to registry entries.
var templateIndex = buildTemplateIndex()

func buildTemplateIndex() map[string]ModelTemplate {
	index := make(map[string]ModelTemplate, len(builtinTemplates))
	for _, t := range builtinTemplates {
		index[t.ID] = t
	}
	return index
}

// Templates returns the built-in model templates in display order. The
// returned slice is a copy; registry data is immutable.
func Templates() []ModelTemplate {
	out := make([]ModelTemplate, len(builtinTemplates))
	copy(out, builtinTemplates)
	return out
}

// TemplateByID looks up a registered model template.
func TemplateByID(id string) (ModelTemplate, bool) {
	t, ok := templateIndex[id]
	return t, ok
}

// TemplateIDs returns the registered template IDs in display order.
func TemplateIDs() []string {
	ids := make([]string, 0, len(builtinTemplates))
	for _, t := range builtinTemplates {
		ids = append(ids, t.ID)
	}
	return ids
}
