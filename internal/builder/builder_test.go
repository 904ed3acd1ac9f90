package builder

import (
	"testing"

	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScaffold(t *testing.T) domain.Scaffold {
	t.Helper()
	sc := domain.NewScaffold()
	var err error
	sc, err = sc.UpdateSlot(domain.SlotSubject, "a dragon")
	require.NoError(t, err)
	sc, err = sc.UpdateSlot(domain.SlotStyle, "digital art")
	require.NoError(t, err)
	return sc
}

func TestCreatePrompt_RequiresValidScaffold(t *testing.T) {
	_, err := CreatePrompt(domain.NewScaffold(), "raw text")
	assert.ErrorIs(t, err, ErrInvalidScaffold)
}

func TestCreatePrompt_RendersAllTemplates(t *testing.T) {
	p, err := CreatePrompt(validScaffold(t), "a dragon in digital art")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 1, p.Version)
	assert.False(t, p.CreatedAt.IsZero())
	for _, id := range TemplateIDs() {
		output, ok := p.FormattedOutputs[id]
		assert.True(t, ok, "missing output for template %s", id)
		assert.NotEmpty(t, output)
	}
	assert.Equal(t, "a dragon, digital art", p.FormattedOutputs["stable-diffusion"])
}

func TestCreatePrompt_DefensiveScaffoldCopy(t *testing.T) {
	sc := validScaffold(t)
	p, err := CreatePrompt(sc, "raw")
	require.NoError(t, err)

	// Mutating the caller's scaffold must not affect the prompt.
	sc.Slots[0].Content = "mutated"
	slot, _ := p.Scaffold.Slot(domain.SlotSubject)
	assert.Equal(t, "a dragon", slot.Content)
}

func TestCreatePrompt_IncludesValidCustomFormats(t *testing.T) {
	custom := domain.CustomFormat{
		ID:       "cf-1",
		Name:     "Custom",
		Template: "{St} of {S}, {C}, {Co}, {L}, {A}, {Q}",
	}
	invalid := domain.CustomFormat{
		ID:       "cf-2",
		Name:     "Broken",
		Template: "{S} only",
	}

	p, err := CreatePrompt(validScaffold(t), "raw", custom, invalid)
	require.NoError(t, err)

	assert.Equal(t, "digital art of a dragon", p.FormattedOutputs["cf-1"])
	_, ok := p.FormattedOutputs["cf-2"]
	assert.False(t, ok, "invalid custom formats must never render")
}

func TestUpdatePrompt_IncrementsVersionPreservesIdentity(t *testing.T) {
	p, err := CreatePrompt(validScaffold(t), "raw")
	require.NoError(t, err)

	next, err := p.Scaffold.UpdateSlot(domain.SlotLighting, "golden hour")
	require.NoError(t, err)

	updated, err := UpdatePrompt(p, next)
	require.NoError(t, err)

	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, p.RawText, updated.RawText)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt, "CreatedAt reflects first creation")
	assert.Equal(t, p.Version+1, updated.Version)
	assert.Equal(t, "a dragon, digital art, golden hour", updated.FormattedOutputs["stable-diffusion"])

	// Original prompt is untouched.
	assert.Equal(t, 1, p.Version)
	assert.Equal(t, "a dragon, digital art", p.FormattedOutputs["stable-diffusion"])
}

func TestUpdatePrompt_RejectsInvalidScaffold(t *testing.T) {
	p, err := CreatePrompt(validScaffold(t), "raw")
	require.NoError(t, err)

	_, err = UpdatePrompt(p, domain.NewScaffold())
	assert.ErrorIs(t, err, ErrInvalidScaffold)
}

func TestFormatPrompt_UnknownTemplate(t *testing.T) {
	p, err := CreatePrompt(validScaffold(t), "raw")
	require.NoError(t, err)

	_, err = FormatPrompt(p, "no-such-model", "")
	require.Error(t, err)

	var unknown *ErrUnknownTemplate
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "no-such-model", unknown.TemplateID)
}

func TestFormatPrompt_NegativePromptSupport(t *testing.T) {
	p, err := CreatePrompt(validScaffold(t), "raw")
	require.NoError(t, err)

	// stable-diffusion supports negative prompts.
	out, err := FormatPrompt(p, "stable-diffusion", "blurry, low quality")
	require.NoError(t, err)
	assert.Contains(t, out, "Negative prompt: blurry, low quality")

	// midjourney does not; the negative segment is dropped.
	out, err = FormatPrompt(p, "midjourney", "blurry")
	require.NoError(t, err)
	assert.NotContains(t, out, "blurry")
}

func TestTemplateRegistry(t *testing.T) {
	assert.Len(t, Templates(), 5)

	sd, ok := TemplateByID("stable-diffusion")
	require.True(t, ok)
	assert.True(t, sd.SupportsNegative)

	_, ok = TemplateByID("unknown")
	assert.False(t, ok)
}
