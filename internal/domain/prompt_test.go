package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedPrompt_Clone_Independent(t *testing.T) {
	sc := NewScaffold()
	sc, err := sc.UpdateSlot(SlotSubject, "a dragon")
	require.NoError(t, err)

	p := GeneratedPrompt{
		ID:               "p-1",
		Scaffold:         sc,
		RawText:          "a dragon",
		FormattedOutputs: map[string]string{"stable-diffusion": "a dragon"},
		CreatedAt:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Version:          1,
	}

	cp := p.Clone()
	cp.FormattedOutputs["stable-diffusion"] = "changed"
	cp.Scaffold.Slots[0].Content = "changed"

	assert.Equal(t, "a dragon", p.FormattedOutputs["stable-diffusion"])
	assert.Equal(t, "a dragon", p.Scaffold.Slots[0].Content)
}
