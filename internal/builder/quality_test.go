package builder

import (
	"testing"

	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptFromSlots(t *testing.T, contents map[domain.SlotKey]string) domain.GeneratedPrompt {
	t.Helper()
	sc := domain.NewScaffold()
	var err error
	for key, content := range contents {
		sc, err = sc.UpdateSlot(key, content)
		require.NoError(t, err)
	}
	return domain.GeneratedPrompt{ID: "p-1", Scaffold: sc, Version: 1}
}

func TestCalculateQuality_BlankSlotsScoreZero(t *testing.T) {
	p := promptFromSlots(t, nil)
	report := CalculateQuality(p)

	assert.Zero(t, report.Score)
	for key, score := range report.SlotScores {
		assert.Zero(t, score, "slot %s", key)
	}
	// One recommendation per blank slot.
	assert.Len(t, report.Recommendations, 7)
}

func TestCalculateQuality_PerSlotScoring(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"single word", "dragon", 50},
		{"two words", "red dragon", 50},
		{"three words", "big red dragon", 70},
		{"five words", "a big red fire dragon", 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := promptFromSlots(t, map[domain.SlotKey]string{domain.SlotSubject: tt.content})
			report := CalculateQuality(p)
			assert.Equal(t, tt.want, report.SlotScores[domain.SlotSubject])
		})
	}
}

func TestCalculateQuality_QualityKeywordBonus(t *testing.T) {
	p := promptFromSlots(t, map[domain.SlotKey]string{
		domain.SlotQuality: "8k masterpiece with sharp focus rendering",
	})
	report := CalculateQuality(p)

	// 50 base + 20 (wc>2) + 20 (wc>4) + 10 keyword = 100
	assert.Equal(t, 100, report.SlotScores[domain.SlotQuality])
}

func TestCalculateQuality_FullyRichPromptScores100(t *testing.T) {
	rich := map[domain.SlotKey]string{}
	for _, key := range domain.SlotOrder {
		rich[key] = "highly detailed professional award winning masterpiece rendering"
	}
	report := CalculateQuality(promptFromSlots(t, rich))

	assert.Equal(t, 100, report.Score)
	assert.Empty(t, report.Recommendations)
}

func TestCalculateQuality_MeanIsUnweighted(t *testing.T) {
	p := promptFromSlots(t, map[domain.SlotKey]string{
		domain.SlotSubject: "dragon", // 50
	})
	report := CalculateQuality(p)

	assert.Equal(t, 50/7, report.Score)
	assert.Len(t, report.Recommendations, 6)
}
