package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTokens_SplitsOnSeparators(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"commas", "dragon, castle, sunset", []string{"dragon", "castle", "sunset"}},
		{"semicolons", "dragon; castle; sunset", []string{"dragon", "castle", "sunset"}},
		{"pipes", "dragon | castle", []string{"dragon", "castle"}},
		{"ampersands", "dragon & castle", []string{"dragon", "castle"}},
		{"plus signs", "dragon + castle", []string{"dragon", "castle"}},
		{"whitespace", "majestic golden dragon", []string{"majestic", "golden", "dragon"}},
		{"mixed", "dragon, castle; sunset | mist & fog + rain", []string{"dragon", "castle", "sunset", "mist", "fog", "rain"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTokens(tt.content))
		})
	}
}

func TestExtractTokens_DropsShortTokensAndStopWords(t *testing.T) {
	tokens := ExtractTokens("a very big dragon in the mist")
	assert.Equal(t, []string{"big", "dragon", "mist"}, tokens)
}

func TestExtractTokens_Lowercases(t *testing.T) {
	tokens := ExtractTokens("Golden Dragon")
	assert.Equal(t, []string{"golden", "dragon"}, tokens)
}

func TestExtractTokens_FallbackToWholeContent(t *testing.T) {
	// Everything filtered out: fall back to the whole trimmed content.
	tokens := ExtractTokens("  a an it ")
	require.Len(t, tokens, 1)
	assert.Equal(t, "a an it", tokens[0])
}

func TestExtractTokens_EmptyInput(t *testing.T) {
	assert.Nil(t, ExtractTokens(""))
	assert.Nil(t, ExtractTokens("   "))
}
