package service

import (
	"context"
	"testing"

	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/kravitexx/promptforge/internal/format"
	"github.com/kravitexx/promptforge/internal/repository"
	"github.com/kravitexx/promptforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type promptFixture struct {
	prompts PromptService
	formats FormatService
}

func newPromptFixture(t *testing.T) promptFixture {
	db := testutil.NewTestDB(t)
	formatRepo := repository.NewSQLiteFormatRepo(db)
	promptRepo := repository.NewSQLitePromptRepo(db)
	return promptFixture{
		prompts: NewPromptService(promptRepo, formatRepo),
		formats: NewFormatService(formatRepo),
	}
}

func buildScaffold(t *testing.T, contents map[domain.SlotKey]string) domain.Scaffold {
	t.Helper()
	sc := domain.NewScaffold()
	var err error
	for key, content := range contents {
		sc, err = sc.UpdateSlot(key, content)
		require.NoError(t, err)
	}
	return sc
}

func TestPromptService_BuildAndGet(t *testing.T) {
	fx := newPromptFixture(t)
	ctx := context.Background()

	sc := buildScaffold(t, map[domain.SlotKey]string{
		domain.SlotSubject: "a dragon",
		domain.SlotStyle:   "digital art",
	})

	built, err := fx.prompts.Build(ctx, sc, "a dragon, digital art")
	require.NoError(t, err)
	assert.Equal(t, 1, built.Version)
	assert.NotEmpty(t, built.FormattedOutputs["stable-diffusion"])

	fetched, err := fx.prompts.Get(ctx, built.ID)
	require.NoError(t, err)
	assert.Equal(t, built.ID, fetched.ID)
	assert.Equal(t, "a dragon, digital art", fetched.RawText)
}

func TestPromptService_BuildRejectsInvalidScaffold(t *testing.T) {
	fx := newPromptFixture(t)
	ctx := context.Background()

	// Style missing: required.
	sc := buildScaffold(t, map[domain.SlotKey]string{
		domain.SlotSubject: "a dragon",
	})

	_, err := fx.prompts.Build(ctx, sc, "a dragon")
	assert.Error(t, err)
}

func TestPromptService_BuildIncludesStoredCustomFormats(t *testing.T) {
	fx := newPromptFixture(t)
	ctx := context.Background()

	custom, err := fx.formats.Save(ctx, "Mine", format.DefaultTemplate)
	require.NoError(t, err)

	sc := buildScaffold(t, map[domain.SlotKey]string{
		domain.SlotSubject: "a dragon",
		domain.SlotStyle:   "digital art",
	})
	built, err := fx.prompts.Build(ctx, sc, "")
	require.NoError(t, err)

	assert.Contains(t, built.FormattedOutputs, custom.ID)
	assert.Equal(t, "a dragon, digital art", built.FormattedOutputs[custom.ID])
}

func TestPromptService_FormatOnDemand(t *testing.T) {
	fx := newPromptFixture(t)
	ctx := context.Background()

	sc := buildScaffold(t, map[domain.SlotKey]string{
		domain.SlotSubject: "a dragon",
		domain.SlotStyle:   "digital art",
	})
	built, err := fx.prompts.Build(ctx, sc, "")
	require.NoError(t, err)

	out, err := fx.prompts.Format(ctx, built.ID, "stable-diffusion", "blurry")
	require.NoError(t, err)
	assert.Contains(t, out, "a dragon, digital art")
	assert.Contains(t, out, "Negative prompt: blurry")

	_, err = fx.prompts.Format(ctx, built.ID, "no-such-model", "")
	assert.Error(t, err)
}

func TestPromptService_QualityAndAnalyze(t *testing.T) {
	fx := newPromptFixture(t)
	ctx := context.Background()

	sc := buildScaffold(t, map[domain.SlotKey]string{
		domain.SlotSubject: "a dragon",
		domain.SlotStyle:   "digital art",
	})
	built, err := fx.prompts.Build(ctx, sc, "")
	require.NoError(t, err)

	report, err := fx.prompts.Quality(ctx, built.ID)
	require.NoError(t, err)
	assert.Greater(t, report.Score, 0)
	assert.NotEmpty(t, report.Recommendations)

	analysis, err := fx.prompts.Analyze(ctx, built.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, analysis.EmptySlots)
	assert.NotEmpty(t, analysis.Questions)
}

func TestPromptService_ApplyPersistsNewVersion(t *testing.T) {
	fx := newPromptFixture(t)
	ctx := context.Background()

	sc := buildScaffold(t, map[domain.SlotKey]string{
		domain.SlotSubject: "a dragon",
		domain.SlotStyle:   "digital art",
	})
	built, err := fx.prompts.Build(ctx, sc, "")
	require.NoError(t, err)

	next, err := fx.prompts.Apply(ctx, built.ID, []domain.QuestionAnswer{
		{QuestionID: "lighting-source", Answer: "Golden hour"},
		{QuestionID: "technical-negative", Answer: "blurry, watermark"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, next.Version)
	assert.Equal(t, "blurry, watermark", next.NegativePrompt)

	lighting, _ := next.Scaffold.Slot(domain.SlotLighting)
	assert.Equal(t, "Golden hour", lighting.Content)

	versions, err := fx.prompts.Versions(ctx, built.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, built.CreatedAt.Unix(), versions[1].CreatedAt.Unix())
}

func TestPromptService_Feedback(t *testing.T) {
	fx := newPromptFixture(t)
	ctx := context.Background()

	sc := buildScaffold(t, map[domain.SlotKey]string{
		domain.SlotSubject: "red dragon",
		domain.SlotStyle:   "digital art",
	})
	built, err := fx.prompts.Build(ctx, sc, "")
	require.NoError(t, err)

	report, err := fx.prompts.Feedback(ctx, built.ID, "a crimson dragon in digital art style")
	require.NoError(t, err)
	require.NotEmpty(t, report.Comparisons)
	assert.Greater(t, report.Alignment.OverallScore, 0)
}

func TestPromptService_List(t *testing.T) {
	fx := newPromptFixture(t)
	ctx := context.Background()

	sc := buildScaffold(t, map[domain.SlotKey]string{
		domain.SlotSubject: "a dragon",
		domain.SlotStyle:   "digital art",
	})

	first, err := fx.prompts.Build(ctx, sc, "first")
	require.NoError(t, err)
	_, err = fx.prompts.Build(ctx, sc, "second")
	require.NoError(t, err)

	_, err = fx.prompts.Apply(ctx, first.ID, []domain.QuestionAnswer{
		{QuestionID: "lighting-source", Answer: "Moonlight"},
	})
	require.NoError(t, err)

	list, err := fx.prompts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
