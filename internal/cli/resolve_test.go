package cli

import (
	"context"
	"testing"

	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/kravitexx/promptforge/internal/format"
	"github.com/kravitexx/promptforge/internal/repository"
	"github.com/kravitexx/promptforge/internal/service"
	"github.com/kravitexx/promptforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	formatRepo := repository.NewSQLiteFormatRepo(db)
	promptRepo := repository.NewSQLitePromptRepo(db)
	return &App{
		Prompts: service.NewPromptService(promptRepo, formatRepo),
		Formats: service.NewFormatService(formatRepo),
	}
}

func buildTestPrompt(t *testing.T, app *App) *domain.GeneratedPrompt {
	t.Helper()
	sc := domain.NewScaffold()
	sc, err := sc.UpdateSlot(domain.SlotSubject, "a dragon")
	require.NoError(t, err)
	sc, err = sc.UpdateSlot(domain.SlotStyle, "digital art")
	require.NoError(t, err)

	p, err := app.Prompts.Build(context.Background(), sc, "")
	require.NoError(t, err)
	return p
}

func TestResolvePromptID_ExactAndPrefix(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	p := buildTestPrompt(t, app)

	id, err := resolvePromptID(ctx, app, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, id)

	id, err = resolvePromptID(ctx, app, p.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, p.ID, id)

	_, err = resolvePromptID(ctx, app, "zzzz")
	assert.Error(t, err)
}

func TestResolveFormat_NameAndFuzzy(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	saved, err := app.Formats.Save(ctx, "Midjourney Portrait", format.DefaultTemplate)
	require.NoError(t, err)

	// Case-insensitive exact name.
	f, err := resolveFormat(ctx, app, "midjourney portrait")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, f.ID)

	// Fuzzy match on a partial name.
	f, err = resolveFormat(ctx, app, "mjport")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, f.ID)

	_, err = resolveFormat(ctx, app, "xq9")
	assert.Error(t, err)
}

func TestResolveModelTemplate(t *testing.T) {
	tmpl, err := resolveModelTemplate("Stable Diffusion")
	require.NoError(t, err)
	assert.Equal(t, "stable-diffusion", tmpl.ID)

	tmpl, err = resolveModelTemplate("FLUX")
	require.NoError(t, err)
	assert.Equal(t, "flux", tmpl.ID)

	// Fuzzy.
	tmpl, err = resolveModelTemplate("midj")
	require.NoError(t, err)
	assert.Equal(t, "midjourney", tmpl.ID)

	_, err = resolveModelTemplate("qqq")
	assert.Error(t, err)
}
