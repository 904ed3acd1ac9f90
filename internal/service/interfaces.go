package service

import (
	"context"

	"github.com/kravitexx/promptforge/internal/analysis"
	"github.com/kravitexx/promptforge/internal/builder"
	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/kravitexx/promptforge/internal/format"
	"github.com/kravitexx/promptforge/internal/matching"
)

// FormatStats summarizes the stored custom formats. Validity is
// recomputed per format, not read from the stored flag.
type FormatStats struct {
	TotalFormats   int
	ValidFormats   int
	InvalidFormats int
}

type FormatService interface {
	Save(ctx context.Context, name, template string) (*domain.CustomFormat, error)
	SaveDraft(ctx context.Context, name, template string) (*domain.CustomFormat, error)
	Get(ctx context.Context, idOrName string) (*domain.CustomFormat, error)
	List(ctx context.Context) ([]*domain.CustomFormat, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (format.ImportResult, error)
	Stats(ctx context.Context) (FormatStats, error)
}

// FeedbackReport pairs per-token comparisons with the aggregate
// alignment report for one generated-image description.
type FeedbackReport struct {
	Comparisons []matching.TokenComparison
	Alignment   matching.AlignmentReport
}

type PromptService interface {
	Build(ctx context.Context, sc domain.Scaffold, rawText string) (*domain.GeneratedPrompt, error)
	Get(ctx context.Context, id string) (*domain.GeneratedPrompt, error)
	GetVersion(ctx context.Context, id string, version int) (*domain.GeneratedPrompt, error)
	Versions(ctx context.Context, id string) ([]*domain.GeneratedPrompt, error)
	List(ctx context.Context) ([]*domain.GeneratedPrompt, error)
	Format(ctx context.Context, id, templateID, negativePrompt string) (string, error)
	Quality(ctx context.Context, id string) (builder.QualityReport, error)
	Analyze(ctx context.Context, id string) (analysis.ImprovementAnalysis, error)
	Apply(ctx context.Context, id string, answers []domain.QuestionAnswer) (*domain.GeneratedPrompt, error)
	Feedback(ctx context.Context, id, description string) (*FeedbackReport, error)
	Delete(ctx context.Context, id string) error
}
