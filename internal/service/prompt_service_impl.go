package service

import (
	"context"
	"time"

	"github.com/kravitexx/promptforge/internal/analysis"
	"github.com/kravitexx/promptforge/internal/builder"
	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/kravitexx/promptforge/internal/matching"
	"github.com/kravitexx/promptforge/internal/repository"
)

type promptService struct {
	prompts  repository.PromptRepo
	formats  repository.FormatRepo
	engine   *matching.Engine
	analyzer *analysis.Analyzer
	observer UseCaseObserver
}

func NewPromptService(
	prompts repository.PromptRepo,
	formats repository.FormatRepo,
	observers ...UseCaseObserver,
) PromptService {
	return &promptService{
		prompts:  prompts,
		formats:  formats,
		engine:   matching.NewEngine(nil),
		analyzer: analysis.NewAnalyzer(nil),
		observer: useCaseObserverOrNoop(observers),
	}
}

// Build constructs a version-1 prompt from the scaffold, rendering
// outputs for every builtin template and every stored custom format,
// then persists it.
func (s *promptService) Build(ctx context.Context, sc domain.Scaffold, rawText string) (p *domain.GeneratedPrompt, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "prompt-build", startedAt, err, nil)
	}()

	built, err := builder.CreatePrompt(sc, rawText, s.storedFormats(ctx)...)
	if err != nil {
		return nil, err
	}
	if err = s.prompts.Create(ctx, &built); err != nil {
		return nil, err
	}
	return &built, nil
}

func (s *promptService) Get(ctx context.Context, id string) (*domain.GeneratedPrompt, error) {
	return s.prompts.GetLatest(ctx, id)
}

func (s *promptService) GetVersion(ctx context.Context, id string, version int) (*domain.GeneratedPrompt, error) {
	return s.prompts.GetVersion(ctx, id, version)
}

func (s *promptService) Versions(ctx context.Context, id string) ([]*domain.GeneratedPrompt, error) {
	return s.prompts.ListVersions(ctx, id)
}

func (s *promptService) List(ctx context.Context) ([]*domain.GeneratedPrompt, error) {
	return s.prompts.ListLatest(ctx)
}

// Format renders the latest version for one model template on demand.
// An empty negativePrompt falls back to the prompt's stored one.
func (s *promptService) Format(ctx context.Context, id, templateID, negativePrompt string) (string, error) {
	p, err := s.prompts.GetLatest(ctx, id)
	if err != nil {
		return "", err
	}
	if negativePrompt == "" {
		negativePrompt = p.NegativePrompt
	}
	return builder.FormatPrompt(*p, templateID, negativePrompt)
}

func (s *promptService) Quality(ctx context.Context, id string) (builder.QualityReport, error) {
	p, err := s.prompts.GetLatest(ctx, id)
	if err != nil {
		return builder.QualityReport{}, err
	}
	return builder.CalculateQuality(*p), nil
}

func (s *promptService) Analyze(ctx context.Context, id string) (analysis.ImprovementAnalysis, error) {
	p, err := s.prompts.GetLatest(ctx, id)
	if err != nil {
		return analysis.ImprovementAnalysis{}, err
	}
	return s.analyzer.AnalyzeForImprovement(*p), nil
}

// Apply folds clarifying-question answers into the latest version and
// persists the result as the next version.
func (s *promptService) Apply(ctx context.Context, id string, answers []domain.QuestionAnswer) (next *domain.GeneratedPrompt, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "prompt-apply", startedAt, err,
			map[string]any{"prompt_id": id, "answers": len(answers)})
	}()

	p, err := s.prompts.GetLatest(ctx, id)
	if err != nil {
		return nil, err
	}

	applied := analysis.ApplyAnswers(p.Scaffold, answers)
	updated, err := builder.UpdatePrompt(*p, applied.Scaffold, s.storedFormats(ctx)...)
	if err != nil {
		return nil, err
	}
	if applied.NegativePrompt != "" {
		if updated.NegativePrompt == "" {
			updated.NegativePrompt = applied.NegativePrompt
		} else {
			updated.NegativePrompt += ", " + applied.NegativePrompt
		}
	}

	if err = s.prompts.Create(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Feedback compares a generated-image description against the prompt
// scaffold and aggregates the comparisons into an alignment report.
func (s *promptService) Feedback(ctx context.Context, id, description string) (*FeedbackReport, error) {
	p, err := s.prompts.GetLatest(ctx, id)
	if err != nil {
		return nil, err
	}

	comparisons := s.engine.CompareScaffold(p.Scaffold, description)
	return &FeedbackReport{
		Comparisons: comparisons,
		Alignment:   matching.AnalyzeAlignment(comparisons),
	}, nil
}

func (s *promptService) Delete(ctx context.Context, id string) error {
	return s.prompts.Delete(ctx, id)
}

// storedFormats loads custom formats for rendering. An unreadable
// store degrades to builtin-only rendering.
func (s *promptService) storedFormats(ctx context.Context) []domain.CustomFormat {
	stored, err := s.formats.List(ctx)
	if err != nil {
		return nil
	}
	formats := make([]domain.CustomFormat, 0, len(stored))
	for _, f := range stored {
		formats = append(formats, *f)
	}
	return formats
}
