package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kravitexx/promptforge/internal/domain"
	"github.com/kravitexx/promptforge/internal/format"
	"github.com/kravitexx/promptforge/internal/repository"
)

// ErrInvalidTemplate signals a Save attempt with a template that fails
// validation. The full validation result rides along for presentation.
type ErrInvalidTemplate struct {
	Result format.ValidationResult
}

func (e *ErrInvalidTemplate) Error() string {
	return fmt.Sprintf("invalid template: %s", strings.Join(e.Result.Errors, "; "))
}

type formatService struct {
	formats  repository.FormatRepo
	observer UseCaseObserver
}

func NewFormatService(formats repository.FormatRepo, observers ...UseCaseObserver) FormatService {
	return &formatService{
		formats:  formats,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *formatService) Save(ctx context.Context, name, template string) (*domain.CustomFormat, error) {
	validation := format.Validate(template)
	if !validation.IsValid {
		return nil, &ErrInvalidTemplate{Result: validation}
	}
	return s.persist(ctx, name, template, true)
}

// SaveDraft persists a template even when it fails validation, flagged
// invalid so it never renders until fixed.
func (s *formatService) SaveDraft(ctx context.Context, name, template string) (*domain.CustomFormat, error) {
	validation := format.Validate(template)
	return s.persist(ctx, name, template, validation.IsValid)
}

func (s *formatService) persist(ctx context.Context, name, template string, valid bool) (f *domain.CustomFormat, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "format-save", startedAt, err, map[string]any{"name": name, "valid": valid})
	}()

	f = &domain.CustomFormat{
		ID:        uuid.New().String(),
		Name:      name,
		Template:  template,
		Valid:     valid,
		Slots:     format.SlotsIn(template),
		CreatedAt: time.Now().UTC(),
	}
	if err = s.formats.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Get resolves by ID first, then by exact name.
func (s *formatService) Get(ctx context.Context, idOrName string) (*domain.CustomFormat, error) {
	f, err := s.formats.GetByID(ctx, idOrName)
	if err == nil {
		return f, nil
	}
	return s.formats.GetByName(ctx, idOrName)
}

// List degrades to an empty list when the store is unreadable.
func (s *formatService) List(ctx context.Context) ([]*domain.CustomFormat, error) {
	formats, err := s.formats.List(ctx)
	if err != nil {
		return []*domain.CustomFormat{}, nil
	}
	return formats, nil
}

func (s *formatService) Delete(ctx context.Context, id string) error {
	return s.formats.Delete(ctx, id)
}

func (s *formatService) Export(ctx context.Context) ([]byte, error) {
	stored, err := s.formats.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("exporting formats: %w", err)
	}
	formats := make([]domain.CustomFormat, 0, len(stored))
	for _, f := range stored {
		formats = append(formats, *f)
	}
	return format.ExportFormats(formats)
}

// Import parses, re-validates, and persists every valid element. The
// returned result reflects per-element outcomes even when some fail.
func (s *formatService) Import(ctx context.Context, data []byte) (result format.ImportResult, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "format-import", startedAt, err,
			map[string]any{"imported": result.Imported, "rejected": len(result.Errors)})
	}()

	result, err = format.ImportFormats(data)
	if err != nil {
		return format.ImportResult{}, err
	}

	for i := range result.Formats {
		f := &result.Formats[i]
		if f.ID == "" {
			f.ID = uuid.New().String()
		}
		if f.CreatedAt.IsZero() {
			f.CreatedAt = time.Now().UTC()
		}
		if err = s.formats.Create(ctx, f); err != nil {
			return format.ImportResult{}, fmt.Errorf("persisting imported format %q: %w", f.Name, err)
		}
	}
	return result, nil
}

// Stats recomputes validity for every stored format. A broken store
// yields zeroed stats rather than an error.
func (s *formatService) Stats(ctx context.Context) (FormatStats, error) {
	formats, err := s.formats.List(ctx)
	if err != nil {
		return FormatStats{}, nil
	}

	stats := FormatStats{TotalFormats: len(formats)}
	for _, f := range formats {
		if format.Validate(f.Template).IsValid {
			stats.ValidFormats++
		} else {
			stats.InvalidFormats++
		}
	}
	return stats, nil
}
