package repository

import (
	"context"
	"errors"

	"github.com/kravitexx/promptforge/internal/domain"
)

// ErrNotFound signals that a requested record does not exist.
var ErrNotFound = errors.New("not found")

type FormatRepo interface {
	Create(ctx context.Context, f *domain.CustomFormat) error
	GetByID(ctx context.Context, id string) (*domain.CustomFormat, error)
	GetByName(ctx context.Context, name string) (*domain.CustomFormat, error)
	List(ctx context.Context) ([]*domain.CustomFormat, error)
	Update(ctx context.Context, f *domain.CustomFormat) error
	Delete(ctx context.Context, id string) error
}

type PromptRepo interface {
	Create(ctx context.Context, p *domain.GeneratedPrompt) error
	GetLatest(ctx context.Context, id string) (*domain.GeneratedPrompt, error)
	GetVersion(ctx context.Context, id string, version int) (*domain.GeneratedPrompt, error)
	ListVersions(ctx context.Context, id string) ([]*domain.GeneratedPrompt, error)
	ListLatest(ctx context.Context) ([]*domain.GeneratedPrompt, error)
	Delete(ctx context.Context, id string) error
}
