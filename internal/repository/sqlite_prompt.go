package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kravitexx/promptforge/internal/db"
	"github.com/kravitexx/promptforge/internal/domain"
)

// promptColumns is the canonical SELECT column list for prompts.
const promptColumns = `id, version, scaffold, raw_text, outputs,
		negative_prompt, source_model, created_at`

// SQLitePromptRepo implements PromptRepo using a SQLite database.
// Every prompt version is its own row; rows are never updated.
type SQLitePromptRepo struct {
	db db.DBTX
}

// NewSQLitePromptRepo creates a new SQLitePromptRepo.
func NewSQLitePromptRepo(conn db.DBTX) *SQLitePromptRepo {
	return &SQLitePromptRepo{db: conn}
}

func (r *SQLitePromptRepo) Create(ctx context.Context, p *domain.GeneratedPrompt) error {
	scaffold, err := marshalScaffold(p.Scaffold)
	if err != nil {
		return err
	}
	outputs, err := marshalOutputs(p.FormattedOutputs)
	if err != nil {
		return err
	}
	query := `INSERT INTO prompts (id, version, scaffold, raw_text, outputs,
		negative_prompt, source_model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Version,
		scaffold,
		p.RawText,
		outputs,
		p.NegativePrompt,
		p.SourceModel,
		timeToString(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting prompt version: %w", err)
	}
	return nil
}

func (r *SQLitePromptRepo) GetLatest(ctx context.Context, id string) (*domain.GeneratedPrompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts WHERE id = ?
		ORDER BY version DESC LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLitePromptRepo) GetVersion(ctx context.Context, id string, version int) (*domain.GeneratedPrompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts WHERE id = ? AND version = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id, version))
}

func (r *SQLitePromptRepo) ListVersions(ctx context.Context, id string) ([]*domain.GeneratedPrompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts WHERE id = ? ORDER BY version`
	return r.list(ctx, query, id)
}

func (r *SQLitePromptRepo) ListLatest(ctx context.Context) ([]*domain.GeneratedPrompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts
		WHERE (id, version) IN (SELECT id, MAX(version) FROM prompts GROUP BY id)
		ORDER BY created_at, id`
	return r.list(ctx, query)
}

func (r *SQLitePromptRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM prompts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting prompt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting prompt: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("prompt %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLitePromptRepo) list(ctx context.Context, query string, args ...any) ([]*domain.GeneratedPrompt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}
	defer rows.Close()

	var prompts []*domain.GeneratedPrompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prompts: %w", err)
	}
	return prompts, nil
}

func (r *SQLitePromptRepo) scanOne(row *sql.Row) (*domain.GeneratedPrompt, error) {
	p, err := scanPrompt(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("prompt: %w", ErrNotFound)
	}
	return p, err
}

func scanPrompt(row rowScanner) (*domain.GeneratedPrompt, error) {
	var p domain.GeneratedPrompt
	var scaffold, outputs, createdAt string
	err := row.Scan(
		&p.ID,
		&p.Version,
		&scaffold,
		&p.RawText,
		&outputs,
		&p.NegativePrompt,
		&p.SourceModel,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning prompt: %w", err)
	}
	p.Scaffold, err = unmarshalScaffold(scaffold)
	if err != nil {
		return nil, err
	}
	p.FormattedOutputs, err = unmarshalOutputs(outputs)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = parseTime(createdAt)
	return &p, nil
}
