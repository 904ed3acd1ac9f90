package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kravitexx/promptforge/internal/db"
	"github.com/kravitexx/promptforge/internal/domain"
)

// formatColumns is the canonical SELECT column list for custom_formats.
const formatColumns = `id, name, template, valid, slots, created_at`

// SQLiteFormatRepo implements FormatRepo using a SQLite database.
type SQLiteFormatRepo struct {
	db db.DBTX
}

// NewSQLiteFormatRepo creates a new SQLiteFormatRepo.
func NewSQLiteFormatRepo(conn db.DBTX) *SQLiteFormatRepo {
	return &SQLiteFormatRepo{db: conn}
}

func (r *SQLiteFormatRepo) Create(ctx context.Context, f *domain.CustomFormat) error {
	slots, err := marshalSlots(f.Slots)
	if err != nil {
		return err
	}
	query := `INSERT INTO custom_formats (id, name, template, valid, slots, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		f.ID,
		f.Name,
		f.Template,
		boolToInt(f.Valid),
		slots,
		timeToString(f.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting custom format: %w", err)
	}
	return nil
}

func (r *SQLiteFormatRepo) GetByID(ctx context.Context, id string) (*domain.CustomFormat, error) {
	query := `SELECT ` + formatColumns + ` FROM custom_formats WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteFormatRepo) GetByName(ctx context.Context, name string) (*domain.CustomFormat, error) {
	query := `SELECT ` + formatColumns + ` FROM custom_formats WHERE name = ? ORDER BY created_at LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteFormatRepo) List(ctx context.Context) ([]*domain.CustomFormat, error) {
	query := `SELECT ` + formatColumns + ` FROM custom_formats ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing custom formats: %w", err)
	}
	defer rows.Close()

	var formats []*domain.CustomFormat
	for rows.Next() {
		f, err := scanFormat(rows)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating custom formats: %w", err)
	}
	return formats, nil
}

func (r *SQLiteFormatRepo) Update(ctx context.Context, f *domain.CustomFormat) error {
	slots, err := marshalSlots(f.Slots)
	if err != nil {
		return err
	}
	query := `UPDATE custom_formats SET name = ?, template = ?, valid = ?, slots = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		f.Name,
		f.Template,
		boolToInt(f.Valid),
		slots,
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating custom format: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating custom format: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("custom format %s: %w", f.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteFormatRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM custom_formats WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting custom format: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting custom format: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("custom format %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteFormatRepo) scanOne(row *sql.Row) (*domain.CustomFormat, error) {
	f, err := scanFormat(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("custom format: %w", ErrNotFound)
	}
	return f, err
}

func scanFormat(row rowScanner) (*domain.CustomFormat, error) {
	var f domain.CustomFormat
	var valid int
	var slots, createdAt string
	err := row.Scan(&f.ID, &f.Name, &f.Template, &valid, &slots, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning custom format: %w", err)
	}
	f.Valid = intToBool(valid)
	f.Slots, err = unmarshalSlots(slots)
	if err != nil {
		return nil, err
	}
	f.CreatedAt = parseTime(createdAt)
	return &f, nil
}
