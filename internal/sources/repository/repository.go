package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound      = errors.New("lead source not found")
	ErrDuplicateName = errors.New("a lead source with this name already exists")
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Source struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Icon      string
	Color     string
	IsActive  bool
	CreatedAt time.Time
}

const sourceColumns = `id, user_id, name, icon, color, is_active, created_at`

const (
	listQuery = `
		SELECT ` + sourceColumns + `
		FROM lead_sources
		WHERE user_id = $1
		ORDER BY name ASC`

	listActiveQuery = `
		SELECT ` + sourceColumns + `
		FROM lead_sources
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY name ASC`

	getByNameQuery = `
		SELECT ` + sourceColumns + `
		FROM lead_sources
		WHERE user_id = $1 AND lower(name) = lower($2)`

	deleteQuery = `
		DELETE FROM lead_sources
		WHERE id = $1 AND user_id = $2`
)

func scanSource(row pgx.Row) (Source, error) {
	var src Source
	err := row.Scan(&src.ID, &src.UserID, &src.Name, &src.Icon, &src.Color, &src.IsActive, &src.CreatedAt)
	return src, err
}

func (r *Repository) List(ctx context.Context, userID uuid.UUID) ([]Source, error) {
	return r.querySources(ctx, listQuery, userID)
}

func (r *Repository) ListActive(ctx context.Context, userID uuid.UUID) ([]Source, error) {
	return r.querySources(ctx, listActiveQuery, userID)
}

func (r *Repository) querySources(ctx context.Context, query string, userID uuid.UUID) ([]Source, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sources := make([]Source, 0)
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	return sources, rows.Err()
}

// GetByName matches case-insensitively; source names are unique per tenant
// regardless of casing.
func (r *Repository) GetByName(ctx context.Context, userID uuid.UUID, name string) (Source, error) {
	src, err := scanSource(r.pool.QueryRow(ctx, getByNameQuery, userID, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return Source{}, ErrNotFound
	}
	return src, err
}

type CreateSourceParams struct {
	UserID   uuid.UUID
	Name     string
	Icon     string
	Color    string
	IsActive bool
}

func (r *Repository) Create(ctx context.Context, params CreateSourceParams) (Source, error) {
	src, err := scanSource(r.pool.QueryRow(ctx, `
		INSERT INTO lead_sources (user_id, name, icon, color, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+sourceColumns,
		params.UserID, params.Name, params.Icon, params.Color, params.IsActive,
	))
	if isUniqueViolation(err) {
		return Source{}, ErrDuplicateName
	}
	return src, err
}

type UpdateSourceParams struct {
	Name     *string
	Icon     *string
	Color    *string
	IsActive *bool
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, params UpdateSourceParams) (Source, error) {
	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	fields := []struct {
		enabled bool
		column  string
		value   interface{}
	}{
		{params.Name != nil, "name", params.Name},
		{params.Icon != nil, "icon", params.Icon},
		{params.Color != nil, "color", params.Color},
		{params.IsActive != nil, "is_active", params.IsActive},
	}

	for _, field := range fields {
		if !field.enabled {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field.column, argIdx))
		args = append(args, field.value)
		argIdx++
	}

	if len(setClauses) == 0 {
		src, err := scanSource(r.pool.QueryRow(ctx, `
			SELECT `+sourceColumns+`
			FROM lead_sources
			WHERE id = $1 AND user_id = $2`, id, userID))
		if errors.Is(err, pgx.ErrNoRows) {
			return Source{}, ErrNotFound
		}
		return src, err
	}

	args = append(args, id, userID)

	query := fmt.Sprintf(`
		UPDATE lead_sources SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argIdx, argIdx+1, sourceColumns)

	src, err := scanSource(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Source{}, ErrNotFound
	}
	if isUniqueViolation(err) {
		return Source{}, ErrDuplicateName
	}
	return src, err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result, err := r.pool.Exec(ctx, deleteQuery, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
