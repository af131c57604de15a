package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("lead not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Lead struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Name             string
	Email            string
	Phone            string
	Status           string
	Source           string
	Notes            *string
	PropertyInterest *string
	Budget           *float64
	Location         *string
	CreatedAt        time.Time
	LastContact      time.Time
	NextFollowup     time.Time
	DeletedAt        *time.Time
	OptinStatus      bool
	OptinViewedAt    *time.Time
}

const leadColumns = `id, user_id, name, email, phone, status, source, notes,
	property_interest, budget, location, created_at, last_contact,
	next_followup, deleted_at, optin_status, optin_viewed_at`

// Every query filters by user_id at the SQL level so a caller can never
// read or mutate another tenant's record, even under a logic bug elsewhere.
const (
	getAllQuery = `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	getDeletedQuery = `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE user_id = $1 AND deleted_at IS NOT NULL
		ORDER BY deleted_at DESC`

	getByIDQuery = `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE id = $1 AND user_id = $2`

	softDeleteQuery = `
		UPDATE leads SET status = 'deleted', deleted_at = now()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		RETURNING ` + leadColumns

	restoreQuery = `
		UPDATE leads SET status = 'new', deleted_at = NULL
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NOT NULL
		RETURNING ` + leadColumns

	permanentDeleteQuery = `
		DELETE FROM leads
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NOT NULL`
)

func scanLead(row pgx.Row) (Lead, error) {
	var lead Lead
	err := row.Scan(
		&lead.ID, &lead.UserID, &lead.Name, &lead.Email, &lead.Phone,
		&lead.Status, &lead.Source, &lead.Notes, &lead.PropertyInterest,
		&lead.Budget, &lead.Location, &lead.CreatedAt, &lead.LastContact,
		&lead.NextFollowup, &lead.DeletedAt, &lead.OptinStatus, &lead.OptinViewedAt,
	)
	return lead, err
}

func (r *Repository) queryLeads(ctx context.Context, query string, userID uuid.UUID) ([]Lead, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return leads, nil
}

// GetAll returns the tenant's active leads, newest first.
func (r *Repository) GetAll(ctx context.Context, userID uuid.UUID) ([]Lead, error) {
	return r.queryLeads(ctx, getAllQuery, userID)
}

// GetDeleted returns the tenant's soft-deleted leads, most recently deleted first.
func (r *Repository) GetDeleted(ctx context.Context, userID uuid.UUID) ([]Lead, error) {
	return r.queryLeads(ctx, getDeletedQuery, userID)
}

// GetByID returns a lead regardless of soft-delete state. Callers inspect
// DeletedAt to distinguish active from trashed leads.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, getByIDQuery, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

type CreateLeadParams struct {
	UserID           uuid.UUID
	Name             string
	Email            string
	Phone            string
	Status           string
	Source           string
	Notes            *string
	PropertyInterest *string
	Budget           *float64
	Location         *string
	LastContact      time.Time
	NextFollowup     time.Time
	OptinStatus      bool
}

func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	return scanLead(r.pool.QueryRow(ctx, `
		INSERT INTO leads (
			user_id, name, email, phone, status, source, notes,
			property_interest, budget, location, last_contact, next_followup, optin_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+leadColumns,
		params.UserID, params.Name, params.Email, params.Phone, params.Status,
		params.Source, params.Notes, params.PropertyInterest, params.Budget,
		params.Location, params.LastContact, params.NextFollowup, params.OptinStatus,
	))
}

type UpdateLeadParams struct {
	Name             *string
	Email            *string
	Phone            *string
	Status           *string
	Source           *string
	Notes            *string
	PropertyInterest *string
	Budget           *float64
	Location         *string
	LastContact      *time.Time
	NextFollowup     *time.Time
	OptinStatus      *bool
	OptinViewedAt    *time.Time
}

// Update applies a partial mutation to an active lead. created_at is never
// part of the SET clause, so it stays immutable after creation.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, params UpdateLeadParams) (Lead, error) {
	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	fields := []struct {
		enabled bool
		column  string
		value   interface{}
	}{
		{params.Name != nil, "name", derefString(params.Name)},
		{params.Email != nil, "email", derefString(params.Email)},
		{params.Phone != nil, "phone", derefString(params.Phone)},
		{params.Status != nil, "status", derefString(params.Status)},
		{params.Source != nil, "source", derefString(params.Source)},
		{params.Notes != nil, "notes", params.Notes},
		{params.PropertyInterest != nil, "property_interest", params.PropertyInterest},
		{params.Budget != nil, "budget", params.Budget},
		{params.Location != nil, "location", params.Location},
		{params.LastContact != nil, "last_contact", params.LastContact},
		{params.NextFollowup != nil, "next_followup", params.NextFollowup},
		{params.OptinStatus != nil, "optin_status", params.OptinStatus},
		{params.OptinViewedAt != nil, "optin_viewed_at", params.OptinViewedAt},
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
		lead, err := r.GetByID(ctx, id, userID)
		if err != nil {
			return Lead{}, err
		}
		if lead.DeletedAt != nil {
			return Lead{}, ErrNotFound
		}
		return lead, nil
	}

	args = append(args, id, userID)

	query := fmt.Sprintf(`
		UPDATE leads SET %s
		WHERE id = $%d AND user_id = $%d AND deleted_at IS NULL
		RETURNING %s
	`, strings.Join(setClauses, ", "), argIdx, argIdx+1, leadColumns)

	lead, err := scanLead(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

// SoftDelete marks an active lead as deleted. Status and deleted_at change
// together in one conditional statement, so concurrent deletes cannot
// interleave with the existence check.
func (r *Repository) SoftDelete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, softDeleteQuery, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

// Restore moves a soft-deleted lead back to the active set. The status
// always resets to 'new' regardless of what it was before deletion.
func (r *Repository) Restore(ctx context.Context, id uuid.UUID, userID uuid.UUID) (Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, restoreQuery, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

// PermanentDelete physically removes a lead that has already been
// soft-deleted. Active leads never match the statement.
func (r *Repository) PermanentDelete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result, err := r.pool.Exec(ctx, permanentDeleteQuery, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
