package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("conversation not found")
	ErrLeadNotFound = errors.New("lead not found")
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Conversation struct {
	ID        uuid.UUID
	LeadID    uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Content   string
	CreatedAt time.Time
}

const conversationColumns = `id, lead_id, user_id, date, content, created_at`

const (
	listByLeadQuery = `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE lead_id = $1 AND user_id = $2
		ORDER BY date DESC`

	// Inserts go through a SELECT over leads so a conversation can only
	// attach to a lead the same tenant owns.
	createQuery = `
		INSERT INTO conversations (lead_id, user_id, date, content)
		SELECT l.id, l.user_id, $3, $4
		FROM leads l
		WHERE l.id = $1 AND l.user_id = $2 AND l.deleted_at IS NULL
		RETURNING ` + conversationColumns

	getByIDQuery = `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE id = $1 AND user_id = $2`

	updateQuery = `
		UPDATE conversations SET date = $3, content = $4
		WHERE id = $1 AND user_id = $2
		RETURNING ` + conversationColumns

	deleteQuery = `
		DELETE FROM conversations
		WHERE id = $1 AND user_id = $2`
)

func scanConversation(row pgx.Row) (Conversation, error) {
	var conv Conversation
	err := row.Scan(&conv.ID, &conv.LeadID, &conv.UserID, &conv.Date, &conv.Content, &conv.CreatedAt)
	return conv, err
}

func (r *Repository) ListByLead(ctx context.Context, leadID uuid.UUID, userID uuid.UUID) ([]Conversation, error) {
	rows, err := r.pool.Query(ctx, listByLeadQuery, leadID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conversations := make([]Conversation, 0)
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conv)
	}

	return conversations, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (Conversation, error) {
	conv, err := scanConversation(r.pool.QueryRow(ctx, getByIDQuery, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return Conversation{}, ErrNotFound
	}
	return conv, err
}

func (r *Repository) Create(ctx context.Context, leadID uuid.UUID, userID uuid.UUID, date time.Time, content string) (Conversation, error) {
	conv, err := scanConversation(r.pool.QueryRow(ctx, createQuery, leadID, userID, date, content))
	if errors.Is(err, pgx.ErrNoRows) {
		return Conversation{}, ErrLeadNotFound
	}
	return conv, err
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, date time.Time, content string) (Conversation, error) {
	conv, err := scanConversation(r.pool.QueryRow(ctx, updateQuery, id, userID, date, content))
	if errors.Is(err, pgx.ErrNoRows) {
		return Conversation{}, ErrNotFound
	}
	return conv, err
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
