package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ideavault/internal/domain"
	"ideavault/internal/domain/models"
	"ideavault/internal/domain/repositories"
)

// PostgresEventRepository implements the EventRepository interface
type PostgresEventRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewEventRepository creates a new event repository
func NewEventRepository(config *RepositoryConfig) repositories.EventRepository {
	return &PostgresEventRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *models.Event) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, title, start_time, end_time, all_day, description, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`, r.tables.Events)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		event.ID,
		event.UserID,
		event.Title,
		event.Start,
		event.End,
		event.AllDay,
		event.Description,
		event.Color,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("user %s: %w", event.UserID, domain.ErrNotFound)
		}
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

// GetByID retrieves an event owned by the given user
func (r *PostgresEventRepository) GetByID(ctx context.Context, id, userID string) (*models.Event, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, start_time, end_time, all_day, description, color, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Events)

	executor := GetExecutor(ctx, r.pool)
	event, err := scanEvent(executor.QueryRow(ctx, query, id, userID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	return event, nil
}

// ListByUser returns all events of a user ordered by start time ascending
func (r *PostgresEventRepository) ListByUser(ctx context.Context, userID string) ([]*models.Event, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, start_time, end_time, all_day, description, color, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY start_time ASC
	`, r.tables.Events)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

// Update persists new field values for an event owned by the given user
func (r *PostgresEventRepository) Update(ctx context.Context, event *models.Event) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $3, start_time = $4, end_time = $5, all_day = $6, description = $7, color = $8, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at
	`, r.tables.Events)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		event.ID,
		event.UserID,
		event.Title,
		event.Start,
		event.End,
		event.AllDay,
		event.Description,
		event.Color,
	).Scan(&event.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("event %s: %w", event.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update event: %w", err)
	}

	return nil
}

// Delete removes an event owned by the given user
func (r *PostgresEventRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE id = $1 AND user_id = $2
	`, r.tables.Events)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.UserID,
		&event.Title,
		&event.Start,
		&event.End,
		&event.AllDay,
		&event.Description,
		&event.Color,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
