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

// PostgresIdeaRepository implements the IdeaRepository interface
type PostgresIdeaRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewIdeaRepository creates a new idea repository
func NewIdeaRepository(config *RepositoryConfig) repositories.IdeaRepository {
	return &PostgresIdeaRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new idea
func (r *PostgresIdeaRepository) Create(ctx context.Context, idea *models.Idea) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, title, status, tags, content, platform_content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`, r.tables.Ideas)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		idea.ID,
		idea.UserID,
		idea.Title,
		idea.Status,
		idea.Tags,
		idea.Content,
		nullableJSON(idea.PlatformContent),
	).Scan(&idea.ID, &idea.CreatedAt, &idea.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("user %s: %w", idea.UserID, domain.ErrNotFound)
		}
		return fmt.Errorf("create idea: %w", err)
	}

	return nil
}

// GetByID retrieves an idea owned by the given user
func (r *PostgresIdeaRepository) GetByID(ctx context.Context, id, userID string) (*models.Idea, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, status, tags, content, platform_content, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Ideas)

	executor := GetExecutor(ctx, r.pool)
	idea, err := scanIdea(executor.QueryRow(ctx, query, id, userID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("idea %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get idea: %w", err)
	}

	return idea, nil
}

// ListByUser returns all ideas of a user, most recently updated first
func (r *PostgresIdeaRepository) ListByUser(ctx context.Context, userID string) ([]*models.Idea, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, status, tags, content, platform_content, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, r.tables.Ideas)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()

	return collectIdeas(rows)
}

// Search returns the user's ideas matching the term by title substring
// (case-insensitive) or exact tag
func (r *PostgresIdeaRepository) Search(ctx context.Context, userID, term string) ([]*models.Idea, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, status, tags, content, platform_content, created_at, updated_at
		FROM %s
		WHERE user_id = $1 AND (title ILIKE '%%' || $2 || '%%' OR $2 = ANY(tags))
		ORDER BY updated_at DESC
	`, r.tables.Ideas)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID, term)
	if err != nil {
		return nil, fmt.Errorf("search ideas: %w", err)
	}
	defer rows.Close()

	return collectIdeas(rows)
}

// Update persists new field values for an idea owned by the given user
func (r *PostgresIdeaRepository) Update(ctx context.Context, idea *models.Idea) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $3, status = $4, tags = $5, content = $6, platform_content = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at
	`, r.tables.Ideas)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		idea.ID,
		idea.UserID,
		idea.Title,
		idea.Status,
		idea.Tags,
		idea.Content,
		nullableJSON(idea.PlatformContent),
	).Scan(&idea.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("idea %s: %w", idea.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update idea: %w", err)
	}

	return nil
}

// Delete removes an idea owned by the given user
func (r *PostgresIdeaRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE id = $1 AND user_id = $2
	`, r.tables.Ideas)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("idea %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanIdea(row pgx.Row) (*models.Idea, error) {
	var idea models.Idea
	err := row.Scan(
		&idea.ID,
		&idea.UserID,
		&idea.Title,
		&idea.Status,
		&idea.Tags,
		&idea.Content,
		&idea.PlatformContent,
		&idea.CreatedAt,
		&idea.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

func collectIdeas(rows pgx.Rows) ([]*models.Idea, error) {
	ideas := make([]*models.Idea, 0)
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ideas: %w", err)
	}
	return ideas, nil
}

// nullableJSON maps an empty raw payload to SQL NULL so the jsonb column
// stays NULL instead of holding the string "null".
func nullableJSON(raw []byte) interface{} {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}
