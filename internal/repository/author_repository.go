package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"post-query-service/internal/domain"
)

// PostgresAuthorRepository implements AuthorRepository using PostgreSQL.
type PostgresAuthorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuthorRepository creates a new PostgresAuthorRepository.
func NewPostgresAuthorRepository(pool *pgxpool.Pool) *PostgresAuthorRepository {
	return &PostgresAuthorRepository{pool: pool}
}

// FindByID returns the author, or nil when absent.
func (r *PostgresAuthorRepository) FindByID(ctx context.Context, id string) (*domain.Author, error) {
	var a domain.Author
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, name, role, is_active, created_at, updated_at
		FROM users WHERE id = $1`, id,
	).Scan(&a.ID, &a.Email, &a.Name, &a.Role, &a.Active, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query author: %w", err)
	}
	return &a, nil
}
