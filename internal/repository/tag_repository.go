package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"post-query-service/internal/domain"
)

// PostgresTagRepository implements TagRepository using PostgreSQL.
type PostgresTagRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTagRepository creates a new PostgresTagRepository.
func NewPostgresTagRepository(pool *pgxpool.Pool) *PostgresTagRepository {
	return &PostgresTagRepository{pool: pool}
}

// FindByIDs returns the tags matching the given ids. Unknown ids are
// silently omitted from the result.
func (r *PostgresTagRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		"SELECT id, name, created_at FROM tags WHERE id = ANY($1) ORDER BY name", ids)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
