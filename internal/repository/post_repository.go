package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"post-query-service/internal/domain"
)

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

const postColumns = `p.id, p.title, p.summary, p.content, p.status, p.is_recommend,
	p.need_password, p.password, p.view_count, p.like_count, p.category_id,
	p.author_id, p.publish_time, p.created_at, p.updated_at`

const joinedColumns = postColumns + `,
	c.id, c.name, c.created_at,
	u.id, u.email, u.name, u.role, u.is_active, u.created_at, u.updated_at`

const joinedFrom = ` FROM posts p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN users u ON u.id = p.author_id`

// publish_time is null for never-published drafts; they sort last.
const pageOrder = ` ORDER BY p.publish_time DESC NULLS LAST, p.created_at DESC`

// Create inserts the post and its tag links in one transaction.
func (r *PostgresPostRepository) Create(ctx context.Context, post *domain.Post) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO posts (id, title, summary, content, status, is_recommend,
			need_password, password, view_count, like_count, category_id,
			author_id, publish_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		post.ID, post.Title, post.Summary, post.Content, post.Status, post.IsRecommend,
		post.NeedPassword, post.Password, post.ViewCount, post.LikeCount, post.CategoryID,
		post.AuthorID, post.PublishTime, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("title %q: %w", post.Title, domain.ErrTitleExists)
		}
		return fmt.Errorf("insert post: %w", err)
	}

	if err := insertTagLinks(ctx, tx, post.ID, post.Tags); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// FindByID returns the post with its category, author and tags, or nil
// when no post has the given id.
func (r *PostgresPostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+joinedColumns+joinedFrom+" WHERE p.id = $1", id)
	post, err := scanJoinedPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}

	posts := []domain.Post{*post}
	if err := r.attachTags(ctx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// FindByTitle returns the post with the given title, or nil when absent.
func (r *PostgresPostRepository) FindByTitle(ctx context.Context, title string) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+postColumns+" FROM posts p WHERE p.title = $1", title)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by title: %w", err)
	}
	return post, nil
}

// FindPage runs the count and page queries over the same predicates.
func (r *PostgresPostRepository) FindPage(ctx context.Context, q PageQuery) ([]domain.Post, int, error) {
	where, args := buildWhere(q)

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM posts p"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	pageSQL := "SELECT " + joinedColumns + joinedFrom + where + pageOrder +
		fmt.Sprintf(" OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	args = append(args, q.Page.Offset(), q.Page.Limit())

	rows, err := r.pool.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query posts page: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		post, err := scanJoinedPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read posts page: %w", err)
	}

	if err := r.attachTags(ctx, posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// FindPublished returns every publish-status post, newest publish first.
func (r *PostgresPostRepository) FindPublished(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+postColumns+" FROM posts p WHERE p.status = $1 ORDER BY p.publish_time DESC",
		domain.StatusPublish,
	)
	if err != nil {
		return nil, fmt.Errorf("query published posts: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// Search matches the keyword against title, summary and content.
func (r *PostgresPostRepository) Search(ctx context.Context, keyword string) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+postColumns+` FROM posts p
		WHERE p.title ILIKE $1 OR p.summary ILIKE $1 OR p.content ILIKE $1`+pageOrder,
		"%"+keyword+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// Update persists the post fields and rewrites its tag links in one
// transaction. Counters are owned by IncrementViews/AdjustLikes and are
// deliberately not written here.
func (r *PostgresPostRepository) Update(ctx context.Context, post *domain.Post) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ct, err := tx.Exec(ctx, `
		UPDATE posts SET title = $2, summary = $3, content = $4, status = $5,
			is_recommend = $6, need_password = $7, password = $8,
			category_id = $9, publish_time = $10, updated_at = $11
		WHERE id = $1`,
		post.ID, post.Title, post.Summary, post.Content, post.Status,
		post.IsRecommend, post.NeedPassword, post.Password,
		post.CategoryID, post.PublishTime, post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("title %q: %w", post.Title, domain.ErrTitleExists)
		}
		return fmt.Errorf("update post: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", post.ID, domain.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM post_tags WHERE post_id = $1", post.ID); err != nil {
		return fmt.Errorf("clear post tags: %w", err)
	}
	if err := insertTagLinks(ctx, tx, post.ID, post.Tags); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Delete removes the post; tag links go with it via ON DELETE CASCADE.
func (r *PostgresPostRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// IncrementViews adds one to the view counter in a single statement, so
// concurrent reads never lose an increment.
func (r *PostgresPostRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE posts SET view_count = view_count + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// AdjustLikes applies delta to the like counter with a floor of zero in
// a single statement and returns the resulting count.
func (r *PostgresPostRepository) AdjustLikes(ctx context.Context, id string, delta int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"UPDATE posts SET like_count = GREATEST(like_count + $2, 0) WHERE id = $1 RETURNING like_count",
		id, delta,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("adjust likes: %w", err)
	}
	return count, nil
}

// buildWhere renders the relation scope and compiled filter as a WHERE
// clause with positional arguments.
func buildWhere(q PageQuery) (string, []any) {
	var parts []string
	var args []any

	if q.CategoryID != "" {
		args = append(args, q.CategoryID)
		parts = append(parts, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if q.TagID != "" {
		args = append(args, q.TagID)
		parts = append(parts, fmt.Sprintf("p.id IN (SELECT post_id FROM post_tags WHERE tag_id = $%d)", len(args)))
	}
	if q.RecommendOnly {
		parts = append(parts, "p.is_recommend")
	}
	if clause, filterArgs := q.Filter.Clause("p", len(args)+1); clause != "" {
		parts = append(parts, clause)
		args = append(args, filterArgs...)
	}

	if len(parts) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

// attachTags loads the tags for every post in the slice with one query.
func (r *PostgresPostRepository) attachTags(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, len(posts))
	byID := make(map[string]*domain.Post, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		byID[posts[i].ID] = &posts[i]
	}

	rows, err := r.pool.Query(ctx, `
		SELECT pt.post_id, t.id, t.name, t.created_at
		FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = ANY($1)
		ORDER BY t.name`, ids)
	if err != nil {
		return fmt.Errorf("query post tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID string
		var tag domain.Tag
		if err := rows.Scan(&postID, &tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
			return fmt.Errorf("scan post tag: %w", err)
		}
		if post, ok := byID[postID]; ok {
			post.Tags = append(post.Tags, tag)
		}
	}
	return rows.Err()
}

func insertTagLinks(ctx context.Context, tx pgx.Tx, postID string, tags []domain.Tag) error {
	for _, tag := range tags {
		if _, err := tx.Exec(ctx,
			"INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)", postID, tag.ID); err != nil {
			return fmt.Errorf("link tag %s: %w", tag.ID, err)
		}
	}
	return nil
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Summary, &p.Content, &p.Status, &p.IsRecommend,
		&p.NeedPassword, &p.Password, &p.ViewCount, &p.LikeCount, &p.CategoryID,
		&p.AuthorID, &p.PublishTime, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanJoinedPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	var cat domain.Category
	var catID, catName *string
	var catCreated *time.Time
	var author domain.Author
	err := row.Scan(
		&p.ID, &p.Title, &p.Summary, &p.Content, &p.Status, &p.IsRecommend,
		&p.NeedPassword, &p.Password, &p.ViewCount, &p.LikeCount, &p.CategoryID,
		&p.AuthorID, &p.PublishTime, &p.CreatedAt, &p.UpdatedAt,
		&catID, &catName, &catCreated,
		&author.ID, &author.Email, &author.Name, &author.Role, &author.Active,
		&author.CreatedAt, &author.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if catID != nil {
		cat.ID = *catID
		cat.Name = *catName
		if catCreated != nil {
			cat.CreatedAt = *catCreated
		}
		p.Category = &cat
	}
	p.Author = &author
	return &p, nil
}

func collectPosts(rows pgx.Rows) ([]domain.Post, error) {
	var posts []domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read posts: %w", err)
	}
	return posts, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
