package repository

import (
	"context"

	"post-query-service/internal/domain"
	"post-query-service/internal/query"
)

// PageQuery describes one paginated post listing: the compiled filter,
// the requested page, and an optional relation scope.
type PageQuery struct {
	Filter        query.Filter
	Page          query.Page
	CategoryID    string
	TagID         string
	RecommendOnly bool
}

// PostRepository defines methods for post data access.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindByTitle(ctx context.Context, title string) (*domain.Post, error)
	// FindPage returns one page of posts plus the total count matching
	// the same predicates with no limit applied.
	FindPage(ctx context.Context, q PageQuery) ([]domain.Post, int, error)
	// FindPublished returns all publish-status posts ordered by publish
	// time descending.
	FindPublished(ctx context.Context) ([]domain.Post, error)
	// Search matches keyword against title, summary and content.
	Search(ctx context.Context, keyword string) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	// IncrementViews atomically adds one to the post's view counter.
	IncrementViews(ctx context.Context, id string) error
	// AdjustLikes atomically adds delta to the post's like counter,
	// clamped at zero, and returns the resulting count.
	AdjustLikes(ctx context.Context, id string, delta int) (int, error)
}

// CategoryRepository defines methods for category lookup.
type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Category, error)
}

// TagRepository defines methods for tag lookup.
type TagRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.Tag, error)
}

// AuthorRepository defines methods for author lookup.
type AuthorRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Author, error)
}
