package service

import (
	"context"

	"post-query-service/internal/domain"
)

// PostPage is one page of posts plus the total count matching the same
// predicates with no paging applied.
type PostPage struct {
	List     []domain.Post `json:"list"`
	Total    int           `json:"total"`
	PageNum  int           `json:"pageNum"`
	PageSize int           `json:"pageSize"`
}

// MonthArchive groups the posts published in one month, newest first.
type MonthArchive struct {
	Month string        `json:"month"`
	Posts []domain.Post `json:"posts"`
}

// YearArchive groups the month archives of one publish year.
type YearArchive struct {
	Year   int            `json:"year"`
	Months []MonthArchive `json:"months"`
}

// PostServiceInterface defines the interface for post operations.
// Used for dependency injection and mocking in tests.
type PostServiceInterface interface {
	// Create creates a post owned by the acting author and returns its id.
	Create(ctx context.Context, authorID string, in PostInput) (string, error)
	// List returns a filtered, paginated page of posts.
	List(ctx context.Context, params map[string]string) (*PostPage, error)
	// ListByCategory scopes List to one category.
	ListByCategory(ctx context.Context, categoryID string, params map[string]string) (*PostPage, error)
	// ListByTag scopes List to posts carrying one tag.
	ListByTag(ctx context.Context, tagID string, params map[string]string) (*PostPage, error)
	// ListRecommended scopes List to recommend-flagged posts.
	ListRecommended(ctx context.Context, params map[string]string) (*PostPage, error)
	// GetByID returns one post and records a view without awaiting it.
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	// Update partially merges fields into an existing post.
	Update(ctx context.Context, id string, in UpdatePostInput) (string, error)
	// Delete removes a post after an existence check.
	Delete(ctx context.Context, id string) error
	// Search matches keyword against title, summary and content.
	Search(ctx context.Context, keyword string) ([]domain.Post, error)
	// GetArchives groups published posts by year and month name.
	GetArchives(ctx context.Context) ([]YearArchive, error)
	// AdjustLikes increments (direction 0) or decrements the like
	// counter, floored at zero, and returns the resulting count.
	AdjustLikes(ctx context.Context, id string, direction int) (int, error)
}
