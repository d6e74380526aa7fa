package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"post-query-service/internal/domain"
	"post-query-service/internal/logger"
	"post-query-service/internal/query"
	"post-query-service/internal/repository"
	"post-query-service/internal/validator"
)

// PostInput carries the caller-supplied fields for creating a post.
type PostInput struct {
	Title        string
	Summary      string
	Content      string
	Status       domain.PostStatus
	CategoryID   string
	TagIDs       []string
	IsRecommend  bool
	NeedPassword bool
	Password     string
}

// UpdatePostInput carries a partial merge for an existing post. Nil
// fields keep the stored value; TagIDs nil keeps the stored tag set.
type UpdatePostInput struct {
	Title        *string
	Summary      *string
	Content      *string
	Status       *domain.PostStatus
	CategoryID   *string
	TagIDs       []string
	IsRecommend  *bool
	NeedPassword *bool
	Password     *string
}

// PostService orchestrates post querying, aggregation and mutation.
type PostService struct {
	posts      repository.PostRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	authors    repository.AuthorRepository
	validator  *validator.Validator
	recorder   *ViewRecorder
}

// NewPostService creates a new PostService. The recorder handles
// fire-and-forget view counting and may be shared with other services.
func NewPostService(
	posts repository.PostRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	authors repository.AuthorRepository,
	v *validator.Validator,
	recorder *ViewRecorder,
) *PostService {
	return &PostService{
		posts:      posts,
		categories: categories,
		tags:       tags,
		authors:    authors,
		validator:  v,
		recorder:   recorder,
	}
}

// Create creates a post owned by authorID. A publish-status post gets
// its publish time stamped at creation.
func (s *PostService) Create(ctx context.Context, authorID string, in PostInput) (string, error) {
	author, err := s.authors.FindByID(ctx, authorID)
	if err != nil {
		return "", fmt.Errorf("resolve author: %w", err)
	}
	if author == nil {
		return "", fmt.Errorf("author %s: %w", authorID, domain.ErrAuthorNotFound)
	}

	existing, err := s.posts.FindByTitle(ctx, in.Title)
	if err != nil {
		return "", fmt.Errorf("check title: %w", err)
	}
	if existing != nil {
		return "", fmt.Errorf("title %q: %w", in.Title, domain.ErrTitleExists)
	}

	categoryID, err := s.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return "", err
	}
	tags, err := s.tags.FindByIDs(ctx, in.TagIDs)
	if err != nil {
		return "", fmt.Errorf("resolve tags: %w", err)
	}

	now := time.Now()
	post := &domain.Post{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Summary:      in.Summary,
		Content:      in.Content,
		Status:       in.Status,
		IsRecommend:  in.IsRecommend,
		NeedPassword: in.NeedPassword,
		Password:     in.Password,
		CategoryID:   categoryID,
		Tags:         tags,
		AuthorID:     author.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if post.Status == "" {
		post.Status = domain.StatusDraft
	}
	if post.Status == domain.StatusPublish {
		post.PublishTime = &now
	}

	if err := s.validator.ValidatePost(post); err != nil {
		return "", err
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return "", err
	}

	logger.InfoContext(ctx, "Post created",
		slog.String("post_id", post.ID),
		slog.String("status", string(post.Status)))
	return post.ID, nil
}

// List returns a filtered, paginated, redacted page of posts.
func (s *PostService) List(ctx context.Context, params map[string]string) (*PostPage, error) {
	return s.listPage(ctx, params, repository.PageQuery{})
}

// ListByCategory scopes List to one category.
func (s *PostService) ListByCategory(ctx context.Context, categoryID string, params map[string]string) (*PostPage, error) {
	return s.listPage(ctx, params, repository.PageQuery{CategoryID: categoryID})
}

// ListByTag scopes List to posts carrying one tag.
func (s *PostService) ListByTag(ctx context.Context, tagID string, params map[string]string) (*PostPage, error) {
	return s.listPage(ctx, params, repository.PageQuery{TagID: tagID})
}

// ListRecommended scopes List to recommend-flagged posts.
func (s *PostService) ListRecommended(ctx context.Context, params map[string]string) (*PostPage, error) {
	return s.listPage(ctx, params, repository.PageQuery{RecommendOnly: true})
}

func (s *PostService) listPage(ctx context.Context, params map[string]string, scope repository.PageQuery) (*PostPage, error) {
	filter, err := query.Compile(params)
	if err != nil {
		return nil, err
	}

	scope.Filter = filter
	scope.Page = query.ParsePage(params)

	posts, total, err := s.posts.FindPage(ctx, scope)
	if err != nil {
		return nil, err
	}
	domain.RedactAll(posts)

	return &PostPage{
		List:     posts,
		Total:    total,
		PageNum:  scope.Page.Num,
		PageSize: scope.Page.Size,
	}, nil
}

// GetByID returns one redacted post. The view record is enqueued and
// never awaited; the response may outrun the persisted increment.
func (s *PostService) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	s.recorder.Record(id)

	post.Redact()
	return post, nil
}

// Update merges the given fields into an existing post. The publish
// time is re-stamped only on a transition into publish status.
func (s *PostService) Update(ctx context.Context, id string, in UpdatePostInput) (string, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if post == nil {
		return "", fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Summary != nil {
		post.Summary = *in.Summary
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.IsRecommend != nil {
		post.IsRecommend = *in.IsRecommend
	}
	if in.NeedPassword != nil {
		post.NeedPassword = *in.NeedPassword
	}
	if in.Password != nil {
		post.Password = *in.Password
	}

	if in.Status != nil {
		status := *in.Status
		if status == "" {
			status = domain.StatusDraft
		}
		if status == domain.StatusPublish && post.Status != domain.StatusPublish {
			now := time.Now()
			post.PublishTime = &now
		}
		post.Status = status
	}

	if in.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, *in.CategoryID)
		if err != nil {
			return "", err
		}
		post.CategoryID = categoryID
		post.Category = nil
	}
	if in.TagIDs != nil {
		tags, err := s.tags.FindByIDs(ctx, in.TagIDs)
		if err != nil {
			return "", fmt.Errorf("resolve tags: %w", err)
		}
		post.Tags = tags
	}

	post.UpdatedAt = time.Now()
	if err := s.validator.ValidatePost(post); err != nil {
		return "", err
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return "", err
	}
	return post.ID, nil
}

// Delete removes a post after an existence check.
func (s *PostService) Delete(ctx context.Context, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return s.posts.Delete(ctx, id)
}

// Search matches keyword against title, summary and content, redacting
// protected bodies like every other read path.
func (s *PostService) Search(ctx context.Context, keyword string) ([]domain.Post, error) {
	posts, err := s.posts.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	domain.RedactAll(posts)
	return posts, nil
}

// AdjustLikes increments (direction 0) or decrements the like counter.
func (s *PostService) AdjustLikes(ctx context.Context, id string, direction int) (int, error) {
	delta := -1
	if direction == 0 {
		delta = 1
	}
	return s.posts.AdjustLikes(ctx, id, delta)
}

// resolveCategory maps an optional category id to a verified reference.
// An empty id or an id that does not resolve leaves the post
// uncategorized.
func (s *PostService) resolveCategory(ctx context.Context, id string) (*string, error) {
	if id == "" {
		return nil, nil
	}
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve category: %w", err)
	}
	if category == nil {
		logger.WarnContext(ctx, "Unknown category, leaving post uncategorized",
			slog.String("category_id", id))
		return nil, nil
	}
	return &category.ID, nil
}
