package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"post-query-service/internal/domain"
	"post-query-service/internal/mocks"
	"post-query-service/internal/query"
	"post-query-service/internal/repository"
	"post-query-service/internal/service"
	"post-query-service/internal/validator"
)

type serviceFixture struct {
	posts      *mocks.MockPostRepository
	categories *mocks.MockCategoryRepository
	tags       *mocks.MockTagRepository
	authors    *mocks.MockAuthorRepository
	recorder   *service.ViewRecorder
	svc        *service.PostService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	f := &serviceFixture{
		posts:      mocks.NewMockPostRepository(t),
		categories: mocks.NewMockCategoryRepository(t),
		tags:       mocks.NewMockTagRepository(t),
		authors:    mocks.NewMockAuthorRepository(t),
	}
	f.recorder = service.NewViewRecorder(f.posts, 1, 16)
	t.Cleanup(f.recorder.Close)

	f.svc = service.NewPostService(f.posts, f.categories, f.tags, f.authors, validator.NewValidator(), f.recorder)
	return f
}

func strPtr(s string) *string { return &s }

func statusPtr(s domain.PostStatus) *domain.PostStatus { return &s }

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	author := &domain.Author{ID: "author-1", Email: "writer@example.com", Name: "Writer", Role: "author", Active: true}

	t.Run("creates draft post", func(t *testing.T) {
		f := newServiceFixture(t)

		f.authors.EXPECT().FindByID(mock.Anything, "author-1").Return(author, nil)
		f.posts.EXPECT().FindByTitle(mock.Anything, "First Post").Return(nil, nil)
		f.tags.EXPECT().FindByIDs(mock.Anything, []string(nil)).Return(nil, nil)

		var created *domain.Post
		f.posts.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Post")).
			Run(func(ctx context.Context, post *domain.Post) { created = post }).
			Return(nil)

		id, err := f.svc.Create(ctx, "author-1", service.PostInput{
			Title:   "First Post",
			Content: "body",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID, id)
		assert.Equal(t, domain.StatusDraft, created.Status)
		assert.Nil(t, created.PublishTime)
		assert.Equal(t, "author-1", created.AuthorID)
		assert.Nil(t, created.CategoryID)
	})

	t.Run("publish at creation stamps publish time", func(t *testing.T) {
		f := newServiceFixture(t)

		f.authors.EXPECT().FindByID(mock.Anything, "author-1").Return(author, nil)
		f.posts.EXPECT().FindByTitle(mock.Anything, "Launch").Return(nil, nil)
		f.tags.EXPECT().FindByIDs(mock.Anything, []string(nil)).Return(nil, nil)

		var created *domain.Post
		f.posts.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Post")).
			Run(func(ctx context.Context, post *domain.Post) { created = post }).
			Return(nil)

		_, err := f.svc.Create(ctx, "author-1", service.PostInput{
			Title:   "Launch",
			Content: "body",
			Status:  domain.StatusPublish,
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, domain.StatusPublish, created.Status)
		require.NotNil(t, created.PublishTime)
		assert.WithinDuration(t, time.Now(), *created.PublishTime, 5*time.Second)
	})

	t.Run("rejects duplicate title", func(t *testing.T) {
		f := newServiceFixture(t)

		f.authors.EXPECT().FindByID(mock.Anything, "author-1").Return(author, nil)
		f.posts.EXPECT().
			FindByTitle(mock.Anything, "Taken").
			Return(&domain.Post{ID: "existing", Title: "Taken"}, nil)

		_, err := f.svc.Create(ctx, "author-1", service.PostInput{Title: "Taken", Content: "body"})

		require.ErrorIs(t, err, domain.ErrTitleExists)
	})

	t.Run("rejects unknown author", func(t *testing.T) {
		f := newServiceFixture(t)

		f.authors.EXPECT().FindByID(mock.Anything, "ghost").Return(nil, nil)

		_, err := f.svc.Create(ctx, "ghost", service.PostInput{Title: "x", Content: "y"})

		require.ErrorIs(t, err, domain.ErrAuthorNotFound)
	})

	t.Run("unknown category leaves post uncategorized", func(t *testing.T) {
		f := newServiceFixture(t)

		f.authors.EXPECT().FindByID(mock.Anything, "author-1").Return(author, nil)
		f.posts.EXPECT().FindByTitle(mock.Anything, "Uncat").Return(nil, nil)
		f.categories.EXPECT().FindByID(mock.Anything, "missing-cat").Return(nil, nil)
		f.tags.EXPECT().FindByIDs(mock.Anything, []string(nil)).Return(nil, nil)

		var created *domain.Post
		f.posts.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Post")).
			Run(func(ctx context.Context, post *domain.Post) { created = post }).
			Return(nil)

		_, err := f.svc.Create(ctx, "author-1", service.PostInput{
			Title:      "Uncat",
			Content:    "body",
			CategoryID: "missing-cat",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Nil(t, created.CategoryID)
	})

	t.Run("protected post without password fails validation", func(t *testing.T) {
		f := newServiceFixture(t)

		f.authors.EXPECT().FindByID(mock.Anything, "author-1").Return(author, nil)
		f.posts.EXPECT().FindByTitle(mock.Anything, "Locked").Return(nil, nil)
		f.tags.EXPECT().FindByIDs(mock.Anything, []string(nil)).Return(nil, nil)

		_, err := f.svc.Create(ctx, "author-1", service.PostInput{
			Title:        "Locked",
			Content:      "body",
			NeedPassword: true,
		})

		require.Error(t, err)
	})
}

func TestPostService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns redacted page with totals", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().
			FindPage(mock.Anything, mock.AnythingOfType("repository.PageQuery")).
			Run(func(ctx context.Context, q repository.PageQuery) {
				assert.Equal(t, 2, q.Page.Num)
				assert.Equal(t, 5, q.Page.Size)
			}).
			Return([]domain.Post{
				{ID: "p1", Title: "open", Content: "visible"},
				{ID: "p2", Title: "locked", Content: "hidden", NeedPassword: true},
			}, 12, nil)

		page, err := f.svc.List(ctx, map[string]string{
			query.ParamPageNum:  "2",
			query.ParamPageSize: "5",
		})

		require.NoError(t, err)
		assert.Equal(t, 12, page.Total)
		assert.Equal(t, 2, page.PageNum)
		assert.Equal(t, 5, page.PageSize)
		require.Len(t, page.List, 2)
		assert.Equal(t, "visible", page.List[0].Content)
		assert.Empty(t, page.List[1].Content)
	})

	t.Run("rejects unknown filter field", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.svc.List(ctx, map[string]string{"view_count": "100"})

		var fieldErr *query.UnknownFieldError
		require.ErrorAs(t, err, &fieldErr)
	})

	t.Run("ListByCategory scopes the query", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().
			FindPage(mock.Anything, mock.AnythingOfType("repository.PageQuery")).
			Run(func(ctx context.Context, q repository.PageQuery) {
				assert.Equal(t, "cat-1", q.CategoryID)
			}).
			Return(nil, 0, nil)

		_, err := f.svc.ListByCategory(ctx, "cat-1", nil)

		require.NoError(t, err)
	})

	t.Run("ListByTag scopes the query", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().
			FindPage(mock.Anything, mock.AnythingOfType("repository.PageQuery")).
			Run(func(ctx context.Context, q repository.PageQuery) {
				assert.Equal(t, "tag-1", q.TagID)
			}).
			Return(nil, 0, nil)

		_, err := f.svc.ListByTag(ctx, "tag-1", nil)

		require.NoError(t, err)
	})

	t.Run("ListRecommended scopes the query", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().
			FindPage(mock.Anything, mock.AnythingOfType("repository.PageQuery")).
			Run(func(ctx context.Context, q repository.PageQuery) {
				assert.True(t, q.RecommendOnly)
			}).
			Return(nil, 0, nil)

		_, err := f.svc.ListRecommended(ctx, nil)

		require.NoError(t, err)
	})
}

func TestPostService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns redacted post and records a view", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().
			FindByID(mock.Anything, "post-1").
			Return(&domain.Post{ID: "post-1", Title: "locked", Content: "hidden", NeedPassword: true}, nil)

		recorded := make(chan struct{})
		f.posts.EXPECT().
			IncrementViews(mock.Anything, "post-1").
			Run(func(ctx context.Context, id string) { close(recorded) }).
			Return(nil)

		post, err := f.svc.GetByID(ctx, "post-1")

		require.NoError(t, err)
		assert.Empty(t, post.Content)

		select {
		case <-recorded:
		case <-time.After(2 * time.Second):
			t.Fatal("view record was never persisted")
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().FindByID(mock.Anything, "missing").Return(nil, nil)

		_, err := f.svc.GetByID(ctx, "missing")

		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()

	stored := func() *domain.Post {
		return &domain.Post{
			ID:       "post-1",
			Title:    "Original",
			Content:  "body",
			Status:   domain.StatusDraft,
			AuthorID: "author-1",
		}
	}

	t.Run("merges only the supplied fields", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().FindByID(mock.Anything, "post-1").Return(stored(), nil)

		var updated *domain.Post
		f.posts.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Post")).
			Run(func(ctx context.Context, post *domain.Post) { updated = post }).
			Return(nil)

		id, err := f.svc.Update(ctx, "post-1", service.UpdatePostInput{
			Summary: strPtr("new summary"),
		})

		require.NoError(t, err)
		assert.Equal(t, "post-1", id)
		require.NotNil(t, updated)
		assert.Equal(t, "Original", updated.Title)
		assert.Equal(t, "new summary", updated.Summary)
		assert.Equal(t, domain.StatusDraft, updated.Status)
	})

	t.Run("transition into publish stamps publish time", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().FindByID(mock.Anything, "post-1").Return(stored(), nil)

		var updated *domain.Post
		f.posts.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Post")).
			Run(func(ctx context.Context, post *domain.Post) { updated = post }).
			Return(nil)

		_, err := f.svc.Update(ctx, "post-1", service.UpdatePostInput{
			Status: statusPtr(domain.StatusPublish),
		})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, domain.StatusPublish, updated.Status)
		require.NotNil(t, updated.PublishTime)
	})

	t.Run("re-publish keeps the original publish time", func(t *testing.T) {
		f := newServiceFixture(t)

		firstPublish := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
		post := stored()
		post.Status = domain.StatusPublish
		post.PublishTime = &firstPublish

		f.posts.EXPECT().FindByID(mock.Anything, "post-1").Return(post, nil)

		var updated *domain.Post
		f.posts.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.Post")).
			Run(func(ctx context.Context, post *domain.Post) { updated = post }).
			Return(nil)

		_, err := f.svc.Update(ctx, "post-1", service.UpdatePostInput{
			Status: statusPtr(domain.StatusPublish),
			Title:  strPtr("Renamed"),
		})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, firstPublish, *updated.PublishTime)
	})

	t.Run("not found performs no write", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().FindByID(mock.Anything, "missing").Return(nil, nil)

		_, err := f.svc.Update(ctx, "missing", service.UpdatePostInput{Title: strPtr("x")})

		require.ErrorIs(t, err, domain.ErrNotFound)
		f.posts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing post", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().FindByID(mock.Anything, "post-1").Return(&domain.Post{ID: "post-1"}, nil)
		f.posts.EXPECT().Delete(mock.Anything, "post-1").Return(nil)

		err := f.svc.Delete(ctx, "post-1")

		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().FindByID(mock.Anything, "missing").Return(nil, nil)

		err := f.svc.Delete(ctx, "missing")

		require.ErrorIs(t, err, domain.ErrNotFound)
		f.posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestPostService_Search(t *testing.T) {
	ctx := context.Background()

	f := newServiceFixture(t)

	f.posts.EXPECT().
		Search(mock.Anything, "go").
		Return([]domain.Post{
			{ID: "p1", Content: "going concern"},
			{ID: "p2", Content: "secret", NeedPassword: true},
		}, nil)

	posts, err := f.svc.Search(ctx, "go")

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "going concern", posts[0].Content)
	assert.Empty(t, posts[1].Content)
}

func TestPostService_AdjustLikes(t *testing.T) {
	ctx := context.Background()

	t.Run("direction zero increments", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().AdjustLikes(mock.Anything, "post-1", 1).Return(4, nil)

		count, err := f.svc.AdjustLikes(ctx, "post-1", 0)

		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("any other direction decrements", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().AdjustLikes(mock.Anything, "post-1", -1).Return(0, nil)

		count, err := f.svc.AdjustLikes(ctx, "post-1", 1)

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("unknown post", func(t *testing.T) {
		f := newServiceFixture(t)

		f.posts.EXPECT().AdjustLikes(mock.Anything, "missing", 1).Return(0, domain.ErrNotFound)

		_, err := f.svc.AdjustLikes(ctx, "missing", 0)

		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
