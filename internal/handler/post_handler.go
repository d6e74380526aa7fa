package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"post-query-service/internal/domain"
	"post-query-service/internal/metrics"
	"post-query-service/internal/query"
	"post-query-service/internal/service"
)

// AuthorIDHeader carries the acting author identity, set by the
// authenticating layer in front of this service.
const AuthorIDHeader = "X-Author-ID"

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	postService service.PostServiceInterface
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostServiceInterface) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest represents the request for creating a post.
type CreatePostRequest struct {
	Title        string   `json:"title" binding:"required"`
	Summary      string   `json:"summary"`
	Content      string   `json:"content" binding:"required"`
	Status       string   `json:"status" binding:"omitempty,oneof=draft publish"`
	CategoryID   string   `json:"category_id"`
	TagIDs       []string `json:"tag_ids"`
	IsRecommend  bool     `json:"is_recommend"`
	NeedPassword bool     `json:"need_password"`
	Password     string   `json:"password"`
}

// UpdatePostRequest represents a partial update; absent fields keep the
// stored value.
type UpdatePostRequest struct {
	Title        *string  `json:"title"`
	Summary      *string  `json:"summary"`
	Content      *string  `json:"content"`
	Status       *string  `json:"status" binding:"omitempty,oneof=draft publish"`
	CategoryID   *string  `json:"category_id"`
	TagIDs       []string `json:"tag_ids"`
	IsRecommend  *bool    `json:"is_recommend"`
	NeedPassword *bool    `json:"need_password"`
	Password     *string  `json:"password"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TagResponse represents a tag in API responses.
type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthorResponse represents an author in API responses.
type AuthorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PostResponse represents a post in API responses. Protected bodies
// arrive already redacted from the service layer.
type PostResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Summary      string            `json:"summary,omitempty"`
	Content      string            `json:"content"`
	Status       string            `json:"status"`
	IsRecommend  bool              `json:"is_recommend"`
	NeedPassword bool              `json:"need_password"`
	ViewCount    int               `json:"view_count"`
	LikeCount    int               `json:"like_count"`
	Category     *CategoryResponse `json:"category,omitempty"`
	Tags         []TagResponse     `json:"tags,omitempty"`
	Author       *AuthorResponse   `json:"author,omitempty"`
	PublishTime  *string           `json:"publish_time,omitempty"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
}

// PostPageResponse represents one page of posts in API responses.
type PostPageResponse struct {
	List     []PostResponse `json:"list"`
	Total    int            `json:"total"`
	PageNum  int            `json:"pageNum"`
	PageSize int            `json:"pageSize"`
}

// toPostResponse converts a domain.Post to a PostResponse.
func toPostResponse(post *domain.Post) PostResponse {
	response := PostResponse{
		ID:           post.ID,
		Title:        post.Title,
		Summary:      post.Summary,
		Content:      post.Content,
		Status:       string(post.Status),
		IsRecommend:  post.IsRecommend,
		NeedPassword: post.NeedPassword,
		ViewCount:    post.ViewCount,
		LikeCount:    post.LikeCount,
		CreatedAt:    post.CreatedAt.Format(TimeFormat),
		UpdatedAt:    post.UpdatedAt.Format(TimeFormat),
	}
	if post.PublishTime != nil {
		publishTime := post.PublishTime.Format(TimeFormat)
		response.PublishTime = &publishTime
	}
	if post.Category != nil {
		response.Category = &CategoryResponse{ID: post.Category.ID, Name: post.Category.Name}
	}
	for _, tag := range post.Tags {
		response.Tags = append(response.Tags, TagResponse{ID: tag.ID, Name: tag.Name})
	}
	if post.Author != nil {
		response.Author = &AuthorResponse{ID: post.Author.ID, Name: post.Author.Name}
	}
	return response
}

func toPostPageResponse(page *service.PostPage) PostPageResponse {
	response := PostPageResponse{
		List:     make([]PostResponse, 0, len(page.List)),
		Total:    page.Total,
		PageNum:  page.PageNum,
		PageSize: page.PageSize,
	}
	for i := range page.List {
		response.List = append(response.List, toPostResponse(&page.List[i]))
	}
	return response
}

// CreatePost handles POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	authorID := c.GetHeader(AuthorIDHeader)
	if _, err := uuid.Parse(authorID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": AuthorIDHeader + " must be a valid UUID"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.postService.Create(c.Request.Context(), authorID, service.PostInput{
		Title:        req.Title,
		Summary:      req.Summary,
		Content:      req.Content,
		Status:       domain.PostStatus(req.Status),
		CategoryID:   req.CategoryID,
		TagIDs:       req.TagIDs,
		IsRecommend:  req.IsRecommend,
		NeedPassword: req.NeedPassword,
		Password:     req.Password,
	})
	metrics.ObserveOperation("create", err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListPosts handles GET /api/v1/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, err := h.postService.List(c.Request.Context(), queryParams(c))
	metrics.ObserveOperation("list", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostPageResponse(page))
}

// ListPostsByCategory handles GET /api/v1/categories/:id/posts
func (h *PostHandler) ListPostsByCategory(c *gin.Context) {
	categoryID, ok := pathID(c)
	if !ok {
		return
	}

	page, err := h.postService.ListByCategory(c.Request.Context(), categoryID, queryParams(c))
	metrics.ObserveOperation("list_by_category", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostPageResponse(page))
}

// ListPostsByTag handles GET /api/v1/tags/:id/posts
func (h *PostHandler) ListPostsByTag(c *gin.Context) {
	tagID, ok := pathID(c)
	if !ok {
		return
	}

	page, err := h.postService.ListByTag(c.Request.Context(), tagID, queryParams(c))
	metrics.ObserveOperation("list_by_tag", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostPageResponse(page))
}

// ListRecommended handles GET /api/v1/posts/recommend
func (h *PostHandler) ListRecommended(c *gin.Context) {
	page, err := h.postService.ListRecommended(c.Request.Context(), queryParams(c))
	metrics.ObserveOperation("list_recommended", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostPageResponse(page))
}

// GetPost handles GET /api/v1/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetByID(c.Request.Context(), id)
	metrics.ObserveOperation("get", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}

// UpdatePost handles PUT /api/v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var status *domain.PostStatus
	if req.Status != nil {
		s := domain.PostStatus(*req.Status)
		status = &s
	}

	updatedID, err := h.postService.Update(c.Request.Context(), id, service.UpdatePostInput{
		Title:        req.Title,
		Summary:      req.Summary,
		Content:      req.Content,
		Status:       status,
		CategoryID:   req.CategoryID,
		TagIDs:       req.TagIDs,
		IsRecommend:  req.IsRecommend,
		NeedPassword: req.NeedPassword,
		Password:     req.Password,
	})
	metrics.ObserveOperation("update", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": updatedID})
}

// DeletePost handles DELETE /api/v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.postService.Delete(c.Request.Context(), id)
	metrics.ObserveOperation("delete", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchPosts handles GET /api/v1/posts/search?keyword=...
func (h *PostHandler) SearchPosts(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword is required"})
		return
	}

	posts, err := h.postService.Search(c.Request.Context(), keyword)
	metrics.ObserveOperation("search", err)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, toPostResponse(&posts[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// GetArchives handles GET /api/v1/posts/archives
func (h *PostHandler) GetArchives(c *gin.Context) {
	archives, err := h.postService.GetArchives(c.Request.Context())
	metrics.ObserveOperation("archives", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, archives)
}

// LikePost handles PUT /api/v1/posts/:id/like?type=0|1
// type 0 increments; anything else decrements.
func (h *PostHandler) LikePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	direction, err := strconv.Atoi(c.DefaultQuery("type", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be an integer"})
		return
	}

	count, err := h.postService.AdjustLikes(c.Request.Context(), id, direction)
	metrics.ObserveOperation("like", err)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"like_count": count})
}

// pathID validates the :id path parameter before it reaches a UUID
// column; a malformed id answers 400 instead of surfacing a cast error.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return "", false
	}
	return id, true
}

// queryParams flattens the request query string into the field-name →
// value mapping the filter compiler consumes.
func queryParams(c *gin.Context) map[string]string {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}

// respondError maps business-rule failures onto HTTP statuses. Storage
// failures fall through as 500s.
func respondError(c *gin.Context, err error) {
	var unknownField *query.UnknownFieldError
	var validationErrs validation.Errors

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTitleExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAuthorNotFound),
		errors.As(err, &unknownField),
		errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
