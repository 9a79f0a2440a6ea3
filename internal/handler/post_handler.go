package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/domain"
	"blog-cms/internal/logger"
	"blog-cms/internal/middleware"
	"blog-cms/internal/service"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	postService service.PostServiceInterface
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostServiceInterface) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// PostResponse represents a post in the API response.
type PostResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Content         string   `json:"content"`
	Excerpt         string   `json:"excerpt"`
	Author          string   `json:"author"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	FeaturedImage   string   `json:"featured_image,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
	MetaKeywords    string   `json:"meta_keywords,omitempty"`
	Status          string   `json:"status"`
	Views           int64    `json:"views"`
	ReadingTime     int      `json:"reading_time"`
	PublishedAt     *string  `json:"published_at"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// toPostResponse converts a domain.Post to a PostResponse.
func toPostResponse(post *domain.Post) PostResponse {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	response := PostResponse{
		ID:              post.ID,
		Title:           post.Title,
		Slug:            post.Slug,
		Content:         post.Content,
		Excerpt:         post.Excerpt,
		Author:          post.Author,
		Category:        post.Category,
		Tags:            tags,
		FeaturedImage:   post.FeaturedImage,
		MetaDescription: post.MetaDescription,
		MetaKeywords:    post.MetaKeywords,
		Status:          post.Status,
		Views:           post.Views,
		ReadingTime:     post.ReadingTime,
		CreatedAt:       post.CreatedAt.Format(TimeFormat),
		UpdatedAt:       post.UpdatedAt.Format(TimeFormat),
	}
	if post.PublishedAt != nil {
		publishedAt := post.PublishedAt.Format(TimeFormat)
		response.PublishedAt = &publishedAt
	}
	return response
}

// respondError maps domain errors to HTTP statuses and writes the error
// envelope.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		message = "resource not found"
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
		message = "resource already exists"
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "unauthorized"
	default:
		logger.ErrorContext(c.Request.Context(), "request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
	}

	c.JSON(status, gin.H{"success": false, "error": message})
}

// CreatePost handles POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input domain.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"post":    toPostResponse(post),
	})
}

// GetPost handles GET /api/posts/:idOrSlug
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post":    toPostResponse(post),
	})
}

// ListPosts handles GET /api/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	filter := domain.PostFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	if filter.Status != "" && !domain.IsValidStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "status must be one of: draft, published, archived"})
		return
	}

	page := parseIntQuery(c, "page", 1)
	perPage := parseIntQuery(c, "per_page", 0)

	posts, pagination, err := h.postService.ListPosts(c.Request.Context(), filter, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, toPostResponse(&posts[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"posts":      responses,
		"pagination": pagination,
	})
}

// UpdatePost handles PUT /api/posts/:idOrSlug
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var patch domain.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), c.Param("idOrSlug"), &patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post":    toPostResponse(post),
	})
}

// DeletePost handles DELETE /api/posts/:idOrSlug
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.DeletePost(c.Request.Context(), c.Param("idOrSlug")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "post deleted",
	})
}

// ListCategories handles GET /api/categories
func (h *PostHandler) ListCategories(c *gin.Context) {
	categories, err := h.postService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

// GetStats handles GET /api/stats
func (h *PostHandler) GetStats(c *gin.Context) {
	stats, err := h.postService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
