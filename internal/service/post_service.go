package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"blog-cms/internal/domain"
	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
	"blog-cms/internal/repository"
	"blog-cms/internal/validator"
)

// PostServiceOptions carries the configured defaults for the post lifecycle
// engine. Values are fixed at construction.
type PostServiceOptions struct {
	DefaultAuthor   string
	DefaultCategory string
	WordsPerMinute  int
	DefaultPageSize int
	MaxPageSize     int
}

// PostService owns the post lifecycle: slug derivation and collision
// resolution, reading-time estimation, status transitions, view accounting,
// and paginated queries.
type PostService struct {
	repo      repository.PostRepository
	validator *validator.Validator
	opts      PostServiceOptions
}

// NewPostService creates a new PostService.
func NewPostService(repo repository.PostRepository, v *validator.Validator, opts PostServiceOptions) *PostService {
	if opts.WordsPerMinute < 1 {
		opts.WordsPerMinute = 200
	}
	if opts.DefaultPageSize < 1 {
		opts.DefaultPageSize = 10
	}
	if opts.MaxPageSize < opts.DefaultPageSize {
		opts.MaxPageSize = opts.DefaultPageSize
	}

	return &PostService{
		repo:      repo,
		validator: v,
		opts:      opts,
	}
}

// CreatePost validates the input, fills defaults, derives slug and reading
// time, and persists the post. A slug collision is disambiguated with a
// nanosecond-clock suffix; if a concurrent writer still wins the race, the
// insert is retried once with a fresh suffix before giving up.
func (s *PostService) CreatePost(ctx context.Context, input *domain.PostInput) (*domain.Post, error) {
	if err := s.validator.ValidatePostInput(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	status := input.Status
	if status == "" {
		status = domain.StatusDraft
	}
	author := input.Author
	if author == "" {
		author = s.opts.DefaultAuthor
	}
	category := input.Category
	if category == "" {
		category = s.opts.DefaultCategory
	}
	tags := input.Tags
	if tags == nil {
		// The tags column is NOT NULL; a nil slice would encode as SQL NULL.
		tags = []string{}
	}

	slug, err := s.resolveSlug(ctx, input.Title, "")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		ID:              uuid.New().String(),
		Title:           input.Title,
		Slug:            slug,
		Content:         input.Content,
		Excerpt:         input.Excerpt,
		Author:          author,
		Category:        category,
		Tags:            tags,
		FeaturedImage:   input.FeaturedImage,
		MetaDescription: input.MetaDescription,
		MetaKeywords:    input.MetaKeywords,
		Status:          status,
		Views:           0,
		ReadingTime:     domain.EstimateReadingTime(input.Content, s.opts.WordsPerMinute),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if status == domain.StatusPublished {
		post.PublishedAt = &now
	}

	if err := s.validator.ValidatePost(post); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	if err := s.createWithRetry(ctx, post); err != nil {
		return nil, err
	}

	metrics.ObservePostCreated(status)
	logger.InfoContext(ctx, "post created",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug),
		slog.String("status", post.Status))

	return post, nil
}

// createWithRetry inserts the post, re-suffixing the slug once if a
// concurrent writer claimed it between the availability check and the
// insert. The unique constraint on posts.slug is the source of truth.
func (s *PostService) createWithRetry(ctx context.Context, post *domain.Post) error {
	err := s.repo.Create(ctx, post)
	if err == nil || !errors.Is(err, domain.ErrConflict) {
		return err
	}

	metrics.ObserveSlugCollision()
	logger.WarnContext(ctx, "slug race lost, retrying with fresh suffix",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug))

	post.Slug = suffixSlug(domain.Slugify(post.Title))
	return s.repo.Create(ctx, post)
}

// resolveSlug derives the slug for a title and disambiguates it when the
// base form is already taken by another post.
func (s *PostService) resolveSlug(ctx context.Context, title, excludeID string) (string, error) {
	base := domain.Slugify(title)
	if base == "" {
		base = "post"
	}

	exists, err := s.repo.SlugExists(ctx, base, excludeID)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}

	metrics.ObserveSlugCollision()
	return suffixSlug(base), nil
}

// suffixSlug appends a nanosecond-clock token, unique for any two calls
// within one process and unlikely to collide across writers.
func suffixSlug(base string) string {
	if base == "" {
		base = "post"
	}
	return fmt.Sprintf("%s-%d", base, time.Now().UnixNano())
}

// GetPost resolves a post by ID or slug. Reading a published post counts as
// a view: the counter is bumped atomically and the returned post carries the
// post-increment value.
func (s *PostService) GetPost(ctx context.Context, idOrSlug string) (*domain.Post, error) {
	post, err := s.repo.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if post.Status == domain.StatusPublished {
		views, err := s.repo.IncrementViews(ctx, post.ID)
		if err != nil {
			return nil, err
		}
		post.Views = views
		metrics.ObservePostView()
	}

	return post, nil
}

// ListPosts returns the requested page of posts plus pagination metadata.
// Out-of-range pages yield an empty item list, not an error.
func (s *PostService) ListPosts(ctx context.Context, filter domain.PostFilter, page, perPage int) ([]domain.Post, *domain.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = s.opts.DefaultPageSize
	}
	if perPage > s.opts.MaxPageSize {
		perPage = s.opts.MaxPageSize
	}

	offset := (page - 1) * perPage
	posts, total, err := s.repo.List(ctx, filter, perPage, offset)
	if err != nil {
		return nil, nil, err
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	pagination := &domain.Pagination{
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1,
	}

	return posts, pagination, nil
}

// UpdatePost applies a merge-patch: only fields present in the patch change.
// A title change re-derives the slug (excluding the post's own row from the
// collision check), a content change re-derives the reading time, and the
// first transition into published latches published_at permanently.
func (s *PostService) UpdatePost(ctx context.Context, idOrSlug string, patch *domain.PostPatch) (*domain.Post, error) {
	if err := s.validator.ValidatePostPatch(patch); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	post, err := s.repo.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	prevStatus := post.Status

	if patch.Title != nil {
		post.Title = *patch.Title
		if base := domain.Slugify(post.Title); base != post.Slug {
			slug, err := s.resolveSlug(ctx, post.Title, post.ID)
			if err != nil {
				return nil, err
			}
			post.Slug = slug
		}
	}
	if patch.Content != nil {
		post.Content = *patch.Content
		post.ReadingTime = domain.EstimateReadingTime(post.Content, s.opts.WordsPerMinute)
	}
	if patch.Excerpt != nil {
		post.Excerpt = *patch.Excerpt
	}
	if patch.Author != nil {
		post.Author = *patch.Author
	}
	if patch.Category != nil {
		post.Category = *patch.Category
	}
	if patch.Tags != nil {
		post.Tags = *patch.Tags
	}
	if patch.FeaturedImage != nil {
		post.FeaturedImage = *patch.FeaturedImage
	}
	if patch.MetaDescription != nil {
		post.MetaDescription = *patch.MetaDescription
	}
	if patch.MetaKeywords != nil {
		post.MetaKeywords = *patch.MetaKeywords
	}

	now := time.Now().UTC()
	if patch.Status != nil {
		post.Status = *patch.Status
		// published_at latches on the first transition into published and is
		// never cleared or moved afterwards.
		if post.Status == domain.StatusPublished && post.PublishedAt == nil {
			post.PublishedAt = &now
		}
		if post.Status != prevStatus {
			metrics.ObserveStatusTransition(prevStatus, post.Status)
		}
	}
	post.UpdatedAt = now

	if err := s.validator.ValidatePost(post); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	if err := s.updateWithRetry(ctx, post); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "post updated",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug))

	return post, nil
}

// updateWithRetry mirrors createWithRetry for renames that race another
// writer to the same slug.
func (s *PostService) updateWithRetry(ctx context.Context, post *domain.Post) error {
	err := s.repo.Update(ctx, post)
	if err == nil || !errors.Is(err, domain.ErrConflict) {
		return err
	}

	metrics.ObserveSlugCollision()
	post.Slug = suffixSlug(domain.Slugify(post.Title))
	return s.repo.Update(ctx, post)
}

// DeletePost hard-deletes a post resolved by ID or slug.
func (s *PostService) DeletePost(ctx context.Context, idOrSlug string) error {
	post, err := s.repo.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, post.ID); err != nil {
		return err
	}

	metrics.ObservePostDeleted()
	logger.InfoContext(ctx, "post deleted",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug))

	return nil
}

// ListCategories returns the distinct non-empty categories, sorted.
func (s *PostService) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// Stats returns aggregate counts over all posts.
func (s *PostService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}
