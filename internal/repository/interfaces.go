package repository

import (
	"context"

	"blog-cms/internal/domain"
)

// PostRepository defines methods for post data access.
type PostRepository interface {
	// Create persists a new post. Returns domain.ErrConflict wrapped if the
	// slug violates the uniqueness constraint.
	Create(ctx context.Context, post *domain.Post) error
	// GetByIDOrSlug resolves a post by its ID or, failing that, its slug.
	GetByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.Post, error)
	// IncrementViews atomically increments the view counter of a published
	// post and returns the new value.
	IncrementViews(ctx context.Context, id string) (int64, error)
	// List returns the requested page of posts and the total count matching
	// the filter.
	List(ctx context.Context, filter domain.PostFilter, limit, offset int) ([]domain.Post, int64, error)
	// Update persists all mutable fields of the post. Returns
	// domain.ErrNotFound if the row is gone, domain.ErrConflict wrapped on a
	// slug collision.
	Update(ctx context.Context, post *domain.Post) error
	// Delete hard-deletes a post by ID.
	Delete(ctx context.Context, id string) error
	// SlugExists reports whether a slug is taken by any post other than
	// excludeID (pass "" to check against all posts).
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	// Categories returns the distinct non-empty categories, sorted.
	Categories(ctx context.Context) ([]string, error)
	// Stats returns aggregate post counts.
	Stats(ctx context.Context) (*domain.Stats, error)
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrConflict wrapped if the
	// email is already registered.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
