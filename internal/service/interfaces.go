package service

import (
	"context"

	"blog-cms/internal/domain"
)

// PostServiceInterface defines the post lifecycle and query operations.
// Used for dependency injection and mocking in tests.
type PostServiceInterface interface {
	// CreatePost validates the input, derives slug and reading time, and
	// persists a new post.
	CreatePost(ctx context.Context, input *domain.PostInput) (*domain.Post, error)
	// GetPost resolves a post by ID or slug. Reading a published post
	// increments its view counter; the returned post carries the new value.
	GetPost(ctx context.Context, idOrSlug string) (*domain.Post, error)
	// ListPosts returns the requested page of posts plus pagination metadata.
	ListPosts(ctx context.Context, filter domain.PostFilter, page, perPage int) ([]domain.Post, *domain.Pagination, error)
	// UpdatePost applies a merge-patch and recomputes derived fields.
	UpdatePost(ctx context.Context, idOrSlug string, patch *domain.PostPatch) (*domain.Post, error)
	// DeletePost hard-deletes a post.
	DeletePost(ctx context.Context, idOrSlug string) error
	// ListCategories returns the distinct non-empty categories.
	ListCategories(ctx context.Context) ([]string, error)
	// Stats returns aggregate counts over all posts.
	Stats(ctx context.Context) (*domain.Stats, error)
}

// AuthServiceInterface defines account and session operations.
// Used for dependency injection and mocking in tests.
type AuthServiceInterface interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input *domain.RegisterInput) (*domain.User, error)
	// Login verifies credentials and issues a signed JWT.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// GetProfile fetches the account behind an authenticated user ID.
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	// UpdateProfile applies a merge-patch to the account.
	UpdateProfile(ctx context.Context, userID string, patch *domain.UserPatch) (*domain.User, error)
}
