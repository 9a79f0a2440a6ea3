package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-cms/internal/domain"
	"blog-cms/internal/metrics"
)

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

const postColumns = `id, title, slug, content, excerpt, author, category, tags,
	featured_image, meta_description, meta_keywords, status, views,
	reading_time, published_at, created_at, updated_at`

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.Excerpt,
		&p.Author,
		&p.Category,
		&p.Tags,
		&p.FeaturedImage,
		&p.MetaDescription,
		&p.MetaKeywords,
		&p.Status,
		&p.Views,
		&p.ReadingTime,
		&p.PublishedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create inserts a post row. The slug uniqueness constraint backs the
// check-then-act collision resolution in the service layer.
func (r *PostgresPostRepository) Create(ctx context.Context, post *domain.Post) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.DBQueryDuration.WithLabelValues("create_post"))

	// COALESCE keeps a nil tags slice, which pgx encodes as NULL, from
	// violating the NOT NULL constraint on the column.
	query := `
		INSERT INTO posts (` + postColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, '{}'), $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.pool.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.Author,
		post.Category,
		post.Tags,
		post.FeaturedImage,
		post.MetaDescription,
		post.MetaKeywords,
		post.Status,
		post.Views,
		post.ReadingTime,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: slug %q is already taken", domain.ErrConflict, post.Slug)
		}
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

// GetByIDOrSlug resolves a post by ID first, falling back to the slug. The
// ORDER BY makes the ID match win even if some other post's slug equals $1.
func (r *PostgresPostRepository) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE id::text = $1 OR slug = $1
		ORDER BY (id::text = $1) DESC
		LIMIT 1
	`

	post, err := scanPost(r.pool.QueryRow(ctx, query, idOrSlug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: post %q", domain.ErrNotFound, idOrSlug)
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	return post, nil
}

// IncrementViews bumps the view counter in a single atomic update so that
// concurrent readers never lose increments. Only published posts count.
func (r *PostgresPostRepository) IncrementViews(ctx context.Context, id string) (int64, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.DBQueryDuration.WithLabelValues("increment_views"))

	query := `
		UPDATE posts
		SET views = views + 1
		WHERE id::text = $1 AND status = 'published'
		RETURNING views
	`

	var views int64
	if err := r.pool.QueryRow(ctx, query, id).Scan(&views); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: published post %q", domain.ErrNotFound, id)
		}
		return 0, fmt.Errorf("increment views: %w", err)
	}

	return views, nil
}

// List returns the filtered page of posts ordered by published_at descending
// with nulls last, tie-broken by created_at descending.
func (r *PostgresPostRepository) List(ctx context.Context, filter domain.PostFilter, limit, offset int) ([]domain.Post, int64, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.DBQueryDuration.WithLabelValues("list_posts"))

	where, args := buildPostFilter(filter)

	countQuery := "SELECT COUNT(*) FROM posts" + where
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+postColumns+`
		FROM posts%s
		ORDER BY published_at DESC NULLS LAST, created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0, limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read posts: %w", err)
	}

	return posts, total, nil
}

// buildPostFilter renders the WHERE clause for a PostFilter. Status and
// category are exact matches; search is a case-insensitive substring match
// over title, content, and excerpt.
func buildPostFilter(filter domain.PostFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR content ILIKE $%d OR excerpt ILIKE $%d)", n, n, n))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// Update writes every mutable field; the service layer owns the merge-patch
// semantics and derived-field recomputation.
func (r *PostgresPostRepository) Update(ctx context.Context, post *domain.Post) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.DBQueryDuration.WithLabelValues("update_post"))

	query := `
		UPDATE posts SET
			title = $2,
			slug = $3,
			content = $4,
			excerpt = $5,
			author = $6,
			category = $7,
			tags = COALESCE($8, '{}'),
			featured_image = $9,
			meta_description = $10,
			meta_keywords = $11,
			status = $12,
			reading_time = $13,
			published_at = $14,
			updated_at = $15
		WHERE id::text = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.Author,
		post.Category,
		post.Tags,
		post.FeaturedImage,
		post.MetaDescription,
		post.MetaKeywords,
		post.Status,
		post.ReadingTime,
		post.PublishedAt,
		post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: slug %q is already taken", domain.ErrConflict, post.Slug)
		}
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: post %q", domain.ErrNotFound, post.ID)
	}

	return nil
}

// Delete hard-deletes a post.
func (r *PostgresPostRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: post %q", domain.ErrNotFound, id)
	}

	return nil
}

// SlugExists checks slug availability, optionally excluding one post (its
// own row during a rename).
func (r *PostgresPostRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM posts WHERE slug = $1 AND ($2 = '' OR id::text <> $2)
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}

	return exists, nil
}

// Categories returns the distinct non-empty categories in sorted order.
func (r *PostgresPostRepository) Categories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM posts
		WHERE category <> ''
		ORDER BY category
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}

	return categories, nil
}

// Stats aggregates counts over all posts; total views includes every status.
func (r *PostgresPostRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'published'),
			COUNT(*) FILTER (WHERE status = 'draft'),
			COALESCE(SUM(views), 0)
		FROM posts
	`

	var stats domain.Stats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalPosts,
		&stats.PublishedPosts,
		&stats.DraftPosts,
		&stats.TotalViews,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregate stats: %w", err)
	}

	return &stats, nil
}
