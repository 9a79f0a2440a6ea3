package domain

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// Post represents a blog post entity in the system.
type Post struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	Excerpt         string     `json:"excerpt,omitempty"`
	Author          string     `json:"author"`
	Category        string     `json:"category,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	FeaturedImage   string     `json:"featured_image,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	MetaKeywords    string     `json:"meta_keywords,omitempty"`
	Status          string     `json:"status"`
	Views           int64      `json:"views"`
	ReadingTime     int        `json:"reading_time"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Post statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatuses contains all valid post statuses.
var ValidStatuses = []string{StatusDraft, StatusPublished, StatusArchived}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// PostInput carries the caller-supplied fields for creating a post. Title
// and Content are mandatory; everything else falls back to configured
// defaults.
type PostInput struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Excerpt         string   `json:"excerpt"`
	Author          string   `json:"author"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	FeaturedImage   string   `json:"featured_image"`
	MetaDescription string   `json:"meta_description"`
	MetaKeywords    string   `json:"meta_keywords"`
	Status          string   `json:"status"`
}

// PostPatch is a merge-patch for a post: only non-nil fields are applied.
type PostPatch struct {
	Title           *string   `json:"title,omitempty"`
	Content         *string   `json:"content,omitempty"`
	Excerpt         *string   `json:"excerpt,omitempty"`
	Author          *string   `json:"author,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
	FeaturedImage   *string   `json:"featured_image,omitempty"`
	MetaDescription *string   `json:"meta_description,omitempty"`
	MetaKeywords    *string   `json:"meta_keywords,omitempty"`
	Status          *string   `json:"status,omitempty"`
}

// PostFilter narrows a post listing. Zero values mean "no filter".
// Status and Category are exact matches combined with AND; Search is a
// case-insensitive substring match against title, content, or excerpt.
type PostFilter struct {
	Status   string
	Category string
	Search   string
}

// Pagination describes the page of results returned by a listing.
type Pagination struct {
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// Stats holds aggregate post counts.
type Stats struct {
	TotalPosts     int64 `json:"total_posts"`
	PublishedPosts int64 `json:"published_posts"`
	DraftPosts     int64 `json:"draft_posts"`
	TotalViews     int64 `json:"total_views"`
}

var (
	slugStripPattern    = regexp.MustCompile(`[^a-z0-9 -]`)
	slugCollapsePattern = regexp.MustCompile(`[ -]+`)
)

// Slugify derives a URL-safe slug from a post title: lowercase, characters
// outside [a-z0-9 -] removed, runs of spaces and hyphens collapsed to a
// single hyphen, leading and trailing hyphens trimmed.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = slugCollapsePattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// EstimateReadingTime returns the estimated minutes to read content at the
// given words-per-minute speed, rounded to the nearest minute with a floor
// of 1. Words are whitespace-delimited tokens.
func EstimateReadingTime(content string, wordsPerMinute int) int {
	words := len(strings.Fields(content))
	minutes := int(math.Round(float64(words) / float64(wordsPerMinute)))
	if minutes < 1 {
		return 1
	}
	return minutes
}
