package validator

import (
	"strings"
	"testing"
	"time"

	"blog-cms/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestValidatePostInput(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   *domain.PostInput
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid minimal input",
			input: &domain.PostInput{
				Title:   "Hello World",
				Content: "Some content here.",
			},
			wantErr: false,
		},
		{
			name: "valid input with status",
			input: &domain.PostInput{
				Title:   "Hello World",
				Content: "Some content here.",
				Status:  "published",
			},
			wantErr: false,
		},
		{
			name: "missing title",
			input: &domain.PostInput{
				Content: "Some content here.",
			},
			wantErr: true,
			errMsg:  "title",
		},
		{
			name: "missing content",
			input: &domain.PostInput{
				Title: "Hello World",
			},
			wantErr: true,
			errMsg:  "content",
		},
		{
			name: "invalid status",
			input: &domain.PostInput{
				Title:   "Hello World",
				Content: "Some content here.",
				Status:  "pending",
			},
			wantErr: true,
			errMsg:  "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePostInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePostInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidatePostInput() error = %v, expected to mention %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidatePostPatch(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		patch   *domain.PostPatch
		wantErr bool
	}{
		{
			name:    "empty patch is valid",
			patch:   &domain.PostPatch{},
			wantErr: false,
		},
		{
			name:    "category-only patch is valid",
			patch:   &domain.PostPatch{Category: strPtr("SEO")},
			wantErr: false,
		},
		{
			name:    "present non-empty title is valid",
			patch:   &domain.PostPatch{Title: strPtr("New Title")},
			wantErr: false,
		},
		{
			name:    "present empty title is invalid",
			patch:   &domain.PostPatch{Title: strPtr("")},
			wantErr: true,
		},
		{
			name:    "present empty content is invalid",
			patch:   &domain.PostPatch{Content: strPtr("")},
			wantErr: true,
		},
		{
			name:    "valid status change",
			patch:   &domain.PostPatch{Status: strPtr("archived")},
			wantErr: false,
		},
		{
			name:    "invalid status change",
			patch:   &domain.PostPatch{Status: strPtr("retired")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePostPatch(tt.patch)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePostPatch() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePost(t *testing.T) {
	v := NewValidator()
	now := time.Now()

	base := func() *domain.Post {
		return &domain.Post{
			ID:          "123e4567-e89b-12d3-a456-426614174000",
			Title:       "Hello World",
			Slug:        "hello-world",
			Content:     "Some content here.",
			Status:      "draft",
			ReadingTime: 1,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	t.Run("valid draft", func(t *testing.T) {
		if err := v.ValidatePost(base()); err != nil {
			t.Errorf("ValidatePost() error = %v", err)
		}
	})

	t.Run("valid published post", func(t *testing.T) {
		p := base()
		p.Status = "published"
		p.PublishedAt = &now
		if err := v.ValidatePost(p); err != nil {
			t.Errorf("ValidatePost() error = %v", err)
		}
	})

	t.Run("published without published_at is invalid", func(t *testing.T) {
		p := base()
		p.Status = "published"
		if err := v.ValidatePost(p); err == nil {
			t.Error("ValidatePost() expected error for published post without published_at")
		}
	})

	t.Run("malformed slug is invalid", func(t *testing.T) {
		p := base()
		p.Slug = "Hello World!"
		if err := v.ValidatePost(p); err == nil {
			t.Error("ValidatePost() expected error for malformed slug")
		}
	})

	t.Run("zero reading time is invalid", func(t *testing.T) {
		p := base()
		p.ReadingTime = 0
		if err := v.ValidatePost(p); err == nil {
			t.Error("ValidatePost() expected error for reading_time below 1")
		}
	})

	t.Run("archived post keeping published_at is valid", func(t *testing.T) {
		p := base()
		p.Status = "archived"
		p.PublishedAt = &now
		if err := v.ValidatePost(p); err != nil {
			t.Errorf("ValidatePost() error = %v", err)
		}
	})
}

func TestValidateRegistration(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   *domain.RegisterInput
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid registration",
			input: &domain.RegisterInput{
				Name:     "John Doe",
				Email:    "john@example.com",
				Password: "s3cret-password",
			},
			wantErr: false,
		},
		{
			name: "valid registration with role",
			input: &domain.RegisterInput{
				Name:     "Admin User",
				Email:    "admin@example.com",
				Password: "s3cret-password",
				Role:     "admin",
			},
			wantErr: false,
		},
		{
			name: "missing email",
			input: &domain.RegisterInput{
				Name:     "John Doe",
				Password: "s3cret-password",
			},
			wantErr: true,
			errMsg:  "email",
		},
		{
			name: "malformed email",
			input: &domain.RegisterInput{
				Name:     "John Doe",
				Email:    "not-an-email",
				Password: "s3cret-password",
			},
			wantErr: true,
			errMsg:  "email",
		},
		{
			name: "short password",
			input: &domain.RegisterInput{
				Name:     "John Doe",
				Email:    "john@example.com",
				Password: "short",
			},
			wantErr: true,
			errMsg:  "password",
		},
		{
			name: "invalid role",
			input: &domain.RegisterInput{
				Name:     "John Doe",
				Email:    "john@example.com",
				Password: "s3cret-password",
				Role:     "superuser",
			},
			wantErr: true,
			errMsg:  "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegistration(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegistration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateRegistration() error = %v, expected to mention %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidateUserPatch(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		patch   *domain.UserPatch
		wantErr bool
	}{
		{"empty patch", &domain.UserPatch{}, false},
		{"name change", &domain.UserPatch{Name: strPtr("New Name")}, false},
		{"empty name", &domain.UserPatch{Name: strPtr("")}, true},
		{"valid email", &domain.UserPatch{Email: strPtr("new@example.com")}, false},
		{"malformed email", &domain.UserPatch{Email: strPtr("nope")}, true},
		{"valid password", &domain.UserPatch{Password: strPtr("long-enough-pw")}, false},
		{"short password", &domain.UserPatch{Password: strPtr("short")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUserPatch(tt.patch)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUserPatch() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
