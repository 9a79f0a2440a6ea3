package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-cms/internal/domain"
)

var (
	slugRegex   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validStatus = []interface{}{"draft", "published", "archived"}
)

// Validator provides validation methods for domain entities and inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePostInput validates the fields supplied to create a post.
func (v *Validator) ValidatePostInput(in *domain.PostInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&in.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&in.Status,
			validation.By(statusRule(true)),
		),
	)
}

// ValidatePostPatch validates a merge-patch. Absent (nil) fields pass;
// present fields must satisfy the same rules as at creation.
func (v *Validator) ValidatePostPatch(p *domain.PostPatch) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.By(presentNotEmptyRule("title_empty")),
		),
		validation.Field(&p.Content,
			validation.By(presentNotEmptyRule("content_empty")),
		),
		validation.Field(&p.Status,
			validation.By(patchStatusRule()),
		),
	)
}

// ValidatePost validates a fully populated Post entity before persistence.
func (v *Validator) ValidatePost(p *domain.Post) error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.ID,
			validation.Required.Error("id_required"),
		),
		validation.Field(&p.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&p.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&p.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatus...).Error("invalid_status"),
		),
		validation.Field(&p.ReadingTime,
			// Required rejects the zero value, which Min alone would skip.
			validation.Required.Error("reading_time_below_one"),
			validation.Min(1).Error("reading_time_below_one"),
		),
	)
	if err != nil {
		return err
	}

	// Published posts must carry their publication timestamp.
	if p.Status == domain.StatusPublished && p.PublishedAt == nil {
		return validation.Errors{
			"published_at": validation.NewError("published_requires_published_at", "published posts must have published_at"),
		}
	}

	return nil
}

// ValidateRegistration validates a new-account request.
func (v *Validator) ValidateRegistration(in *domain.RegisterInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&in.Password,
			validation.Required.Error("password_required"),
			validation.Length(8, 0).Error("password_too_short"),
		),
		validation.Field(&in.Role,
			validation.By(roleRule()),
		),
	)
}

// ValidateUserPatch validates a profile merge-patch.
func (v *Validator) ValidateUserPatch(p *domain.UserPatch) error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Name,
			validation.By(presentNotEmptyRule("name_empty")),
		),
	)
	if err != nil {
		return err
	}

	if p.Email != nil {
		if e := is.Email.Validate(*p.Email); e != nil {
			return validation.Errors{
				"email": validation.NewError("invalid_email_format", "invalid email format"),
			}
		}
	}
	if p.Password != nil && len(*p.Password) < 8 {
		return validation.Errors{
			"password": validation.NewError("password_too_short", "password must be at least 8 characters"),
		}
	}

	return nil
}

// statusRule validates a status string; empty passes when optional.
func statusRule(optional bool) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if s == "" {
			if optional {
				return nil
			}
			return validation.NewError("status_required", "status is required")
		}
		if !domain.IsValidStatus(s) {
			return validation.NewError("invalid_status", "status must be one of: draft, published, archived")
		}
		return nil
	}
}

// patchStatusRule validates a *string status slot: nil passes, a present
// value must be a valid status.
func patchStatusRule() validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(*string)
		if !ok || s == nil {
			return nil
		}
		if !domain.IsValidStatus(*s) {
			return validation.NewError("invalid_status", "status must be one of: draft, published, archived")
		}
		return nil
	}
}

// presentNotEmptyRule validates a *string slot: nil passes, a present value
// must be non-empty.
func presentNotEmptyRule(code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(*string)
		if !ok || s == nil {
			return nil
		}
		if *s == "" {
			return validation.NewError(code, "field must not be empty when provided")
		}
		return nil
	}
}

// roleRule validates a role string; empty passes (a default is applied later).
func roleRule() validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok || s == "" {
			return nil
		}
		if !domain.IsValidRole(s) {
			return validation.NewError("invalid_role", "role must be one of: admin, user, moderator")
		}
		return nil
	}
}
