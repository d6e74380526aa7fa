package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"post-query-service/internal/domain"
)

var validStatuses = []interface{}{domain.StatusDraft, domain.StatusPublish}

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePost validates a Post entity before it is persisted.
func (v *Validator) ValidatePost(p *domain.Post) error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 200).Error("title_too_long"),
		),
		validation.Field(&p.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&p.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatuses...).Error("invalid_status"),
		),
		validation.Field(&p.AuthorID,
			validation.Required.Error("author_id_required"),
		),
	)
	if err != nil {
		return err
	}

	// Custom rule: protected posts need an access secret
	if p.NeedPassword && p.Password == "" {
		return validation.Errors{
			"password": validation.NewError("password_required", "password-protected posts must carry a password"),
		}
	}

	// Custom rule: publish requires a publish time
	if p.Status == domain.StatusPublish && p.PublishTime == nil {
		return validation.Errors{
			"publish_time": validation.NewError("publish_requires_publish_time", "published posts must have a publish time"),
		}
	}

	return nil
}
