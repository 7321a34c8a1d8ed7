package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/shashank123r/Creator-Chart-CMS/internal/domain"
)

var (
	validPlatforms       = platformChoices()
	validIntakePlatforms = stringChoices(domain.IntakePlatformOptions)
	validGoals           = stringChoices(domain.GoalOptions)
)

// Validator provides validation methods for incoming requests. The core
// classifiers stay total; everything that can be rejected is rejected here,
// at the boundary.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateNewContent validates a content creation request.
func (v *Validator) ValidateNewContent(in *domain.NewContentInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&in.Description,
			validation.Required.Error("description_required"),
		),
		validation.Field(&in.Platform,
			validation.Required.Error("platform_required"),
			validation.In(validPlatforms...).Error("invalid_platform"),
		),
	)
}

// ValidateIntake validates a creator intake submission.
func (v *Validator) ValidateIntake(in *domain.IntakeSubmission) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&in.Platform,
			validation.Required.Error("platform_required"),
			validation.In(validIntakePlatforms...).Error("invalid_platform"),
		),
		validation.Field(&in.FollowerCount,
			validation.Required.Error("follower_count_required"),
		),
		validation.Field(&in.Description,
			validation.Required.Error("description_required"),
		),
		validation.Field(&in.Goals,
			validation.Required.Error("goals_required"),
			validation.Each(validation.In(validGoals...).Error("invalid_goal")),
		),
	)
}

func platformChoices() []interface{} {
	choices := make([]interface{}, len(domain.AllPlatforms))
	for i, p := range domain.AllPlatforms {
		choices[i] = string(p)
	}
	return choices
}

func stringChoices(options []string) []interface{} {
	choices := make([]interface{}, len(options))
	for i, o := range options {
		choices[i] = o
	}
	return choices
}
