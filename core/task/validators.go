package task

import (
	"github.com/go-playground/validator/v10"

	"github.com/codo-ajmalnk/evoka-admin/core"
)

var (
	priorityTag  = "taskpriority"
	priorityText = "invalid priority"

	categoryTag  = "taskcategory"
	categoryText = "invalid category"

	statusTag  = "taskstatus"
	statusText = "invalid status"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(priorityTag, priorityValidation)
	core.RegisterCustomTranslation(priorityTag, priorityText)

	_ = core.Validate.RegisterValidation(categoryTag, categoryValidation)
	core.RegisterCustomTranslation(categoryTag, categoryText)

	_ = core.Validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(statusTag, statusText)
}

// priorityValidation checks that the provided value is in AllPriorities.
func priorityValidation(fl validator.FieldLevel) bool {
	if p, ok := fl.Field().Interface().(Priority); ok {
		for _, known := range AllPriorities {
			if p == known {
				return true
			}
		}
	}
	return false
}

// categoryValidation checks that the provided value is in AllCategories.
func categoryValidation(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(Category); ok {
		for _, known := range AllCategories {
			if c == known {
				return true
			}
		}
	}
	return false
}

// statusValidation checks that the provided value is in AllStatuses.
func statusValidation(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(Status); ok {
		for _, known := range AllStatuses {
			if s == known {
				return true
			}
		}
	}
	return false
}
