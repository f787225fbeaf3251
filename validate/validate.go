package validate

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Email checks that value is a well-formed email address.
func Email(value string) error {
	return validation.Validate(value,
		validation.Required.Error("email is required"),
		is.EmailFormat.Error("invalid email format"),
	)
}

// URL checks that value is a well-formed absolute URL.
func URL(value string) error {
	return validation.Validate(value,
		validation.Required.Error("url is required"),
		is.RequestURL.Error("invalid url format"),
	)
}

// Username checks that value is 3 to 20 characters of letters, digits,
// underscores or hyphens.
func Username(value string) error {
	return validation.Validate(value,
		validation.Required.Error("username is required"),
		validation.Length(3, 20).Error("username must be 3-20 characters"),
		validation.Match(usernamePattern).Error("username may only contain letters, digits, _ and -"),
	)
}

// NotEmpty checks that value contains non-whitespace content. name labels
// the field in the error message.
func NotEmpty(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return validation.NewError("validation_not_empty", name+" cannot be empty")
	}
	return nil
}

// Length checks that value is between min and max characters inclusive.
func Length(name, value string, min, max int) error {
	if len(value) < min || len(value) > max {
		return validation.NewError("validation_length",
			fmt.Sprintf("%s must be between %d and %d characters", name, min, max))
	}
	return nil
}

// Range checks that value lies between min and max inclusive.
func Range(name string, value, min, max int) error {
	if value < min || value > max {
		return validation.NewError("validation_range",
			fmt.Sprintf("%s must be between %d and %d", name, min, max))
	}
	return nil
}

// RequiredFields checks that every named field is present and non-empty in
// the map.
func RequiredFields(fields map[string]string, names ...string) error {
	var missing []string
	for _, name := range names {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return validation.NewError("validation_required_fields",
			"missing required fields: "+strings.Join(missing, ", "))
	}
	return nil
}

// All runs every check and aggregates the failures into a single error.
// It returns nil when all checks pass.
func All(checks ...error) error {
	var failures []string
	for _, err := range checks {
		if err != nil {
			failures = append(failures, err.Error())
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return validation.NewError("validation_multiple",
		strings.Join(failures, "; "))
}
