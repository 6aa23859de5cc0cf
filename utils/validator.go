package utils

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/go-playground/validator/v10"

	"safarsaathi/models"
)

var (
	alphaSpaceRe = regexp.MustCompile(`^[A-Za-z ]+$`)
	mobileRe     = regexp.MustCompile(`^[0-9]{10}$`)
)

var validate = newLeadValidator()

func newLeadValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the json field names the form actually sends.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpaceRe.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	v.RegisterValidation("gradeband", func(fl validator.FieldLevel) bool {
		return models.IsValidGrade(strings.TrimSpace(fl.Field().String()))
	})
	v.RegisterValidation("mobile10", func(fl validator.FieldLevel) bool {
		return mobileRe.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	return v
}

// ValidateLead checks a submission payload against the form rules. It runs
// entirely locally and must pass before any network call is made. A nil
// return means the payload is valid.
func ValidateLead(input *models.LeadInput) *models.ValidationError {
	fields := make(map[string]string)

	if err := validate.Struct(input); err != nil {
		for _, ferr := range err.(validator.ValidationErrors) {
			fields[ferr.Field()] = leadFieldMessage(ferr)
		}
	}

	// Optional email: syntactic check only, nothing network-bound.
	if email := strings.TrimSpace(input.Email); email != "" {
		if _, dup := fields["email"]; !dup {
			if err := checkmail.ValidateFormat(email); err != nil {
				fields["email"] = "must be a valid email address"
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &models.ValidationError{Fields: fields}
}

func leadFieldMessage(ferr validator.FieldError) string {
	switch ferr.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + ferr.Param() + " characters"
	case "alphaspace":
		return "may only contain letters and spaces"
	case "gradeband":
		return "must be one of the listed grades"
	case "mobile10":
		return "must be exactly 10 digits"
	default:
		return "is invalid"
	}
}
