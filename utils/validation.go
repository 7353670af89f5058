package utils

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"codecraft-site/models"
)

var (
	nameRegex       = regexp.MustCompile(`^[A-Za-z ]+$`)
	enrollmentRegex = regexp.MustCompile(`^[A-Z0-9]+$`)
	contactRegex    = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// FormValidator schema-checks registration forms before anything is sent to
// the datastore. A failing form produces per-field messages and no request.
type FormValidator struct {
	validate        *validator.Validate
	acceptedDomains []string
}

// NewFormValidator builds the registration schema. acceptedDomains is the
// allowlist of email domains; an empty list accepts any domain.
func NewFormValidator(acceptedDomains []string) *FormValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("name_chars", func(fl validator.FieldLevel) bool {
		return nameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("enrollment", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "NA" || value == "na" || enrollmentRegex.MatchString(value)
	})
	_ = v.RegisterValidation("contact", func(fl validator.FieldLevel) bool {
		return contactRegex.MatchString(fl.Field().String())
	})

	domains := make([]string, 0, len(acceptedDomains))
	for _, domain := range acceptedDomains {
		domains = append(domains, strings.ToLower(strings.TrimSpace(domain)))
	}
	return &FormValidator{validate: v, acceptedDomains: domains}
}

// ValidateRegistration returns one message per failing field. An empty slice
// means the form may be submitted.
func (fv *FormValidator) ValidateRegistration(form models.RegistrationForm) []models.FieldError {
	var fieldErrors []models.FieldError

	if err := fv.validate.Struct(form); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return []models.FieldError{{Field: "form", Message: err.Error()}}
		}
		for _, fieldErr := range validationErrors {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   fieldErr.Field(),
				Message: messageFor(fieldErr),
			})
		}
	}

	if form.Email != "" && !fv.emailDomainAccepted(form.Email) {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "email",
			Message: "Email domain is not accepted",
		})
	}
	return fieldErrors
}

func (fv *FormValidator) emailDomainAccepted(email string) bool {
	if len(fv.acceptedDomains) == 0 {
		return true
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, accepted := range fv.acceptedDomains {
		if domain == accepted {
			return true
		}
	}
	return false
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Name must be at least 3 characters"
	case "email":
		return "Please enter a valid email address"
	case "name_chars":
		return "Name may only contain letters and spaces"
	case "enrollment":
		return "Enter a valid enrollment number or NA"
	case "contact":
		return "Enter a valid contact number (10-15 digits, optional country code)"
	default:
		return "Invalid value"
	}
}
