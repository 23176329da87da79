// Package validation holds the pure field validation rules shared by the
// backend services and the terminal client, plus the record identifier
// format check.
package validation

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Validation groups.
const (
	GroupSignup = "signup"
	GroupLogin  = "login"
	GroupTask   = "task"
)

// MaxDescriptionLength is the longest accepted task description.
const MaxDescriptionLength = 100

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// FieldError pairs a field name with its validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// groupFields declares, per group, the fields that are validated and the
// order in which ValidateMany reports failures.
var groupFields = map[string][]string{
	GroupSignup: {"name", "email", "password"},
	GroupLogin:  {"email", "password"},
	GroupTask:   {"title", "description", "dueDate"},
}

// Validate applies the single-field rule for the given group and field.
// It returns an empty string when the value is acceptable. Unknown groups
// and fields are accepted.
func Validate(group, field, value string) string {
	switch group {
	case GroupSignup:
		switch field {
		case "name":
			if value == "" {
				return "Name is required"
			}
		case "email":
			return validateEmail(value)
		case "password":
			if value == "" {
				return "Password is required"
			}
			if len(value) < 8 {
				return "Password should be atleast 8 chars long"
			}
		}
	case GroupLogin:
		switch field {
		case "email":
			return validateEmail(value)
		case "password":
			if value == "" {
				return "Password is required"
			}
		}
	case GroupTask:
		switch field {
		case "title":
			if value == "" {
				return "Title is required"
			}
		case "description":
			if value == "" {
				return "Description is required"
			}
			if len(value) > MaxDescriptionLength {
				return "Max. limit is 100 characters."
			}
		case "dueDate":
			if value == "" {
				return "Due Date is required"
			}
		}
	}
	return ""
}

// ValidateMany applies the single-field rule to every supplied field and
// collects the failures. Fields are checked in the group's declared order;
// fields not present in the map are skipped.
func ValidateMany(group string, fields map[string]string) []FieldError {
	var errs []FieldError
	for _, field := range groupFields[group] {
		value, ok := fields[field]
		if !ok {
			continue
		}
		if msg := Validate(group, field, value); msg != "" {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}
	return errs
}

// IsValidID reports whether s has the shape of a storage-generated record
// identifier (a canonical UUID string). It never panics on malformed input.
func IsValidID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func validateEmail(value string) string {
	if value == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(strings.ToLower(value)) {
		return "Please enter valid email address"
	}
	return ""
}
