// Package validator provides a custom Validator type for accumulating
// field-level validation errors in the order the fields were checked.
package validator

import "regexp"

// Compiled character-set rules shared by the form validators in internal/data.
var (
	TitleRX  = regexp.MustCompile(`^[a-zA-Z0-9\s\-',.!:&]+$`)
	AuthorRX = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
	ISBNRX   = regexp.MustCompile(`^[0-9\-X]+$`)
	NameRX   = regexp.MustCompile(`^[a-zA-Z\s\-]+$`)
)

// FieldError pairs a form field name with the message describing why it failed.
type FieldError struct {
	Field   string
	Message string
}

// Validator collects field errors as an ordered slice so the form layer can
// display them in the order the fields were checked. A Validator with an
// empty FieldErrors slice is considered valid.
type Validator struct {
	FieldErrors []FieldError
	seen        map[string]bool
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{seen: make(map[string]bool)}
}

// Valid returns true if no field errors have been recorded.
func (v *Validator) Valid() bool {
	return len(v.FieldErrors) == 0
}

// HasError reports whether field already has a recorded error.
func (v *Validator) HasError(field string) bool {
	return v.seen[field]
}

// AddError records field as failing with the given message.
// Only the first failure for a field is kept, so rule ordering decides which
// message the user sees. Failures on one field never block checks on others.
func (v *Validator) AddError(field, message string) {
	if v.seen[field] {
		return
	}
	v.seen[field] = true
	v.FieldErrors = append(v.FieldErrors, FieldError{Field: field, Message: message})
}

// Check adds an error for field with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(len(title) > 0, "title", "Title is required.")
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// In returns true if value is present in the list slice.
func In(value string, list ...string) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}

// Matches returns true if value matches the provided compiled regexp.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}
