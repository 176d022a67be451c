package port

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCampaignNotFound is returned when a campaign is absent or inactive.
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrUnsupportedTemplate is returned when a campaign carries a template
// type the script synthesizer does not know.
var ErrUnsupportedTemplate = errors.New("unsupported template type")

// FieldError describes one violated input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every violated field of a request at once, in
// the order the fields were checked.
type ValidationError struct {
	Fields []FieldError `json:"details"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends one field violation.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err returns the error itself when any field was violated, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
