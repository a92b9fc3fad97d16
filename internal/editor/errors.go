// Package editor provides the add, update and remove operations of each resume section.
package editor

import "fmt"

// FieldError reports an update addressed to a field the entry does not have,
// or a value of the wrong kind for that field. Content is never validated.
type FieldError struct {
	Entity  string
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field error: %s.%s: %s", e.Entity, e.Field, e.Message)
}

func unknownField(entity, field string) error {
	return &FieldError{Entity: entity, Field: field, Message: "unknown field"}
}
