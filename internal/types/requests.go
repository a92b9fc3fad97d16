package types

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SetResumeTypeRequest switches the resume type.
type SetResumeTypeRequest struct {
	ResumeType ResumeType `json:"resumeType" validate:"required,oneof=job internship hackathon"`
}

// SetSummaryRequest replaces the professional summary.
type SetSummaryRequest struct {
	Summary string `json:"summary"`
}

// UpdateFieldRequest sets one named field of a list entry.
// Value is a string for text fields and a bool for flag fields.
type UpdateFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value any    `json:"value"`
}

// ItemRequest adds or removes one string from a unique-string list.
type ItemRequest struct {
	Value string `json:"value"`
}

// Validate validates the SetResumeTypeRequest using the validator.
func (r *SetResumeTypeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the UpdateFieldRequest using the validator.
func (r *UpdateFieldRequest) Validate() error {
	return validate.Struct(r)
}
