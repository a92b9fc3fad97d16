// Package schemas validates externally supplied resume records against the embedded JSON Schema.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_data.schema.json
var resumeDataSchema string

// ResumeDataSchema returns the embedded schema document.
func ResumeDataSchema() string {
	return resumeDataSchema
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

var (
	compileOnce    sync.Once
	compiledSchema *gojsonschema.Schema
	compileErr     error
)

func resumeSchema() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(resumeDataSchema))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Path: "resume_data.schema.json", Message: "embedded schema is invalid", Cause: compileErr}
		}
	})
	return compiledSchema, compileErr
}

// ValidateResumeJSON checks raw JSON against the resume schema. Only the shape
// and the enumerated values are checked, never the content of text fields.
func ValidateResumeJSON(data []byte) error {
	schema, err := resumeSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return toValidationError(result)
}

// DecodeResume validates data and decodes it into a normalized record.
func DecodeResume(data []byte) (types.ResumeData, error) {
	if err := ValidateResumeJSON(data); err != nil {
		return types.ResumeData{}, err
	}
	var d types.ResumeData
	if err := json.Unmarshal(data, &d); err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to decode resume JSON: %w", err)
	}
	if err := checkUniqueIDs(d); err != nil {
		return types.ResumeData{}, err
	}
	return d.Normalize(), nil
}

// checkUniqueIDs rejects records where two entries of one list share an id.
func checkUniqueIDs(d types.ResumeData) error {
	var errs []FieldError
	errs = appendDuplicateIDs(errs, "workExperience", d.WorkExperience)
	errs = appendDuplicateIDs(errs, "education", d.Education)
	errs = appendDuplicateIDs(errs, "certifications", d.Certifications)
	errs = appendDuplicateIDs(errs, "projects", d.Projects)
	errs = appendDuplicateIDs(errs, "achievements", d.Achievements)
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func appendDuplicateIDs[T interface{ GetID() string }](errs []FieldError, list string, entries []T) []FieldError {
	first := make(map[string]int, len(entries))
	for i, e := range entries {
		id := e.GetID()
		if j, ok := first[id]; ok {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("%s.%d.id", list, i),
				Message: fmt.Sprintf("duplicate id %q (also used by %s.%d)", id, list, j),
			})
			continue
		}
		first[id] = i
	}
	return errs
}

// LoadResumeFile reads, validates and decodes a resume record from disk.
func LoadResumeFile(path string) (types.ResumeData, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to resolve resume path: %w", err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to read resume file %s: %w", absPath, err)
	}
	return DecodeResume(data)
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
