// Package schemas provides JSON Schema validation for ingestion inputs.
package schemas

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	_ "embed"
)

//go:embed raw_postings.schema.json
var rawPostingsSchema string

var (
	batchSchemaOnce sync.Once
	batchSchema     *gojsonschema.Schema
	batchSchemaErr  error
)

// ValidationError represents a schema validation error with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself.
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

// ValidatePostingBatch validates a JSON array of raw posting records against
// the embedded batch schema.
func ValidatePostingBatch(data []byte) error {
	schema, err := compiledBatchSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &SchemaLoadError{
			Path:    "raw_postings.schema.json",
			Message: "document could not be validated",
			Cause:   err,
		}
	}

	return resultError(result)
}

// ValidatePostingRecord validates a single raw posting object. The record is
// checked as a one-element batch so it shares the batch item schema.
func ValidatePostingRecord(data []byte) error {
	wrapped := make([]byte, 0, len(data)+2)
	wrapped = append(wrapped, '[')
	wrapped = append(wrapped, data...)
	wrapped = append(wrapped, ']')

	err := ValidatePostingBatch(wrapped)

	var verr *ValidationError
	if errors.As(err, &verr) {
		// Strip the array index prefix so field paths read as record paths.
		for i := range verr.Errors {
			verr.Errors[i].Field = strings.TrimPrefix(verr.Errors[i].Field, "0.")
			if verr.Errors[i].Field == "0" {
				verr.Errors[i].Field = "(root)"
			}
		}
	}
	return err
}

// ValidateJSONString validates JSON string content against schema string content.
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	return resultError(result)
}

func compiledBatchSchema() (*gojsonschema.Schema, error) {
	batchSchemaOnce.Do(func() {
		batchSchema, batchSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(rawPostingsSchema))
	})
	if batchSchemaErr != nil {
		return nil, &SchemaLoadError{
			Path:    "raw_postings.schema.json",
			Message: "failed to compile embedded schema",
			Cause:   batchSchemaErr,
		}
	}
	return batchSchema, nil
}

func resultError(result *gojsonschema.Result) error {
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
