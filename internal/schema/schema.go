// Package schema validates JSON response bodies against JSON Schema
// documents.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Result describes the outcome of validating a body against a schema.
type Result struct {
	Valid      bool
	Violations []string
}

// Validate checks a JSON body against a JSON Schema. A schema or body
// that cannot be parsed is an error; a body that merely fails the schema
// yields Valid=false with the violations listed.
func Validate(body, schemaJSON string) (Result, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaJSON)); err != nil {
		return Result{}, fmt.Errorf("invalid schema: %w", err)
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return Result{}, fmt.Errorf("invalid schema: %w", err)
	}

	var data interface{}
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		return Result{}, fmt.Errorf("invalid JSON body: %w", err)
	}

	if err := compiled.Validate(data); err != nil {
		var ve *jsonschema.ValidationError
		result := Result{Valid: false}
		if ok := asValidationError(err, &ve); ok {
			result.Violations = collectViolations(ve)
		} else {
			result.Violations = []string{err.Error()}
		}
		return result, nil
	}

	return Result{Valid: true}, nil
}

// ValidateFile reads a schema from disk and validates the body against it.
func ValidateFile(body, schemaPath string) (Result, error) {
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return Result{}, fmt.Errorf("error reading schema: %w", err)
	}
	return Validate(body, string(data))
}

func asValidationError(err error, target **jsonschema.ValidationError) bool {
	ve, ok := err.(*jsonschema.ValidationError)
	if ok {
		*target = ve
	}
	return ok
}

// collectViolations flattens the validation error tree into leaf
// messages qualified by instance location.
func collectViolations(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		location := ve.InstanceLocation
		if location == "" {
			location = "/"
		}
		return []string{fmt.Sprintf("%s: %s", location, ve.Message)}
	}

	var violations []string
	for _, cause := range ve.Causes {
		violations = append(violations, collectViolations(cause)...)
	}
	return violations
}
