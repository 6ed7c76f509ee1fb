package shell

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldFailure is one violated validation rule.
type FieldFailure struct {
	PropertyName string `json:"PropertyName"`
	ErrorMessage string `json:"ErrorMessage"`
}

// ValidationFailedError carries every rule a request violated.
// The Dispatcher returns it before a handler runs.
type ValidationFailedError struct {
	Failures []FieldFailure
}

func (e *ValidationFailedError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		parts = append(parts, failure.PropertyName+": "+failure.ErrorMessage)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationFailedError builds a ValidationFailedError for a single field.
func NewValidationFailedError(propertyName, errorMessage string) *ValidationFailedError {
	return &ValidationFailedError{
		Failures: []FieldFailure{{PropertyName: propertyName, ErrorMessage: errorMessage}},
	}
}

// Validator checks a request and returns all violated rules, or nothing if the request is valid.
type Validator[R any] interface {
	Validate(request R) []FieldFailure
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc[R any] func(request R) []FieldFailure

// Validate calls f(request).
func (f ValidatorFunc[R]) Validate(request R) []FieldFailure {
	return f(request)
}

// validate is safe for concurrent use and caches struct metadata, so one instance is shared.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return v
}

// StructValidator evaluates the `validate` struct tags of a request (or of the struct the
// request wraps) and translates each violation into a FieldFailure.
//
// Messages are looked up by "Field.tag", e.g. "Title.required". Violations without a
// configured message fall back to the validator's own description.
type StructValidator[R any] struct {
	messages map[string]string
	target   func(R) any
}

// NewStructValidator creates a StructValidator. If target is nil, the request itself is validated.
func NewStructValidator[R any](messages map[string]string, target func(R) any) StructValidator[R] {
	return StructValidator[R]{
		messages: messages,
		target:   target,
	}
}

// Validate implements Validator.
func (v StructValidator[R]) Validate(request R) []FieldFailure {
	var subject any = request
	if v.target != nil {
		subject = v.target(request)
	}

	err := validate.Struct(subject)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []FieldFailure{{ErrorMessage: err.Error()}}
	}

	failures := make([]FieldFailure, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		failures = append(failures, FieldFailure{
			PropertyName: fieldError.StructField(),
			ErrorMessage: v.messageFor(fieldError),
		})
	}

	return failures
}

func (v StructValidator[R]) messageFor(fieldError validator.FieldError) string {
	if message, ok := v.messages[fieldError.StructField()+"."+fieldError.Tag()]; ok {
		return message
	}

	return fieldError.Error()
}
