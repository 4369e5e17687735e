package common

import "fmt"

// ValidationErrorKind 区分校验失败的类别。
type ValidationErrorKind string

const (
	// KindMissingField 表示必填字段缺失。
	KindMissingField ValidationErrorKind = "missing_field"
	// KindInvalidValue 表示字段值非法。
	KindInvalidValue ValidationErrorKind = "invalid_value"
)

// ValidationError 携带字段名与失败类别的校验错误。
type ValidationError struct {
	Kind    ValidationErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewMissingFieldError 构造必填字段缺失错误。
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{
		Kind:    KindMissingField,
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// NewInvalidValueError 构造字段值非法错误。
func NewInvalidValueError(field, message string) *ValidationError {
	return &ValidationError{
		Kind:    KindInvalidValue,
		Field:   field,
		Message: message,
	}
}
