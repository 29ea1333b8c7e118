package result

import "fmt"

// Kind classifies a failure so the boundary layer can render it
// deterministically without inspecting message text.
type Kind int

const (
	KindFailure Kind = iota
	KindNotFound
	KindValidation
	KindConflict
	KindBusinessRule
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindBusinessRule:
		return "business_rule"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "failure"
	}
}

// Error is the typed failure payload of a Result. Fields is only
// populated for KindValidation (field name -> messages).
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// Validation builds a field-level failure. The fields map shape must
// stay compatible with whatever the boundary validation produces.
func Validation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// FieldError is a single-field Validation convenience.
func FieldError(field, code, msg string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    code,
		Message: msg,
		Fields:  map[string][]string{field: {msg}},
	}
}

func BusinessRule(code, msg string) *Error {
	return &Error{Kind: KindBusinessRule, Code: code, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func Failure(msg string) *Error {
	return &Error{Kind: KindFailure, Message: msg}
}
