package apperr

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Kind classifies data-layer failures so callers can branch on error kind
// instead of matching provider message substrings.
type Kind int

const (
	Unknown Kind = iota
	Validation
	NotFound
	Conflict
	PermissionDenied
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case PermissionDenied:
		return "permission_denied"
	default:
		return "unknown"
	}
}

// Error is a kinded application error, optionally wrapping a cause
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind with a message
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error
func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error, Unknown if it carries none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// FromGorm translates a gorm/database error into a kinded error.
// The substring checks cover the postgres and sqlite drivers used here.
func FromGorm(err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: NotFound, Message: "record not found", Err: err}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &Error{Kind: Conflict, Message: "record already exists", Err: err}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint"):
		return &Error{Kind: Conflict, Err: err}
	case strings.Contains(msg, "permission denied") || strings.Contains(msg, "row-level security"):
		return &Error{Kind: PermissionDenied, Err: err}
	}

	return &Error{Kind: Unknown, Err: err}
}
