package wire

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSchemaViolation = errors.New("schema violation")
	ErrMalformedInput  = errors.New("malformed input")
)

const maxTokenLen = 64

// SchemaViolationError reports a payload that is well-formed JSON but does not match the contract
// of Entity: a missing mandatory field, an unknown enum token or a value of the wrong shape.
type SchemaViolationError struct {
	Entity string
	// Field is the identifier of the field in the entity definition, Key is its wire key.
	Field string
	Key   string
	// Path locates Entity inside the outer payload, e.g. "payload.positions[2]".
	Path   string
	Token  string
	Reason string
}

func (e *SchemaViolationError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrSchemaViolation.Error())
	sb.WriteString(": ")
	sb.WriteString(e.Entity)
	if e.Field != "" {
		sb.WriteString(".")
		sb.WriteString(e.Field)
	}
	if e.Key != "" && e.Key != e.Field {
		fmt.Fprintf(&sb, " (key %q)", e.Key)
	}
	if e.Path != "" {
		sb.WriteString(" at ")
		sb.WriteString(e.Path)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason)
	if e.Token != "" {
		sb.WriteString(", got ")
		sb.WriteString(e.Token)
	}
	return sb.String()
}

func (e *SchemaViolationError) Unwrap() error {
	return ErrSchemaViolation
}

// MalformedInputError reports bytes that are not a JSON value at all.
type MalformedInputError struct {
	Entity string
	Offset int64
	Err    error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d: %v", ErrMalformedInput, e.Entity, e.Offset, e.Err)
}

func (e *MalformedInputError) Unwrap() []error {
	return []error{ErrMalformedInput, e.Err}
}

// WithPath prefixes the location of a nested schema violation with path.
// Other errors are returned unchanged.
func WithPath(err error, path string) error {
	var sv *SchemaViolationError
	if !errors.As(err, &sv) {
		return err
	}
	nested := *sv
	if nested.Path == "" {
		nested.Path = path
	} else {
		nested.Path = path + "." + nested.Path
	}
	return &nested
}

func violation(entity string, f Field, raw []byte, reason string) *SchemaViolationError {
	return &SchemaViolationError{
		Entity: entity,
		Field:  f.Name,
		Key:    f.ReadKey,
		Token:  token(raw),
		Reason: reason,
	}
}

func token(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > maxTokenLen {
		return s[:maxTokenLen] + "..."
	}
	return s
}
