package index

import "fmt"

// Code tags the error taxonomy of spec.md §7. Grounded on
// _examples/Govetachun-Go-DB/refactor_code/pkg/errors/errors.go's
// DatabaseError{Code, Message, Cause} shape, narrowed to the five kinds
// the spec names (plus UnsupportedMethod, which the factory returns for an
// unimplemented method tag) instead of that file's generic parse/exec/
// storage/concurrency buckets.
type Code int

const (
	CodeUnknown Code = iota
	CodeDuplicateKey
	CodeUnsupportedPredicate
	CodeUnsupportedKeyType
	CodeUnsupportedMethod
	CodeOutOfMemory
	CodeInvalidArgument
)

func (c Code) String() string {
	switch c {
	case CodeDuplicateKey:
		return "DuplicateKey"
	case CodeUnsupportedPredicate:
		return "UnsupportedPredicate"
	case CodeUnsupportedKeyType:
		return "UnsupportedKeyType"
	case CodeUnsupportedMethod:
		return "UnsupportedMethod"
	case CodeOutOfMemory:
		return "OutOfMemory"
	case CodeInvalidArgument:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// Error is the taxonomy-tagged error every failure mode in spec.md §7
// surfaces as. Code is compared with errors.Is against the sentinel
// Err* values below; Message and Cause carry the call-site detail the way
// the teacher's DatabaseError does.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is implements errors.Is support so callers can write
// errors.Is(err, index.ErrDuplicateKey) regardless of Message/Cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Sentinel values for errors.Is comparisons. Only Code is consulted by Is,
// so these carry no message of their own.
var (
	ErrDuplicateKey         = &Error{Code: CodeDuplicateKey}
	ErrUnsupportedPredicate = &Error{Code: CodeUnsupportedPredicate}
	ErrUnsupportedKeyType   = &Error{Code: CodeUnsupportedKeyType}
	ErrUnsupportedMethod    = &Error{Code: CodeUnsupportedMethod}
	ErrOutOfMemory          = &Error{Code: CodeOutOfMemory}
	ErrInvalidArgument      = &Error{Code: CodeInvalidArgument}
)
