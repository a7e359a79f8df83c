package exceptions

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"clinic-service/internal/pkg/constvars"
)

type Kind string

const (
	KindNotFound      Kind = "NOT_FOUND"
	KindAlreadyExists Kind = "ALREADY_EXISTS"
	KindConflict      Kind = "CONFLICT"
	KindCreate        Kind = "CREATE"
	KindLookup        Kind = "LOOKUP"
	KindUpdate        Kind = "UPDATE"
	KindDelete        Kind = "DELETE"
	KindValidation    Kind = "VALIDATION"
	KindTimeout       Kind = "TIMEOUT"
	KindRateLimited   Kind = "RATE_LIMITED"
)

// Error is the single error type returned by usecases and the HTTP boundary.
// Building one never logs; whoever catches it decides how to report it.
type Error struct {
	Kind      Kind
	Entity    string
	Component string
	Message   string
	Cause     error
	Location  Location
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	if e.Component != "" {
		return fmt.Sprintf("%s in %s: [%v]", e.Message, e.Component, e.Cause)
	}
	return fmt.Sprintf("%s: [%v]", e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error of the same kind. An empty Entity on the target
// matches any entity, so errors.Is(err, &Error{Kind: KindNotFound}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Entity == "" || t.Entity == e.Entity
}

// StatusCode is the HTTP status the delivery layer answers with.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists, KindConflict:
		return http.StatusConflict
	case KindValidation, KindCreate, KindLookup, KindUpdate, KindDelete:
		return http.StatusBadRequest
	case KindTimeout:
		return http.StatusGatewayTimeout
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Kind, true
	}
	return "", false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func newError(kind Kind, entity, component, message string, cause error) *Error {
	return &Error{
		Kind:      kind,
		Entity:    entity,
		Component: component,
		Message:   message,
		Cause:     cause,
		Location:  getLocation(3),
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
