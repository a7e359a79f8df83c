package exceptions

import (
	"fmt"
	"strings"

	"clinic-service/internal/pkg/constvars"
)

// Domain errors

func ErrNotFound(entity string) *Error {
	return newError(KindNotFound, entity, "", fmt.Sprintf(constvars.ErrClientRecordNotFound, entity), nil)
}

func ErrAlreadyExists(entity string) *Error {
	return newError(KindAlreadyExists, entity, "", fmt.Sprintf(constvars.ErrClientRecordAlreadyExists, entity), nil)
}

func ErrConflict(entity, message string) *Error {
	return newError(KindConflict, entity, "", message, nil)
}

// Infrastructure errors. Each one returns err untouched when it already
// carries an *Error, so crossing several services never nests the wrapping.

func ErrCreate(err error, entity, component string) error {
	return wrap(err, KindCreate, entity, component, fmt.Sprintf(constvars.ErrClientCreateRecord, strings.ToLower(entity)))
}

func ErrLookup(err error, entity, component string) error {
	return wrap(err, KindLookup, entity, component, fmt.Sprintf(constvars.ErrClientGetRecord, strings.ToLower(entity)))
}

func ErrUpdate(err error, entity, component string) error {
	return wrap(err, KindUpdate, entity, component, fmt.Sprintf(constvars.ErrClientUpdateRecord, strings.ToLower(entity)))
}

func ErrDelete(err error, entity, component string) error {
	return wrap(err, KindDelete, entity, component, fmt.Sprintf(constvars.ErrClientDeleteRecord, strings.ToLower(entity)))
}

func wrap(err error, kind Kind, entity, component, message string) error {
	if _, ok := KindOf(err); ok {
		return err
	}
	customErr := newError(kind, entity, component, message, err)
	customErr.Location = getLocation(3)
	return customErr
}

// Boundary errors

func ErrInputValidation(err error) *Error {
	return newError(KindValidation, "", "", FormatAllValidationErrors(err), err)
}

func ErrCannotParseJSON(err error) *Error {
	return newError(KindValidation, "", "", constvars.ErrClientBodyBadStructure, err)
}

func ErrURLParamIDValidation(err error, paramName string) *Error {
	return newError(KindValidation, "", paramName, constvars.ErrClientIDMustBeANumber, err)
}

func ErrServerDeadlineExceeded(err error) *Error {
	return newError(KindTimeout, "", "", constvars.ErrClientServerLongRespond, err)
}

func ErrTooManyRequests(err error) *Error {
	return newError(KindRateLimited, "", "", constvars.ErrClientTooManyRequests, err)
}

// ErrPanic wraps a value recovered from a panicking handler.
func ErrPanic(recovered interface{}) error {
	return fmt.Errorf(constvars.ErrDevPanic, recovered)
}
