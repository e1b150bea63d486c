package tools

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failed call. UnknownTool and InvalidArguments are produced
// by the dispatcher itself; the remaining kinds are pass-throughs from the
// external system a handler talks to.
type Kind string

const (
	KindUnknownTool        Kind = "UnknownTool"
	KindInvalidArguments   Kind = "InvalidArguments"
	KindNotFound           Kind = "NotFound"
	KindAccessDenied       Kind = "AccessDenied"
	KindFetchError         Kind = "FetchError"
	KindModelError         Kind = "ModelError"
	KindCollectionNotFound Kind = "CollectionNotFound"
	KindEngineUnreachable  Kind = "EngineUnreachable"
	KindResourceNotFound   Kind = "ResourceNotFound"
	KindInternal           Kind = "Internal"
)

// Error is the uniform failure shape surfaced to callers. Fields is only set
// for InvalidArguments and names the offending parameters.
type Error struct {
	Kind    Kind     `json:"kind"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// E builds a tool error of the given kind.
func E(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// InvalidArguments builds the validation failure listing the offending fields.
func InvalidArguments(fields ...string) *Error {
	return &Error{
		Kind:    KindInvalidArguments,
		Message: "invalid arguments",
		Fields:  fields,
	}
}

// KindOf extracts the kind from err, defaulting to Internal for errors that
// did not originate as a *Error.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindInternal
}

// AsError coerces err into a *Error. Foreign errors become Internal, keeping
// their original message.
func AsError(err error) *Error {
	var te *Error
	if errors.As(err, &te) {
		return te
	}
	return &Error{Kind: KindInternal, Message: err.Error()}
}
