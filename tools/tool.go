package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

type Tool interface {
	Name() string
	Title() string
	Description() string
	InputSchema() *jsonschema.Schema
	Run(ctx context.Context, input map[string]any) (output map[string]any, err error)
}

// Call is one incoming invocation: a tool name plus its arguments.
type Call struct {
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

// Status of a dispatched call.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the uniform envelope every dispatch returns. Exactly one of
// Payload or Error is set.
type Result struct {
	Status  Status         `json:"status"`
	Payload map[string]any `json:"payload,omitempty"`
	Error   *Error         `json:"error,omitempty"`
}

// Success wraps a handler payload.
func Success(payload map[string]any) Result {
	return Result{Status: StatusSuccess, Payload: payload}
}

// Failure wraps a handler or dispatcher fault.
func Failure(err error) Result {
	return Result{Status: StatusError, Error: AsError(err)}
}
