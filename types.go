package mcpbridge

import (
	"context"

	"mcpbridge/tools"
)

type ToolProvider interface {
	GetTools() []tools.Tool
	GetTool(name string) (tools.Tool, error)
}

// CallDispatcher is the envelope every server speaks: one call in, one result
// out, errors carried inside the result.
type CallDispatcher interface {
	Dispatch(ctx context.Context, call tools.Call) tools.Result
}
