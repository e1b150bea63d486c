// Package mcpserver adapts a tool registry and dispatcher to the MCP
// protocol, serving over stdio or streamable HTTP.
package mcpserver

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"mcpbridge"
	"mcpbridge/tools"
)

// Server wraps an MCP server whose tools all route through one dispatcher.
type Server struct {
	name       string
	dispatcher mcpbridge.CallDispatcher
	mcp        *mcp.Server
}

// New builds an MCP server exposing every tool in the provider, in
// registration order. Tool calls go through the dispatcher so validation,
// auditing, and error wrapping stay uniform across transports.
func New(name, version string, provider mcpbridge.ToolProvider, dispatcher mcpbridge.CallDispatcher) *Server {
	s := &Server{
		name:       name,
		dispatcher: dispatcher,
		mcp:        mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil),
	}

	for _, t := range provider.GetTools() {
		s.addTool(t)
	}
	return s
}

func (s *Server) addTool(t tools.Tool) {
	name := t.Name()
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        name,
		Description: t.Description(),
		InputSchema: t.InputSchema(),
		Annotations: &mcp.ToolAnnotations{Title: t.Title()},
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[map[string]any]) (*mcp.CallToolResultFor[any], error) {
		res := s.dispatcher.Dispatch(ctx, tools.Call{Name: name, Input: params.Arguments})
		if res.Status == tools.StatusError {
			// Tool failures are error results, never protocol errors; the
			// server stays up and ready for the next call.
			return &mcp.CallToolResultFor[any]{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: res.Error.Error()}},
			}, nil
		}

		body, err := json.Marshal(res.Payload)
		if err != nil {
			return &mcp.CallToolResultFor[any]{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: tools.E(tools.KindInternal, "failed to encode payload: %v", err).Error()}},
			}, nil
		}
		return &mcp.CallToolResultFor[any]{
			Content:           []mcp.Content{&mcp.TextContent{Text: string(body)}},
			StructuredContent: res.Payload,
		}, nil
	})
}

// RunStdio serves MCP over stdin/stdout until the context is canceled or the
// client disconnects.
func (s *Server) RunStdio(ctx context.Context) error {
	slog.Info("SERVER: Serving MCP over stdio", "server", s.name)
	return s.mcp.Run(ctx, mcp.NewStdioTransport())
}
