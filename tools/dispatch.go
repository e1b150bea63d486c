package tools

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

// CallLog records one dispatched call for auditing.
type CallLog struct {
	Tool      string         `json:"tool"`
	Input     map[string]any `json:"input,omitempty"`
	Status    Status         `json:"status"`
	Error     string         `json:"error,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Duration  time.Duration  `json:"duration_ns"`
}

// CallLogger receives a CallLog per dispatch.
type CallLogger interface {
	LogCall(call CallLog) error
}

// NoOpCallLogger discards all call logs.
type NoOpCallLogger struct{}

func (NoOpCallLogger) LogCall(CallLog) error { return nil }

// Dispatcher routes a Call to its tool: resolve, validate arguments, invoke,
// wrap. Every failure becomes an error Result; nothing is fatal to the caller.
type Dispatcher struct {
	registry *Registry
	logger   CallLogger
}

// NewDispatcher creates a dispatcher over the given registry. A nil logger
// disables call auditing.
func NewDispatcher(registry *Registry, logger CallLogger) *Dispatcher {
	if logger == nil {
		logger = NoOpCallLogger{}
	}
	return &Dispatcher{registry: registry, logger: logger}
}

// Dispatch executes one call end to end. Argument validation happens before
// the tool runs, so an invalid call never reaches the external system.
func (d *Dispatcher) Dispatch(ctx context.Context, call Call) Result {
	start := time.Now()

	tool, err := d.registry.GetTool(call.Name)
	if err != nil {
		return d.finish(call, Failure(err), start)
	}

	if fields := validateInput(tool.InputSchema(), call.Input); len(fields) > 0 {
		return d.finish(call, Failure(InvalidArguments(fields...)), start)
	}

	output, err := tool.Run(ctx, call.Input)
	if err != nil {
		return d.finish(call, Failure(err), start)
	}
	return d.finish(call, Success(output), start)
}

func (d *Dispatcher) finish(call Call, res Result, start time.Time) Result {
	entry := CallLog{
		Tool:      call.Name,
		Input:     call.Input,
		Status:    res.Status,
		Timestamp: start,
		Duration:  time.Since(start),
	}
	if res.Error != nil {
		entry.Error = res.Error.Error()
	}
	if err := d.logger.LogCall(entry); err != nil {
		slog.Warn("DISPATCH: Failed to write call log", "tool", call.Name, "error", err)
	}
	return res
}

// validateInput checks input against the tool's declared schema: every
// required parameter present, every supplied value matching its declared
// primitive type. Returns the offending field names, sorted.
func validateInput(schema *jsonschema.Schema, input map[string]any) []string {
	if schema == nil {
		return nil
	}

	bad := make(map[string]struct{})
	for _, name := range schema.Required {
		if _, ok := input[name]; !ok {
			bad[name] = struct{}{}
		}
	}
	for name, prop := range schema.Properties {
		value, ok := input[name]
		if !ok || prop == nil || prop.Type == "" {
			continue
		}
		if !typeMatches(prop.Type, value) {
			bad[name] = struct{}{}
		}
	}

	fields := make([]string, 0, len(bad))
	for name := range bad {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

func typeMatches(declared string, value any) bool {
	switch declared {
	case "string":
		_, ok := value.(string)
		return ok
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "number":
		switch value.(type) {
		case float64, float32, int, int32, int64:
			return true
		}
		return false
	case "integer":
		switch v := value.(type) {
		case int, int32, int64:
			return true
		case float64:
			// JSON numbers arrive as float64; accept whole values.
			return v == float64(int64(v))
		}
		return false
	case "array":
		_, ok := value.([]any)
		return ok
	case "object":
		_, ok := value.(map[string]any)
		return ok
	default:
		return true
	}
}
