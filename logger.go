package mcpbridge

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"mcpbridge/tools"
)

// FileCallLogger logs to a file, accumulating calls and flushing at the end.
// The hosting runtime may dispatch calls concurrently, so the buffer is
// mutex-guarded.
type FileCallLogger struct {
	mu     sync.Mutex
	calls  []tools.CallLog
	writer io.Writer
}

// NewFileCallLogger creates a new file-based call logger.
func NewFileCallLogger(writer io.Writer) *FileCallLogger {
	return &FileCallLogger{
		calls:  make([]tools.CallLog, 0),
		writer: writer,
	}
}

// LogCall appends the call to the buffer (does not flush immediately).
func (fcl *FileCallLogger) LogCall(call tools.CallLog) error {
	fcl.mu.Lock()
	fcl.calls = append(fcl.calls, call)
	fcl.mu.Unlock()
	return nil
}

// Flush writes all accumulated calls to the writer.
func (fcl *FileCallLogger) Flush() error {
	fcl.mu.Lock()
	defer fcl.mu.Unlock()

	if fcl.writer == nil {
		return nil
	}

	data, err := json.MarshalIndent(map[string]any{
		"call_session": map[string]any{
			"timestamp": time.Now(),
			"calls":     fcl.calls,
		},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal call log: %w", err)
	}

	if _, err := fcl.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write call log: %w", err)
	}

	fcl.calls = fcl.calls[:0]
	return nil
}

// StdoutCallLogger writes each call as a JSON line to stdout.
type StdoutCallLogger struct{}

// NewStdoutCallLogger creates a new stdout-based call logger.
func NewStdoutCallLogger() *StdoutCallLogger {
	return &StdoutCallLogger{}
}

// LogCall writes the call as a JSON line to os.Stdout.
func (l *StdoutCallLogger) LogCall(call tools.CallLog) error {
	data, err := json.Marshal(call)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
