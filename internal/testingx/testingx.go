// Package testingx provides testing utilities shared by the scaffolder packages.
//
// Overview:
//   - Responsibility: Testing helpers and fakes
//   - Key Types: CaptureLogger, error-code assertions
//   - Concurrency Model: Thread-safe where needed
//   - Error Semantics: Test failures via testing.T
//
// Usage:
//
//	logger := testingx.NewCaptureLogger()
//	testingx.AssertCode(t, err, errors.CodeAlreadyExists)
package testingx

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"go.eggybyte.com/create-node-api/internal/errors"
	"go.eggybyte.com/create-node-api/internal/log"
)

// LogEntry represents a single captured log entry.
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
	Error   error
}

// CaptureLogger records every log call for later inspection.
type CaptureLogger struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	fields  []any
}

// NewCaptureLogger creates a new capture logger.
func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{
		mu:      &sync.Mutex{},
		entries: &[]LogEntry{},
	}
}

// With returns a logger sharing the same capture buffer with extra fields.
func (c *CaptureLogger) With(kv ...any) log.Logger {
	return &CaptureLogger{
		mu:      c.mu,
		entries: c.entries,
		fields:  append(append([]any{}, c.fields...), kv...),
	}
}

// Debug logs a debug message.
func (c *CaptureLogger) Debug(msg string, kv ...any) {
	c.write("DEBUG", msg, nil, kv)
}

// Info logs an info message.
func (c *CaptureLogger) Info(msg string, kv ...any) {
	c.write("INFO", msg, nil, kv)
}

// Warn logs a warning message.
func (c *CaptureLogger) Warn(msg string, kv ...any) {
	c.write("WARN", msg, nil, kv)
}

// Error logs an error message.
func (c *CaptureLogger) Error(err error, msg string, kv ...any) {
	c.write("ERROR", msg, err, kv)
}

func (c *CaptureLogger) write(level, msg string, err error, kv []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	*c.entries = append(*c.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]any{}, c.fields...), kv...),
		Error:   err,
	})
}

// Entries returns a copy of all captured entries.
func (c *CaptureLogger) Entries() []LogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := make([]LogEntry, len(*c.entries))
	copy(entries, *c.entries)
	return entries
}

// Count returns how many entries have the given level and message.
func (c *CaptureLogger) Count(level, msg string) int {
	n := 0
	for _, entry := range c.Entries() {
		if entry.Level == level && entry.Message == msg {
			n++
		}
	}
	return n
}

// String renders the captured entries one per line.
func (c *CaptureLogger) String() string {
	var b strings.Builder
	for _, entry := range c.Entries() {
		fmt.Fprintf(&b, "%s: %s", entry.Level, entry.Message)
		if entry.Error != nil {
			fmt.Fprintf(&b, " error=%s", entry.Error)
		}
		for _, f := range entry.Fields {
			fmt.Fprintf(&b, " %v", f)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// AssertCode asserts that an error has the expected code.
func AssertCode(t *testing.T, err error, expectedCode errors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error with code %s, got nil", expectedCode)
	}

	if code := errors.CodeOf(err); code != expectedCode {
		t.Errorf("Expected error code %s, got %s (%v)", expectedCode, code, err)
	}
}
