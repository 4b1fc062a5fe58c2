// Package ui provides unified console output for the create-node-api CLI.
//
// Overview:
//   - Responsibility: Leveled, optionally colored user messages and JSON output mode
//   - Key Types: Message, OutputLevel
//   - Concurrency Model: Package state guarded by a RWMutex
//   - Error Semantics: Output failures are ignored; messages are best effort
//   - Performance Notes: Unbuffered writes, one line per message
//
// Usage:
//
//	ui.Success("Project %q created successfully!", name)
//	ui.Error("Error creating project: %v", err)
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.eggybyte.com/create-node-api/internal/logx"
)

var (
	verbose    bool
	jsonOutput bool
	mu         sync.RWMutex
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var color = logx.IsTerminal(os.Stdout)

var now = time.Now

// OutputLevel represents the severity level of a message.
type OutputLevel string

const (
	LevelDebug   OutputLevel = "debug"
	LevelInfo    OutputLevel = "info"
	LevelWarning OutputLevel = "warning"
	LevelError   OutputLevel = "error"
	LevelSuccess OutputLevel = "success"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiGray   = "\033[90m"
)

// Message represents a structured output message.
type Message struct {
	Level     OutputLevel `json:"level"`
	Text      string      `json:"text"`
	Data      any         `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SetVerbose enables or disables debug messages.
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// SetJSONOutput enables JSON-formatted output.
func SetJSONOutput(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonOutput = enabled
}

// SetColor forces colored output on or off.
func SetColor(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	color = enabled
}

// SetOutput redirects regular and error output. Color is re-detected from out.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stdout = out
	stderr = errOut
	color = logx.IsTerminal(out)
}

func colorize(code, text string) string {
	mu.RLock()
	enabled := color
	mu.RUnlock()
	if !enabled {
		return text
	}
	return code + text + ansiReset
}

// output writes a message to the appropriate output stream.
func output(level OutputLevel, data any, format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	useVerbose := verbose
	out, errOut := stdout, stderr
	mu.RUnlock()

	if level == LevelDebug && !useVerbose {
		return
	}

	text := fmt.Sprintf(format, args...)

	if useJSON {
		encoder := json.NewEncoder(out)
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(Message{Level: level, Text: text, Data: data, Timestamp: now()}); err != nil {
			fmt.Fprintf(errOut, "Failed to encode JSON output: %v\n", err)
		}
		return
	}

	writer := out
	if level == LevelError {
		writer = errOut
	}

	var prefix string
	switch level {
	case LevelDebug:
		prefix = colorize(ansiGray, "🔍 DEBUG:")
	case LevelInfo:
		prefix = colorize(ansiBlue, "ℹ️  INFO:")
	case LevelWarning:
		prefix = colorize(ansiYellow, "⚠️  WARN:")
	case LevelError:
		prefix = colorize(ansiRed+ansiBold, "❌ ERROR:")
	case LevelSuccess:
		prefix = colorize(ansiGreen+ansiBold, "✅ SUCCESS:")
	}

	fmt.Fprintf(writer, "%s %s\n", prefix, text)
}

// Debug outputs a debug message. Shown only in verbose mode.
func Debug(format string, args ...any) {
	output(LevelDebug, nil, format, args...)
}

// Info outputs an informational message.
func Info(format string, args ...any) {
	output(LevelInfo, nil, format, args...)
}

// Warning outputs a warning message.
func Warning(format string, args ...any) {
	output(LevelWarning, nil, format, args...)
}

// Error outputs an error message to the error stream.
func Error(format string, args ...any) {
	output(LevelError, nil, format, args...)
}

// Success outputs a success message.
func Success(format string, args ...any) {
	output(LevelSuccess, nil, format, args...)
}

// SuccessWithData outputs a success message carrying structured data.
// The data is only visible in JSON mode.
func SuccessWithData(data any, format string, args ...any) {
	output(LevelSuccess, data, format, args...)
}

// Banner prints a bold title line. Suppressed in JSON mode.
func Banner(format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		return
	}
	fmt.Fprintf(out, "\n%s\n\n", colorize(ansiBlue+ansiBold, fmt.Sprintf(format, args...)))
}

// Step outputs a numbered step. In JSON mode it is reported as an info message.
func Step(step int, format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}

	fmt.Fprintf(out, "  %d. %s\n", step, fmt.Sprintf(format, args...))
}

// Plain writes an unprefixed line. Suppressed in JSON mode.
func Plain(format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		return
	}
	fmt.Fprintf(out, format+"\n", args...)
}

// Heading writes a highlighted section title. Suppressed in JSON mode.
func Heading(format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		return
	}
	fmt.Fprintln(out, colorize(ansiYellow, fmt.Sprintf(format, args...)))
}
