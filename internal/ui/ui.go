// Package ui provides unified terminal output for the forge CLI.
//
// Overview:
//   - Responsibility: Leveled user-facing output, prompts, and JSON mode
//   - Key Types: OutputLevel, Message for structured JSON output
//   - Concurrency Model: Thread-safe output operations
//   - Error Semantics: Output failures are reported on stderr, never returned
//   - Performance Notes: One fmt call per message, minimal allocations
//
// Usage:
//
//	ui.Info("creating module: %s", name)
//	ui.Error("settings registration failed: %v", err)
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
	mu             sync.RWMutex
)

// OutputLevel represents the severity level of a message.
type OutputLevel string

const (
	LevelDebug   OutputLevel = "debug"
	LevelInfo    OutputLevel = "info"
	LevelWarning OutputLevel = "warning"
	LevelError   OutputLevel = "error"
	LevelSuccess OutputLevel = "success"
)

// Message represents a structured output message used in JSON mode.
type Message struct {
	Level     OutputLevel `json:"level"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
}

// SetVerbose enables or disables debug output.
//
// Concurrency:
//   - Thread-safe
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// SetNonInteractive disables interactive prompts. Confirm auto-accepts
// when non-interactive mode is enabled.
//
// Concurrency:
//   - Thread-safe
func SetNonInteractive(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	nonInteractive = enabled
}

// SetJSONOutput switches all output to line-delimited JSON messages.
//
// Concurrency:
//   - Thread-safe
func SetJSONOutput(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonOutput = enabled
}

// Verbose reports whether debug output is enabled.
//
// Concurrency:
//   - Thread-safe
func Verbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// output writes a message to the appropriate output stream.
//
// Parameters:
//   - level: Message severity level
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - Single write per message
func output(level OutputLevel, format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	useVerbose := verbose
	mu.RUnlock()

	if level == LevelDebug && !useVerbose {
		return
	}

	text := fmt.Sprintf(format, args...)

	if useJSON {
		message := Message{
			Level:     level,
			Text:      text,
			Timestamp: time.Now(),
		}
		encoder := json.NewEncoder(os.Stdout)
		if err := encoder.Encode(message); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode JSON output: %v\n", err)
		}
		return
	}

	var writer io.Writer = os.Stdout
	if level == LevelError {
		writer = os.Stderr
	}

	var prefix string
	switch level {
	case LevelDebug:
		prefix = "🔍 DEBUG:"
	case LevelInfo:
		prefix = "ℹ️  INFO:"
	case LevelWarning:
		prefix = "⚠️  WARN:"
	case LevelError:
		prefix = "❌ ERROR:"
	case LevelSuccess:
		prefix = "✅ SUCCESS:"
	}

	fmt.Fprintf(writer, "%s %s\n", prefix, text)
}

// Debug outputs a debug message. Only shown when verbose mode is enabled.
func Debug(format string, args ...any) {
	output(LevelDebug, format, args...)
}

// Info outputs an informational message.
func Info(format string, args ...any) {
	output(LevelInfo, format, args...)
}

// Warning outputs a warning message.
func Warning(format string, args ...any) {
	output(LevelWarning, format, args...)
}

// Error outputs an error message to stderr.
func Error(format string, args ...any) {
	output(LevelError, format, args...)
}

// Success outputs a success message.
func Success(format string, args ...any) {
	output(LevelSuccess, format, args...)
}

// Step outputs a step indicator with message.
//
// Parameters:
//   - step: Step number
//   - total: Total number of steps
//   - format: Printf-style format string
//   - args: Format arguments
//
// Concurrency:
//   - Thread-safe
func Step(step, total int, format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}

	text := fmt.Sprintf(format, args...)
	fmt.Printf("  [%d/%d] %s\n", step, total, text)
}

// Item outputs a single list item, indented under the preceding message.
//
// Concurrency:
//   - Thread-safe
func Item(format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}

	text := fmt.Sprintf(format, args...)
	fmt.Printf("   %s\n", text)
}

// Confirm prompts the user for confirmation.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - bool: True if user confirmed, or when non-interactive mode is enabled
//
// Concurrency:
//   - Single-threaded (blocks on user input)
func Confirm(format string, args ...any) bool {
	mu.RLock()
	nonInt := nonInteractive
	mu.RUnlock()

	if nonInt {
		return true
	}

	text := fmt.Sprintf(format, args...)
	fmt.Printf("❓ %s [y/N]: ", text)

	var response string
	fmt.Scanln(&response)
	return response == "y" || response == "Y" || response == "yes"
}
