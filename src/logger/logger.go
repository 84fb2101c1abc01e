// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output and a way to redirect it.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to stdout with timestamps disabled.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// Discard returns a Logger that drops everything written to it.
func Discard() Logger {
	l := NewCLILogger()
	l.SetOutput(io.Discard)
	return l
}

// JSONLogger implements Logger by writing one JSON object per line:
//
//	{"level":"info","message":"selected 3 of 140 certificates"}
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	level  string
	silent bool
}

// NewJSONLogger creates a JSON logger tagging every entry with level.
// A nil writer is replaced with [io.Discard]; an empty level defaults to "info".
// When silent is true all output is suppressed.
func NewJSONLogger(writer io.Writer, level string, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	if level == "" {
		level = "info"
	}
	return &JSONLogger{
		writer: writer,
		level:  level,
		silent: silent,
	}
}

// Printf formats and logs a structured message.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message. Operands are joined with spaces,
// matching [fmt.Sprintln] without the trailing newline.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	msg := fmt.Sprintln(v...)
	j.write(msg[:len(msg)-1])
}

// SetOutput sets the output destination for the JSON logger.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}

func (j *JSONLogger) write(msg string) {
	entry := struct {
		Level   string `json:"level"`
		Message string `json:"message"`
	}{Level: j.level, Message: msg}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	// Encoder appends the trailing newline.
	if err := json.NewEncoder(buf).Encode(entry); err != nil {
		return
	}

	j.mu.Lock()
	buf.WriteTo(j.writer)
	j.mu.Unlock()
}
