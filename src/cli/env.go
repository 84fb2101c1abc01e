// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/H0llyW00dzZ/tls-root-bundle/src/logger"
)

// ErrInvalidLogFormat indicates an unsupported --log-format value.
var ErrInvalidLogFormat = errors.New("cli: log format must be \"text\" or \"json\"")

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// Env carries the process resources a command works with.
type Env struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultEnv returns an Env bound to the real filesystem and standard streams.
func DefaultEnv() *Env {
	return &Env{
		Fs:     afero.NewOsFs(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// loggers returns the progress logger and, when verbose, the diagnostic trace
// logger for the requested format. Diagnostics always go to stderr. Progress
// keeps the caller's logger in text mode; when the bundle itself is streamed
// to stdout, progress is moved to stderr so it cannot corrupt the PEM output.
func (e *Env) loggers(log logger.Logger, format string, verbose, streaming bool) (logger.Logger, logger.Logger, error) {
	var trace logger.Logger

	progress := e.Stdout
	if streaming {
		progress = e.Stderr
	}

	switch format {
	case logFormatText:
		if streaming {
			log.SetOutput(progress)
		}
		if verbose {
			l := logger.NewCLILogger()
			l.SetOutput(e.Stderr)
			trace = l
		}
	case logFormatJSON:
		log = logger.NewJSONLogger(progress, "info", false)
		if verbose {
			trace = logger.NewJSONLogger(e.Stderr, "debug", false)
		}
	default:
		return nil, nil, fmt.Errorf("%w, got %q", ErrInvalidLogFormat, format)
	}

	return log, trace, nil
}
