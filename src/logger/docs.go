// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides CLILogger for human-readable
// command-line output and JSONLogger for one-object-per-line structured output
// that log collectors can ingest when the tools run in CI pipelines.
// Both implementations are safe for concurrent use.
package logger
