// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/tls-root-bundle/src/cli"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/logger"
	verpkg "github.com/H0llyW00dzZ/tls-root-bundle/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitInterrupt = 130 // Standard exit code for SIGINT
)

func main() {
	log := logger.NewCLILogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, log, cli.Execute)
	stop()
	os.Exit(code)
}

// run executes the command in a separate goroutine and maps its outcome to an
// exit code. A cancelled ctx wins over a still-running command.
func run(ctx context.Context, log logger.Logger, execute func(context.Context, string, logger.Logger) error) int {
	done := make(chan error, 1)

	go func() {
		done <- execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("Bundle build failed: %v", err)
			return exitFailure
		}
		return exitOK
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		// Give the command a moment to remove its temporary output
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		return exitInterrupt
	}
}
