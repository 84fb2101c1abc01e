// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/tls-root-bundle/src/logger"
	verpkg "github.com/H0llyW00dzZ/tls-root-bundle/src/version"
)

func TestVersionInit(t *testing.T) {
	assert.NotEmpty(t, version, "version should not be empty after init")

	if version != verpkg.Version {
		// Set by ldflags, which is also valid
		t.Logf("version set by ldflags: %s (package version: %s)", version, verpkg.Version)
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		cancel   bool
		execute  func(ctx context.Context, v string, log logger.Logger) error
		wantCode int
	}{
		{
			name: "success",
			execute: func(ctx context.Context, v string, log logger.Logger) error {
				return nil
			},
			wantCode: exitOK,
		},
		{
			name: "failure",
			execute: func(ctx context.Context, v string, log logger.Logger) error {
				return errors.New("boom")
			},
			wantCode: exitFailure,
		},
		{
			name:   "interrupted",
			cancel: true,
			execute: func(ctx context.Context, v string, log logger.Logger) error {
				<-ctx.Done()
				select {} // never returns; run must not wait forever
			},
			wantCode: exitInterrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			assert.Equal(t, tt.wantCode, run(ctx, logger.Discard(), tt.execute))
		})
	}
}
