// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"context"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-root-bundle/src/cli"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/x509/certtest"
)

func (h *harness) verify(args ...string) error {
	cmd := cli.NewVerifyCommand(version, h.logger(), h.env())
	cmd.SetArgs(args)
	cmd.SetOut(h.stdout)
	cmd.SetErr(h.stderr)
	return cmd.ExecuteContext(context.Background())
}

func TestVerifyCommand(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)

	trusted := string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw}))
	untrusted := string(certtest.PEM(certtest.New(t, certName("Acme Corp", "Acme Root CA"))))

	tests := []struct {
		name     string
		files    map[string]string
		args     []string
		testFunc func(t *testing.T, h *harness, err error)
	}{
		{
			name: "trusted server passes",
			files: map[string]string{
				"roots.pem": trusted,
				"urls.txt":  "# smoke test\n" + srv.URL + "\n",
			},
			args: []string{"--no-color"},
			testFunc: func(t *testing.T, h *harness, err error) {
				require.NoError(t, err)
				assert.Equal(t, "PASS "+srv.URL+"\n", h.stdout.String())
				assert.Contains(t, h.log.String(), "1 passed, 0 failed, 0 skipped")
			},
		},
		{
			name: "unknown authority fails",
			files: map[string]string{
				"bundle.pem": untrusted,
				"sites.txt":  srv.URL,
			},
			args: []string{"--certs", "bundle.pem", "--urls", "sites.txt", "--no-color"},
			testFunc: func(t *testing.T, h *harness, err error) {
				require.NoError(t, err)
				assert.Contains(t, h.stdout.String(), "FAIL "+srv.URL)
			},
		},
		{
			name: "strict mode reports failures",
			files: map[string]string{
				"roots.pem": untrusted,
				"urls.txt":  srv.URL,
			},
			args: []string{"--strict", "--no-color"},
			testFunc: func(t *testing.T, h *harness, err error) {
				require.ErrorIs(t, err, cli.ErrVerifyFailed)
			},
		},
		{
			name: "unreachable host is skipped",
			files: map[string]string{
				"roots.pem": trusted,
				"urls.txt":  "https://127.0.0.1:1/\n",
			},
			args: []string{"--no-color", "--strict", "--table"},
			testFunc: func(t *testing.T, h *harness, err error) {
				require.NoError(t, err)
				assert.Contains(t, h.stdout.String(), "SKIP https://127.0.0.1:1/")
				assert.Equal(t, 2, strings.Count(h.stdout.String(), "https://127.0.0.1:1/"))
			},
		},
		{
			name: "missing bundle",
			files: map[string]string{
				"urls.txt": srv.URL,
			},
			args: []string{},
			testFunc: func(t *testing.T, h *harness, err error) {
				require.Error(t, err)
				assert.Empty(t, h.stdout.String())
			},
		},
		{
			name: "missing url list",
			files: map[string]string{
				"roots.pem": trusted,
			},
			args: []string{},
			testFunc: func(t *testing.T, h *harness, err error) {
				require.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.files)
			err := h.verify(tt.args...)
			tt.testFunc(t, h, err)
		})
	}
}
