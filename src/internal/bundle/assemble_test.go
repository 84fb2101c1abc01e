// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bundle_test

import (
	"bytes"
	"context"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/bundle"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/filter"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/x509/certtest"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/x509/issuer"
)

func policy(t *testing.T, include, exclude []string) *filter.Policy {
	t.Helper()

	inc, err := filter.NewSet(include...)
	require.NoError(t, err)
	exc, err := filter.NewSet(exclude...)
	require.NoError(t, err)

	return &filter.Policy{Include: inc, Exclude: exc}
}

// decodeAll returns the certificates of a PEM stream in order.
func decodeAll(t *testing.T, data []byte) []*x509.Certificate {
	t.Helper()

	var certs []*x509.Certificate
	for {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		require.NoError(t, err)
		certs = append(certs, cert)
		data = rest
	}
	return certs
}

func TestAssemble_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Single DigiCert certificate with comment",
			testFunc: func(t *testing.T) {
				cert := certtest.Org(t, "DigiCert Inc")

				var out bytes.Buffer
				a := bundle.New(policy(t, []string{"DigiCert"}, nil), true)
				res, err := a.Assemble(context.Background(), []*x509.Certificate{cert}, &out)
				require.NoError(t, err)

				assert.Equal(t, 1, res.Total)
				assert.Equal(t, 1, res.Selected)

				expected := "# O=DigiCert Inc, CN=\n" + string(certtest.PEM(cert))
				assert.Equal(t, expected, out.String())
			},
		},
		{
			name: "Match-all include with Test exclude",
			testFunc: func(t *testing.T) {
				acme := certtest.Org(t, "Acme")
				acmeTest := certtest.Org(t, "Acme Test CA")

				var out bytes.Buffer
				a := bundle.New(policy(t, []string{".*"}, []string{"Test"}), false)
				res, err := a.Assemble(context.Background(), []*x509.Certificate{acme, acmeTest}, &out)
				require.NoError(t, err)

				assert.Equal(t, 1, res.Selected)
				assert.Equal(t, string(certtest.PEM(acme)), out.String())
				require.Len(t, res.Entries, 2)
				assert.Equal(t, "excluded", res.Entries[1].Verdict())
				assert.Equal(t, "Test", res.Entries[1].Pattern())
			},
		},
		{
			name: "Include file with only a comment selects nothing",
			testFunc: func(t *testing.T) {
				inc, err := filter.Load(strings.NewReader("# nothing here\n"), "include.txt")
				require.NoError(t, err)

				certs := []*x509.Certificate{
					certtest.Org(t, "Acme"),
					certtest.Org(t, "DigiCert Inc"),
					certtest.New(t, pkix.Name{CommonName: "ISRG Root X1"}),
				}

				var out bytes.Buffer
				a := bundle.New(&filter.Policy{Include: inc}, true)
				res, err := a.Assemble(context.Background(), certs, &out)
				require.NoError(t, err)

				assert.Equal(t, 3, res.Total)
				assert.Equal(t, 0, res.Selected)
				assert.Empty(t, out.String())
			},
		},
		{
			name: "Byte-identical duplicates are both written",
			testFunc: func(t *testing.T) {
				cert := certtest.Org(t, "Acme")

				var out bytes.Buffer
				a := bundle.New(policy(t, []string{"Acme"}, nil), false)
				res, err := a.Assemble(context.Background(), []*x509.Certificate{cert, cert}, &out)
				require.NoError(t, err)

				assert.Equal(t, 2, res.Selected)
				assert.Equal(t, string(certtest.PEM(cert, cert)), out.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestAssemble_OrderPreserved(t *testing.T) {
	names := []string{"Zeta Root", "Acme", "Mu Trust", "Beta Test", "Acme Staging", "Alpha Root"}
	certs := make([]*x509.Certificate, len(names))
	for i, n := range names {
		certs[i] = certtest.Org(t, n)
	}

	var out bytes.Buffer
	a := bundle.New(policy(t, []string{"root", "acme", "beta"}, []string{"staging"}), false)
	_, err := a.Assemble(context.Background(), certs, &out)
	require.NoError(t, err)

	got := decodeAll(t, out.Bytes())
	want := []*x509.Certificate{certs[0], certs[1], certs[3], certs[5]}
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "position %d", i)
	}
}

func TestAssemble_EmptyIncludeSelectsNothing(t *testing.T) {
	certs := []*x509.Certificate{
		certtest.Org(t, "Acme"),
		certtest.New(t, pkix.Name{CommonName: "Root"}),
	}

	for _, exclude := range [][]string{nil, {".*"}, {"nothing-matches-this"}} {
		var out bytes.Buffer
		a := bundle.New(policy(t, nil, exclude), true)
		res, err := a.Assemble(context.Background(), certs, &out)
		require.NoError(t, err)
		assert.Zero(t, res.Selected)
		assert.Zero(t, out.Len())
	}
}

func TestAssemble_ExcludeDominates(t *testing.T) {
	cert := certtest.New(t, pkix.Name{Organization: []string{"Acme"}, CommonName: "Acme Legacy Root"})

	var out bytes.Buffer
	a := bundle.New(policy(t, []string{"Acme"}, []string{"legacy"}), false)
	res, err := a.Assemble(context.Background(), []*x509.Certificate{cert}, &out)
	require.NoError(t, err)
	assert.Zero(t, res.Selected)
	assert.Zero(t, out.Len())
}

func TestAssemble_Idempotent(t *testing.T) {
	certs := []*x509.Certificate{
		certtest.Org(t, "VeriSign, Inc."),
		certtest.Org(t, "Acme Test CA"),
		certtest.New(t, pkix.Name{CommonName: "ISRG Root X1"}),
	}
	p := policy(t, []string{"verisign", "isrg"}, []string{"test"})

	var first, second bytes.Buffer
	_, err := bundle.New(p, true).Assemble(context.Background(), certs, &first)
	require.NoError(t, err)
	_, err = bundle.New(p, true).Assemble(context.Background(), certs, &second)
	require.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
	assert.Contains(t, first.String(), "# O=VeriSign, Inc., CN=\n")
	assert.Contains(t, first.String(), "# O=, CN=ISRG Root X1\n")
}

func TestAssemble_MissingIdentity(t *testing.T) {
	certs := []*x509.Certificate{
		certtest.Org(t, "Acme"),
		certtest.New(t, pkix.Name{Country: []string{"US"}}),
		certtest.Org(t, "Acme Again"),
	}

	var out bytes.Buffer
	a := bundle.New(policy(t, []string{".*"}, nil), false)
	res, err := a.Assemble(context.Background(), certs, &out)
	assert.Nil(t, res)
	require.ErrorIs(t, err, issuer.ErrMissingIdentity)
	assert.Contains(t, err.Error(), "certificate #2")
	assert.Contains(t, err.Error(), "C=US")

	// Nothing after the offending certificate was examined.
	assert.Len(t, decodeAll(t, out.Bytes()), 1)
}

func TestAssemble_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := bundle.New(policy(t, []string{".*"}, nil), false)
	_, err := a.Assemble(ctx, []*x509.Certificate{certtest.Org(t, "Acme")}, &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestAssemble_WriteError(t *testing.T) {
	a := bundle.New(policy(t, []string{".*"}, nil), true)
	_, err := a.Assemble(context.Background(), []*x509.Certificate{certtest.Org(t, "Acme")}, failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestResult_RenderTable(t *testing.T) {
	certs := []*x509.Certificate{
		certtest.Org(t, "Acme"),
		certtest.Org(t, "Acme Test CA"),
		certtest.Org(t, "Other"),
	}

	a := bundle.New(policy(t, []string{"acme"}, []string{"test"}), false)
	res, err := a.Assemble(context.Background(), certs, &bytes.Buffer{})
	require.NoError(t, err)

	table := res.RenderTable()
	assert.Contains(t, strings.ToUpper(table), "ORGANIZATION")
	assert.Contains(t, table, "Acme Test CA")
	assert.Contains(t, table, "included")
	assert.Contains(t, table, "excluded")
	assert.Contains(t, table, "no match")

	empty := &bundle.Result{}
	assert.Equal(t, "No certificates to display", empty.RenderTable())
}
