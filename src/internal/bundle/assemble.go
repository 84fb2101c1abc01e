// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bundle

import (
	"context"
	"crypto/x509"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/filter"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/tls-root-bundle/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/x509/issuer"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/logger"
)

// Assembler selects certificates and writes them as a PEM bundle.
type Assembler struct {
	Policy *filter.Policy
	// Comment precedes every written certificate with its issuer identity line.
	Comment bool
	Encoder *x509certs.Certificate
	// Log receives one line per selected certificate. Nil disables it.
	Log logger.Logger
}

// New creates an Assembler for policy.
func New(policy *filter.Policy, comment bool) *Assembler {
	return &Assembler{
		Policy:  policy,
		Comment: comment,
		Encoder: x509certs.New(),
	}
}

// Entry records how one input certificate was classified.
type Entry struct {
	// Index is the 0-based position of the certificate in the input stream.
	Index    int
	Identity issuer.Identity
	Decision filter.Decision
}

// Result summarizes an assembly run.
type Result struct {
	Total    int
	Selected int
	Entries  []Entry
}

// Assemble classifies certs in order and writes the selected ones to w.
//
// Each selected certificate is encoded into a pooled buffer and flushed to w
// before the next one is examined. A certificate whose issuer has no usable
// identity stops assembly with an error wrapping [*issuer.MissingIdentityError];
// whatever was already written to w must then be discarded by the caller.
func (a *Assembler) Assemble(ctx context.Context, certs []*x509.Certificate, w io.Writer) (*Result, error) {
	res := &Result{
		Total:   len(certs),
		Entries: make([]Entry, 0, len(certs)),
	}

	for i, cert := range certs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id, err := issuer.Extract(cert)
		if err != nil {
			return nil, fmt.Errorf("certificate #%d: %w", i+1, err)
		}

		d := a.Policy.Decide(id)
		res.Entries = append(res.Entries, Entry{Index: i, Identity: id, Decision: d})
		if !d.Included {
			continue
		}

		if err := a.write(w, id, cert); err != nil {
			return nil, fmt.Errorf("bundle: write certificate #%d: %w", i+1, err)
		}
		res.Selected++

		if a.Log != nil {
			a.Log.Printf("selected #%d %s", i+1, id)
		}
	}

	return res, nil
}

func (a *Assembler) write(w io.Writer, id issuer.Identity, cert *x509.Certificate) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if a.Comment {
		buf.WriteString(id.Comment())
		buf.WriteByte('\n')
	}

	if err := a.Encoder.WritePEM(buf, cert); err != nil {
		return err
	}

	_, err := buf.WriteTo(w)
	return err
}
