// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verify

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/tls-root-bundle/src/internal/x509/certs"
)

// DefaultTimeout bounds a single URL check.
const DefaultTimeout = 20 * time.Second

// Status is the outcome category of a URL check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusSkip Status = "SKIP"
)

// Result is the outcome of checking one URL.
type Result struct {
	URL      string
	Status   Status
	Err      error // nil for StatusPass
	Duration time.Duration
}

// String renders the result as "<STATUS> <url>", followed by the error for
// skipped URLs.
func (r Result) String() string {
	if r.Status == StatusSkip && r.Err != nil {
		return fmt.Sprintf("%s %s %v", r.Status, r.URL, r.Err)
	}
	return fmt.Sprintf("%s %s", r.Status, r.URL)
}

// LoadPool reads the PEM bundle at path and returns a pool holding every
// certificate of it, together with the number of certificates added.
func LoadPool(fs afero.Fs, path string) (*x509.CertPool, int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("verify: %w", err)
	}
	defer f.Close()

	data, err := gc.ReadAll(gc.Default, f)
	if err != nil {
		return nil, 0, fmt.Errorf("verify: read %s: %w", path, err)
	}

	certs, err := x509certs.New().DecodeBundle(data)
	if err != nil {
		return nil, 0, fmt.Errorf("verify: %s: %w", path, err)
	}

	pool := x509.NewCertPool()
	for _, cert := range certs {
		pool.AddCert(cert)
	}

	return pool, len(certs), nil
}

// Checker performs GET requests trusting only Roots.
type Checker struct {
	Roots     *x509.CertPool
	Timeout   time.Duration
	UserAgent string

	once   sync.Once
	client *http.Client
}

// NewChecker creates a Checker with [DefaultTimeout].
func NewChecker(roots *x509.CertPool, userAgent string) *Checker {
	return &Checker{
		Roots:     roots,
		Timeout:   DefaultTimeout,
		UserAgent: userAgent,
	}
}

func (c *Checker) httpClient() *http.Client {
	c.once.Do(func() {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{RootCAs: c.Roots}
		c.client = &http.Client{
			Transport: transport,
			Timeout:   c.Timeout,
		}
	})
	return c.client
}

// Check requests url and classifies the outcome.
func (c *Checker) Check(ctx context.Context, url string) Result {
	start := time.Now()
	err := c.get(ctx, url)
	res := Result{
		URL:      url,
		Status:   classify(err),
		Err:      err,
		Duration: time.Since(start),
	}
	return res
}

func (c *Checker) get(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused for the next URL on the same host.
	_, err = io.Copy(io.Discard, resp.Body)
	return err
}

// classify maps a request error to a status. Errors raised while establishing
// TLS trust are failures of the bundle; everything else is skipped.
func classify(err error) Status {
	if err == nil {
		return StatusPass
	}

	var (
		verifyErr   *tls.CertificateVerificationError
		alertErr    tls.AlertError
		recordErr   tls.RecordHeaderError
		unknownErr  x509.UnknownAuthorityError
		invalidErr  x509.CertificateInvalidError
		hostnameErr x509.HostnameError
	)

	switch {
	case errors.As(err, &verifyErr),
		errors.As(err, &unknownErr),
		errors.As(err, &invalidErr),
		errors.As(err, &hostnameErr),
		errors.As(err, &alertErr),
		errors.As(err, &recordErr):
		return StatusFail
	default:
		return StatusSkip
	}
}

// Summary collects the results of a run.
type Summary struct {
	Pass    int
	Fail    int
	Skip    int
	Results []Result
}

func (s *Summary) add(r Result) {
	switch r.Status {
	case StatusPass:
		s.Pass++
	case StatusFail:
		s.Fail++
	default:
		s.Skip++
	}
	s.Results = append(s.Results, r)
}

// Run checks urls in order, calling report, when non-nil, after each one.
// It stops early only when ctx is cancelled.
func (c *Checker) Run(ctx context.Context, urls []string, report func(Result)) (*Summary, error) {
	s := &Summary{Results: make([]Result, 0, len(urls))}

	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return s, err
		}

		r := c.Check(ctx, url)
		s.add(r)
		if report != nil {
			report(r)
		}
	}

	return s, nil
}
