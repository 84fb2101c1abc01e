// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/afero"

	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/logger"
)

// ErrRetrieval indicates that a source could not be fetched or read.
var ErrRetrieval = errors.New("source: retrieval failed")

// RetrievalError reports the source that could not be retrieved.
type RetrievalError struct {
	Source string
	Err    error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrRetrieval, e.Source, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// Is reports ErrRetrieval as a match regardless of the underlying cause.
func (e *RetrievalError) Is(target error) bool { return target == ErrRetrieval }

// IsURL reports whether src is fetched over HTTP rather than read from disk.
func IsURL(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fetcher reads sources from the network or a filesystem.
type Fetcher struct {
	HTTPConfig *HTTPConfig
	Fs         afero.Fs
	// Log receives one line per retrieved source. Nil disables it.
	Log logger.Logger
}

// New creates a Fetcher reading local sources from fs.
func New(fs afero.Fs, version string) *Fetcher {
	return &Fetcher{
		HTTPConfig: NewHTTPConfig(version),
		Fs:         fs,
	}
}

// Fetch returns the full content of src.
func (f *Fetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if IsURL(src) {
		data, err = f.fetchURL(ctx, src)
	} else {
		data, err = f.readFile(src)
	}
	if err != nil {
		return nil, &RetrievalError{Source: src, Err: err}
	}

	if f.Log != nil {
		f.Log.Printf("fetched %s (%d bytes)", src, len(data))
	}

	return data, nil
}

// Concat fetches every source in order and concatenates their contents. A
// newline is inserted after any source that does not end with one, so the
// last line of one source cannot merge with the first line of the next.
func (f *Fetcher) Concat(ctx context.Context, sources []string) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := f.Fetch(ctx, src)
		if err != nil {
			return nil, err
		}

		buf.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			buf.WriteByte('\n')
		}
	}

	return append([]byte(nil), buf.Bytes()...), nil
}

func (f *Fetcher) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", f.HTTPConfig.GetUserAgent())

	resp, err := f.HTTPConfig.Client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected HTTP status %s", resp.Status)
	}

	return gc.ReadAll(gc.Default, resp.Body)
}

func (f *Fetcher) readFile(path string) ([]byte, error) {
	file, err := f.Fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return gc.ReadAll(gc.Default, file)
}
