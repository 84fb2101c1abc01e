// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package source retrieves the raw PEM inputs of a root bundle.
//
// A source is either an http(s) URL, fetched with a versioned User-Agent and a
// bounded timeout, or a path on an [afero.Fs]. Sources are read one at a time,
// each fully consumed and closed before the next is opened, and concatenated in
// the order given. Any failure aborts retrieval with a [*RetrievalError]; a
// bundle built from a subset of its sources is never produced.
package source
