// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package verify smoke-tests a root bundle against real TLS endpoints.
//
// Every URL is requested with the bundle as the only set of trusted roots and
// the outcome is reported as one of three statuses:
//
//   - PASS: the request completed, whatever the HTTP status code
//   - FAIL: the TLS handshake failed, most often because no root in the
//     bundle anchors the server's chain
//   - SKIP: anything unrelated to TLS trust, such as DNS or connection errors
//     and timeouts
//
// URLs are checked one after another. Redirects are followed.
package verify
