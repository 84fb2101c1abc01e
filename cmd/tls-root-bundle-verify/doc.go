// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// tls-root-bundle-verify checks that a root bundle produced by tls-root-bundle
// can establish TLS to a list of sites.
//
// Every URL is requested with redirects followed, trusting only the bundle.
// Each result is printed as one line:
//
//	PASS https://example.com/
//	FAIL https://self-signed.example/
//	SKIP https://unreachable.example/ dial tcp: lookup unreachable.example: no such host
//
// FAIL means the server certificate could not be verified against the
// bundle. SKIP covers every other error, such as DNS failures, refused
// connections and timeouts. The HTTP status code is ignored.
//
// # Flags
//
//	--certs     PEM bundle to trust (default: roots.pem)
//	--urls      One URL per line, '#' comments allowed (default: urls.txt)
//	--timeout   Per-request timeout (default: 20s)
//	--table     Print a markdown table of all results
//	--no-color  Disable colored status words
//	--strict    Exit 1 when any URL fails
package main
