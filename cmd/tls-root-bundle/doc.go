// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// tls-root-bundle builds a curated root certificate bundle from one or more
// PEM sources.
//
// Sources are concatenated in the order given and every certificate whose
// issuer Organization-Name or Common-Name matches an include pattern, and no
// exclude pattern, is written to the output in input order. Duplicates are
// kept. The output file is only replaced once every certificate was
// classified successfully.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/tls-root-bundle/cmd/tls-root-bundle@latest
//
// # Flags
//
//	-s, --sources     PEM source URL or path, repeatable
//	                  (default: https://curl.se/ca/cacert.pem, supplement.pem)
//	-o, --out         Output bundle, "-" for stdout (default: roots.pem)
//	-i, --include     Include pattern file (default: include.txt)
//	-e, --exclude     Exclude pattern file (default: exclude.txt)
//	-c, --comment     Precede each certificate with "# O=<org>, CN=<cn>"
//	    --table       Print the classification of every certificate
//	-v, --verbose     Trace pattern matches on stderr
//	    --timeout     Per-source download timeout (default: 30s)
//	    --log-format  "text" or "json" (default: text)
//	    --config      JSON or YAML file with defaults for the flags above
//
// # Pattern files
//
// One case-insensitive regular expression per line, matched anywhere in the
// value. Blank lines and lines starting with '#' are ignored:
//
//	# include.txt
//	^DigiCert
//	ISRG Root
//
// An empty include file selects nothing.
//
// # Exit codes
//
//	0    bundle written
//	1    any error (bad pattern, unreachable source, issuer without O and CN)
//	130  interrupted
package main
