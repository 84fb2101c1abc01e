// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package filter implements the issuer selection policy of the root bundle builder.
//
// A [Policy] holds two ordered [PatternSet] values. A certificate is selected when
// at least one include pattern matches its issuer Organization-Name or
// Common-Name and no exclude pattern matches either of them. Patterns are
// case-insensitive regular expressions searched anywhere in the field, so
// "verisign" selects "VeriSign, Inc.".
//
// Pattern files hold one expression per line. Blank lines and lines whose first
// non-space character is '#' are skipped:
//
//	# public roots we ship
//	DigiCert
//	^ISRG Root X[12]$
//	Let's Encrypt
package filter
