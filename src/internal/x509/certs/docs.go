// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides decoding and encoding of [PEM] bundles of [X.509] certificates.
// It parses concatenated PEM streams such as curl's cacert.pem into certificates in
// source order, expands embedded [PKCS7] blocks, and writes certificates back out in
// their canonical PEM form.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
