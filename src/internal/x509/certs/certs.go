// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidBlockType indicates a PEM block that is neither a certificate nor PKCS7 data.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrMalformedPEM indicates a PEM block whose armor or base64 body cannot be decoded,
	// including a BEGIN line without a matching END line.
	ErrMalformedPEM = errors.New("x509certs: malformed PEM block")

	// ErrNoCertificates indicates that the input did not contain a single PEM certificate.
	ErrNoCertificates = errors.New("x509certs: no certificates found")
)

var pemBegin = []byte("-----BEGIN ")

const (
	blockTypeCertificate = "CERTIFICATE"
	blockTypePKCS7       = "PKCS7"
)

// ParseError reports which PEM block of a bundle could not be decoded.
type ParseError struct {
	Block     int    // 1-based position of the PEM block in the stream
	BlockType string // PEM block type as found in the header
	Err       error  // one of the package sentinels, possibly wrapping the cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PEM block #%d (%s): %v", e.Block, e.BlockType, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Certificate provides methods to decode and encode [X.509] certificates.
// It maintains internal configuration such as the certificate block type.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: blockTypeCertificate,
	}
}

// IsPEM checks if the data contains at least one PEM block.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// DecodeBundle decodes every certificate of a concatenated PEM stream.
//
// Certificates are returned in stream order. Text outside PEM blocks, such as
// the license header and per-certificate titles of a Mozilla-derived bundle, is
// ignored. A block that cannot be decoded, including a BEGIN line with no END
// line, fails with [ErrMalformedPEM] instead of being skipped. A "PKCS7" block
// contributes its embedded certificates in their stored order. Any other block
// type, or a block that fails to parse, aborts the whole decode with a
// [*ParseError].
func (c *Certificate) DecodeBundle(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate

	for n := 1; ; n++ {
		start := bytes.Index(data, pemBegin)
		if start < 0 {
			break
		}
		data = data[start:]

		// pem.Decode silently skips a block it cannot decode and returns the
		// next one, so anything it consumed past this BEGIN line must not
		// hold another one.
		block, rest := pem.Decode(data)
		if block == nil || bytes.Contains(data[len(pemBegin):len(data)-len(rest)], pemBegin) {
			return nil, &ParseError{Block: n, BlockType: armorType(data), Err: ErrMalformedPEM}
		}
		data = rest

		switch block.Type {
		case c.certBlockType:
			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, &ParseError{Block: n, BlockType: block.Type, Err: fmt.Errorf("%w: %w", ErrParseCertificate, err)}
			}
			certs = append(certs, cert)
		case blockTypePKCS7:
			p, err := pkcs7.ParsePKCS7(block.Bytes)
			if err != nil {
				return nil, &ParseError{Block: n, BlockType: block.Type, Err: fmt.Errorf("%w: %w", ErrParsePKCS7, err)}
			}
			if len(p.Content.SignedData.Certificates) == 0 {
				return nil, &ParseError{Block: n, BlockType: block.Type, Err: ErrParsePKCS7}
			}
			certs = append(certs, p.Content.SignedData.Certificates...)
		default:
			return nil, &ParseError{Block: n, BlockType: block.Type, Err: ErrInvalidBlockType}
		}
	}

	if len(certs) == 0 {
		return nil, ErrNoCertificates
	}

	return certs, nil
}

// armorType returns the block type named on the BEGIN line at the start of data.
func armorType(data []byte) string {
	line := data[len(pemBegin):]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	typ, _, _ := bytes.Cut(line, []byte("-----"))
	return string(bytes.TrimSpace(typ))
}

// EncodePEM encodes a certificate to PEM format.
func (c *Certificate) EncodePEM(cert *x509.Certificate) []byte {
	return pem.EncodeToMemory(c.block(cert))
}

// WritePEM writes the PEM encoding of cert to w.
func (c *Certificate) WritePEM(w io.Writer, cert *x509.Certificate) error {
	return pem.Encode(w, c.block(cert))
}

// EncodeDER encodes a certificate to DER format.
func (c *Certificate) EncodeDER(cert *x509.Certificate) []byte { return cert.Raw }

// EncodeMultiplePEM encodes multiple certificates to PEM format.
func (c *Certificate) EncodeMultiplePEM(certs []*x509.Certificate) []byte {
	var data []byte

	for _, cert := range certs {
		data = append(data, c.EncodePEM(cert)...)
	}

	return data
}

func (c *Certificate) block(cert *x509.Certificate) *pem.Block {
	return &pem.Block{
		Type:  c.certBlockType,
		Bytes: cert.Raw,
	}
}
