// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package issuer

import (
	"crypto/x509"
	"encoding/asn1"
	"errors"
	"fmt"
)

// ErrMissingIdentity indicates an issuer with neither an Organization-Name nor a Common-Name.
var ErrMissingIdentity = errors.New("issuer: no organization or common name")

var (
	oidOrganization = asn1.ObjectIdentifier{2, 5, 4, 10}
	oidCommonName   = asn1.ObjectIdentifier{2, 5, 4, 3}
)

// Identity is the part of an issuer name that bundle filters match against.
// Either field may be empty, but not both.
type Identity struct {
	Organization string
	CommonName   string
}

// String returns the identity as "O=<org>, CN=<cn>".
func (id Identity) String() string {
	return fmt.Sprintf("O=%s, CN=%s", id.Organization, id.CommonName)
}

// Comment returns the annotation line written above a certificate in the
// output bundle, without the trailing newline.
func (id Identity) Comment() string { return "# " + id.String() }

// MissingIdentityError reports a certificate whose issuer cannot be classified.
type MissingIdentityError struct {
	// Issuer is the RFC 2253 rendering of the full issuer name.
	Issuer string
}

func (e *MissingIdentityError) Error() string {
	return fmt.Sprintf("%v: %q", ErrMissingIdentity, e.Issuer)
}

func (e *MissingIdentityError) Unwrap() error { return ErrMissingIdentity }

// Extract returns the issuer identity of cert.
//
// Attributes are taken from the issuer's RDN sequence in encoded order; when an
// attribute type repeats, its first value wins. A missing attribute leaves the
// corresponding field empty. If both fields end up empty Extract fails with a
// [*MissingIdentityError].
func Extract(cert *x509.Certificate) (Identity, error) {
	var (
		id            Identity
		haveO, haveCN bool
	)

	for _, atv := range cert.Issuer.Names {
		switch {
		case !haveO && atv.Type.Equal(oidOrganization):
			id.Organization, haveO = attributeValue(atv.Value), true
		case !haveCN && atv.Type.Equal(oidCommonName):
			id.CommonName, haveCN = attributeValue(atv.Value), true
		}
	}

	if id.Organization == "" && id.CommonName == "" {
		return Identity{}, &MissingIdentityError{Issuer: cert.Issuer.String()}
	}

	return id, nil
}

func attributeValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
