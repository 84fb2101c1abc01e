// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package issuer extracts the issuer identity used to classify certificates
// of a root bundle: the first Organization-Name and the first Common-Name of
// the issuer's distinguished name.
//
// A certificate whose issuer carries neither attribute cannot be classified
// and is reported as a [*MissingIdentityError].
package issuer
