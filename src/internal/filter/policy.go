// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package filter

import (
	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/x509/issuer"
	"github.com/H0llyW00dzZ/tls-root-bundle/src/logger"
)

// Policy decides which certificates enter the bundle.
type Policy struct {
	Include PatternSet
	Exclude PatternSet

	// Trace, when non-nil, receives one line per matching pattern and one per
	// exclusion. It has no influence on decisions.
	Trace logger.Logger
}

// Decision is the outcome of evaluating one issuer identity.
type Decision struct {
	Included bool

	// Include is the first include pattern that matched, nil if none did.
	Include *Pattern
	// Exclude is the first exclude pattern that matched. It is only evaluated
	// once an include pattern matched.
	Exclude *Pattern
	// Field is the identity value matched by Exclude, or by Include when
	// Exclude is nil.
	Field string
}

// Decide evaluates id against the policy.
//
// An empty include set selects nothing. When no include pattern matches, the
// exclude set is not consulted. Otherwise any exclude match rejects the
// certificate. Decide is a pure function of id and the two pattern sets.
func (p *Policy) Decide(id issuer.Identity) Decision {
	inc, field := p.Include.Match(id.Organization, id.CommonName)
	if inc == nil {
		return Decision{}
	}
	p.tracef("include %q matched %q", inc.Expr, field)

	exc, xfield := p.Exclude.Match(id.Organization, id.CommonName)
	if exc != nil {
		p.tracef("exclude %q matched %q", exc.Expr, xfield)
		p.tracef("EXCLUDED %s", id)
		return Decision{Include: inc, Exclude: exc, Field: xfield}
	}

	return Decision{Included: true, Include: inc, Field: field}
}

func (p *Policy) tracef(format string, v ...any) {
	if p.Trace != nil {
		p.Trace.Printf(format, v...)
	}
}
