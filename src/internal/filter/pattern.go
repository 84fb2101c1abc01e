// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package filter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

// ErrPatternCompile indicates a pattern line that is not a valid regular expression.
var ErrPatternCompile = errors.New("filter: invalid pattern")

// PatternCompileError reports the pattern file location of an invalid expression.
type PatternCompileError struct {
	Source  string // pattern file name, or "" for inline patterns
	Line    int    // 1-based line number, or 0 for inline patterns
	Pattern string
	Err     error // the regexp syntax error
}

func (e *PatternCompileError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%v %q: %v", ErrPatternCompile, e.Pattern, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v %q: %v", e.Source, e.Line, ErrPatternCompile, e.Pattern, e.Err)
}

func (e *PatternCompileError) Unwrap() error { return e.Err }

// Is reports ErrPatternCompile as a match so callers need not know the regexp error.
func (e *PatternCompileError) Is(target error) bool { return target == ErrPatternCompile }

// Pattern is a case-insensitive, unanchored regular expression.
type Pattern struct {
	// Expr is the expression as written in the pattern file.
	Expr string
	// Line is the 1-based line of Expr in its pattern file, 0 when not loaded from a file.
	Line int

	re *regexp.Regexp
}

// Compile compiles expr into a case-insensitive Pattern.
func Compile(expr string) (*Pattern, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, &PatternCompileError{Pattern: expr, Err: err}
	}
	return &Pattern{Expr: expr, re: re}, nil
}

// MatchString reports whether the pattern occurs anywhere in s.
func (p *Pattern) MatchString(s string) bool { return p.re.MatchString(s) }

func (p *Pattern) String() string { return p.Expr }

// PatternSet is an ordered list of patterns. Its order is the order of the
// pattern file and is only observable through which pattern [PatternSet.Match]
// reports first.
type PatternSet []*Pattern

// NewSet compiles exprs into a PatternSet, preserving their order.
func NewSet(exprs ...string) (PatternSet, error) {
	set := make(PatternSet, 0, len(exprs))
	for _, expr := range exprs {
		p, err := Compile(expr)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	return set, nil
}

// Match returns the first pattern, in set order, that matches any of fields,
// together with the field it matched. It returns nil when nothing matches.
func (s PatternSet) Match(fields ...string) (*Pattern, string) {
	for _, p := range s {
		for _, f := range fields {
			if p.MatchString(f) {
				return p, f
			}
		}
	}
	return nil, ""
}

// Exprs returns the expressions of the set in order.
func (s PatternSet) Exprs() []string {
	exprs := make([]string, len(s))
	for i, p := range s {
		exprs[i] = p.Expr
	}
	return exprs
}

// Load reads a pattern file from r. The name is only used in error messages.
func Load(r io.Reader, name string) (PatternSet, error) {
	var set PatternSet

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}

		expr := strings.TrimSpace(text)
		if expr == "" || strings.HasPrefix(expr, "#") {
			continue
		}

		p, err := Compile(expr)
		if err != nil {
			var perr *PatternCompileError
			if errors.As(err, &perr) {
				perr.Source, perr.Line = name, line
			}
			return nil, err
		}
		p.Line = line
		set = append(set, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("filter: read %s: %w", name, err)
	}

	return set, nil
}

// LoadFile reads the pattern file at path from fs.
func LoadFile(fs afero.Fs, path string) (PatternSet, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	defer f.Close()

	return Load(f, path)
}
