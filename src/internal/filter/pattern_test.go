// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package filter_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-root-bundle/src/internal/filter"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantExprs []string
		wantLines []int
	}{
		{
			name:      "One pattern per line",
			input:     "DigiCert\nISRG\n",
			wantExprs: []string{"DigiCert", "ISRG"},
			wantLines: []int{1, 2},
		},
		{
			name:      "Comments and blank lines are skipped",
			input:     "# public roots\n\nDigiCert\n   # indented comment\n\t\nGlobalSign\n",
			wantExprs: []string{"DigiCert", "GlobalSign"},
			wantLines: []int{3, 6},
		},
		{
			name:      "Surrounding whitespace is trimmed",
			input:     "  Let's Encrypt  \r\n",
			wantExprs: []string{"Let's Encrypt"},
			wantLines: []int{1},
		},
		{
			name:      "Missing trailing newline",
			input:     "Amazon",
			wantExprs: []string{"Amazon"},
			wantLines: []int{1},
		},
		{
			name:      "Byte order mark",
			input:     "\ufeffEntrust\n",
			wantExprs: []string{"Entrust"},
			wantLines: []int{1},
		},
		{
			name:      "Only a comment",
			input:     "# nothing here\n",
			wantExprs: []string{},
			wantLines: []int{},
		},
		{
			name:      "Empty file",
			input:     "",
			wantExprs: []string{},
			wantLines: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := filter.Load(strings.NewReader(tt.input), "include.txt")
			require.NoError(t, err)

			assert.Equal(t, tt.wantExprs, set.Exprs())

			lines := []int{}
			for _, p := range set {
				lines = append(lines, p.Line)
			}
			assert.Equal(t, tt.wantLines, lines)
		})
	}
}

func TestLoad_CompileError(t *testing.T) {
	set, err := filter.Load(strings.NewReader("# ok\nDigiCert\n[unclosed\n"), "exclude.txt")
	assert.Nil(t, set)
	require.ErrorIs(t, err, filter.ErrPatternCompile)

	var perr *filter.PatternCompileError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "exclude.txt", perr.Source)
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, "[unclosed", perr.Pattern)
	assert.Contains(t, err.Error(), "exclude.txt:3:")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLoad_ReadError(t *testing.T) {
	_, err := filter.Load(io.MultiReader(strings.NewReader("DigiCert\n"), failingReader{}), "include.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include.txt")
	assert.NotErrorIs(t, err, filter.ErrPatternCompile)
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/roots/include.txt", []byte("# roots\nDigiCert\n"), 0o644))

	t.Run("Existing file", func(t *testing.T) {
		set, err := filter.LoadFile(fs, "/etc/roots/include.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"DigiCert"}, set.Exprs())
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := filter.LoadFile(fs, "/etc/roots/exclude.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exclude.txt")
	})
}

func TestPattern_MatchString(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		input    string
		expected bool
	}{
		{name: "Case-insensitive", expr: "verisign", input: "VeriSign, Inc.", expected: true},
		{name: "Substring search", expr: "Cert", input: "DigiCert Inc", expected: true},
		{name: "Anchors still work", expr: "^Cert", input: "DigiCert Inc", expected: false},
		{name: "Match-all pattern matches empty field", expr: ".*", input: "", expected: true},
		{name: "Literal pattern does not match empty field", expr: "Acme", input: "", expected: false},
		{name: "No match", expr: "GlobalSign", input: "DigiCert Inc", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := filter.Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.MatchString(tt.input))
			assert.Equal(t, tt.expr, p.String())
		})
	}
}

func TestNewSet(t *testing.T) {
	set, err := filter.NewSet("b", "a", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, set.Exprs())

	_, err = filter.NewSet("ok", "(")
	require.ErrorIs(t, err, filter.ErrPatternCompile)
	assert.NotContains(t, err.Error(), ":0:")
}

func TestPatternSet_Match(t *testing.T) {
	set, err := filter.NewSet("Root", "Acme")
	require.NoError(t, err)

	p, field := set.Match("Acme Corp", "Acme Root CA")
	require.NotNil(t, p)
	assert.Equal(t, "Root", p.Expr, "first pattern in set order wins")
	assert.Equal(t, "Acme Root CA", field)

	p, field = set.Match("Other", "")
	assert.Nil(t, p)
	assert.Empty(t, field)

	var empty filter.PatternSet
	p, _ = empty.Match("anything")
	assert.Nil(t, p)
}
