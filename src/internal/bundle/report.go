// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bundle

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Verdict describes the decision of an entry in a few words.
func (e Entry) Verdict() string {
	switch {
	case e.Decision.Included:
		return "included"
	case e.Decision.Exclude != nil:
		return "excluded"
	default:
		return "no match"
	}
}

// Pattern returns the expression that decided the entry, or "" when no
// include pattern matched.
func (e Entry) Pattern() string {
	switch {
	case e.Decision.Exclude != nil:
		return e.Decision.Exclude.Expr
	case e.Decision.Include != nil:
		return e.Decision.Include.Expr
	default:
		return ""
	}
}

// RenderTable renders every classified certificate as a markdown table.
func (r *Result) RenderTable() string {
	if len(r.Entries) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"#", "Organization", "Common Name", "Decision", "Pattern"}
	table.Header(headers)

	var rows [][]string
	for _, e := range r.Entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Index+1),
			e.Identity.Organization,
			e.Identity.CommonName,
			e.Verdict(),
			e.Pattern(),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
