// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verify

import (
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable renders the results as a markdown table.
func (s *Summary) RenderTable() string {
	if len(s.Results) == 0 {
		return "No URLs checked"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"Status", "URL", "Time", "Detail"}
	table.Header(headers)

	var rows [][]string
	for _, r := range s.Results {
		detail := ""
		if r.Err != nil {
			detail = r.Err.Error()
		}
		rows = append(rows, []string{
			string(r.Status),
			r.URL,
			r.Duration.Round(time.Millisecond).String(),
			detail,
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
