package cli

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/MylesLandais/subsync/internal/syncer"
)

// renderSyncResult formats a run summary as a terminal table.
func renderSyncResult(result *syncer.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Output", "Path"})

	for _, path := range result.FilesWritten {
		ext := filepath.Ext(path)
		tw.AppendRow(table.Row{ext[1:], path})
	}
	if result.MKVPath != "" {
		tw.AppendRow(table.Row{"mkv", result.MKVPath})
	}
	tw.AppendFooter(table.Row{"entries", fmt.Sprintf("%d", result.EntryCount)})

	return tw.Render()
}
