package main

import (
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// entryColumns are the inspect table headers. Size and Compressed are right
// aligned.
var entryColumns = []string{"Name", "Kind", "Method", "Size", "Compressed", "CRC32", "Modified", "Mode"}

// renderEntries draws one row per entry with rounded borders on a terminal
// and ASCII borders otherwise.
func renderEntries(w io.Writer, entries []entryView) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleDefault)
	if isTerminal(w) {
		tw.SetStyle(table.StyleRounded)
	}

	header := make(table.Row, len(entryColumns))
	for i, h := range entryColumns {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, e := range entries {
		tw.AppendRow(table.Row{
			e.Name,
			e.Kind,
			e.Method,
			e.UncompressedSize,
			e.CompressedSize,
			e.CRC32,
			e.Modified.Format(time.DateTime),
			e.Mode,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Size", Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Name: "Compressed", Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
