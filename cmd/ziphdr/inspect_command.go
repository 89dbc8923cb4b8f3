package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/meigma/ziphdr"
)

type entryView struct {
	Name             string    `json:"name"`
	Kind             string    `json:"kind"`
	Method           string    `json:"method"`
	Flags            uint16    `json:"flags"`
	CRC32            string    `json:"crc32"`
	CompressedSize   uint32    `json:"compressedSize"`
	UncompressedSize uint32    `json:"uncompressedSize"`
	Offset           uint32    `json:"offset"`
	Modified         time.Time `json:"modified"`
	Mode             string    `json:"mode,omitempty"`
	Comment          string    `json:"comment,omitempty"`
}

type archiveView struct {
	Comment         string      `json:"comment,omitempty"`
	DirectoryOffset uint32      `json:"directoryOffset"`
	DirectorySize   uint32      `json:"directorySize"`
	Entries         []entryView `json:"entries"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var utc bool

	cmd := &cobra.Command{
		Use:   "inspect <archive>",
		Short: "List the central directory of a zip archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := time.Local
			if utc {
				loc = time.UTC
			}
			view, err := inspectArchive(cmd, ctx, args[0], loc)
			if err != nil {
				return err
			}
			if ctx.json {
				return writeJSON(cmd, view)
			}
			return printArchive(cmd, view)
		},
	}

	cmd.Flags().BoolVar(&utc, "utc", false, "Interpret timestamps as UTC instead of local time")
	return cmd
}

func inspectArchive(cmd *cobra.Command, ctx *commandContext, path string, loc *time.Location) (*archiveView, error) {
	log := ctx.logger(cmd)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	a, err := ziphdr.ReadDirectory(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", path, err)
	}
	log.Debug("read central directory",
		"path", path,
		"entries", len(a.Entries),
		"offset", a.DirectoryOffset,
		"size", a.DirectorySize)

	view := &archiveView{
		Comment:         a.Comment,
		DirectoryOffset: a.DirectoryOffset,
		DirectorySize:   a.DirectorySize,
		Entries:         make([]entryView, 0, len(a.Entries)),
	}
	for _, h := range a.Entries {
		ev := entryView{
			Name:             h.Name,
			Kind:             string(h.Kind),
			Method:           h.Method.String(),
			Flags:            h.Flags,
			CRC32:            fmt.Sprintf("%08x", h.CRC32),
			CompressedSize:   h.CompressedSize,
			UncompressedSize: h.UncompressedSize,
			Offset:           h.Offset,
			Modified:         h.ModTime(loc),
			Comment:          h.Comment,
		}
		if h.UnixMode() != 0 {
			ev.Mode = h.Mode().String()
		}
		view.Entries = append(view.Entries, ev)
	}
	return view, nil
}

func printArchive(cmd *cobra.Command, view *archiveView) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderEntries(out, view.Entries))

	fmt.Fprintf(out, "%d entries, central directory at %d (%d bytes)\n",
		len(view.Entries), view.DirectoryOffset, view.DirectorySize)
	if view.Comment != "" {
		fmt.Fprintf(out, "comment: %s\n", view.Comment)
	}
	return nil
}
