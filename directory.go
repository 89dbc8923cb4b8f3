package ziphdr

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"

	"github.com/meigma/ziphdr/internal/headers"
	"github.com/meigma/ziphdr/internal/sizing"
	"github.com/meigma/ziphdr/internal/ziptype"
)

// Directory collects entry headers and encodes the archive trailer: the
// central directory records followed by the end of central directory record.
//
// Headers are encoded in the order they were added, which must match the
// order their data was written. A Directory is not safe for concurrent Add.
type Directory struct {
	headers []*Header
	comment string
	cfg     directoryConfig
}

// NewDirectory creates an empty Directory.
func NewDirectory(opts ...DirectoryOption) *Directory {
	return &Directory{cfg: newDirectoryConfig(opts)}
}

// Add appends a header. The header's Offset, CRC32 and sizes must be final
// before Encode is called.
func (d *Directory) Add(h *Header) {
	d.headers = append(d.headers, h)
}

// Len returns the number of headers added.
func (d *Directory) Len() int {
	return len(d.headers)
}

// Headers returns the headers in insertion order.
func (d *Directory) Headers() []*Header {
	return d.headers
}

// SetComment sets the archive comment stored in the end record.
func (d *Directory) SetComment(comment string) error {
	if err := checkLength("archive comment", len(comment)); err != nil {
		return err
	}
	d.comment = comment
	return nil
}

// Trailer is an encoded central directory.
type Trailer struct {
	// Central holds the concatenated central directory records.
	Central []byte

	// End holds the end of central directory record.
	End []byte

	// Digest identifies the trailer bytes, so identical inputs can be
	// checked for byte-identical output.
	Digest digest.Digest
}

// Size returns the total trailer length.
func (t *Trailer) Size() int {
	return len(t.Central) + len(t.End)
}

// Bytes returns the trailer as one slice.
func (t *Trailer) Bytes() []byte {
	out := make([]byte, 0, t.Size())
	out = append(out, t.Central...)
	return append(out, t.End...)
}

// WriteTo writes the trailer to w.
func (t *Trailer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.Central)
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(t.End)
	return int64(n + m), err
}

// Encode encodes the trailer for a central directory that starts offset
// bytes into the archive.
//
// Records are encoded in parallel and joined in insertion order. More than
// 65535 entries, or a directory ending beyond 4 GiB, needs zip64 and
// returns ErrSizeOverflow.
func (d *Directory) Encode(ctx context.Context, offset uint64) (*Trailer, error) {
	count, err := sizing.ToUint16(len(d.headers), ziptype.ErrSizeOverflow)
	if err != nil {
		return nil, fmt.Errorf("directory has %d entries: %w", len(d.headers), err)
	}
	dirOffset, err := sizing.ToUint32(offset, ziptype.ErrSizeOverflow)
	if err != nil {
		return nil, fmt.Errorf("directory offset %d: %w", offset, err)
	}

	parts := make([][]byte, len(d.headers))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(d.cfg.concurrency)
	for i, h := range d.headers {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := h.CentralDirectoryHeader()
			if err != nil {
				return fmt.Errorf("entry %q: %w", h.Name, err)
			}
			parts[i] = b
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	central := bytes.Join(parts, nil)
	end64, ok := sizing.AddUint64(offset, uint64(len(central)))
	if !ok {
		return nil, ziptype.ErrSizeOverflow
	}
	if _, err := sizing.ToUint32(end64, ziptype.ErrSizeOverflow); err != nil {
		return nil, fmt.Errorf("directory ends at %d: %w", end64, err)
	}

	end, err := headers.Encode(headers.EndOfCentralDirectory, Record{
		headers.FieldRecordsOnDisk:   count,
		headers.FieldTotalRecords:    count,
		headers.FieldDirectorySize:   uint32(len(central)), //nolint:gosec // bounded by end64 check
		headers.FieldDirectoryOffset: dirOffset,
		headers.FieldComment:         d.comment,
	})
	if err != nil {
		return nil, err
	}

	t := &Trailer{Central: central, End: end}
	t.Digest = digest.FromBytes(t.Bytes())

	d.cfg.log().Debug("encoded central directory",
		"entries", count,
		"offset", dirOffset,
		"size", len(central),
		"digest", t.Digest)

	return t, nil
}
