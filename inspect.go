package ziphdr

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/meigma/ziphdr/internal/charset"
	"github.com/meigma/ziphdr/internal/headers"
	"github.com/meigma/ziphdr/internal/ziptype"
)

// Archive is the decoded central directory of an existing archive.
type Archive struct {
	// Entries holds one header per central directory record, in order.
	Entries []*Header

	// Comment is the archive comment.
	Comment string

	// DirectoryOffset is where the central directory starts.
	DirectoryOffset uint32

	// DirectorySize is the length of the central directory records.
	DirectorySize uint32
}

// ReadDirectory locates the end of central directory record in the last
// bytes of r and decodes the central directory it points to.
//
// Names and comments are decoded as UTF-8 when FlagUTF8 is set and as code
// page 437 otherwise. Zip64 and multi-disk archives are not supported.
func ReadDirectory(r io.ReaderAt, size int64) (*Archive, error) {
	end, err := findEnd(r, size)
	if err != nil {
		return nil, err
	}

	dirOffset := u32(end, headers.FieldDirectoryOffset)
	dirSize := u32(end, headers.FieldDirectorySize)
	if int64(dirOffset)+int64(dirSize) > size {
		return nil, fmt.Errorf("central directory at %d+%d exceeds archive size %d: %w",
			dirOffset, dirSize, size, io.ErrUnexpectedEOF)
	}

	buf := make([]byte, dirSize)
	if err := readFullAt(r, buf, int64(dirOffset)); err != nil {
		return nil, fmt.Errorf("read central directory: %w", err)
	}

	total := int(end.Uint(headers.FieldTotalRecords))
	a := &Archive{
		Entries:         make([]*Header, 0, total),
		Comment:         charset.Decode(end.Bytes(headers.FieldComment), 0),
		DirectoryOffset: dirOffset,
		DirectorySize:   dirSize,
	}

	off := 0
	for i := range total {
		rec, n, err := headers.Decode(headers.CentralDirectory, buf[off:])
		if err != nil {
			return nil, fmt.Errorf("central directory record %d: %w", i, err)
		}
		a.Entries = append(a.Entries, headerFromCentral(rec))
		off += n
	}

	return a, nil
}

// findEnd scans backwards from the end of r for a decodable end of central
// directory record. The record is 22 bytes plus a comment of up to 65535.
func findEnd(r io.ReaderAt, size int64) (Record, error) {
	fixed := int64(headers.FixedSize(headers.EndOfCentralDirectory))
	if size < fixed {
		return nil, ziptype.ErrDirectoryNotFound
	}

	tailLen := min(size, fixed+headers.MaxVariable)
	tail := make([]byte, tailLen)
	if err := readFullAt(r, tail, size-tailLen); err != nil {
		return nil, fmt.Errorf("read archive tail: %w", err)
	}

	var sig [4]byte
	binary.LittleEndian.PutUint32(sig[:], headers.EndOfCentralDirectorySignature)

	for i := len(tail) - int(fixed); i >= 0; i-- {
		if !bytes.Equal(tail[i:i+4], sig[:]) {
			continue
		}
		rec, _, err := headers.Decode(headers.EndOfCentralDirectory, tail[i:])
		if err != nil {
			// A signature inside the comment can claim a comment longer
			// than the remaining bytes.
			if errors.Is(err, io.ErrUnexpectedEOF) {
				continue
			}
			return nil, err
		}
		return rec, nil
	}
	return nil, ziptype.ErrDirectoryNotFound
}

// readFullAt fills buf from r at off. An io.EOF alongside a full read is
// not an error.
func readFullAt(r io.ReaderAt, buf []byte, off int64) error {
	n, err := r.ReadAt(buf, off)
	if n == len(buf) {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
