package ziphdr

import (
	"io/fs"
	"time"

	"github.com/meigma/ziphdr/internal/charset"
	"github.com/meigma/ziphdr/internal/dostime"
	"github.com/meigma/ziphdr/internal/headers"
	"github.com/meigma/ziphdr/internal/sizing"
	"github.com/meigma/ziphdr/internal/ziptype"
)

// Header holds the normalized fields of one archive entry.
//
// Normalize produces a Header from an Entry; ReadDirectory produces them
// from an existing archive. The output engine fills in CRC32 and the sizes
// through Complete, and Offset once it knows where the local header landed.
type Header struct {
	// Name is the sanitized member path. Directories end in a slash.
	Name string

	// Kind is the member type.
	Kind EntryKind

	// Comment is the per-entry comment.
	Comment string

	// Extra is the raw extra field data.
	Extra []byte

	// Flags holds the general purpose bit flags.
	Flags uint16

	// Method is the compression method.
	Method Method

	// Modified is the packed MS-DOS date-time.
	Modified uint32

	// VersionMadeBy records the host system (high byte) and format version.
	VersionMadeBy uint16

	// VersionNeeded is the format version needed to extract the entry.
	VersionNeeded uint16

	// InternalAttrs holds the internal file attributes.
	InternalAttrs uint16

	// ExternalAttrs holds the host-specific attributes. For unix hosts the
	// high 16 bits are the mode.
	ExternalAttrs uint32

	// CRC32 is the checksum of the uncompressed data.
	CRC32 uint32

	// CompressedSize is the size of the stored data.
	CompressedSize uint32

	// UncompressedSize is the size of the original data.
	UncompressedSize uint32

	// Offset is the position of the local file header in the archive.
	Offset uint32
}

// Complete records the results of writing the entry's data. Sizes beyond
// 32 bits need zip64, which is not produced, and return ErrSizeOverflow.
func (h *Header) Complete(crc uint32, compressed, uncompressed uint64) error {
	c, err := sizing.ToUint32(compressed, ziptype.ErrSizeOverflow)
	if err != nil {
		return err
	}
	u, err := sizing.ToUint32(uncompressed, ziptype.ErrSizeOverflow)
	if err != nil {
		return err
	}
	h.CRC32 = crc
	h.CompressedSize = c
	h.UncompressedSize = u
	return nil
}

// SetOffset records the position of the local file header. Offsets beyond
// 32 bits return ErrSizeOverflow.
func (h *Header) SetOffset(off uint64) error {
	o, err := sizing.ToUint32(off, ziptype.ErrSizeOverflow)
	if err != nil {
		return err
	}
	h.Offset = o
	return nil
}

// IsDir reports whether the header describes a directory.
func (h *Header) IsDir() bool {
	return h.Kind == KindDirectory
}

// ModTime returns the packed date-time as a time in loc. A nil loc means UTC.
func (h *Header) ModTime(loc *time.Location) time.Time {
	return dostime.Unpack(h.Modified).Time(loc)
}

// UnixMode returns the unix mode stored in the external attributes, or 0
// when the header was not made on a unix host.
func (h *Header) UnixMode() uint32 {
	if h.VersionMadeBy>>8 != hostUnix {
		return 0
	}
	return h.ExternalAttrs >> 16
}

// Mode returns the entry's mode as an fs.FileMode.
func (h *Header) Mode() fs.FileMode {
	mode := fs.FileMode(h.UnixMode() & 0o777)
	switch {
	case h.IsDir():
		mode |= fs.ModeDir
	case h.Kind == KindSymlink:
		mode |= fs.ModeSymlink
	}
	return mode
}

// LocalFileRecord returns the local file header fields. With
// FlagDataDescriptor set the CRC and sizes are zero, since they follow the
// data in the descriptor.
func (h *Header) LocalFileRecord() Record {
	r := Record{
		headers.FieldVersionNeeded: h.VersionNeeded,
		headers.FieldFlags:         h.Flags,
		headers.FieldMethod:        uint16(h.Method),
		headers.FieldModified:      h.Modified,
		headers.FieldName:          h.Name,
		headers.FieldExtra:         h.Extra,
	}
	if h.Flags&FlagDataDescriptor == 0 {
		r[headers.FieldCRC32] = h.CRC32
		r[headers.FieldCompressedSize] = h.CompressedSize
		r[headers.FieldUncompressedSize] = h.UncompressedSize
	}
	return r
}

// DataDescriptorRecord returns the data descriptor fields.
func (h *Header) DataDescriptorRecord() Record {
	return Record{
		headers.FieldCRC32:            h.CRC32,
		headers.FieldCompressedSize:   h.CompressedSize,
		headers.FieldUncompressedSize: h.UncompressedSize,
	}
}

// CentralDirectoryRecord returns the central directory record fields.
func (h *Header) CentralDirectoryRecord() Record {
	return Record{
		headers.FieldVersionMadeBy:     h.VersionMadeBy,
		headers.FieldVersionNeeded:     h.VersionNeeded,
		headers.FieldFlags:             h.Flags,
		headers.FieldMethod:            uint16(h.Method),
		headers.FieldModified:          h.Modified,
		headers.FieldCRC32:             h.CRC32,
		headers.FieldCompressedSize:    h.CompressedSize,
		headers.FieldUncompressedSize:  h.UncompressedSize,
		headers.FieldInternalAttrs:     h.InternalAttrs,
		headers.FieldExternalAttrs:     h.ExternalAttrs,
		headers.FieldLocalHeaderOffset: h.Offset,
		headers.FieldName:              h.Name,
		headers.FieldExtra:             h.Extra,
		headers.FieldComment:           h.Comment,
	}
}

// LocalFileHeader encodes the local file header.
func (h *Header) LocalFileHeader() ([]byte, error) {
	return headers.Encode(headers.LocalFile, h.LocalFileRecord())
}

// DataDescriptor encodes the data descriptor.
func (h *Header) DataDescriptor() ([]byte, error) {
	return headers.Encode(headers.DataDescriptor, h.DataDescriptorRecord())
}

// CentralDirectoryHeader encodes the central directory record.
func (h *Header) CentralDirectoryHeader() ([]byte, error) {
	return headers.Encode(headers.CentralDirectory, h.CentralDirectoryRecord())
}

// headerFromCentral rebuilds a Header from a decoded central directory record.
func headerFromCentral(r Record) *Header {
	flags := u16(r, headers.FieldFlags)
	h := &Header{
		Name:             charset.Decode(r.Bytes(headers.FieldName), flags),
		Comment:          charset.Decode(r.Bytes(headers.FieldComment), flags),
		Extra:            r.Bytes(headers.FieldExtra),
		Flags:            flags,
		Method:           Method(u16(r, headers.FieldMethod)),
		Modified:         u32(r, headers.FieldModified),
		VersionMadeBy:    u16(r, headers.FieldVersionMadeBy),
		VersionNeeded:    u16(r, headers.FieldVersionNeeded),
		InternalAttrs:    u16(r, headers.FieldInternalAttrs),
		ExternalAttrs:    u32(r, headers.FieldExternalAttrs),
		CRC32:            u32(r, headers.FieldCRC32),
		CompressedSize:   u32(r, headers.FieldCompressedSize),
		UncompressedSize: u32(r, headers.FieldUncompressedSize),
		Offset:           u32(r, headers.FieldLocalHeaderOffset),
	}
	h.Kind = kindFromAttrs(h)
	return h
}

// u16 and u32 read decoded fields of known width.
func u16(r Record, name string) uint16 {
	return uint16(r.Uint(name)) //nolint:gosec // decoded from a 16-bit field
}

func u32(r Record, name string) uint32 {
	return uint32(r.Uint(name)) //nolint:gosec // decoded from a 32-bit field
}

func kindFromAttrs(h *Header) EntryKind {
	if len(h.Name) > 0 && h.Name[len(h.Name)-1] == '/' {
		return KindDirectory
	}
	if h.ExternalAttrs&msdosDir != 0 {
		return KindDirectory
	}
	if h.VersionMadeBy>>8 == hostUnix {
		switch (h.ExternalAttrs >> 16) & 0o170000 {
		case unixTypeSymlink:
			return KindSymlink
		case unixTypeDir:
			return KindDirectory
		}
	}
	return KindFile
}
