package ziphdr

import (
	"github.com/meigma/ziphdr/internal/dostime"
	"github.com/meigma/ziphdr/internal/ziptype"
)

// Method identifies the compression method recorded for an entry.
type Method = ziptype.Method

// Compression methods.
const (
	MethodStore   = ziptype.MethodStore
	MethodDeflate = ziptype.MethodDeflate
)

// EntryKind is the type of an archive member.
type EntryKind string

// Entry kinds. The empty kind is treated as KindFile.
const (
	KindFile      EntryKind = "file"
	KindDirectory EntryKind = "directory"
	KindSymlink   EntryKind = "symlink"
)

// DateTime holds the calendar fields of a packed MS-DOS date-time.
type DateTime = dostime.DateTime

// General purpose flag bits set by Normalize.
const (
	// FlagDataDescriptor marks entries whose CRC and sizes follow the data.
	FlagDataDescriptor uint16 = 1 << 3

	// FlagUTF8 marks entries whose name and comment are UTF-8.
	FlagUTF8 uint16 = 1 << 11
)
