// Package headers declares the zip header layouts as record schemas.
//
// Each layout is a plain field list consumed by the record codec; adding a
// layout needs no codec change. The signature is the first field's default.
package headers

import (
	"fmt"

	"github.com/meigma/ziphdr/internal/record"
	"github.com/meigma/ziphdr/internal/ziptype"
)

// ID identifies a registered schema.
type ID uint8

const (
	LocalFile ID = iota + 1
	DataDescriptor
	CentralDirectory
	EndOfCentralDirectory
)

func (id ID) String() string {
	switch id {
	case LocalFile:
		return "local-file"
	case DataDescriptor:
		return "data-descriptor"
	case CentralDirectory:
		return "central-directory"
	case EndOfCentralDirectory:
		return "end-of-central-directory"
	default:
		return fmt.Sprintf("schema(%d)", uint8(id))
	}
}

// Record signatures.
const (
	LocalFileSignature             uint32 = 0x04034b50
	DataDescriptorSignature        uint32 = 0x08074b50
	CentralDirectorySignature      uint32 = 0x02014b50
	EndOfCentralDirectorySignature uint32 = 0x06054b50
)

// Field names shared by the schemas and by code building records.
const (
	FieldSignature         = "signature"
	FieldVersionMadeBy     = "versionMadeBy"
	FieldVersionNeeded     = "versionNeeded"
	FieldFlags             = "flags"
	FieldMethod            = "compressionMethod"
	FieldModified          = "packedDateTime"
	FieldCRC32             = "crc32"
	FieldCompressedSize    = "compressedSize"
	FieldUncompressedSize  = "uncompressedSize"
	FieldNameLen           = "nameLen"
	FieldExtraLen          = "extraLen"
	FieldCommentLen        = "commentLen"
	FieldDiskNumberStart   = "diskNumberStart"
	FieldInternalAttrs     = "internalAttrs"
	FieldExternalAttrs     = "externalAttrs"
	FieldLocalHeaderOffset = "localHeaderOffset"
	FieldName              = "name"
	FieldExtra             = "extra"
	FieldComment           = "comment"
	FieldDiskNumber        = "diskNumber"
	FieldRecordsOnDisk     = "recordsOnDisk"
	FieldTotalRecords      = "totalRecords"
	FieldDirectorySize     = "directorySize"
	FieldDirectoryOffset   = "directoryOffset"
)

// DefaultVersion is version 2.0 of the format, the level needed for deflate
// and directories.
const DefaultVersion = 20

// MaxVariable is the largest length a 16-bit length field can describe.
const MaxVariable = 1<<16 - 1

// Upper bounds on encoded sizes: the fixed part plus every variable field at
// its largest length.
const (
	localFileMaxSize             = 30 + 2*MaxVariable
	dataDescriptorMaxSize        = 16
	centralDirectoryMaxSize      = 46 + 3*MaxVariable
	endOfCentralDirectoryMaxSize = 22 + MaxVariable
)

var localFile = &record.Schema{
	Name:    "local-file",
	MaxSize: localFileMaxSize,
	Fields: []record.Field{
		{Name: FieldSignature, Size: 4, Type: record.TypeUint32, Default: LocalFileSignature},
		{Name: FieldVersionNeeded, Size: 2, Type: record.TypeUint16, Default: DefaultVersion},
		{Name: FieldFlags, Size: 2, Type: record.TypeUint16},
		{Name: FieldMethod, Size: 2, Type: record.TypeUint16},
		{Name: FieldModified, Size: 4, Type: record.TypeUint32},
		{Name: FieldCRC32, Size: 4, Type: record.TypeInt32},
		{Name: FieldCompressedSize, Size: 4, Type: record.TypeUint32},
		{Name: FieldUncompressedSize, Size: 4, Type: record.TypeUint32},
		{Name: FieldNameLen, Size: 2, Type: record.TypeUint16},
		{Name: FieldExtraLen, Size: 2, Type: record.TypeUint16},
		{Name: FieldName, Type: record.TypeBytes, LengthField: FieldNameLen},
		{Name: FieldExtra, Type: record.TypeBytes, LengthField: FieldExtraLen},
	},
}

var dataDescriptor = &record.Schema{
	Name:    "data-descriptor",
	MaxSize: dataDescriptorMaxSize,
	Fields: []record.Field{
		{Name: FieldSignature, Size: 4, Type: record.TypeUint32, Default: DataDescriptorSignature},
		{Name: FieldCRC32, Size: 4, Type: record.TypeInt32},
		{Name: FieldCompressedSize, Size: 4, Type: record.TypeUint32},
		{Name: FieldUncompressedSize, Size: 4, Type: record.TypeUint32},
	},
}

var centralDirectory = &record.Schema{
	Name:    "central-directory",
	MaxSize: centralDirectoryMaxSize,
	Fields: []record.Field{
		{Name: FieldSignature, Size: 4, Type: record.TypeUint32, Default: CentralDirectorySignature},
		{Name: FieldVersionMadeBy, Size: 2, Type: record.TypeUint16, Default: DefaultVersion},
		{Name: FieldVersionNeeded, Size: 2, Type: record.TypeUint16, Default: DefaultVersion},
		{Name: FieldFlags, Size: 2, Type: record.TypeUint16},
		{Name: FieldMethod, Size: 2, Type: record.TypeUint16},
		{Name: FieldModified, Size: 4, Type: record.TypeUint32},
		{Name: FieldCRC32, Size: 4, Type: record.TypeInt32},
		{Name: FieldCompressedSize, Size: 4, Type: record.TypeUint32},
		{Name: FieldUncompressedSize, Size: 4, Type: record.TypeUint32},
		{Name: FieldNameLen, Size: 2, Type: record.TypeUint16},
		{Name: FieldExtraLen, Size: 2, Type: record.TypeUint16},
		{Name: FieldCommentLen, Size: 2, Type: record.TypeUint16},
		{Name: FieldDiskNumberStart, Size: 2, Type: record.TypeUint16},
		{Name: FieldInternalAttrs, Size: 2, Type: record.TypeUint16},
		{Name: FieldExternalAttrs, Size: 4, Type: record.TypeUint32, Unchecked: true},
		{Name: FieldLocalHeaderOffset, Size: 4, Type: record.TypeUint32},
		{Name: FieldName, Type: record.TypeBytes, LengthField: FieldNameLen},
		{Name: FieldExtra, Type: record.TypeBytes, LengthField: FieldExtraLen},
		{Name: FieldComment, Type: record.TypeBytes, LengthField: FieldCommentLen},
	},
}

var endOfCentralDirectory = &record.Schema{
	Name:    "end-of-central-directory",
	MaxSize: endOfCentralDirectoryMaxSize,
	Fields: []record.Field{
		{Name: FieldSignature, Size: 4, Type: record.TypeUint32, Default: EndOfCentralDirectorySignature},
		{Name: FieldDiskNumber, Size: 2, Type: record.TypeUint16},
		{Name: FieldDiskNumberStart, Size: 2, Type: record.TypeUint16},
		{Name: FieldRecordsOnDisk, Size: 2, Type: record.TypeUint16},
		{Name: FieldTotalRecords, Size: 2, Type: record.TypeUint16},
		{Name: FieldDirectorySize, Size: 4, Type: record.TypeUint32},
		{Name: FieldDirectoryOffset, Size: 4, Type: record.TypeUint32},
		{Name: FieldCommentLen, Size: 2, Type: record.TypeUint16},
		{Name: FieldComment, Type: record.TypeBytes, LengthField: FieldCommentLen},
	},
}

var registry = map[ID]*record.Schema{
	LocalFile:             localFile,
	DataDescriptor:        dataDescriptor,
	CentralDirectory:      centralDirectory,
	EndOfCentralDirectory: endOfCentralDirectory,
}

// Lookup returns the schema registered for id.
func Lookup(id ID) (*record.Schema, error) {
	s, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ziptype.ErrUnknownSchema, id)
	}
	return s, nil
}

// Encode packs r with the schema registered for id.
func Encode(id ID, r record.Record) ([]byte, error) {
	s, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return record.Encode(s, r)
}

// Decode unpacks a record of schema id from the start of b, checking its
// signature, and returns the number of bytes consumed.
func Decode(id ID, b []byte) (record.Record, int, error) {
	s, err := Lookup(id)
	if err != nil {
		return nil, 0, err
	}
	r, n, err := record.Decode(s, b)
	if err != nil {
		return nil, 0, err
	}
	if want := Signature(id); r.Uint(FieldSignature) != uint64(want) {
		return nil, 0, fmt.Errorf("%w: %s: got %#08x, want %#08x",
			ziptype.ErrBadSignature, id, r.Uint(FieldSignature), want)
	}
	return r, n, nil
}

// Signature returns the magic number that starts records of schema id, or 0
// for unknown IDs.
func Signature(id ID) uint32 {
	s, ok := registry[id]
	if !ok {
		return 0
	}
	sig, _ := s.Fields[0].Default.(uint32)
	return sig
}

// FixedSize returns the size of a record of schema id with empty variable
// fields, or 0 for unknown IDs.
func FixedSize(id ID) int {
	s, ok := registry[id]
	if !ok {
		return 0
	}
	return s.FixedSize()
}
