package ziphdr

import (
	"github.com/meigma/ziphdr/internal/headers"
	"github.com/meigma/ziphdr/internal/record"
)

// Record maps field names to values for Encode and Decode.
//
// Integer fields accept any Go integer type and byte fields accept string or
// []byte. Decoded integers use the field's declared width (uint16, uint32,
// or int32 for the CRC-32 slot); decoded byte fields are []byte, with a nil
// value when the field was empty.
type Record = record.Record

// SchemaID identifies one of the header layouts.
type SchemaID = headers.ID

// Header layouts.
const (
	SchemaLocalFile             = headers.LocalFile
	SchemaDataDescriptor        = headers.DataDescriptor
	SchemaCentralDirectory      = headers.CentralDirectory
	SchemaEndOfCentralDirectory = headers.EndOfCentralDirectory
)

// Record field names.
const (
	FieldSignature         = headers.FieldSignature
	FieldVersionMadeBy     = headers.FieldVersionMadeBy
	FieldVersionNeeded     = headers.FieldVersionNeeded
	FieldFlags             = headers.FieldFlags
	FieldMethod            = headers.FieldMethod
	FieldModified          = headers.FieldModified
	FieldCRC32             = headers.FieldCRC32
	FieldCompressedSize    = headers.FieldCompressedSize
	FieldUncompressedSize  = headers.FieldUncompressedSize
	FieldNameLen           = headers.FieldNameLen
	FieldExtraLen          = headers.FieldExtraLen
	FieldCommentLen        = headers.FieldCommentLen
	FieldDiskNumberStart   = headers.FieldDiskNumberStart
	FieldInternalAttrs     = headers.FieldInternalAttrs
	FieldExternalAttrs     = headers.FieldExternalAttrs
	FieldLocalHeaderOffset = headers.FieldLocalHeaderOffset
	FieldName              = headers.FieldName
	FieldExtra             = headers.FieldExtra
	FieldComment           = headers.FieldComment
	FieldDiskNumber        = headers.FieldDiskNumber
	FieldRecordsOnDisk     = headers.FieldRecordsOnDisk
	FieldTotalRecords      = headers.FieldTotalRecords
	FieldDirectorySize     = headers.FieldDirectorySize
	FieldDirectoryOffset   = headers.FieldDirectoryOffset
)

// Encode packs r using the layout for id. Missing fields take the layout's
// default (the signature, version 2.0) or zero. Length fields are computed
// from the data they govern.
func Encode(id SchemaID, r Record) ([]byte, error) {
	return headers.Encode(id, r)
}

// Decode unpacks a record of layout id from the start of b. Trailing bytes
// are ignored.
func Decode(id SchemaID, b []byte) (Record, error) {
	r, _, err := headers.Decode(id, b)
	return r, err
}
