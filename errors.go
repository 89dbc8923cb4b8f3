package ziphdr

import "github.com/meigma/ziphdr/internal/ziptype"

// Errors re-exported from ziptype.
var (
	// ErrUnsupportedEntryKind is returned when an entry kind is not a file,
	// directory or symlink.
	ErrUnsupportedEntryKind = ziptype.ErrUnsupportedEntryKind

	// ErrInvalidName is returned when an entry name is empty after sanitizing
	// or is not valid UTF-8.
	ErrInvalidName = ziptype.ErrInvalidName

	// ErrInvalidComment is returned when an entry comment is not valid UTF-8.
	ErrInvalidComment = ziptype.ErrInvalidComment

	// ErrUnknownSchema is returned when no schema is registered for an ID.
	ErrUnknownSchema = ziptype.ErrUnknownSchema

	// ErrFieldRange is returned when an integer does not fit its field width.
	ErrFieldRange = ziptype.ErrFieldRange

	// ErrFieldType is returned when a record value has the wrong type for its field.
	ErrFieldType = ziptype.ErrFieldType

	// ErrFieldTooLong is returned when a name, comment or extra field does not
	// fit its 16-bit length field.
	ErrFieldTooLong = ziptype.ErrFieldTooLong

	// ErrSizeOverflow is returned when a size or count needs zip64.
	ErrSizeOverflow = ziptype.ErrSizeOverflow

	// ErrBadSignature is returned when a record does not start with its signature.
	ErrBadSignature = ziptype.ErrBadSignature

	// ErrDirectoryNotFound is returned when no end of central directory record
	// can be located.
	ErrDirectoryNotFound = ziptype.ErrDirectoryNotFound
)
