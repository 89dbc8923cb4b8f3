package ziptype

import "errors"

// Sentinel errors for header operations.
var (
	// ErrUnsupportedEntryKind is returned when an entry kind is not a file,
	// directory or symlink.
	ErrUnsupportedEntryKind = errors.New("ziphdr: unsupported entry kind")

	// ErrInvalidName is returned when an entry name is empty after sanitizing
	// or is not valid UTF-8.
	ErrInvalidName = errors.New("ziphdr: invalid entry name")

	// ErrInvalidComment is returned when an entry comment is not valid UTF-8.
	ErrInvalidComment = errors.New("ziphdr: invalid entry comment")

	// ErrUnknownSchema is returned when no schema is registered for an ID.
	ErrUnknownSchema = errors.New("ziphdr: unknown schema")

	// ErrFieldRange is returned when an integer does not fit its field width.
	ErrFieldRange = errors.New("ziphdr: value out of range for field")

	// ErrFieldType is returned when a record value has the wrong Go type for its field.
	ErrFieldType = errors.New("ziphdr: value has wrong type for field")

	// ErrFieldTooLong is returned when a name, comment or extra field does not
	// fit its 16-bit length field.
	ErrFieldTooLong = errors.New("ziphdr: field exceeds 65535 bytes")

	// ErrSizeOverflow is returned when byte counts exceed supported limits.
	ErrSizeOverflow = errors.New("ziphdr: size overflow")

	// ErrBadSignature is returned when a record does not start with its signature.
	ErrBadSignature = errors.New("ziphdr: bad record signature")

	// ErrDirectoryNotFound is returned when no end of central directory record
	// can be located.
	ErrDirectoryNotFound = errors.New("ziphdr: end of central directory not found")
)
