// Package record implements a schema-driven codec for packed little-endian
// binary records.
//
// A Schema is an ordered list of Field descriptors. Encode walks the fields
// and writes each value at a running offset; Decode walks them again and
// rebuilds a Record. Schemas carry no behavior, so any number of layouts
// share the same codec.
package record

// FieldType identifies how a field is encoded.
type FieldType uint8

const (
	TypeUint8 FieldType = iota + 1
	TypeUint16
	TypeUint32
	TypeInt32
	TypeBytes
)

func (t FieldType) String() string {
	switch t {
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeInt32:
		return "int32"
	case TypeBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Width returns the encoded size of an integer type, or 0 for TypeBytes.
func (t FieldType) Width() int {
	switch t {
	case TypeUint8:
		return 1
	case TypeUint16:
		return 2
	case TypeUint32, TypeInt32:
		return 4
	default:
		return 0
	}
}

// Field describes one slot of a record.
type Field struct {
	// Name keys the field's value in a Record.
	Name string

	// Size is the encoded size in bytes. Variable-length fields use 0 and
	// take their length from LengthField.
	Size int

	// Type selects the read and write routine.
	Type FieldType

	// LengthField names an earlier integer field holding this field's length.
	LengthField string

	// Default is used when the record has no value for the field.
	Default any

	// Unchecked skips the range assertion and truncates the value to the
	// field width.
	Unchecked bool
}

// Schema is an ordered field layout.
type Schema struct {
	// Name identifies the schema in errors and logs.
	Name string

	// MaxSize bounds the encoded size. Encoding past it is a programming
	// error and panics.
	MaxSize int

	// Fields lists the record layout in wire order.
	Fields []Field
}

// FixedSize returns the size of the schema with all variable fields empty.
func (s *Schema) FixedSize() int {
	n := 0
	for _, f := range s.Fields {
		n += f.Size
	}
	return n
}
