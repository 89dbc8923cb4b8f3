package record

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/meigma/ziphdr/internal/ziptype"
)

// Encode packs r according to s.
//
// Values resolve from r, then Field.Default, then the zero value. A length
// field is always written as the byte length of the field it governs, or
// the governed field's nominal Size when that value is empty. A byte field
// without a length field is fixed at its Size: shorter values are zero
// padded and longer ones return ErrFieldRange. The returned slice holds
// exactly the bytes written.
func Encode(s *Schema, r Record) ([]byte, error) {
	lengths := make(map[string]int)
	spans := make([][]byte, len(s.Fields))
	widths := make([]int, len(s.Fields))
	total := 0

	for i, f := range s.Fields {
		if f.Type != TypeBytes {
			total += f.Size
			continue
		}
		b, ok := toBytes(resolve(f, r))
		if !ok {
			return nil, fieldError(s, f, ziptype.ErrFieldType)
		}
		n, err := byteSpan(f, b)
		if err != nil {
			return nil, fieldError(s, f, err)
		}
		if f.LengthField != "" {
			lengths[f.LengthField] = n
		}
		spans[i] = b
		widths[i] = n
		total += n
	}

	if total > s.MaxSize {
		panic(fmt.Sprintf("record: %s encodes to %d bytes, over its %d byte bound", s.Name, total, s.MaxSize))
	}

	buf := make([]byte, total)
	off := 0
	for i, f := range s.Fields {
		if f.Type == TypeBytes {
			copy(buf[off:off+widths[i]], spans[i])
			off += widths[i]
			continue
		}

		var v any
		if n, ok := lengths[f.Name]; ok {
			v = n
		} else {
			v = resolve(f, r)
		}
		if err := putInt(buf[off:off+f.Size], f, v); err != nil {
			return nil, fieldError(s, f, err)
		}
		off += f.Size
	}

	return buf[:off], nil
}

// Decode unpacks a record laid out by s from the start of b and returns it
// with the number of bytes consumed.
//
// A variable field's length is read from its already decoded length field,
// falling back to the nominal Size when that length is zero. Byte fields
// of zero length decode to a nil value. Decode cannot tell defaulted values
// from supplied ones.
func Decode(s *Schema, b []byte) (Record, int, error) {
	r := make(Record, len(s.Fields))
	off := 0

	for _, f := range s.Fields {
		n := f.Size
		if f.LengthField != "" {
			if l, _, ok := toInt64(r[f.LengthField]); ok && l > 0 {
				n = int(l)
			}
		}
		if len(b)-off < n {
			return nil, 0, fieldError(s, f, io.ErrUnexpectedEOF)
		}

		span := b[off : off+n]
		switch f.Type {
		case TypeUint8:
			r[f.Name] = span[0]
		case TypeUint16:
			r[f.Name] = binary.LittleEndian.Uint16(span)
		case TypeUint32:
			r[f.Name] = binary.LittleEndian.Uint32(span)
		case TypeInt32:
			r[f.Name] = int32(binary.LittleEndian.Uint32(span)) //nolint:gosec // signed field
		case TypeBytes:
			if n > 0 {
				r[f.Name] = bytes.Clone(span)
			} else {
				r[f.Name] = nil
			}
		default:
			return nil, 0, fieldError(s, f, ziptype.ErrFieldType)
		}
		off += n
	}

	return r, off, nil
}

// byteSpan returns the encoded width of byte field f holding b.
func byteSpan(f Field, b []byte) (int, error) {
	if f.LengthField == "" && f.Size > 0 {
		if len(b) > f.Size {
			return 0, fmt.Errorf("%w: %d bytes in a %d byte field", ziptype.ErrFieldRange, len(b), f.Size)
		}
		return f.Size, nil
	}
	if len(b) == 0 {
		return f.Size, nil
	}
	return len(b), nil
}

func resolve(f Field, r Record) any {
	if v := r[f.Name]; v != nil {
		return v
	}
	return f.Default
}

// putInt writes v into dst at the field's width.
func putInt(dst []byte, f Field, v any) error {
	if v == nil {
		v = 0
	}
	n, big, ok := toInt64(v)
	if !ok {
		return ziptype.ErrFieldType
	}
	if f.Type.Width() != len(dst) {
		return fmt.Errorf("%w: %s field with size %d", ziptype.ErrFieldType, f.Type, len(dst))
	}
	if !f.Unchecked && (big || !inRange(f.Type, n)) {
		return fmt.Errorf("%w: %s holds %d", ziptype.ErrFieldRange, f.Type, v)
	}

	//nolint:gosec // range checked above or truncation requested
	switch f.Type {
	case TypeUint8:
		dst[0] = byte(n)
	case TypeUint16:
		binary.LittleEndian.PutUint16(dst, uint16(n))
	case TypeUint32, TypeInt32:
		binary.LittleEndian.PutUint32(dst, uint32(n))
	default:
		return ziptype.ErrFieldType
	}
	return nil
}

// inRange reports whether n fits t. TypeInt32 also accepts the unsigned
// 32-bit range and writes its bit pattern.
func inRange(t FieldType, n int64) bool {
	switch t {
	case TypeUint8:
		return n >= 0 && n <= math.MaxUint8
	case TypeUint16:
		return n >= 0 && n <= math.MaxUint16
	case TypeUint32:
		return n >= 0 && n <= math.MaxUint32
	case TypeInt32:
		return n >= math.MinInt32 && n <= math.MaxUint32
	default:
		return false
	}
}

func fieldError(s *Schema, f Field, err error) error {
	return fmt.Errorf("record: %s.%s: %w", s.Name, f.Name, err)
}
