package record

import "math"

// Record maps field names to values.
//
// Integer fields accept any Go integer type. Byte fields accept string or
// []byte. Decode stores integers at their declared width (uint8, uint16,
// uint32, int32) and byte fields as []byte, with a nil value for fields
// that decoded to zero length.
type Record map[string]any

// Has reports whether name holds a non-nil value.
func (r Record) Has(name string) bool {
	return r[name] != nil
}

// Uint returns an integer field as uint64. Negative int32 values are returned
// as their 32-bit pattern. Missing or non-integer values return 0.
func (r Record) Uint(name string) uint64 {
	switch v := r[name].(type) {
	case int32:
		return uint64(uint32(v)) //nolint:gosec // bit pattern is intended
	default:
		n, _, ok := toInt64(v)
		if !ok {
			return 0
		}
		return uint64(n) //nolint:gosec // toInt64 keeps the bit pattern of large values
	}
}

// Int returns an integer field as int64. Missing or non-integer values
// return 0.
func (r Record) Int(name string) int64 {
	n, big, ok := toInt64(r[name])
	if !ok || big {
		return 0
	}
	return n
}

// Bytes returns a byte field. Strings are converted.
func (r Record) Bytes(name string) []byte {
	b, _ := toBytes(r[name])
	return b
}

// String returns a byte field as a string.
func (r Record) String(name string) string {
	switch v := r[name].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// toInt64 converts any Go integer to int64. big is set for uint64 values
// that do not fit an int64; ok is false for non-integer values.
func toInt64(v any) (n int64, big, ok bool) {
	switch x := v.(type) {
	case int:
		return int64(x), false, true
	case int8:
		return int64(x), false, true
	case int16:
		return int64(x), false, true
	case int32:
		return int64(x), false, true
	case int64:
		return x, false, true
	case uint:
		if uint64(x) > math.MaxInt64 {
			return int64(x), true, true //nolint:gosec // flagged as big
		}
		return int64(x), false, true
	case uint8:
		return int64(x), false, true
	case uint16:
		return int64(x), false, true
	case uint32:
		return int64(x), false, true
	case uint64:
		if x > math.MaxInt64 {
			return int64(x), true, true //nolint:gosec // flagged as big
		}
		return int64(x), false, true
	default:
		return 0, false, false
	}
}

// toBytes converts a byte field value. nil converts to nil.
func toBytes(v any) ([]byte, bool) {
	switch x := v.(type) {
	case nil:
		return nil, true
	case []byte:
		return x, true
	case string:
		return []byte(x), true
	default:
		return nil, false
	}
}
