package ziphdr

import (
	"time"

	"github.com/meigma/ziphdr/internal/dostime"
)

// PackTime converts t to the packed MS-DOS date-time stored in headers,
// reading the calendar fields in UTC when utc is set and in the local zone
// otherwise. Times before 1980 pack to 1980-01-01 00:00:00. Seconds are
// truncated to even values.
func PackTime(t time.Time, utc bool) uint32 {
	return dostime.Pack(t, utc)
}

// UnpackTime extracts the calendar fields of a packed date-time.
func UnpackTime(v uint32) DateTime {
	return dostime.Unpack(v)
}
