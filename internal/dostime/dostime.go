// Package dostime converts between time.Time and the packed 32-bit MS-DOS
// date-time used by zip headers.
//
// The high 16 bits hold the date (years since 1980, month, day) and the low
// 16 bits hold the time at 2-second resolution.
package dostime

import "time"

// Epoch is the packed value for 1980-01-01 00:00:00, the earliest
// representable instant. Dates before 1980 pack to Epoch.
const Epoch uint32 = 1<<21 | 1<<16

// DateTime holds the calendar fields of a packed value. Fields are not
// validated; a malformed packed value yields malformed fields.
type DateTime struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// Pack converts t to its packed form. The calendar fields are taken in UTC
// when utc is set and in the local zone otherwise.
//
// Years beyond 2107 are not rejected: each sub-field is shifted into place
// and the result keeps the low 32 bits.
func Pack(t time.Time, utc bool) uint32 {
	if utc {
		t = t.UTC()
	} else {
		t = t.Local()
	}

	year := t.Year()
	if year < 1980 {
		return Epoch
	}

	//nolint:gosec // truncation to the packed layout is intended
	return uint32(year-1980)<<25 |
		uint32(t.Month())<<21 |
		uint32(t.Day())<<16 |
		uint32(t.Hour())<<11 |
		uint32(t.Minute())<<5 |
		uint32(t.Second()/2)
}

// Unpack extracts the calendar fields from a packed value.
func Unpack(v uint32) DateTime {
	return DateTime{
		Year:   int(v>>25) + 1980,
		Month:  int(v>>21) & 0x0f,
		Day:    int(v>>16) & 0x1f,
		Hour:   int(v>>11) & 0x1f,
		Minute: int(v>>5) & 0x3f,
		Second: int(v&0x1f) * 2,
	}
}

// Time returns the fields as a time in loc. A nil loc means UTC.
// Out-of-range fields are normalized by time.Date.
func (d DateTime) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, loc)
}
