package dostime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want uint32
	}{
		{"epoch", time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), Epoch},
		{"reference date", time.Date(2013, 1, 3, 14, 26, 38, 0, time.UTC), 1109619539},
		{"odd seconds truncate", time.Date(2013, 1, 3, 14, 26, 39, 0, time.UTC), 1109619539},
		{"mid year", time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC), 1523540950},
		{"before epoch", time.Date(1979, 12, 30, 23, 59, 58, 0, time.UTC), 0x210000},
		{"far before epoch", time.Date(1900, 6, 1, 0, 0, 0, 0, time.UTC), Epoch},
		{"year field high bit", time.Date(2044, 1, 1, 0, 0, 0, 0, time.UTC), 0x80210000},
		{"year field wraps", time.Date(2108, 1, 1, 0, 0, 0, 0, time.UTC), 0x00210000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Pack(tt.in, true))
		})
	}
}

func TestPackUsesRequestedZone(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("UTC+5", 5*60*60)
	in := time.Date(2013, 1, 3, 23, 0, 0, 0, zone)

	got := Unpack(Pack(in, true))
	assert.Equal(t, 18, got.Hour)
	assert.Equal(t, 3, got.Day)

	local := in.Local()
	got = Unpack(Pack(in, false))
	assert.Equal(t, local.Hour(), got.Hour)
	assert.Equal(t, local.Day(), got.Day)
}

func TestUnpack(t *testing.T) {
	t.Parallel()

	got := Unpack(1109619539)
	assert.Equal(t, DateTime{Year: 2013, Month: 1, Day: 3, Hour: 14, Minute: 26, Second: 38}, got)
	assert.Equal(t, time.Date(2013, 1, 3, 14, 26, 38, 0, time.UTC), got.Time(nil))

	assert.Equal(t, time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), Unpack(Epoch).Time(time.UTC))
}

func TestPackRoundTrip(t *testing.T) {
	t.Parallel()

	start := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 500 {
		in := start.Add(time.Duration(i) * 1_000_003 * time.Second)
		in = in.Truncate(2 * time.Second)
		got := Unpack(Pack(in, true)).Time(time.UTC)
		assert.True(t, in.Equal(got), "round trip %s -> %s", in, got)
	}
}
