// Package ingest loads the abbreviations file and the start/end timing
// logs into the relational store at first startup.
package ingest

import (
	"fmt"
	"time"
)

// FormatLapTime converts a lap duration into the stored string form.
// The historical datasets were produced by slicing the text form of a
// duration printed as H:MM:SS, with a bare hour digit and a six-digit
// fraction appended only when sub-second precision is present; the
// first and last three characters are then dropped. A 1m4.415s lap
// stores as "1:04.415". The slice also truncates whole-second laps
// ("0:01:14" becomes "1"), which is kept as-is: stored lap times must
// stay byte-compatible with what was ranked before.
func FormatLapTime(d time.Duration) string {
	s := deltaString(d)
	if len(s) <= 6 {
		return ""
	}
	return s[3 : len(s)-3]
}

// deltaString renders a duration as H:MM:SS or H:MM:SS.ffffff.
func deltaString(d time.Duration) string {
	neg := d < 0
	if neg {
		d = -d
	}

	micros := d.Microseconds()
	secs := micros / 1e6
	micros %= 1e6

	out := fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
	if micros > 0 {
		out += fmt.Sprintf(".%06d", micros)
	}
	if neg {
		out = "-" + out
	}
	return out
}
