package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SvyatElkind/race-report/internal/models"
)

// timestampLayout matches the log files: a driver code glued to a
// timestamp, e.g. "BHS2018-05-24_12:05:14.100". The fraction carries
// up to six digits and may be absent.
const timestampLayout = "2006-01-02_15:04:05.999999"

// codeLength is the width of the driver abbreviation prefix.
const codeLength = 3

// TimeEntry is a single parsed log line.
type TimeEntry struct {
	Code string
	At   time.Time
}

// ParseTimeLog reads a start or end log. Entries keep file order; a
// repeated code overwrites the time but keeps its original position.
func ParseTimeLog(r io.Reader) ([]TimeEntry, error) {
	var entries []TimeEntry
	index := make(map[string]int)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if len(line) <= codeLength {
			return nil, fmt.Errorf("malformed log line %q", line)
		}

		code := line[:codeLength]
		at, err := time.Parse(timestampLayout, strings.TrimSpace(line[codeLength:]))
		if err != nil {
			return nil, fmt.Errorf("malformed timestamp in log line %q: %w", line, err)
		}

		if i, ok := index[code]; ok {
			entries[i].At = at
			continue
		}
		index[code] = len(entries)
		entries = append(entries, TimeEntry{Code: code, At: at})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time log: %w", err)
	}

	return entries, nil
}

// BuildResults pairs start and end entries by driver code, in start
// log order, and derives the stored lap time string.
func BuildResults(starts, ends []TimeEntry) ([]models.Result, error) {
	endByCode := make(map[string]time.Time, len(ends))
	for _, e := range ends {
		endByCode[e.Code] = e.At
	}

	results := make([]models.Result, 0, len(starts))
	for i, s := range starts {
		end, ok := endByCode[s.Code]
		if !ok {
			return nil, fmt.Errorf("no end time for driver %s", s.Code)
		}
		results = append(results, models.Result{
			ID:        i + 1,
			DriverID:  s.Code,
			StartTime: s.At,
			EndTime:   end,
			LapTime:   FormatLapTime(end.Sub(s.At)),
		})
	}

	return results, nil
}
