package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ToMinutes converts "HH:mm" to minutes since midnight. Malformed input maps
// to 0; the engine assumes the calling layer validated shapes.
func ToMinutes(t string) int {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// FromMinutes converts minutes since midnight back to "HH:mm".
func FromMinutes(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// ToISO builds an ISO datetime string from a date and an "HH:mm" time.
func ToISO(date, clock string) string {
	return date + "T" + clock + ":00"
}

// OverlapWindow is a shared availability interval on one date.
type OverlapWindow struct {
	Date  string
	Start string
	End   string
}

// FindOverlappingWindows returns every interval of at least minDuration
// minutes where both range sets are available on the same date.
func FindOverlappingWindows(rangesA, rangesB []TimeRange, minDuration int) []OverlapWindow {
	var results []OverlapWindow
	for _, a := range rangesA {
		for _, b := range rangesB {
			if a.Date != b.Date {
				continue
			}
			start := maxInt(ToMinutes(a.Start), ToMinutes(b.Start))
			end := minInt(ToMinutes(a.End), ToMinutes(b.End))
			if end-start >= minDuration {
				results = append(results, OverlapWindow{
					Date:  a.Date,
					Start: FromMinutes(start),
					End:   FromMinutes(end),
				})
			}
		}
	}
	return results
}

var stampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// splitStamp breaks an ISO datetime into its date and minutes-since-midnight
// parts using structured parsing rather than string slicing, so stamps that
// carry an offset still resolve to their own wall-clock values.
func splitStamp(stamp string) (date string, mins int, ok bool) {
	for _, layout := range stampLayouts {
		if t, err := time.Parse(layout, stamp); err == nil {
			return t.Format("2006-01-02"), t.Hour()*60 + t.Minute(), true
		}
	}
	return "", 0, false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
