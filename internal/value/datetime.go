package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Default strftime-style formats for the three temporal generator kinds.
const (
	DateTimeDefaultFormat = "%Y-%m-%d %H:%M:%S"
	DateDefaultFormat     = "%Y-%m-%d"
	TimeDefaultFormat     = "%H:%M:%S"
)

// civilEpoch is 0001-01-01, the reference point for day-of-common-era counts
// (day 1 is 0001-01-01, matching the reference implementation's convention).
var civilEpoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// DaysFromCE converts a date (time truncated) to a 1-based day-of-common-era count.
func DaysFromCE(t time.Time) int64 {
	d := t.UTC().Truncate(24 * time.Hour)
	return (d.Unix()-civilEpoch.Unix())/86400 + 1
}

// DateFromDaysCE builds a UTC date from a day-of-common-era count.
func DateFromDaysCE(days int64) time.Time {
	return civilEpoch.AddDate(0, 0, int(days-1))
}

// SecondsSinceMidnight converts a time-of-day to the number of elapsed seconds since midnight.
func SecondsSinceMidnight(t time.Time) int64 {
	return int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())
}

// TimeFromSecondsSinceMidnight builds a time-of-day (on the zero date) from seconds since midnight.
func TimeFromSecondsSinceMidnight(secs int64) time.Time {
	base := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(secs) * time.Second)
}

// strftimeToGoLayout translates the small subset of strftime directives used
// by schema format strings into a Go reference-time layout.
func strftimeToGoLayout(format string) string {
	replacer := strings.NewReplacer(
		"%Y", "2006",
		"%m", "01",
		"%d", "02",
		"%H", "15",
		"%M", "04",
		"%S", "05",
		"%%", "%",
	)
	return replacer.Replace(format)
}

// ParseDateTime parses s (strftime format) into a UTC time.Time.
func ParseDateTime(s, format string) (time.Time, error) {
	t, err := time.Parse(strftimeToGoLayout(format), s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date-time %q with format %q: %w", s, format, err)
	}
	return t.UTC(), nil
}

// FormatDateTime renders t (strftime format).
func FormatDateTime(t time.Time, format string) string {
	return t.UTC().Format(strftimeToGoLayout(format))
}

// ParseDate parses s (strftime date format, default DateDefaultFormat).
func ParseDate(s, format string) (time.Time, error) {
	return ParseDateTime(s, format)
}

// ParseTime parses s (strftime time format, default TimeDefaultFormat) onto the zero date.
func ParseTime(s, format string) (time.Time, error) {
	t, err := ParseDateTime(s, format)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(1, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}

// FormatInt32 is a small helper for formatting a plain integer without going
// through Value (e.g. for diagnostics). Nothing in the module calls it.
func FormatInt32(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
