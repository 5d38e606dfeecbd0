package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock parses a clock-style duration, "M:SS" or "H:MM:SS", into
// total seconds. Callers summing durations treat a parse error as zero
// seconds so one malformed child never blocks an aggregate.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")

	switch len(parts) {
	case 2:
		m, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid minutes in duration %q", s)
		}
		sec, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid seconds in duration %q", s)
		}
		if m < 0 || sec < 0 {
			return 0, fmt.Errorf("negative component in duration %q", s)
		}
		return m*60 + sec, nil
	case 3:
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid hours in duration %q", s)
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid minutes in duration %q", s)
		}
		sec, err := strconv.Atoi(parts[2])
		if err != nil {
			return 0, fmt.Errorf("invalid seconds in duration %q", s)
		}
		if h < 0 || m < 0 || sec < 0 {
			return 0, fmt.Errorf("negative component in duration %q", s)
		}
		return h*3600 + m*60 + sec, nil
	default:
		return 0, fmt.Errorf("duration %q is not M:SS or H:MM:SS", s)
	}
}

// FormatClock formats total seconds as "M:SS". Minutes do not roll
// over into hours; chapter durations stay in the minutes form.
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// FormatClockHours formats total seconds as "H:MM:SS" once the sum
// reaches an hour, otherwise "M:SS". Used for course totals.
func FormatClockHours(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	if hours == 0 {
		return FormatClock(totalSeconds)
	}
	rem := totalSeconds % 3600
	return fmt.Sprintf("%d:%02d:%02d", hours, rem/60, rem%60)
}
