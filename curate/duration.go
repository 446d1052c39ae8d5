package curate

import (
	"strconv"
	"strings"
	"time"

	"github.com/sosodev/duration"
)

// DurationMinutes parses an ISO-8601 duration ("PT12M30S") or a clock style
// duration ("12:30", "1:02:03") into whole minutes. Seconds are truncated,
// so 4:59 is 4 minutes.
func DurationMinutes(s string) (int, bool) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, ":") {
		return clockMinutes(s)
	}

	if s == "P" || s == "PT" {
		return 0, false
	}
	d, err := duration.Parse(s)
	if err != nil || d.Negative {
		return 0, false
	}
	return int(d.ToTimeDuration() / time.Minute), true
}

func clockMinutes(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		nums[i] = n
	}
	if len(nums) == 3 {
		return nums[0]*60 + nums[1], true
	}
	return nums[0], true
}
