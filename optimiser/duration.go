package optimiser

import (
	"fmt"
	"math"
	"time"
)

// maxHours is the largest hour count representable as a time.Duration.
var maxHours = float64(math.MaxInt64) / float64(time.Hour)

// FormatDuration renders hours as "[Nd ]HH:MM:SS.micro".
// The day component is omitted below one full day. The microsecond field is
// printed as a bare integer, so one second is "00:00:01.0". Values that do
// not fit in a time.Duration render as "INF".
func FormatDuration(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || math.Abs(hours) >= maxHours {
		return "INF"
	}
	if hours < 0 {
		return "-" + FormatDuration(-hours)
	}

	const (
		usPerSecond = int64(time.Second / time.Microsecond)
		usPerMinute = 60 * usPerSecond
		usPerHour   = 60 * usPerMinute
		usPerDay    = 24 * usPerHour
	)
	us := int64(math.RoundToEven(hours * float64(usPerHour)))

	days := us / usPerDay
	us %= usPerDay
	h := us / usPerHour
	us %= usPerHour
	m := us / usPerMinute
	us %= usPerMinute
	s := us / usPerSecond
	us %= usPerSecond

	out := fmt.Sprintf("%02d:%02d:%02d.%d", h, m, s, us)
	if days > 0 {
		out = fmt.Sprintf("%dd %s", days, out)
	}
	return out
}
