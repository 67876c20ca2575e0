package optimiser

import (
	"regexp"
	"strconv"
)

var rateRe = regexp.MustCompile(`(\d+\.\d+) hours/(million|billion) states`)

// ParseHoursPerMillion extracts the hours/million states figure from one line
// of the beast state table. Per-billion figures are converted to per-million.
func ParseHoursPerMillion(line string) (float64, bool) {
	m := rateRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if m[2] == "billion" {
		v /= 1000
	}
	return v, true
}
