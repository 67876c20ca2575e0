package optimiser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHoursPerMillion(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  float64
		match bool
	}{
		{"state row without rate", "0\t-146157.0121\t-6973.1750\t-139183.8371\t37.0010\t1.00000\t-", 0, false},
		{"non state line", "a whole lot of stuff", 0, false},
		{"million", "20000\t-85760.1142\t-9831.5681\t-75928.5461\t47.0661\t12.7912\t6.5 hours/million states", 6.5, true},
		{"billion", "10000\t-92741.3088\t-10087.6418\t-82653.6670\t50.6558\t13.4161\t1.5 hours/billion states", 0.0015, true},
		{"integer rate is not a rate", "20000\t6 hours/million states", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseHoursPerMillion(tc.line)
			assert.Equal(t, tc.match, ok)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}
