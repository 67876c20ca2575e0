package beast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolArgs_BoolsAreBareFlagsOthersArePairs(t *testing.T) {
	// GIVEN a mapping with string, int, float and bool values
	flags := map[string]any{
		"-a":     "string",
		"-b":     1,
		"-c":     1.5,
		"-d":     true,
		"-e":     false,
		"--long": "works",
	}

	// WHEN rendered
	args := ToolArgs(flags)

	// THEN keys are sorted, true is bare, false is dropped
	assert.Equal(t, []string{
		"--long", "works",
		"-a", "string",
		"-b", "1",
		"-c", "1.5",
		"-d",
	}, args)
}

func TestToolArgs_Empty(t *testing.T) {
	assert.Empty(t, ToolArgs(nil))
}
