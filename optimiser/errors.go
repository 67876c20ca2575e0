package optimiser

import (
	"fmt"
	"strings"
)

// EstimationFailure is returned when beast's output ends without ever
// reporting an hours/million states rate.
type EstimationFailure struct {
	Command string   // the launched command line
	Stderr  string   // everything beast wrote to stderr
	Tail    []string // the last lines beast wrote to stdout
	Err     error    // abnormal exit status or stdout read error, if any
}

func (e *EstimationFailure) Error() string {
	msg := fmt.Sprintf("initial hours/million states was not found in output of %q", e.Command)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		if i := strings.LastIndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		}
		msg += " (" + s + ")"
	}
	return msg
}

func (e *EstimationFailure) Unwrap() error { return e.Err }
