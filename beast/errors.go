package beast

import "fmt"

// InvalidInputError reports a BEAST XML document that cannot be used for the
// requested operation (missing screen log, taxa/alignment mismatch, no
// fileName attributes, ...).
type InvalidInputError struct {
	Path   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Path == "" {
		return "invalid BEAST xml: " + e.Reason
	}
	return fmt.Sprintf("invalid BEAST xml %s: %s", e.Path, e.Reason)
}
