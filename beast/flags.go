package beast

import (
	"fmt"
	"sort"
)

// ToolArgs converts a flag mapping into beast command line tokens.
// A true bool contributes the bare key, a false bool nothing, and any other
// value contributes the key followed by the value. Keys are emitted in
// sorted order so the command line is reproducible.
func ToolArgs(flags map[string]any) []string {
	keys := make([]string, 0, len(flags))
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(flags))
	for _, k := range keys {
		switch v := flags[k].(type) {
		case bool:
			if v {
				args = append(args, k)
			}
		case nil:
			args = append(args, k)
		default:
			args = append(args, k, fmt.Sprintf("%v", v))
		}
	}
	return args
}
