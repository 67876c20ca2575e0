package beagle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// DefaultDelimiters are the header lines beast prints before the resource
// list, newest first. Each is tried in order.
var DefaultDelimiters = []string{
	"BEAGLE resources available:",
	"Available resources:",
}

// ErrNoResourceList is returned when none of the delimiters occur in a report.
var ErrNoResourceList = errors.New("no BEAGLE resource list in beast output")

// Resource is one compute resource from beast -beagle_info.
type Resource struct {
	Index    int
	Name     string
	MemoryMB int
	ClockGHz float64
	Cores    int
	Flags    map[string]bool
}

// IsGPU reports whether the resource is a GPU.
func (r Resource) IsGPU() bool { return r.Flags["PROCESSOR_GPU"] }

// IsCPU reports whether the resource is a CPU.
func (r Resource) IsCPU() bool { return r.Flags["PROCESSOR_CPU"] }

// HasVectorSSE reports whether the CPU resource supports the SSE code path.
func (r Resource) HasVectorSSE() bool { return r.Flags["VECTOR_SSE"] }

var (
	headerRe = regexp.MustCompile(`^\s*(\d+)\s*:\s*(.*?)\s*$`)
	fieldRe  = regexp.MustCompile(`^\s*([^:]+?)\s*:\s*(.*?)\s*$`)
)

// ParseResources extracts the resource blocks from a -beagle_info report.
// Blocks are separated by blank lines and start with "<index> : <name>".
func ParseResources(report string, delimiters []string) ([]Resource, error) {
	if len(delimiters) == 0 {
		delimiters = DefaultDelimiters
	}
	body, ok := "", false
	for _, d := range delimiters {
		if i := strings.Index(report, d); i >= 0 {
			body, ok = report[i+len(d):], true
			break
		}
	}
	if !ok {
		return nil, ErrNoResourceList
	}

	var (
		resources []Resource
		cur       *Resource
	)
	flush := func() {
		if cur != nil {
			resources = append(resources, *cur)
			cur = nil
		}
	}

	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if cur == nil {
			m := headerRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			idx, _ := strconv.Atoi(m[1])
			cur = &Resource{Index: idx, Name: m[2], Flags: map[string]bool{}}
			continue
		}
		if err := cur.parseField(line); err != nil {
			return nil, fmt.Errorf("resource %d: %w", cur.Index, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning resource list: %w", err)
	}
	flush()
	return resources, nil
}

func (r *Resource) parseField(line string) error {
	m := fieldRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	key, val := m[1], m[2]
	var err error
	switch key {
	case "Flags":
		for _, f := range strings.Fields(val) {
			r.Flags[f] = true
		}
	case "Global memory (MB)":
		r.MemoryMB, err = strconv.Atoi(val)
	case "Clock speed (Ghz)":
		r.ClockGHz, err = strconv.ParseFloat(val, 64)
	case "Number of cores":
		r.Cores, err = strconv.Atoi(val)
	}
	if err != nil {
		return fmt.Errorf("parsing %q: %w", key, err)
	}
	return nil
}

// Query runs `<tool> -beagle_info` and parses its resource list.
func Query(ctx context.Context, tool string, delimiters []string) ([]Resource, error) {
	out, err := exec.CommandContext(ctx, tool, "-beagle_info").Output()
	if err != nil {
		return nil, fmt.Errorf("running %s -beagle_info: %w", tool, err)
	}
	return ParseResources(string(out), delimiters)
}
