package beagle

import (
	"context"
	"runtime"
	"strconv"
	"strings"
)

// Beast command line flags selecting the BEAGLE code path.
const (
	FlagCPU       = "-beagle_CPU"
	FlagSSE       = "-beagle_SSE"
	FlagGPU       = "-beagle_GPU"
	FlagOrder     = "-beagle_order"
	FlagInstances = "-beagle_instances"
)

// Option is one combination of BEAGLE flags, as argv tokens.
type Option []string

// String joins the tokens the way they appear on a command line.
func (o Option) String() string { return strings.Join(o, " ") }

// Args returns a copy of the tokens suitable for exec.
func (o Option) Args() []string { return append([]string(nil), o...) }

// withInstances returns base extended with -beagle_instances n.
func withInstances(base Option, n int) Option {
	opt := make(Option, 0, len(base)+2)
	opt = append(opt, base...)
	return append(opt, FlagInstances, strconv.Itoa(n))
}

// Enumerate lists the acceleration options worth benchmarking for the given
// resources, GPU options first. cpuCount bounds the CPU/SSE instance counts.
//
// SSE supersedes plain CPU whenever any CPU resource supports it. A single
// GPU gets one bare option; several GPUs get one option per device plus
// even instance counts up to the number of GPUs.
func Enumerate(resources []Resource, cpuCount int) []Option {
	var (
		gpus   []Resource
		hasCPU bool
		sse    bool
	)
	for _, r := range resources {
		switch {
		case r.IsGPU():
			gpus = append(gpus, r)
		case r.IsCPU():
			hasCPU = true
			sse = sse || r.HasVectorSSE()
		}
	}

	var options []Option
	switch len(gpus) {
	case 0:
	case 1:
		options = append(options, Option{FlagGPU})
	default:
		for _, g := range gpus {
			options = append(options, Option{FlagGPU, FlagOrder, strconv.Itoa(g.Index)})
		}
		for n := 2; n <= len(gpus); n += 2 {
			options = append(options, withInstances(Option{FlagGPU}, n))
		}
	}

	if hasCPU {
		base := Option{FlagCPU}
		if sse {
			base = Option{FlagSSE}
		}
		options = append(options, base)
		for n := 2; n <= cpuCount; n += 2 {
			options = append(options, withInstances(base, n))
		}
	}
	return options
}

// Lister queries beast for resources and enumerates options from them.
type Lister struct {
	Tool       string
	Delimiters []string
	CPUCount   int // 0 means runtime.NumCPU()
}

// Options implements the option source used by optimiser.Sweep.
func (l *Lister) Options(ctx context.Context) ([]Option, error) {
	tool := l.Tool
	if tool == "" {
		tool = "beast"
	}
	resources, err := Query(ctx, tool, l.Delimiters)
	if err != nil {
		return nil, err
	}
	cpus := l.CPUCount
	if cpus <= 0 {
		cpus = runtime.NumCPU()
	}
	return Enumerate(resources, cpus), nil
}
