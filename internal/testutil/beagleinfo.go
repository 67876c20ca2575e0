package testutil

import (
	"fmt"
	"strings"
)

// Resource describes one block of beast -beagle_info output.
type Resource struct {
	Index     int
	Name      string
	GPU       bool
	VectorSSE bool
	MemoryMB  int
	ClockGHz  float64
	Cores     int
}

// CPU returns a CPU resource block description.
func CPU(index int, sse bool) Resource {
	return Resource{Index: index, Name: "CPU", VectorSSE: sse}
}

// GPU returns a CUDA GPU resource block description.
func GPU(index int, name string) Resource {
	return Resource{Index: index, Name: name, GPU: true, MemoryMB: 1024, ClockGHz: 1.2, Cores: 192}
}

// Block renders r the way beast prints it, including the two trailing blank
// lines separating it from the next block.
func (r Resource) Block() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d : %s\n", r.Index, r.Name)
	if r.GPU {
		fmt.Fprintf(&b, "    Global memory (MB): %d\n", r.MemoryMB)
		fmt.Fprintf(&b, "    Clock speed (Ghz): %g\n", r.ClockGHz)
		fmt.Fprintf(&b, "    Number of cores: %d\n", r.Cores)
	}

	flags := "PRECISION_SINGLE PRECISION_DOUBLE COMPUTATION_SYNCH EIGEN_REAL EIGEN_COMPLEX " +
		"SCALING_MANUAL SCALING_AUTO SCALING_ALWAYS SCALERS_RAW SCALERS_LOG"
	if r.VectorSSE {
		flags += " VECTOR_SSE"
	}
	flags += " VECTOR_NONE THREADING_NONE"
	if r.GPU {
		flags += " PROCESSOR_GPU FRAMEWORK_CUDA"
	} else {
		flags += " PROCESSOR_CPU FRAMEWORK_CPU"
	}
	fmt.Fprintf(&b, "    Flags: %s\n\n\n", flags)
	return b.String()
}

// BeagleInfo renders a full -beagle_info report with the given header line
// and resource blocks, preceded by banner noise that must be ignored.
func BeagleInfo(header string, resources ...Resource) string {
	var b strings.Builder
	b.WriteString("BEAST v1.8.0, 2002-2013\nIGNORE THIS STUFF\n\n")
	b.WriteString(header + "\n")
	for _, r := range resources {
		b.WriteString(r.Block())
	}
	return b.String()
}
