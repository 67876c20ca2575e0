// Package beagle parses the BEAGLE resource report printed by
// `beast -beagle_info` and enumerates the acceleration options
// (-beagle_CPU, -beagle_SSE, -beagle_GPU with -beagle_order and
// -beagle_instances) that are worth benchmarking on the current host.
//
// -beagle_order combined with instance counts is left out: the extra
// permutations multiply the benchmarking time for little gain.
package beagle
