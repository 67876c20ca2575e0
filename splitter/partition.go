package splitter

import "fmt"

// Stride returns the group size Partition uses for n items and the requested
// number of parts.
//
// The base size is n/parts. A remainder is absorbed by enlarging the stride
// by ceil(remainder/base) instead of leaving a short trailing group, so fewer
// than parts groups can come out; 1441 items in 7 parts gives a stride of
// 206 and groups ending at 206, 412, ..., 1441.
func Stride(n, parts int) (int, error) {
	if parts < 1 {
		return 0, fmt.Errorf("number of parts must be at least 1, got %d", parts)
	}
	if n < 0 {
		return 0, fmt.Errorf("item count must be non-negative, got %d", n)
	}
	base, extra := n/parts, n%parts
	if base == 0 {
		// More parts than items: one item per group.
		return 1, nil
	}
	if extra != 0 {
		base += (extra + base - 1) / base
	}
	return base, nil
}

// Partition splits items into contiguous groups of Stride(len(items), parts)
// elements; the last group holds whatever remains.
func Partition[T any](items []T, parts int) ([][]T, error) {
	stride, err := Stride(len(items), parts)
	if err != nil {
		return nil, err
	}
	groups := make([][]T, 0, (len(items)+stride-1)/stride)
	for start := 0; start < len(items); start += stride {
		end := min(start+stride, len(items))
		groups = append(groups, items[start:end:end])
	}
	return groups, nil
}
