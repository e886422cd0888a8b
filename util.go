package textenc

import "golang.org/x/exp/constraints"

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + align - 1) / align * align }

// GroupedLen returns the output length of rendering n digit groups of the
// given width with a single separator between groups: n*width + n - 1,
// or 0 for an empty input. Used to pre-size encode and format buffers.
func GroupedLen[T constraints.Integer](n, width T) T {
	if n == 0 {
		return 0
	}
	return n*width + n - 1
}
