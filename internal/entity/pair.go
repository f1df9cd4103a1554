// internal/entity/pair.go
package entity

// Pair returns pointers to two distinct elements of xs. It reports false
// when i == j or either index is out of range, so callers can skip the pair.
func Pair[T any](xs []T, i, j int) (*T, *T, bool) {
	if i == j || i < 0 || j < 0 || i >= len(xs) || j >= len(xs) {
		return nil, nil, false
	}
	return &xs[i], &xs[j], true
}

// Filter keeps the elements for which keep returns true, in order,
// reusing the backing array.
func Filter[T any](xs []T, keep func(*T) bool) []T {
	n := 0
	for i := range xs {
		if keep(&xs[i]) {
			xs[n] = xs[i]
			n++
		}
	}
	var zero T
	for i := n; i < len(xs); i++ {
		xs[i] = zero
	}
	return xs[:n]
}
