// Package common holds small generic helpers shared across packages.
package common

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// AppendUnique appends the elements of src to dst that are not in seen yet,
// recording them in seen.
func AppendUnique[S ~[]E, E comparable](dst S, seen map[E]struct{}, src ...E) S {
	for _, e := range src {
		if _, ok := seen[e]; ok {
			continue
		}

		seen[e] = struct{}{}
		dst = append(dst, e)
	}

	return dst
}
