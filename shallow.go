package goclone

// ShallowCopy duplicates the top level of s only. The copy has its own backing
// array, so replacing an element of the copy does not affect s, but elements
// that are pointers, maps, slices or interfaces holding them still refer to the
// same objects as s.
//
// A nil slice yields nil; an empty slice yields an empty, non-nil slice.
func ShallowCopy[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	out := make(S, len(s))
	copy(out, s)
	return out
}

// ShallowCopyMap creates a new map holding the same keys and values as m.
// A nil map yields nil.
func ShallowCopyMap[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return nil
	}
	out := make(M, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
