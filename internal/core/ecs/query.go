package ecs

// Each2 iterates over entities that have both component A and B, walking the
// smaller store and probing the larger one.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	if sa.Len() <= sb.Len() {
		for i, a := range sa.data {
			id := sa.ids[i]
			if b, ok := sb.Get(id); ok {
				fn(id, a, b)
			}
		}
		return
	}
	for i, b := range sb.data {
		id := sb.ids[i]
		if a, ok := sa.Get(id); ok {
			fn(id, a, b)
		}
	}
}
