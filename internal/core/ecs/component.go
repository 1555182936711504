package ecs

// Removable is implemented by all component stores so a World can drop a
// destroyed entity's data from every tracked store.
type Removable interface {
	Remove(id EntityID)
}

// Store is a dense component store keyed by EntityID. Components live in a
// packed slice so iteration order is deterministic for a given sequence of
// Set/Remove calls; removal swaps the last element into the hole.
type Store[T any] struct {
	index map[EntityID]int
	ids   []EntityID
	data  []*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index: make(map[EntityID]int, 64),
		ids:   make([]EntityID, 0, 64),
		data:  make([]*T, 0, 64),
	}
}

func (s *Store[T]) Set(id EntityID, c *T) {
	if i, ok := s.index[id]; ok {
		s.data[i] = c
		return
	}
	s.index[id] = len(s.data)
	s.ids = append(s.ids, id)
	s.data = append(s.data, c)
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.data[i], true
}

func (s *Store[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.data) - 1
	if i != last {
		s.data[i] = s.data[last]
		s.ids[i] = s.ids[last]
		s.index[s.ids[i]] = i
	}
	s.data[last] = nil
	s.data = s.data[:last]
	s.ids = s.ids[:last]
	delete(s.index, id)
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

// Each visits components in packed order. fn must not add or remove
// components of this store.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for i, c := range s.data {
		fn(s.ids[i], c)
	}
}
