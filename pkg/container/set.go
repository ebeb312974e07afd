package container

import "iter"

// Set is an unordered collection of unique values.
type Set[T comparable] struct {
	items map[T]struct{}
}

// NewSet returns a set seeded with the given items.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(items))}
	for _, v := range items {
		s.items[v] = struct{}{}
	}
	return s
}

// Num returns the number of elements.
func (s *Set[T]) Num() int {
	return len(s.items)
}

// IsEmpty reports whether the set holds no elements.
func (s *Set[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Add inserts value and reports whether it was newly added.
func (s *Set[T]) Add(value T) bool {
	if _, ok := s.items[value]; ok {
		return false
	}
	s.items[value] = struct{}{}
	return true
}

// Remove deletes value and reports whether it was present.
func (s *Set[T]) Remove(value T) bool {
	if _, ok := s.items[value]; !ok {
		return false
	}
	delete(s.items, value)
	return true
}

// Contains reports whether value is present.
func (s *Set[T]) Contains(value T) bool {
	_, ok := s.items[value]
	return ok
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	clear(s.items)
}

// Union returns a new set with the elements of both sets.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := NewSet[T]()
	for v := range s.items {
		out.items[v] = struct{}{}
	}
	for v := range other.items {
		out.items[v] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the elements common to both sets.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	out := NewSet[T]()
	for v := range s.items {
		if other.Contains(v) {
			out.items[v] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set with the elements of s not in other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	out := NewSet[T]()
	for v := range s.items {
		if !other.Contains(v) {
			out.items[v] = struct{}{}
		}
	}
	return out
}

// Items returns the elements in unspecified order.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, len(s.items))
	for v := range s.items {
		items = append(items, v)
	}
	return items
}

// All returns a sequence over the elements in unspecified order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}
