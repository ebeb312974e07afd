// Package container provides generic value containers with the fixed
// naming convention game state expects: Array, Map and Set over
// native slices and maps, with chainable iteration.
package container

import (
	"iter"
	"sort"
)

// Array is an ordered, growable collection.
type Array[T comparable] struct {
	items []T
}

// NewArray returns an array seeded with the given items.
func NewArray[T comparable](items ...T) *Array[T] {
	return &Array[T]{items: append([]T(nil), items...)}
}

// Num returns the number of elements.
func (a *Array[T]) Num() int {
	return len(a.items)
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return len(a.items) == 0
}

// Get returns the element at index.
func (a *Array[T]) Get(index int) T {
	return a.items[index]
}

// Set replaces the element at index.
func (a *Array[T]) Set(index int, value T) {
	a.items[index] = value
}

// Add appends value and returns its index.
func (a *Array[T]) Add(value T) int {
	a.items = append(a.items, value)
	return len(a.items) - 1
}

// AddUnique appends value only when it is not already present, and
// returns its index either way.
func (a *Array[T]) AddUnique(value T) int {
	if i := a.IndexOf(value); i >= 0 {
		return i
	}
	return a.Add(value)
}

// Insert places value at index, shifting later elements.
func (a *Array[T]) Insert(index int, value T) {
	a.items = append(a.items, value)
	copy(a.items[index+1:], a.items[index:])
	a.items[index] = value
}

// RemoveAt deletes the element at index, preserving order.
func (a *Array[T]) RemoveAt(index int) {
	a.items = append(a.items[:index], a.items[index+1:]...)
}

// Remove deletes the first occurrence of value and reports whether
// one was found.
func (a *Array[T]) Remove(value T) bool {
	i := a.IndexOf(value)
	if i < 0 {
		return false
	}
	a.RemoveAt(i)
	return true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (a *Array[T]) IndexOf(value T) int {
	for i, v := range a.items {
		if v == value {
			return i
		}
	}
	return -1
}

// Contains reports whether value is present.
func (a *Array[T]) Contains(value T) bool {
	return a.IndexOf(value) >= 0
}

// Clear removes all elements.
func (a *Array[T]) Clear() {
	a.items = a.items[:0]
}

// Items returns a copy of the backing slice.
func (a *Array[T]) Items() []T {
	return append([]T(nil), a.items...)
}

// All returns a sequence over the elements in order.
func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Filter returns a new array holding the elements for which keep is
// true, in order.
func (a *Array[T]) Filter(keep func(T) bool) *Array[T] {
	out := &Array[T]{}
	for _, v := range a.items {
		if keep(v) {
			out.items = append(out.items, v)
		}
	}
	return out
}

// Sort orders the elements by the given less function.
func (a *Array[T]) Sort(less func(x, y T) bool) {
	sort.SliceStable(a.items, func(i, j int) bool {
		return less(a.items[i], a.items[j])
	})
}
