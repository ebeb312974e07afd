package container

import "iter"

// Map is a keyed collection over a native map.
type Map[K comparable, V any] struct {
	items map[K]V
}

// NewMap returns an empty map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{items: make(map[K]V)}
}

// Num returns the number of entries.
func (m *Map[K, V]) Num() int {
	return len(m.items)
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return len(m.items) == 0
}

// Add stores value under key, replacing any previous entry.
func (m *Map[K, V]) Add(key K, value V) {
	m.items[key] = value
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.items[key]
	return v, ok
}

// FindOrAdd returns the value for key, inserting the result of make
// when absent.
func (m *Map[K, V]) FindOrAdd(key K, make func() V) V {
	if v, ok := m.items[key]; ok {
		return v
	}
	v := make()
	m.items[key] = v
	return v
}

// Remove deletes the entry for key and reports whether one existed.
func (m *Map[K, V]) Remove(key K) bool {
	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	return true
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.items[key]
	return ok
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	clear(m.items)
}

// Keys returns the keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values in unspecified order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, len(m.items))
	for _, v := range m.items {
		values = append(values, v)
	}
	return values
}

// All returns a sequence over the entries in unspecified order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.items {
			if !yield(k, v) {
				return
			}
		}
	}
}
