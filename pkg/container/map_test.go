package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapAddGetRemove(t *testing.T) {
	m := NewMap[string, int]()
	assert.True(t, m.IsEmpty())

	m.Add("one", 1)
	m.Add("two", 2)
	assert.Equal(t, 2, m.Num())

	v, ok := m.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = m.Get("three")
	assert.False(t, ok)

	// Add replaces on key collision.
	m.Add("one", 100)
	v, _ = m.Get("one")
	assert.Equal(t, 100, v)

	assert.True(t, m.Remove("one"))
	assert.False(t, m.Remove("one"))
	assert.False(t, m.Contains("one"))
}

func TestMapFindOrAdd(t *testing.T) {
	m := NewMap[string, []int]()

	calls := 0
	make3 := func() []int { calls++; return make([]int, 0, 3) }

	first := m.FindOrAdd("key", make3)
	second := m.FindOrAdd("key", make3)
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestMapKeysValues(t *testing.T) {
	m := NewMap[string, int]()
	m.Add("a", 1)
	m.Add("b", 2)

	assert.ElementsMatch(t, []string{"a", "b"}, m.Keys())
	assert.ElementsMatch(t, []int{1, 2}, m.Values())
}

func TestMapIteration(t *testing.T) {
	m := NewMap[string, int]()
	m.Add("a", 1)
	m.Add("b", 2)
	m.Add("c", 3)

	var sum int
	for _, v := range m.All() {
		sum += v
	}
	assert.Equal(t, 6, sum)
}

func TestMapClear(t *testing.T) {
	m := NewMap[int, int]()
	m.Add(1, 1)
	m.Clear()
	assert.True(t, m.IsEmpty())
}

func TestSetBasics(t *testing.T) {
	s := NewSet(1, 2, 2, 3)
	assert.Equal(t, 3, s.Num())

	// Add reports whether the value was new.
	assert.True(t, s.Add(4))
	assert.False(t, s.Add(4))

	assert.True(t, s.Contains(1))
	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1))
	assert.False(t, s.Contains(1))
}

func TestSetOperations(t *testing.T) {
	a := NewSet(1, 2, 3)
	b := NewSet(3, 4, 5)

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, a.Union(b).Items())
	assert.ElementsMatch(t, []int{3}, a.Intersect(b).Items())
	assert.ElementsMatch(t, []int{1, 2}, a.Difference(b).Items())
	assert.ElementsMatch(t, []int{4, 5}, b.Difference(a).Items())

	// Operands are untouched.
	assert.Equal(t, 3, a.Num())
	assert.Equal(t, 3, b.Num())
}

func TestSetIteration(t *testing.T) {
	s := NewSet(10, 20, 30)
	var sum int
	for v := range s.All() {
		sum += v
	}
	assert.Equal(t, 60, sum)
}
