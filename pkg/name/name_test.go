package name

import (
	"encoding/json"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndNone(t *testing.T) {
	n := New("PlayerStart")
	assert.Equal(t, "PlayerStart", n.String())
	assert.False(t, n.IsNone())
	assert.NotZero(t, n.Hash())

	assert.True(t, New("").IsNone())
	assert.Equal(t, None, New(""))

	var zero Name
	assert.True(t, zero.IsNone())
	assert.True(t, zero.Equal(None))
}

func TestEquality(t *testing.T) {
	a := New("Checkpoint")
	b := New("Checkpoint")
	c := New("checkpoint")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	// Names are case sensitive.
	assert.False(t, a.Equal(c))
}

func TestInterningSharesStorage(t *testing.T) {
	a := New("SharedLabel")
	b := New("SharedLabel")

	// Both names point at one interned string.
	assert.Same(t, unsafe.StringData(a.String()), unsafe.StringData(b.String()))
}

func TestConcurrentInterning(t *testing.T) {
	var wg sync.WaitGroup
	names := make([]Name, 64)
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			names[i] = New("ConcurrentName")
		}(i)
	}
	wg.Wait()

	for _, n := range names {
		assert.True(t, n.Equal(names[0]))
	}
}

func TestTextMarshaling(t *testing.T) {
	n := New("SpawnPoint_03")

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, `"SpawnPoint_03"`, string(data))

	var back Name
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, n.Equal(back))
}
