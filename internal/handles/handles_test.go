package handles

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterLookupUnregister(t *testing.T) {
	before := Count()

	h := Register("diag")
	assert.Equal(t, "diag", Lookup(h))
	assert.Equal(t, before+1, Count())

	Unregister(h)
	assert.Nil(t, Lookup(h))
	assert.Equal(t, before, Count())
}

func TestLookupUnknownHandle(t *testing.T) {
	assert.Nil(t, Lookup(0))
	assert.Nil(t, Lookup(^uintptr(0)))
}

func TestHandlesAreUnique(t *testing.T) {
	a := Register(1)
	b := Register(2)
	defer Unregister(a)
	defer Unregister(b)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 1, Lookup(a))
	assert.Equal(t, 2, Lookup(b))
}

func TestConcurrentRegister(t *testing.T) {
	const n = 64
	ids := make([]uintptr, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = Register(i)
		}(i)
	}
	wg.Wait()

	seen := make(map[uintptr]bool, n)
	for i, id := range ids {
		assert.False(t, seen[id], "duplicate handle %d", id)
		seen[id] = true
		assert.Equal(t, i, Lookup(id))
		Unregister(id)
	}
}
