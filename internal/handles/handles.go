// Package handles maps integer handles to Go values so native callbacks
// can reference them through an opaque pointer.
//
// Cgo pointer-passing rules forbid storing Go pointers in C memory. The
// engine's diagnostic callback takes a void* opaque argument; we hand it
// a uintptr handle instead and recover the registered Go closure inside
// the trampoline.
package handles

import "sync"

var (
	mu     sync.RWMutex
	table  = make(map[uintptr]any)
	nextID uintptr = 1
)

// Register stores v and returns a handle safe to store in C memory.
// The value stays reachable until Unregister is called.
func Register(v any) uintptr {
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	table[id] = v
	return id
}

// Lookup returns the value registered under id, or nil.
func Lookup(id uintptr) any {
	mu.RLock()
	defer mu.RUnlock()
	return table[id]
}

// Unregister drops the handle, letting the value be collected.
func Unregister(id uintptr) {
	mu.Lock()
	defer mu.Unlock()
	delete(table, id)
}

// Count returns the number of live handles. Used by leak checks in tests.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(table)
}
