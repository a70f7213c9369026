// Package ccall invokes raw native code addresses with fixed signatures.
//
// Go cannot call an arbitrary function pointer directly, so each supported
// signature gets a static C thunk that performs the cast and the call. The
// caller asserts that the address really has the declared signature; a
// mismatch is undefined behavior, exactly as with any foreign call.
package ccall

/*
// Thunks so cgo can call through untyped code addresses. One per
// signature shape the binding's callers and tests need.
static int tccrt_call_ii(void *fn, int a, int b) {
	return ((int (*)(int, int))fn)(a, b);
}

static int tccrt_call_i(void *fn, int a) {
	return ((int (*)(int))fn)(a);
}

static void tccrt_call_void(void *fn) {
	((void (*)(void))fn)();
}

// A host-side function whose address can be injected into compiled code.
static int tccrt_host_add(int a, int b) {
	return a + b;
}

static void *tccrt_host_add_addr(void) {
	return (void *)tccrt_host_add;
}
*/
import "C"

import "unsafe"

// IntInt calls fn as int(*)(int, int).
func IntInt(fn unsafe.Pointer, a, b int32) int32 {
	return int32(C.tccrt_call_ii(fn, C.int(a), C.int(b)))
}

// Int calls fn as int(*)(int).
func Int(fn unsafe.Pointer, a int32) int32 {
	return int32(C.tccrt_call_i(fn, C.int(a)))
}

// Void calls fn as void(*)(void).
func Void(fn unsafe.Pointer) {
	C.tccrt_call_void(fn)
}

// HostAdd is the address of a host C function int add(int, int) that
// returns the sum of its arguments. Tests inject it into compiled code.
func HostAdd() unsafe.Pointer {
	return C.tccrt_host_add_addr()
}
