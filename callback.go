package tccruntime

import "C"

import (
	"unsafe"

	"github.com/wippyai/tcc-runtime/internal/handles"
)

// DiagnosticFunc receives one compiler diagnostic line (a warning or an
// error). The engine invokes it synchronously on the goroutine performing
// the compile or configure call; there is no cross-goroutine delivery.
// The message is copied out of engine memory before the function runs, so
// retaining it is safe.
type DiagnosticFunc func(msg string)

// tccDiagTrampoline is the single fixed entry point handed to the engine
// for every context. The opaque argument is a handle registry id, never a
// Go pointer; the registered closure is recovered from it on each call.
//
//export tccDiagTrampoline
func tccDiagTrampoline(opaque unsafe.Pointer, msg *C.char) {
	fn, ok := handles.Lookup(uintptr(opaque)).(DiagnosticFunc)
	if !ok || fn == nil {
		// Context was consumed between the engine call and delivery, or
		// the callback was replaced. Drop the message.
		return
	}
	fn(C.GoString(msg))
}
