// Package tccruntime provides a resource-safe Go binding for the TinyCC
// (libtcc) in-process C compiler.
//
// The native engine is process-global and non-reentrant. This package
// turns its handle-based, callback-driven C API into an abstraction with
// explicit ownership, lifetime, and error semantics.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	tccruntime/          Guard, Context, RelocatedImage, engine surface
//	├── errors/          Structured error types keyed by phase and kind
//	├── internal/handles Handle registry for callback opaque pointers
//	└── internal/ccall   Typed call-throughs for raw code addresses
//
// # Quick Start
//
// Compile a C function in memory and call it:
//
//	g, err := tccruntime.Acquire()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Release()
//
//	ctx, err := tccruntime.Open(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	ctx.SetOutputKind(tccruntime.OutputMemory).
//	    SetDiagnosticFunc(func(msg string) { log.Println(msg) })
//
//	if err := ctx.CompileString("int add(int a, int b) { return a + b; }"); err != nil {
//	    log.Fatal(err)
//	}
//
//	img, err := ctx.Relocate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer img.Close()
//
//	addr, ok := img.Symbol("add")
//
// Invoking addr requires asserting its C signature; see internal/ccall
// for the call-through pattern.
//
// # Session Model
//
// A session moves through a fixed state machine:
//
//	Acquire → Open → configure* → compile* → {OutputFile | Relocate | Run}
//
// Configuration and compile calls may interleave to link several
// translation units. Exactly one terminal operation consumes the Context;
// any call after consumption panics. The Guard enforces that at most one
// session exists per process, because the engine keeps global mutable
// state; Acquire fails fast rather than waiting.
//
// # Diagnostics
//
// Compiler warning and error text is delivered exclusively through the
// registered DiagnosticFunc, synchronously during the call that produced
// it. A call's error value and its diagnostics are independent channels;
// correlate them by checking a captured buffer around each call.
//
// # Thread Safety
//
// Guard acquisition is safe under concurrent attempts. Everything else is
// single-threaded: Context and RelocatedImage must be confined to one
// goroutine, and every operation blocks until the engine returns.
//
// # Engine
//
// libtcc must be installed on the host; the binding links against it with
// cgo. Locating or building the engine is a packaging concern outside
// this library.
package tccruntime
