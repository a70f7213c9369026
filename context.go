package tccruntime

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/tcc-runtime/errors"
	"github.com/wippyai/tcc-runtime/internal/handles"
)

// Context is one compilation session: it owns an engine handle from Open
// until a terminal operation (OutputFile, Relocate, Run) consumes it, or
// Close abandons it. Configuration and compile calls may interleave;
// after consumption every further call panics.
//
// A Context is not safe for concurrent use. The engine runs everything
// synchronously on the calling goroutine, diagnostics included.
type Context struct {
	handle   unsafe.Pointer
	guard    *Guard
	diag     uintptr // handle registry id of the active callback, 0 if none
	compiled bool
	consumed bool
}

// Open allocates an engine handle under g. It fails when the engine
// reports allocation failure, or when g already has an open Context: the
// borrow is exclusive until the first Context is consumed or closed.
func Open(g *Guard) (*Context, error) {
	if err := g.borrow(); err != nil {
		return nil, err
	}
	h := engineNew()
	if h == nil {
		g.unborrow()
		return nil, errors.Allocation("engine handle allocation failed")
	}
	Logger().Debug("context opened")
	return &Context{handle: h, guard: g}, nil
}

func (c *Context) live(op string) {
	if c.consumed {
		panic("tccruntime: " + op + " on a consumed Context")
	}
}

// release ends the session. When destroy is false the engine handle has
// been moved into a RelocatedImage and must stay alive.
func (c *Context) release(destroy bool) {
	if c.diag != 0 {
		handles.Unregister(c.diag)
		c.diag = 0
	}
	if destroy && c.handle != nil {
		engineDelete(c.handle)
	}
	c.handle = nil
	c.consumed = true
	c.guard.unborrow()
}

// Close abandons an unconsumed Context, releasing the engine handle and
// the guard borrow. It is a no-op after a terminal operation, so
// `defer ctx.Close()` is always safe.
func (c *Context) Close() {
	if c.consumed {
		return
	}
	c.release(true)
	Logger().Debug("context closed without terminal operation")
}

// assertZero guards engine calls that are documented to always succeed.
// A non-zero return here is a broken engine contract, not a recoverable
// condition.
func assertZero(ret int, op string) {
	if ret != 0 {
		panic(fmt.Sprintf("tccruntime: engine contract violated: %s returned %d", op, ret))
	}
}

// SetLibPath overrides the engine's runtime library directory
// (CONFIG_TCCDIR).
func (c *Context) SetLibPath(path string) *Context {
	c.live("SetLibPath")
	engineSetLibPath(c.handle, path)
	return c
}

// SetOptions passes free-form engine flags, as from a command line.
func (c *Context) SetOptions(opts string) *Context {
	c.live("SetOptions")
	engineSetOptions(c.handle, opts)
	return c
}

// AddIncludePath appends a directory to the include search path.
func (c *Context) AddIncludePath(path string) *Context {
	c.live("AddIncludePath")
	assertZero(engineAddIncludePath(c.handle, path), "add_include_path")
	return c
}

// AddSysIncludePath appends a directory to the system include search path.
func (c *Context) AddSysIncludePath(path string) *Context {
	c.live("AddSysIncludePath")
	assertZero(engineAddSysIncludePath(c.handle, path), "add_sysinclude_path")
	return c
}

// AddLibraryPath appends a directory to the library search path,
// equivalent to the -L option.
func (c *Context) AddLibraryPath(path string) *Context {
	c.live("AddLibraryPath")
	assertZero(engineAddLibraryPath(c.handle, path), "add_library_path")
	return c
}

// DefineSymbol defines preprocessor symbol name. An empty value defines
// the bare symbol.
func (c *Context) DefineSymbol(name, value string) *Context {
	c.live("DefineSymbol")
	engineDefineSymbol(c.handle, name, value)
	return c
}

// UndefineSymbol removes a preprocessor symbol definition.
func (c *Context) UndefineSymbol(name string) *Context {
	c.live("UndefineSymbol")
	engineUndefineSymbol(c.handle, name)
	return c
}

// SetOutputKind selects the artifact shape. Calling it after compilation
// has started is a usage error and panics.
func (c *Context) SetOutputKind(kind OutputKind) *Context {
	c.live("SetOutputKind")
	if c.compiled {
		panic("tccruntime: SetOutputKind after compilation has started")
	}
	assertZero(engineSetOutputType(c.handle, int(kind)), "set_output_type")
	return c
}

// SetDiagnosticFunc installs fn as the diagnostic callback, replacing any
// previous one. A nil fn uninstalls the callback. Diagnostics are the
// only channel for compiler warning/error text; call results carry only
// success or failure.
func (c *Context) SetDiagnosticFunc(fn DiagnosticFunc) *Context {
	c.live("SetDiagnosticFunc")
	if c.diag != 0 {
		handles.Unregister(c.diag)
		c.diag = 0
	}
	if fn == nil {
		engineClearDiag(c.handle)
		return c
	}
	c.diag = handles.Register(fn)
	engineSetDiag(c.handle, c.diag)
	return c
}

// AddLibrary links a library by name against the configured library
// search paths, equivalent to the -l option.
func (c *Context) AddLibrary(name string) error {
	c.live("AddLibrary")
	if ret := engineAddLibrary(c.handle, name); ret != 0 {
		return errors.LinkFailed(name, ret, "library not found on any configured search path")
	}
	return nil
}

// AddSymbol binds addr to name in the compiled namespace, making host
// code callable from compiled code. This is an unsafe capability: the
// caller alone guarantees that addr matches the signature and ABI the
// compiled code expects, and that it outlives every use. The engine
// asserts success; a rejected binding is a programming error.
func (c *Context) AddSymbol(name string, addr unsafe.Pointer) {
	c.live("AddSymbol")
	assertZero(engineAddSymbol(c.handle, name, addr), "add_symbol")
}

// CompileString compiles one translation unit from in-memory C source.
// On failure, diagnostics have already been delivered through the
// registered callback during this call.
func (c *Context) CompileString(src string) error {
	c.live("CompileString")
	c.compiled = true
	if ret := engineCompileString(c.handle, src); ret != 0 {
		return errors.CompileFailed("", ret)
	}
	Logger().Debug("compiled string unit", zap.Int("bytes", len(src)))
	return nil
}

// AddFile compiles or links a file: C source, object, archive, shared
// library, or ld script. An unreadable path surfaces as the same compile
// failure; the engine does not distinguish.
func (c *Context) AddFile(path string) error {
	c.live("AddFile")
	c.compiled = true
	if ret := engineAddFile(c.handle, path); ret != 0 {
		return errors.CompileFailed(path, ret)
	}
	Logger().Debug("added file unit", zap.String("path", path))
	return nil
}

// OutputFile writes the configured output kind to path. It is a terminal
// operation: the Context is consumed whether or not emission succeeds.
func (c *Context) OutputFile(path string) error {
	c.live("OutputFile")
	ret := engineOutputFile(c.handle, path)
	c.release(true)
	if ret != 0 {
		return errors.LinkFailed(path, ret, "emission failed; unresolved symbols or unwritable path")
	}
	Logger().Debug("emitted output file", zap.String("path", path))
	return nil
}

// Relocate produces an executable in-memory image. The engine is asked
// for the required buffer size first, then fills a buffer of exactly that
// size; each step fails independently. On success the engine handle moves
// into the returned image. Terminal: the Context is consumed either way.
func (c *Context) Relocate() (*RelocatedImage, error) {
	c.live("Relocate")
	size := engineRelocateSize(c.handle)
	if size <= 0 {
		c.release(true)
		return nil, errors.RelocationFailed("size", size)
	}
	buf := cAlloc(size)
	if buf == nil {
		c.release(true)
		return nil, errors.Allocation("relocation buffer allocation failed")
	}
	if ret := engineRelocateInto(c.handle, buf); ret != 0 {
		cFree(buf)
		c.release(true)
		return nil, errors.RelocationFailed("copy", ret)
	}
	img := &RelocatedImage{handle: c.handle, buf: buf, size: size}
	c.release(false)
	Logger().Debug("relocated image", zap.Int("bytes", size))
	return img, nil
}

// Run links the in-memory program and executes its main with args,
// returning the program's exit status. Requires OutputMemory. Terminal:
// the Context is consumed either way.
func (c *Context) Run(args []string) (int, error) {
	c.live("Run")
	ret := engineRun(c.handle, args)
	c.release(true)
	if ret < 0 {
		return 0, errors.ExecFailed("program could not be linked or started", ret)
	}
	Logger().Debug("ran in-memory program", zap.Int("exit", ret))
	return ret, nil
}
